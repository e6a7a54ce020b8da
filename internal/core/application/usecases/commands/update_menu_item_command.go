package commands

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand applies a partial update to one item.
type UpdateMenuItemCommand struct {
	id    string
	patch menu.ItemPatch

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(id string, patch menu.ItemPatch) (UpdateMenuItemCommand, error) {
	var idErr error
	if strings.TrimSpace(id) == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}

	if err := errors.Join(idErr, patch.Validate()); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{id: id, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ID() string {
	return c.id
}

func (c UpdateMenuItemCommand) Patch() menu.ItemPatch {
	return c.patch
}
