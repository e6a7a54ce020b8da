package commands

import (
	"context"
	"errors"
	"strings"

	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes an existing item. Orders keep their price
// snapshots, so deleting an item never touches them.
type DeleteMenuItemCommand struct {
	id string

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(id string) (DeleteMenuItemCommand, error) {
	if strings.TrimSpace(id) == "" {
		return DeleteMenuItemCommand{}, errs.NewValueIsRequiredError("id")
	}
	return DeleteMenuItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ID() string {
	return c.id
}

type DeleteMenuItemCommandHandler struct {
	menu ports.MenuRepository
}

func NewDeleteMenuItemCommandHandler(menu ports.MenuRepository) (*DeleteMenuItemCommandHandler, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	return &DeleteMenuItemCommandHandler{menu: menu}, nil
}

func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.menu.Delete(ctx, cmd.ID())
}
