package commands

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

type CreateMenuItemCommandHandler struct {
	menu ports.MenuRepository
	now  Clock
}

func NewCreateMenuItemCommandHandler(menu ports.MenuRepository, clock Clock) (*CreateMenuItemCommandHandler, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	return &CreateMenuItemCommandHandler{menu: menu, now: defaultClock(clock)}, nil
}

// Handle assigns a random id and stores the item.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewItem(menu.ItemParams{
		ID:          kernel.NewUUID().String(),
		Name:        cmd.Name(),
		Category:    cmd.Category(),
		Sizes:       cmd.Sizes(),
		IsAvailable: cmd.IsAvailable(),
		Tags:        cmd.Tags(),
		CreatedAt:   h.now(),
	})
	if err != nil {
		return nil, err
	}

	err = h.menu.Add(ctx, item)
	if errors.Is(err, ports.ErrAlreadyExists) {
		return nil, fmt.Errorf("%w: %w", ErrIdentityConflict, err)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
