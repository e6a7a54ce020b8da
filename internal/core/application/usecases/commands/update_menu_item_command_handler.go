package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

type UpdateMenuItemCommandHandler struct {
	menu ports.MenuRepository
	now  Clock
}

func NewUpdateMenuItemCommandHandler(menu ports.MenuRepository, clock Clock) (*UpdateMenuItemCommandHandler, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	return &UpdateMenuItemCommandHandler{menu: menu, now: defaultClock(clock)}, nil
}

func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.menu.Update(ctx, cmd.ID(), cmd.Patch(), h.now())
}
