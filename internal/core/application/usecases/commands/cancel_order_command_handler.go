package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
	now    Clock
}

func NewCancelOrderCommandHandler(orders ports.OrderRepository, clock Clock) (*CancelOrderCommandHandler, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	return &CancelOrderCommandHandler{orders: orders, now: defaultClock(clock)}, nil
}

// Handle cancels the order unless it is READY or already finished, in which
// case the error matches order.ErrIllegalCancellation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), h.now(), (*order.Order).Cancel)
}
