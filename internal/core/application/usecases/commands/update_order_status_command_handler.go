package commands

import (
	"context"
	"time"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

type UpdateOrderStatusCommandHandler struct {
	orders ports.OrderRepository
	now    Clock
}

func NewUpdateOrderStatusCommandHandler(orders ports.OrderRepository, clock Clock) (*UpdateOrderStatusCommandHandler, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	return &UpdateOrderStatusCommandHandler{orders: orders, now: defaultClock(clock)}, nil
}

// Handle returns the updated order, or an error matching
// order.ErrInvalidTransition, errs.ErrObjectNotFound or
// ErrConcurrentModification.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return transitionOrder(ctx, h.orders, cmd.OrderID(), h.now(), func(o *order.Order, at time.Time) error {
		return o.ChangeStatus(cmd.Status(), at)
	})
}
