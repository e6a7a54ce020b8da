package queries

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery selects every order currently in one status. The
// filter runs in the store, so matches are never hidden behind a bounded scan
// of other orders.
type ListOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(status order.Status) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	return ListOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

type ListOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersByStatusQueryHandler(orders ports.OrderRepository) (*ListOrdersByStatusQueryHandler, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	return &ListOrdersByStatusQueryHandler{orders: orders}, nil
}

func (h *ListOrdersByStatusQueryHandler) Handle(ctx context.Context, q ListOrdersByStatusQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListByStatus(ctx, q.Status(), 0)
}
