package queries

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is a bounded, unordered scan of orders.
type ListOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery uses DefaultListLimit when limit is zero.
func NewListOrdersQuery(limit int) (ListOrdersQuery, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) (*ListOrdersQueryHandler, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	return &ListOrdersQueryHandler{orders: orders}, nil
}

func (h *ListOrdersQueryHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.orders.List(ctx, q.Limit())
}

func normalizeLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultListLimit, nil
	case limit < 0 || limit > DefaultListLimit:
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, DefaultListLimit)
	default:
		return limit, nil
	}
}
