package queries_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	h, err := queries.NewGetOrderQueryHandler(repo)
	require.NoError(t, err)

	q, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	_, err = h.Handle(ctx, q)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)

	_, err = h.Handle(ctx, queries.GetOrderQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewListOrdersQuery(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
		wantErr  bool
	}{
		{"zero uses default", 0, 200, false},
		{"explicit", 25, 25, false},
		{"maximum", 200, 200, false},
		{"too large", 201, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersQuery(tt.limit)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.Limit())
		})
	}
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	repo.On("List", ctx, 200).Return([]*order.Order{}, nil).Once()
	h, err := queries.NewListOrdersQueryHandler(repo)
	require.NoError(t, err)

	q, _ := queries.NewListOrdersQuery(0)
	orders, err := h.Handle(ctx, q)

	require.NoError(t, err)
	assert.Empty(t, orders)
	repo.AssertExpectations(t)
}

func TestListOrdersByStatusQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	_, err := queries.NewListOrdersByStatusQuery(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	repo := new(MockOrderRepository)
	repo.On("ListByStatus", ctx, order.Placed, 0).Return([]*order.Order{}, nil).Once()
	h, err := queries.NewListOrdersByStatusQueryHandler(repo)
	require.NoError(t, err)

	q, err := queries.NewListOrdersByStatusQuery(order.Placed)
	require.NoError(t, err)
	assert.Equal(t, order.Placed, q.Status())

	orders, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, orders)
	repo.AssertExpectations(t)

	_, err = h.Handle(ctx, queries.ListOrdersByStatusQuery{})
	assert.ErrorIs(t, err, queries.ErrListOrdersByStatusQueryIsNotConstructed)

	_, err = queries.NewListOrdersByStatusQueryHandler(nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
