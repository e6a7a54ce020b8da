package commands_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, status, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id string) (*menu.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.Item)
	return item, args.Error(1)
}

func (m *MockMenuRepository) List(ctx context.Context, limit int) ([]*menu.Item, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]*menu.Item)
	return items, args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, id string, patch menu.ItemPatch, at time.Time) (*menu.Item, error) {
	args := m.Called(ctx, id, patch, at)
	item, _ := args.Get(0).(*menu.Item)
	return item, args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func latte(t *testing.T, available bool) *menu.Item {
	t.Helper()
	small, err := menu.NewSize("Small", 300)
	require.NoError(t, err)
	large, err := menu.NewSize("Large", 450)
	require.NoError(t, err)

	it, err := menu.NewItem(menu.ItemParams{
		ID:          "m1",
		Name:        "Latte",
		Sizes:       []menu.Size{small, large},
		IsAvailable: available,
		CreatedAt:   fixedNow,
	})
	require.NoError(t, err)
	return it
}

func orderWithStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine("m1", "Large", 2, 450)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), nil, []order.Line{line},
		order.Totals{Subtotal: 900, Tax: 60, Total: 960}, status, fixedNow, nil)
	require.NoError(t, err)
	return o
}
