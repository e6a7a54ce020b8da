package queries_test

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

type MockTextGenerator struct{ mock.Mock }

func (m *MockTextGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Model() string {
	return m.Called().String(0)
}

type sizeFixture struct {
	name  string
	cents int64
}

func menuItem(t *testing.T, id, name, category string, available bool, fixtures ...sizeFixture) *menu.Item {
	t.Helper()
	sizes := make([]menu.Size, 0, len(fixtures))
	for _, f := range fixtures {
		s, err := menu.NewSize(f.name, f.cents)
		require.NoError(t, err)
		sizes = append(sizes, s)
	}
	it, err := menu.NewItem(menu.ItemParams{
		ID: id, Name: name, Category: category, Sizes: sizes, IsAvailable: available, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return it
}
