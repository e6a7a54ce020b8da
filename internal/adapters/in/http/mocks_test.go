package http_test

import (
	"context"
	"testing"
	"time"

	apihttp "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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
	return "test-model"
}

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type testAPI struct {
	e        *echo.Echo
	orders   *MockOrderRepository
	menu     *MockMenuRepository
	gen      *MockTextGenerator
	registry *prometheus.Registry
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := &testAPI{
		orders:   new(MockOrderRepository),
		menu:     new(MockMenuRepository),
		gen:      new(MockTextGenerator),
		registry: prometheus.NewRegistry(),
	}
	clock := func() time.Time { return fixedNow }

	rate, err := kernel.ParseTaxRate("6.625")
	require.NoError(t, err)

	var h apihttp.Handlers
	h.CreateOrder, err = commands.NewCreateOrderCommandHandler(api.menu, api.orders, rate, clock)
	require.NoError(t, err)
	h.UpdateOrderStatus, err = commands.NewUpdateOrderStatusCommandHandler(api.orders, clock)
	require.NoError(t, err)
	h.CancelOrder, err = commands.NewCancelOrderCommandHandler(api.orders, clock)
	require.NoError(t, err)
	h.GetOrder, err = queries.NewGetOrderQueryHandler(api.orders)
	require.NoError(t, err)
	h.ListOrders, err = queries.NewListOrdersQueryHandler(api.orders)
	require.NoError(t, err)
	h.CreateMenuItem, err = commands.NewCreateMenuItemCommandHandler(api.menu, clock)
	require.NoError(t, err)
	h.UpdateMenuItem, err = commands.NewUpdateMenuItemCommandHandler(api.menu, clock)
	require.NoError(t, err)
	h.DeleteMenuItem, err = commands.NewDeleteMenuItemCommandHandler(api.menu)
	require.NoError(t, err)
	h.MenuItems, err = queries.NewMenuQueryHandler(api.menu)
	require.NoError(t, err)
	h.AskMenu, err = queries.NewAskMenuQueryHandler(api.menu, api.gen, queries.DefaultMaxDocs)
	require.NoError(t, err)

	server, err := apihttp.NewServer(h)
	require.NoError(t, err)
	api.e, err = apihttp.NewRouter(server, zap.NewNop(), api.registry)
	require.NoError(t, err)
	return api
}

func latte(t *testing.T, available bool) *menu.Item {
	t.Helper()
	small, err := menu.NewSize("Small", 300)
	require.NoError(t, err)
	large, err := menu.NewSize("Large", 450)
	require.NoError(t, err)

	it, err := menu.NewItem(menu.ItemParams{
		ID:          "m1",
		Name:        "Latte",
		Category:    "Coffee",
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
