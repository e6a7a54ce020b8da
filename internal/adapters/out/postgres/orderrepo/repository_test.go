package orderrepo_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockKeyValueStore struct{ mock.Mock }

func (m *MockKeyValueStore) PutIfAbsent(ctx context.Context, table ports.Table, key string, doc []byte) error {
	return m.Called(ctx, table, key, doc).Error(0)
}

func (m *MockKeyValueStore) UpdateIfMatches(
	ctx context.Context, table ports.Table, key string, cond ports.Condition, mut ports.Mutation,
) ([]byte, error) {
	args := m.Called(ctx, table, key, cond, mut)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockKeyValueStore) Get(ctx context.Context, table ports.Table, key string) ([]byte, error) {
	args := m.Called(ctx, table, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockKeyValueStore) Scan(ctx context.Context, table ports.Table, limit int) ([][]byte, error) {
	args := m.Called(ctx, table, limit)
	raws, _ := args.Get(0).([][]byte)
	return raws, args.Error(1)
}

func (m *MockKeyValueStore) ScanMatching(ctx context.Context, table ports.Table, cond ports.Condition, limit int) ([][]byte, error) {
	args := m.Called(ctx, table, cond, limit)
	raws, _ := args.Get(0).([][]byte)
	return raws, args.Error(1)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, table ports.Table, key string, cond ports.Condition) error {
	return m.Called(ctx, table, key, cond).Error(0)
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine("m1", "Large", 2, 450)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ada", "555-0100")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, []order.Line{line},
		order.Totals{Subtotal: 900, Tax: 60, Total: 960},
		time.Date(2026, 5, 1, 7, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestNewKVOrderRepository(t *testing.T) {
	_, err := orderrepo.NewKVOrderRepository(nil, "orders")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = orderrepo.NewKVOrderRepository(new(MockKeyValueStore), "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestKVOrderRepository_Add(t *testing.T) {
	ctx := t.Context()
	o := newPlacedOrder(t)

	t.Run("should write the API document shape", func(t *testing.T) {
		store := new(MockKeyValueStore)
		var written []byte
		store.On("PutIfAbsent", ctx, ports.Table("orders"), o.ID().String(), mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(3).([]byte) }).
			Return(nil).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		require.NoError(t, repo.Add(ctx, o))

		assert.JSONEq(t, `{
			"id": "`+o.ID().String()+`",
			"customer": {"name": "Ada", "phone": "555-0100"},
			"items": [{"menuItemId": "m1", "sizeName": "Large", "quantity": 2, "unitPriceCents": 450, "lineTotalCents": 900}],
			"subtotalCents": 900,
			"taxCents": 60,
			"totalCents": 960,
			"status": "PLACED",
			"createdAt": "2026-05-01T07:45:00Z"
		}`, string(written))
		store.AssertExpectations(t)
	})

	t.Run("should surface conflicts", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("PutIfAbsent", ctx, ports.Table("orders"), o.ID().String(), mock.Anything).
			Return(ports.ErrAlreadyExists).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		assert.ErrorIs(t, repo.Add(ctx, o), ports.ErrAlreadyExists)
	})

	t.Run("should refuse unconstructed orders", func(t *testing.T) {
		repo, _ := orderrepo.NewKVOrderRepository(new(MockKeyValueStore), "orders")

		assert.ErrorIs(t, repo.Add(ctx, &order.Order{}), order.ErrOrderIsNotConstructed)
	})
}

func TestKVOrderRepository_Update(t *testing.T) {
	ctx := t.Context()

	t.Run("should condition on the expected status", func(t *testing.T) {
		o := newPlacedOrder(t)
		at := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, o.ChangeStatus(order.Paid, at))

		store := new(MockKeyValueStore)
		store.On("UpdateIfMatches", ctx, ports.Table("orders"), o.ID().String(),
			ports.AttributeEquals("status", "PLACED"),
			ports.Mutation{}.Set("status", "PAID").Set("updatedAt", at),
		).Return([]byte(`{}`), nil).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		require.NoError(t, repo.Update(ctx, o, order.Placed))
		store.AssertExpectations(t)
	})

	t.Run("should map missing record to not found", func(t *testing.T) {
		o := newPlacedOrder(t)
		store := new(MockKeyValueStore)
		store.On("UpdateIfMatches", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, ports.ErrNotFound)
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		assert.ErrorIs(t, repo.Update(ctx, o, order.Placed), errs.ErrObjectNotFound)
	})

	t.Run("should pass precondition failures through", func(t *testing.T) {
		o := newPlacedOrder(t)
		store := new(MockKeyValueStore)
		store.On("UpdateIfMatches", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, ports.ErrPreconditionFailed)
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		assert.ErrorIs(t, repo.Update(ctx, o, order.Placed), ports.ErrPreconditionFailed)
	})
}

func TestKVOrderRepository_Get(t *testing.T) {
	ctx := t.Context()
	o := newPlacedOrder(t)
	stored, err := json.Marshal(map[string]any{
		"id":            o.ID().String(),
		"items":         []map[string]any{{"menuItemId": "m1", "sizeName": "Large", "quantity": 2, "unitPriceCents": 450, "lineTotalCents": 900}},
		"subtotalCents": 900,
		"taxCents":      60,
		"totalCents":    960,
		"status":        "READY",
		"createdAt":     "2026-05-01T07:45:00Z",
		"updatedAt":     "2026-05-01T08:10:00Z",
	})
	require.NoError(t, err)

	t.Run("should decode stored document", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", ctx, ports.Table("orders"), o.ID().String()).Return(stored, nil).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		got, err := repo.Get(ctx, o.ID())

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(o.ID()))
		assert.Equal(t, order.Ready, got.Status())
		assert.Nil(t, got.Customer())
		assert.Equal(t, kernel.Money(960), got.Totals().Total)
		require.NotNil(t, got.UpdatedAt())
	})

	t.Run("should map missing record to not found", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", ctx, ports.Table("orders"), o.ID().String()).Return(nil, ports.ErrNotFound).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		_, err := repo.Get(ctx, o.ID())

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject corrupt documents", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("Get", ctx, ports.Table("orders"), o.ID().String()).Return([]byte(`{"status":"SHIPPED"}`), nil).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		_, err := repo.Get(ctx, o.ID())

		assert.Error(t, err)
	})
}

func TestKVOrderRepository_List(t *testing.T) {
	ctx := t.Context()
	store := new(MockKeyValueStore)
	store.On("Scan", ctx, ports.Table("orders"), 200).Return(nil, errors.New("connection reset")).Once()
	repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

	_, err := repo.List(ctx, 200)

	assert.EqualError(t, err, "connection reset")
}

func TestKVOrderRepository_ListByStatus(t *testing.T) {
	ctx := t.Context()
	o := newPlacedOrder(t)
	doc, err := json.Marshal(map[string]any{
		"id":            o.ID().String(),
		"items":         []map[string]any{{"menuItemId": "m1", "sizeName": "Large", "quantity": 2, "unitPriceCents": 450, "lineTotalCents": 900}},
		"subtotalCents": 900,
		"taxCents":      60,
		"totalCents":    960,
		"status":        "PLACED",
		"createdAt":     "2026-05-01T07:45:00Z",
	})
	require.NoError(t, err)

	t.Run("should filter on the stored status", func(t *testing.T) {
		store := new(MockKeyValueStore)
		store.On("ScanMatching", ctx, ports.Table("orders"), ports.AttributeEquals("status", "PLACED"), 0).
			Return([][]byte{doc}, nil).Once()
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		orders, err := repo.ListByStatus(ctx, order.Placed, 0)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].ID().IsEqual(o.ID()))
		store.AssertExpectations(t)
	})

	t.Run("should reject unknown status without a scan", func(t *testing.T) {
		store := new(MockKeyValueStore)
		repo, _ := orderrepo.NewKVOrderRepository(store, "orders")

		_, err := repo.ListByStatus(ctx, order.Unknown, 0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		store.AssertNotCalled(t, "ScanMatching", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
