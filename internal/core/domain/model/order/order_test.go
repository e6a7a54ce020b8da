package order_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func largeLatte(t *testing.T) order.Line {
	t.Helper()
	line, err := order.NewLine("m1", "Large", 2, 450)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("should compute line total", func(t *testing.T) {
		line := largeLatte(t)

		assert.Equal(t, "m1", line.MenuItemID())
		assert.Equal(t, "Large", line.SizeName())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, kernel.Money(450), line.UnitPrice())
		assert.Equal(t, kernel.Money(900), line.LineTotal())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := order.NewLine(" ", "", 0, -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "menuItemId")
		assert.Contains(t, err.Error(), "sizeName")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestNewCustomer(t *testing.T) {
	c, err := order.NewCustomer(" Ada ", "")
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Name())
	assert.Empty(t, c.Phone())

	_, err = order.NewCustomer("", "555-0100")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC)
	totals := order.Totals{Subtotal: 900, Tax: 60, Total: 960}

	t.Run("should create PLACED order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, nil, []order.Line{largeLatte(t)}, totals, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, totals, o.Totals())
		assert.Equal(t, now, o.CreatedAt())
		assert.Nil(t, o.UpdatedAt())
		assert.Nil(t, o.Customer())
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), nil, nil, order.Totals{}, now)

		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject subtotal mismatch", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, []order.Line{largeLatte(t)},
			order.Totals{Subtotal: 800, Tax: 60, Total: 860}, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "subtotalCents")
	})

	t.Run("should reject total mismatch", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, []order.Line{largeLatte(t)},
			order.Totals{Subtotal: 900, Tax: 60, Total: 900}, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalCents")
	})

	t.Run("should reject zero-value id and line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, nil, []order.Line{{}}, totals, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	updated := time.Now()

	o, err := order.RestoreOrder(kernel.NewUUID(), nil, []order.Line{largeLatte(t)},
		order.Totals{Subtotal: 900, Total: 900}, order.Ready, time.Now(), &updated)
	require.NoError(t, err)
	assert.Equal(t, order.Ready, o.Status())
	assert.Equal(t, &updated, o.UpdatedAt())

	_, err = order.RestoreOrder(kernel.NewUUID(), nil, []order.Line{largeLatte(t)},
		order.Totals{Subtotal: 900, Total: 900}, order.Unknown, time.Now(), nil)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Lifecycle(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), nil, []order.Line{largeLatte(t)},
		order.Totals{Subtotal: 900, Tax: 60, Total: 960}, time.Now())
	require.NoError(t, err)

	t.Run("should walk the happy path", func(t *testing.T) {
		for _, next := range []order.Status{order.Paid, order.Preparing, order.Ready} {
			at := time.Now()
			require.NoError(t, o.ChangeStatus(next, at))
			assert.Equal(t, next, o.Status())
			require.NotNil(t, o.UpdatedAt())
			assert.Equal(t, at, *o.UpdatedAt())
		}
	})

	t.Run("should refuse cancel when ready and keep status", func(t *testing.T) {
		err := o.Cancel(time.Now())

		assert.ErrorIs(t, err, order.ErrIllegalCancellation)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should allow generic cancel when ready", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not leave a terminal state", func(t *testing.T) {
		err := o.ChangeStatus(order.Placed, time.Now())

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_LinesAreCopied(t *testing.T) {
	lines := []order.Line{largeLatte(t)}
	o, err := order.NewOrder(kernel.NewUUID(), nil, lines, order.Totals{Subtotal: 900, Total: 900}, time.Now())
	require.NoError(t, err)

	lines[0] = order.Line{}
	got := o.Lines()
	got[0] = order.Line{}

	assert.Equal(t, "m1", o.Lines()[0].MenuItemID())
}
