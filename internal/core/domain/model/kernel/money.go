package kernel

import (
	"errors"
	"fmt"
	"math"

	"coffeeshop/internal/pkg/errs"
)

// ErrMoneyOverflow is returned when an amount does not fit in int64 cents.
var ErrMoneyOverflow = errors.New("money amount overflows")

// Money is an amount in minor currency units (cents). Arithmetic stays in
// integers so sums never drift.
type Money int64

// NewMoney returns cents as Money, rejecting negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsOutOfRangeError("cents", cents, 0, "unbounded")
	}
	return Money(cents), nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other. Use CheckedAdd when the operands are not known to be
// bounded.
func (m Money) Add(other Money) Money {
	return m + other
}

// Multiply returns m * quantity. Use CheckedMultiply when the operands are not
// known to be bounded.
func (m Money) Multiply(quantity int) Money {
	return m * Money(quantity)
}

// CheckedAdd returns m + other for non-negative amounts, or ErrMoneyOverflow.
func (m Money) CheckedAdd(other Money) (Money, error) {
	if m < 0 || other < 0 {
		return 0, errs.NewValueIsOutOfRangeError("cents", min(m, other).Cents(), 0, "unbounded")
	}
	if other > math.MaxInt64-m {
		return 0, fmt.Errorf("%d + %d: %w", m, other, ErrMoneyOverflow)
	}
	return m + other, nil
}

// CheckedMultiply returns m * quantity for non-negative operands, or
// ErrMoneyOverflow.
func (m Money) CheckedMultiply(quantity int) (Money, error) {
	if m < 0 {
		return 0, errs.NewValueIsOutOfRangeError("cents", m.Cents(), 0, "unbounded")
	}
	if quantity < 0 {
		return 0, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	if quantity != 0 && int64(m) > math.MaxInt64/int64(quantity) {
		return 0, fmt.Errorf("%d * %d: %w", m, quantity, ErrMoneyOverflow)
	}
	return m * Money(quantity), nil
}

// String formats the amount as dollars, e.g. "$4.50".
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
