package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrTaxRateIsNotConstructed = errors.New("TaxRate must be created via NewTaxRate or ParseTaxRate")

	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// TaxRate is a non-negative percentage such as 6.625. It is configured once
// per process and applied to order subtotals.
type TaxRate struct {
	percent decimal.Decimal
	guard   guard.ConstructorGuard
}

// NewTaxRate builds a rate from a decimal percentage.
func NewTaxRate(percent decimal.Decimal) (TaxRate, error) {
	if percent.IsNegative() {
		return TaxRate{}, errs.NewValueIsOutOfRangeError("tax rate percent", percent.String(), 0, "unbounded")
	}
	return TaxRate{percent: percent, guard: guard.NewConstructorGuard()}, nil
}

// ParseTaxRate parses a percentage string; an empty string means 0%.
func ParseTaxRate(s string) (TaxRate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroTaxRate(), nil
	}

	percent, err := decimal.NewFromString(s)
	if err != nil {
		return TaxRate{}, errs.NewValueIsInvalidErrorWithCause("tax rate percent", fmt.Errorf("%q: %w", s, err))
	}
	return NewTaxRate(percent)
}

// ZeroTaxRate returns a 0% rate.
func ZeroTaxRate() TaxRate {
	return TaxRate{percent: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures the rate was created through a constructor.
func (r TaxRate) Validate() error {
	return r.guard.Validate(ErrTaxRateIsNotConstructed)
}

// Percent returns the configured percentage.
func (r TaxRate) Percent() decimal.Decimal {
	return r.percent
}

// Apply returns subtotal * percent / 100 rounded half-up to a whole cent.
// decimal.Round rounds half away from zero, which is half-up for the
// non-negative subtotals orders produce. Taxes beyond int64 cents return
// ErrMoneyOverflow.
func (r TaxRate) Apply(subtotal Money) (Money, error) {
	tax := decimal.NewFromInt(subtotal.Cents()).Mul(r.percent).Div(hundred).Round(0)
	if tax.GreaterThan(maxCents) {
		return 0, fmt.Errorf("tax on %d at %s: %w", subtotal, r, ErrMoneyOverflow)
	}
	return Money(tax.IntPart()), nil
}

// String returns the percentage, e.g. "6.625%".
func (r TaxRate) String() string {
	return r.percent.String() + "%"
}
