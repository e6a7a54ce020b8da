package menu

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Size is a named price point of a menu item, e.g. Large at 450 cents.
type Size struct {
	name  string
	price kernel.Money
}

func NewSize(name string, priceCents int64) (Size, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("size.name")
	}
	price, priceErr := kernel.NewMoney(priceCents)

	if err := errors.Join(nameErr, priceErr); err != nil {
		return Size{}, err
	}
	return Size{name: name, price: price}, nil
}

func (s Size) Name() string {
	return s.name
}

func (s Size) Price() kernel.Money {
	return s.price
}
