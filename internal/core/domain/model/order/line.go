package order

import (
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Line is one priced order line. The unit price is a snapshot taken when the
// order was placed; later menu edits never change it.
type Line struct {
	menuItemID string
	sizeName   string
	quantity   int
	unitPrice  kernel.Money
}

func NewLine(menuItemID, sizeName string, quantity int, unitPrice kernel.Money) (Line, error) {
	var errList []error
	if strings.TrimSpace(menuItemID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("menuItemId"))
	}
	if strings.TrimSpace(sizeName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("sizeName"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("unitPriceCents", unitPrice.Cents(), 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}
	if _, err := unitPrice.CheckedMultiply(quantity); err != nil {
		return Line{}, errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, "unbounded", err)
	}

	return Line{
		menuItemID: menuItemID,
		sizeName:   sizeName,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}, nil
}

func (l Line) MenuItemID() string {
	return l.menuItemID
}

func (l Line) SizeName() string {
	return l.sizeName
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// LineTotal is unit price times quantity. NewLine guarantees it fits.
func (l Line) LineTotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}
