package services

import (
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// PricedOrder is the output of OrderPricer: order lines with snapshotted unit
// prices and the order totals.
type PricedOrder struct {
	Lines  []order.Line
	Totals order.Totals
}

// OrderPricer is pure integer arithmetic over validated lines.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price computes unit price, line totals, subtotal, tax and total.
// tax = roundHalfUp(subtotal * rate / 100), total = subtotal + tax.
// Amounts that do not fit in int64 cents fail with kernel.ErrMoneyOverflow.
func (OrderPricer) Price(lines []ValidatedLine, rate kernel.TaxRate) (PricedOrder, error) {
	priced := PricedOrder{Lines: make([]order.Line, 0, len(lines))}

	var subtotal kernel.Money
	for _, vl := range lines {
		line, err := order.NewLine(vl.Request.MenuItemID, vl.Request.SizeName, vl.Request.Quantity, vl.Size.Price())
		if err != nil {
			return PricedOrder{}, err
		}
		priced.Lines = append(priced.Lines, line)

		if subtotal, err = subtotal.CheckedAdd(line.LineTotal()); err != nil {
			return PricedOrder{}, errs.NewValueIsOutOfRangeErrorWithCause("subtotalCents", "overflow", 0, "int64", err)
		}
	}

	tax, err := rate.Apply(subtotal)
	if err != nil {
		return PricedOrder{}, errs.NewValueIsOutOfRangeErrorWithCause("taxCents", "overflow", 0, "int64", err)
	}
	total, err := subtotal.CheckedAdd(tax)
	if err != nil {
		return PricedOrder{}, errs.NewValueIsOutOfRangeErrorWithCause("totalCents", "overflow", 0, "int64", err)
	}

	priced.Totals = order.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
	return priced, nil
}
