// Package orderrepo stores order aggregates as JSON documents in a
// ports.KeyValueStore. The document shape is the one the REST API returns.
package orderrepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

type OrderDocument struct {
	ID            string            `json:"id"`
	Customer      *CustomerDocument `json:"customer,omitempty"`
	Items         []LineDocument    `json:"items"`
	SubtotalCents int64             `json:"subtotalCents"`
	TaxCents      int64             `json:"taxCents"`
	TotalCents    int64             `json:"totalCents"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty"`
}

type CustomerDocument struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type LineDocument struct {
	MenuItemID     string `json:"menuItemId"`
	SizeName       string `json:"sizeName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	LineTotalCents int64  `json:"lineTotalCents"`
}

func fromDomain(o *order.Order) OrderDocument {
	lines := o.Lines()
	items := make([]LineDocument, 0, len(lines))
	for _, l := range lines {
		items = append(items, LineDocument{
			MenuItemID:     l.MenuItemID(),
			SizeName:       l.SizeName(),
			Quantity:       l.Quantity(),
			UnitPriceCents: l.UnitPrice().Cents(),
			LineTotalCents: l.LineTotal().Cents(),
		})
	}

	var customer *CustomerDocument
	if c := o.Customer(); c != nil {
		customer = &CustomerDocument{Name: c.Name(), Phone: c.Phone()}
	}

	totals := o.Totals()
	return OrderDocument{
		ID:            o.ID().String(),
		Customer:      customer,
		Items:         items,
		SubtotalCents: totals.Subtotal.Cents(),
		TaxCents:      totals.Tax.Cents(),
		TotalCents:    totals.Total.Cents(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toDomain(doc OrderDocument) (*order.Order, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	var customer *order.Customer
	if doc.Customer != nil {
		if customer, err = order.NewCustomer(doc.Customer.Name, doc.Customer.Phone); err != nil {
			return nil, err
		}
	}

	lines := make([]order.Line, 0, len(doc.Items))
	for _, item := range doc.Items {
		line, lineErr := order.NewLine(item.MenuItemID, item.SizeName, item.Quantity, kernel.Money(item.UnitPriceCents))
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	totals := order.Totals{
		Subtotal: kernel.Money(doc.SubtotalCents),
		Tax:      kernel.Money(doc.TaxCents),
		Total:    kernel.Money(doc.TotalCents),
	}
	return order.RestoreOrder(id, customer, lines, totals, status, doc.CreatedAt, doc.UpdatedAt)
}
