package order

import (
	"strings"

	"coffeeshop/internal/pkg/errs"
)

// Customer is optional contact information attached to an order.
type Customer struct {
	name  string
	phone string
}

// NewCustomer requires a name; phone may be empty.
func NewCustomer(name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer.name")
	}
	return &Customer{name: name, phone: strings.TrimSpace(phone)}, nil
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Phone() string {
	return c.phone
}
