package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CustomerInput is the optional customer block of an order request.
type CustomerInput struct {
	Name  string
	Phone string
}

// CreateOrderCommand places a new order. Line contents are checked by the
// handler against the live menu, not here.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(nil, []services.LineRequest{
//	    {MenuItemID: "m1", SizeName: "Large", Quantity: 2},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer *order.Customer
	lines    []services.LineRequest

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(customer *CustomerInput, lines []services.LineRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomer(customer); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.lines = make([]services.LineRequest, len(lines))
	copy(cmd.lines, lines)

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer is nil for anonymous orders.
func (c CreateOrderCommand) Customer() *order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Lines() []services.LineRequest {
	out := make([]services.LineRequest, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setCustomer(in *CustomerInput) error {
	if in == nil {
		return nil
	}
	customer, err := order.NewCustomer(in.Name, in.Phone)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}
