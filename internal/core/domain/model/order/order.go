package order

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Totals are the monetary amounts of an order.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// Order is the aggregate root of the ordering workflow.
//
// Invariants:
//   - at least one line
//   - Subtotal equals the sum of line totals, Total equals Subtotal + Tax
//   - amounts are never negative
//   - status is one of the six lifecycle states
type Order struct {
	id        kernel.UUID
	customer  *Customer
	lines     []Line
	totals    Totals
	status    Status
	createdAt time.Time
	updatedAt *time.Time

	isConstructed bool
}

// NewOrder creates a PLACED order from priced lines.
//
// Example:
//
//	line, _ := order.NewLine("m1", "Large", 2, 450)
//	o, err := order.NewOrder(kernel.NewUUID(), nil, []order.Line{line},
//		order.Totals{Subtotal: 900, Tax: 60, Total: 960}, time.Now())
func NewOrder(id kernel.UUID, customer *Customer, lines []Line, totals Totals, createdAt time.Time) (*Order, error) {
	return RestoreOrder(id, customer, lines, totals, Placed, createdAt, nil)
}

// RestoreOrder rebuilds an order read from storage. It enforces the same
// invariants as NewOrder but accepts any valid status.
func RestoreOrder(
	id kernel.UUID,
	customer *Customer,
	lines []Line,
	totals Totals,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setTotals(totals),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns nil when the order was placed anonymously.
func (o *Order) Customer() *Customer {
	return o.customer
}

// Lines returns a copy of the order lines in request order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt is nil until the first status change.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// ChangeStatus applies the generic transition rule.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.apply(status, at)
	return nil
}

// Cancel applies the dedicated cancellation rule.
func (o *Order) Cancel(at time.Time) error {
	status, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.apply(status, at)
	return nil
}

func (o *Order) apply(status Status, at time.Time) {
	o.status = status
	o.updatedAt = &at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, l := range lines {
		if l.quantity <= 0 || l.menuItemID == "" || l.sizeName == "" {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("line %d was not created via NewLine", i))
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotals(t Totals) error {
	if t.Subtotal < 0 || t.Tax < 0 || t.Total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totals", fmt.Errorf("negative amount in %+v", t))
	}

	var sum kernel.Money
	for _, l := range o.lines {
		next, err := sum.CheckedAdd(l.LineTotal())
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("subtotalCents", err)
		}
		sum = next
	}
	if len(o.lines) > 0 && sum != t.Subtotal {
		return errs.NewValueIsInvalidErrorWithCause("subtotalCents", fmt.Errorf("%d does not equal sum of line totals %d", t.Subtotal, sum))
	}
	if total, err := t.Subtotal.CheckedAdd(t.Tax); err != nil || total != t.Total {
		return errs.NewValueIsInvalidErrorWithCause("totalCents", fmt.Errorf("%d does not equal subtotal %d + tax %d", t.Total, t.Subtotal, t.Tax))
	}

	o.totals = t
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
