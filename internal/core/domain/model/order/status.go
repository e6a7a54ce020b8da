package order

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrIllegalCancellation = errors.New("illegal cancellation")
)

// InvalidTransitionError is returned when the transition table has no edge
// From -> To.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// IllegalCancellationError is returned by the dedicated cancel operation when
// the order has progressed too far to be cancelled.
type IllegalCancellationError struct {
	Status Status
}

func NewIllegalCancellationError(status Status) *IllegalCancellationError {
	return &IllegalCancellationError{Status: status}
}

func (e *IllegalCancellationError) Error() string {
	return fmt.Sprintf("cannot cancel when status is %s", e.Status)
}

func (e *IllegalCancellationError) Unwrap() error {
	return ErrIllegalCancellation
}

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PLACED ──> PAID ──> PREPARING ──> READY ──> PICKED_UP
//	   │         │           │          │
//	   └─────────┴───────────┴──────────┴──> CANCELLED
//
// PICKED_UP and CANCELLED are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Placed
	Paid
	Preparing
	Ready
	PickedUp
	Cancelled
)

var statusNames = map[Status]string{
	Placed:    "PLACED",
	Paid:      "PAID",
	Preparing: "PREPARING",
	Ready:     "READY",
	PickedUp:  "PICKED_UP",
	Cancelled: "CANCELLED",
}

var allowedTransitions = map[Status][]Status{
	Placed:    {Paid, Cancelled},
	Paid:      {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {PickedUp, Cancelled},
	PickedUp:  nil,
	Cancelled: nil,
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Placed, Paid, Preparing, Ready, PickedUp, Cancelled}
}

// ParseStatus maps the wire name ("PLACED", "PICKED_UP", ...) to a Status.
// Matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(allowedTransitions[s]) == 0
}

// AllowedTransitions returns a copy of the statuses reachable from s.
func (s Status) AllowedTransitions() []Status {
	next := allowedTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether the table has an edge s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo is the generic status update. It consults only the transition
// table, so READY -> CANCELLED is allowed here even though Cancel refuses it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// Cancel is the customer-facing cancellation. Orders that are READY or
// already finished cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Placed, Paid, Preparing:
		return Cancelled, nil
	default:
		return Unknown, NewIllegalCancellationError(s)
	}
}
