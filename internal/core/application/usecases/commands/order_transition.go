package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// transitionOrder reads the order, applies change and writes it back only if
// the stored status is still the one that was read.
func transitionOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	id kernel.UUID,
	at time.Time,
	change func(o *order.Order, at time.Time) error,
) (*order.Order, error) {
	o, err := orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	expected := o.Status()
	if err = change(o, at); err != nil {
		return nil, err
	}

	err = orders.Update(ctx, o, expected)
	if errors.Is(err, ports.ErrPreconditionFailed) {
		return nil, fmt.Errorf("%w: order %s is no longer %s", ErrConcurrentModification, id, expected)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
