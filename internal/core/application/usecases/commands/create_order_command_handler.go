package commands

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// maxCreateAttempts bounds id regeneration on put-if-absent conflicts.
const maxCreateAttempts = 3

// CreateOrderCommandHandler validates, prices and stores a new order in
// PLACED status.
type CreateOrderCommandHandler struct {
	validator *services.OrderValidator
	pricer    services.OrderPricer
	orders    ports.OrderRepository
	rate      kernel.TaxRate
	now       Clock
	newID     func() kernel.UUID
}

func NewCreateOrderCommandHandler(
	menu ports.MenuRepository,
	orders ports.OrderRepository,
	rate kernel.TaxRate,
	clock Clock,
) (*CreateOrderCommandHandler, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}
	validator, err := services.NewOrderValidator(menu)
	if err != nil {
		return nil, err
	}

	return &CreateOrderCommandHandler{
		validator: validator,
		pricer:    services.NewOrderPricer(),
		orders:    orders,
		rate:      rate,
		now:       defaultClock(clock),
		newID:     kernel.NewUUID,
	}, nil
}

// Handle returns the stored order. Nothing is written when validation fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := h.validator.Validate(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	priced, err := h.pricer.Price(lines, h.rate)
	if err != nil {
		return nil, err
	}

	for range maxCreateAttempts {
		o, newErr := order.NewOrder(h.newID(), cmd.Customer(), priced.Lines, priced.Totals, h.now())
		if newErr != nil {
			return nil, newErr
		}

		err = h.orders.Add(ctx, o)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, ports.ErrAlreadyExists) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrIdentityConflict, err)
}
