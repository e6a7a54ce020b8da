package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add stores a new order. Returns an error matching ErrAlreadyExists when
	// the id is taken; nothing is overwritten.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate's status and updatedAt only if the stored
	// status still equals expected. Returns ErrPreconditionFailed otherwise.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns up to limit orders, unordered.
	List(ctx context.Context, limit int) ([]*order.Order, error)

	// ListByStatus returns orders currently in status, unordered. A limit
	// <= 0 returns all of them.
	ListByStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error)
}
