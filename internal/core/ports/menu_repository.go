package ports

import (
	"context"
	"time"

	"coffeeshop/internal/core/domain/model/menu"
)

// MenuRepository is the menu catalog.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.Item) error

	// Get returns errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id string) (*menu.Item, error)

	// List returns a bounded sample of the catalog.
	List(ctx context.Context, limit int) ([]*menu.Item, error)

	// Update applies the patch to an existing item in one conditional write
	// and returns the updated item.
	Update(ctx context.Context, id string, patch menu.ItemPatch, at time.Time) (*menu.Item, error)

	Delete(ctx context.Context, id string) error
}
