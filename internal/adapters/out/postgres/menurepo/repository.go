package menurepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// KVMenuRepository implements ports.MenuRepository over a KeyValueStore.
type KVMenuRepository struct {
	store ports.KeyValueStore
	table ports.Table
}

var _ ports.MenuRepository = (*KVMenuRepository)(nil)

func NewKVMenuRepository(store ports.KeyValueStore, table ports.Table) (*KVMenuRepository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if table == "" {
		return nil, errs.NewValueIsRequiredError("table")
	}
	return &KVMenuRepository{store: store, table: table}, nil
}

func (r *KVMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(fromDomain(item))
	if err != nil {
		return err
	}
	return r.store.PutIfAbsent(ctx, r.table, item.ID(), doc)
}

func (r *KVMenuRepository) Get(ctx context.Context, id string) (*menu.Item, error) {
	raw, err := r.store.Get(ctx, r.table, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, errs.NewObjectNotFoundError("menuItemId", id)
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *KVMenuRepository) List(ctx context.Context, limit int) ([]*menu.Item, error) {
	raws, err := r.store.Scan(ctx, r.table, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(raws))
	for _, raw := range raws {
		it, decodeErr := decode(raw)
		if decodeErr != nil {
			return nil, decodeErr
		}
		items = append(items, it)
	}
	return items, nil
}

// Update applies the patch in a single conditional write on an existing item.
func (r *KVMenuRepository) Update(ctx context.Context, id string, patch menu.ItemPatch, at time.Time) (*menu.Item, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.store.UpdateIfMatches(ctx, r.table, id, ports.MustExist(), toMutation(patch, at))
	if errors.Is(err, ports.ErrNotFound) {
		return nil, errs.NewObjectNotFoundError("menuItemId", id)
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *KVMenuRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, r.table, id, ports.MustExist())
	if errors.Is(err, ports.ErrNotFound) {
		return errs.NewObjectNotFoundError("menuItemId", id)
	}
	return err
}

func decode(raw []byte) (*menu.Item, error) {
	var doc ItemDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode menu item document: %w", err)
	}
	return toDomain(doc)
}
