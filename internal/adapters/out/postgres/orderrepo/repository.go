package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// KVOrderRepository implements ports.OrderRepository over a KeyValueStore.
type KVOrderRepository struct {
	store ports.KeyValueStore
	table ports.Table
}

var _ ports.OrderRepository = (*KVOrderRepository)(nil)

func NewKVOrderRepository(store ports.KeyValueStore, table ports.Table) (*KVOrderRepository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if table == "" {
		return nil, errs.NewValueIsRequiredError("table")
	}
	return &KVOrderRepository{store: store, table: table}, nil
}

// Add stores a new order with create-once semantics.
func (r *KVOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}
	return r.store.PutIfAbsent(ctx, r.table, aggregate.ID().String(), doc)
}

// Update writes status and updatedAt, conditioned on the stored status still
// being expected.
func (r *KVOrderRepository) Update(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	mut := ports.Mutation{}.Set("status", aggregate.Status().String())
	if at := aggregate.UpdatedAt(); at != nil {
		mut = mut.Set("updatedAt", *at)
	}

	_, err := r.store.UpdateIfMatches(ctx, r.table, aggregate.ID().String(),
		ports.AttributeEquals("status", expected.String()), mut)
	if errors.Is(err, ports.ErrNotFound) {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), err)
	}
	return err
}

func (r *KVOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw, err := r.store.Get(ctx, r.table, id.String())
	if errors.Is(err, ports.ErrNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *KVOrderRepository) List(ctx context.Context, limit int) ([]*order.Order, error) {
	raws, err := r.store.Scan(ctx, r.table, limit)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws)
}

func (r *KVOrderRepository) ListByStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	raws, err := r.store.ScanMatching(ctx, r.table, ports.AttributeEquals("status", status.String()), limit)
	if err != nil {
		return nil, err
	}
	return decodeAll(raws)
}

func decodeAll(raws [][]byte) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(raws))
	for _, raw := range raws {
		o, decodeErr := decode(raw)
		if decodeErr != nil {
			return nil, decodeErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func decode(raw []byte) (*order.Order, error) {
	var doc OrderDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode order document: %w", err)
	}
	return toDomain(doc)
}
