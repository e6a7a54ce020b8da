// Package menurepo stores menu items as JSON documents in a
// ports.KeyValueStore.
package menurepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
)

type ItemDocument struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category,omitempty"`
	Sizes       []SizeDocument `json:"sizes"`
	IsAvailable bool           `json:"isAvailable"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

type SizeDocument struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

func fromDomain(it *menu.Item) ItemDocument {
	return ItemDocument{
		ID:          it.ID(),
		Name:        it.Name(),
		Category:    it.Category(),
		Sizes:       sizesFromDomain(it.Sizes()),
		IsAvailable: it.IsAvailable(),
		Tags:        it.Tags(),
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
}

func sizesFromDomain(sizes []menu.Size) []SizeDocument {
	out := make([]SizeDocument, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, SizeDocument{Name: s.Name(), PriceCents: s.Price().Cents()})
	}
	return out
}

func toDomain(doc ItemDocument) (*menu.Item, error) {
	sizes := make([]menu.Size, 0, len(doc.Sizes))
	for _, s := range doc.Sizes {
		size, err := menu.NewSize(s.Name, s.PriceCents)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}

	return menu.NewItem(menu.ItemParams{
		ID:          doc.ID,
		Name:        doc.Name,
		Category:    doc.Category,
		Sizes:       sizes,
		IsAvailable: doc.IsAvailable,
		Tags:        doc.Tags,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	})
}

// toMutation translates the typed patch into attribute assignments.
func toMutation(patch menu.ItemPatch, at time.Time) ports.Mutation {
	mut := ports.Mutation{}.Set("updatedAt", at)
	if patch.Name != nil {
		mut = mut.Set("name", *patch.Name)
	}
	if patch.Category != nil {
		mut = mut.Set("category", *patch.Category)
	}
	if patch.Sizes != nil {
		mut = mut.Set("sizes", sizesFromDomain(*patch.Sizes))
	}
	if patch.IsAvailable != nil {
		mut = mut.Set("isAvailable", *patch.IsAvailable)
	}
	if patch.Tags != nil {
		mut = mut.Set("tags", *patch.Tags)
	}
	return mut
}
