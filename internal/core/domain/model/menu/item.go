package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeeshop/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a menu entry. Ids are opaque strings chosen by the catalog.
type Item struct {
	id          string
	name        string
	category    string
	sizes       []Size
	isAvailable bool
	tags        []string
	createdAt   time.Time
	updatedAt   *time.Time

	isConstructed bool
}

// ItemParams carries the fields of a new or restored item.
type ItemParams struct {
	ID          string
	Name        string
	Category    string
	Sizes       []Size
	IsAvailable bool
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewItem validates p and returns an item. Sizes keep their order and must
// have unique names.
func NewItem(p ItemParams) (*Item, error) {
	it := &Item{
		category:      strings.TrimSpace(p.Category),
		isAvailable:   p.IsAvailable,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(p.ID),
		it.setName(p.Name),
		it.setSizes(p.Sizes),
		it.setTags(p.Tags),
	); err != nil {
		return nil, err
	}
	return it, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

// Category is empty when the item is uncategorised.
func (i *Item) Category() string {
	return i.category
}

func (i *Item) Sizes() []Size {
	out := make([]Size, len(i.sizes))
	copy(out, i.sizes)
	return out
}

func (i *Item) IsAvailable() bool {
	return i.isAvailable
}

func (i *Item) Tags() []string {
	out := make([]string, len(i.tags))
	copy(out, i.tags)
	return out
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() *time.Time {
	return i.updatedAt
}

// FindSize looks a size up by exact, case-sensitive name.
func (i *Item) FindSize(name string) (Size, bool) {
	for _, s := range i.sizes {
		if s.name == name {
			return s, true
		}
	}
	return Size{}, false
}

func (i *Item) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setSizes(sizes []Size) error {
	if err := validateSizes(sizes); err != nil {
		return err
	}
	i.sizes = make([]Size, len(sizes))
	copy(i.sizes, sizes)
	return nil
}

func (i *Item) setTags(tags []string) error {
	i.tags = make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			i.tags = append(i.tags, tag)
		}
	}
	return nil
}

func validateSizes(sizes []Size) error {
	if len(sizes) == 0 {
		return errs.NewValueIsRequiredError("sizes")
	}
	seen := make(map[string]struct{}, len(sizes))
	for idx, s := range sizes {
		if s.name == "" {
			return errs.NewValueIsInvalidErrorWithCause("sizes", fmt.Errorf("size %d was not created via NewSize", idx))
		}
		if _, dup := seen[s.name]; dup {
			return errs.NewValueIsInvalidErrorWithCause("sizes", fmt.Errorf("duplicate size name %q", s.name))
		}
		seen[s.name] = struct{}{}
	}
	return nil
}
