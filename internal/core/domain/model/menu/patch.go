package menu

import (
	"strings"

	"coffeeshop/internal/pkg/errs"
)

// PatchableFields lists the fields an ItemPatch may set.
var PatchableFields = []string{"name", "category", "sizes", "isAvailable", "tags"}

// ItemPatch is a partial update of a menu item. A nil slot leaves the field
// unchanged.
type ItemPatch struct {
	Name        *string
	Category    *string
	Sizes       *[]Size
	IsAvailable *bool
	Tags        *[]string
}

func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Sizes == nil && p.IsAvailable == nil && p.Tags == nil
}

// Validate rejects empty patches and values that NewItem would refuse.
func (p ItemPatch) Validate() error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("provide one of: " + strings.Join(PatchableFields, ", "))
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Sizes != nil {
		return validateSizes(*p.Sizes)
	}
	return nil
}
