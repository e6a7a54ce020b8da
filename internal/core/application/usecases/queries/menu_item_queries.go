package queries

import (
	"context"
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

type GetMenuItemQuery struct {
	id string

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(id string) (GetMenuItemQuery, error) {
	if strings.TrimSpace(id) == "" {
		return GetMenuItemQuery{}, errs.NewValueIsRequiredError("id")
	}
	return GetMenuItemQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) ID() string {
	return q.id
}

type ListMenuItemsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(limit int) (ListMenuItemsQuery, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return ListMenuItemsQuery{}, err
	}
	return ListMenuItemsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Limit() int {
	return q.limit
}

// MenuQueryHandler serves both menu item reads.
type MenuQueryHandler struct {
	menu ports.MenuRepository
}

func NewMenuQueryHandler(menu ports.MenuRepository) (*MenuQueryHandler, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	return &MenuQueryHandler{menu: menu}, nil
}

func (h *MenuQueryHandler) Get(ctx context.Context, q GetMenuItemQuery) (*menu.Item, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.menu.Get(ctx, q.ID())
}

func (h *MenuQueryHandler) List(ctx context.Context, q ListMenuItemsQuery) ([]*menu.Item, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.menu.List(ctx, q.Limit())
}
