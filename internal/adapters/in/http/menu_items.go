package http

import (
	"errors"
	"fmt"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateMenuItem handles POST /menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req servers.CreateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	sizes, err := toSizes(req.Sizes)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateMenuItemCommand(req.Name, req.Category, sizes, req.IsAvailable, req.Tags)
	if err != nil {
		return err
	}

	item, err := s.h.CreateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toMenuItem(item))
}

// ListMenuItems handles GET /menu-items.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	q, err := queries.NewListMenuItemsQuery(limitOrZero(params.Limit))
	if err != nil {
		return err
	}

	items, err := s.h.MenuItems.List(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	resp := servers.MenuItemList{Items: make([]servers.MenuItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toMenuItem(it))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetMenuItem handles GET /menu-items/{id}.
func (s *Server) GetMenuItem(ctx echo.Context, id string) error {
	q, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return err
	}

	item, err := s.h.MenuItems.Get(ctx.Request().Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// UpdateMenuItem handles PUT /menu-items/{id}.
func (s *Server) UpdateMenuItem(ctx echo.Context, id string) error {
	var req servers.UpdateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	patch, err := toPatch(req)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateMenuItemCommand(id, patch)
	if err != nil {
		return err
	}

	item, err := s.h.UpdateMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMenuItem(item))
}

// DeleteMenuItem handles DELETE /menu-items/{id}.
func (s *Server) DeleteMenuItem(ctx echo.Context, id string) error {
	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toSizes(in []servers.MenuSize) ([]menu.Size, error) {
	sizes := make([]menu.Size, 0, len(in))
	var sizeErrs []error
	for i, s := range in {
		size, err := menu.NewSize(s.Name, s.PriceCents)
		if err != nil {
			sizeErrs = append(sizeErrs, fmt.Errorf("sizes[%d]: %w", i, err))
			continue
		}
		sizes = append(sizes, size)
	}
	return sizes, errors.Join(sizeErrs...)
}

func toPatch(req servers.UpdateMenuItemRequest) (menu.ItemPatch, error) {
	patch := menu.ItemPatch{
		Name:        req.Name,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
		Tags:        req.Tags,
	}
	if req.Sizes != nil {
		sizes, err := toSizes(*req.Sizes)
		if err != nil {
			return menu.ItemPatch{}, err
		}
		patch.Sizes = &sizes
	}
	return patch, nil
}
