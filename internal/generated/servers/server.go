package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (DELETE /orders/{id})
	CancelOrder(ctx echo.Context, id string) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// (PUT /orders/{id})
	UpdateOrderStatus(ctx echo.Context, id string) error
	// (GET /menu-items)
	ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error
	// (POST /menu-items)
	CreateMenuItem(ctx echo.Context) error
	// (DELETE /menu-items/{id})
	DeleteMenuItem(ctx echo.Context, id string) error
	// (GET /menu-items/{id})
	GetMenuItem(ctx echo.Context, id string) error
	// (PUT /menu-items/{id})
	UpdateMenuItem(ctx echo.Context, id string) error
	// (POST /ai/menu-query)
	AskMenu(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	var params ListMenuItemsParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListMenuItems(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) GetMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateMenuItem(ctx, id)
}

func (w *ServerInterfaceWrapper) AskMenu(ctx echo.Context) error {
	return w.Handler.AskMenu(ctx)
}

func bindID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, ctx.Param("id"), &id)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for
// registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/orders/:id", wrapper.CancelOrder)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:id", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/menu-items", wrapper.ListMenuItems)
	router.POST(baseURL+"/menu-items", wrapper.CreateMenuItem)
	router.DELETE(baseURL+"/menu-items/:id", wrapper.DeleteMenuItem)
	router.GET(baseURL+"/menu-items/:id", wrapper.GetMenuItem)
	router.PUT(baseURL+"/menu-items/:id", wrapper.UpdateMenuItem)
	router.POST(baseURL+"/ai/menu-query", wrapper.AskMenu)
}
