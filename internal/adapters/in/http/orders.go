package http

import (
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(customerInput(req.Customer), lineRequests(req.Items))
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	q, err := queries.NewListOrdersQuery(limitOrZero(params.Limit))
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	resp := servers.OrderList{Items: make([]servers.Order, 0, len(orders))}
	for _, o := range orders {
		resp.Items = append(resp.Items, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}
	q, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PUT /orders/{id}. It follows the transition
// table only, so READY -> CANCELLED is accepted here.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	var req servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	o, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CancelOrder handles DELETE /orders/{id}. Orders are never removed; they
// move to CANCELLED.
func (s *Server) CancelOrder(ctx echo.Context, id string) error {
	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	if _, err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// parseOrderID reports ids that cannot name an order as not found.
func parseOrderID(id string) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("order", id, err)
	}
	return orderID, nil
}

func limitOrZero(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}
