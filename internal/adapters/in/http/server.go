// Package http exposes the ordering and menu use cases over REST.
package http

import (
	"errors"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       *commands.CreateOrderCommandHandler
	UpdateOrderStatus *commands.UpdateOrderStatusCommandHandler
	CancelOrder       *commands.CancelOrderCommandHandler
	GetOrder          *queries.GetOrderQueryHandler
	ListOrders        *queries.ListOrdersQueryHandler

	CreateMenuItem *commands.CreateMenuItemCommandHandler
	UpdateMenuItem *commands.UpdateMenuItemCommandHandler
	DeleteMenuItem *commands.DeleteMenuItemCommandHandler
	MenuItems      *queries.MenuQueryHandler
	AskMenu        *queries.AskMenuQueryHandler
}

// Server implements servers.ServerInterface. Handlers translate wire types
// to commands and queries and return domain errors unchanged; ErrorHandler
// turns them into responses.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) (*Server, error) {
	if err := errors.Join(
		required(h.CreateOrder == nil, "createOrder"),
		required(h.UpdateOrderStatus == nil, "updateOrderStatus"),
		required(h.CancelOrder == nil, "cancelOrder"),
		required(h.GetOrder == nil, "getOrder"),
		required(h.ListOrders == nil, "listOrders"),
		required(h.CreateMenuItem == nil, "createMenuItem"),
		required(h.UpdateMenuItem == nil, "updateMenuItem"),
		required(h.DeleteMenuItem == nil, "deleteMenuItem"),
		required(h.MenuItems == nil, "menuItems"),
		required(h.AskMenu == nil, "askMenu"),
	); err != nil {
		return nil, err
	}
	return &Server{h: h}, nil
}

func required(missing bool, name string) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
