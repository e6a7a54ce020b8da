package http

import (
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/generated/servers"
)

func customerInput(c *servers.Customer) *commands.CustomerInput {
	if c == nil {
		return nil
	}
	in := &commands.CustomerInput{Name: c.Name}
	if c.Phone != nil {
		in.Phone = *c.Phone
	}
	return in
}

func lineRequests(items []servers.OrderLineRequest) []services.LineRequest {
	out := make([]services.LineRequest, 0, len(items))
	for _, it := range items {
		out = append(out, services.LineRequest{
			MenuItemID: it.MenuItemId,
			SizeName:   it.SizeName,
			Quantity:   it.Quantity,
		})
	}
	return out
}

func toOrder(o *order.Order) servers.Order {
	lines := o.Lines()
	items := make([]servers.OrderLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, servers.OrderLine{
			MenuItemId:     l.MenuItemID(),
			SizeName:       l.SizeName(),
			Quantity:       l.Quantity(),
			UnitPriceCents: l.UnitPrice().Cents(),
			LineTotalCents: l.LineTotal().Cents(),
		})
	}

	totals := o.Totals()
	resp := servers.Order{
		Id:            o.ID().String(),
		Items:         items,
		SubtotalCents: totals.Subtotal.Cents(),
		TaxCents:      totals.Tax.Cents(),
		TotalCents:    totals.Total.Cents(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
	if c := o.Customer(); c != nil {
		resp.Customer = &servers.Customer{Name: c.Name()}
		if phone := c.Phone(); phone != "" {
			resp.Customer.Phone = &phone
		}
	}
	return resp
}

func toMenuItem(it *menu.Item) servers.MenuItem {
	sizes := it.Sizes()
	wire := make([]servers.MenuSize, 0, len(sizes))
	for _, s := range sizes {
		wire = append(wire, servers.MenuSize{Name: s.Name(), PriceCents: s.Price().Cents()})
	}

	resp := servers.MenuItem{
		Id:          it.ID(),
		Name:        it.Name(),
		Sizes:       wire,
		IsAvailable: it.IsAvailable(),
		Tags:        it.Tags(),
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
	if category := it.Category(); category != "" {
		resp.Category = &category
	}
	return resp
}
