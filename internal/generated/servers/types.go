// Package servers holds the HTTP contract of the service: wire types, the
// server interface with its parameter-binding wrapper, and the embedded
// OpenAPI document they are derived from.
package servers

import "time"

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Customer struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

type OrderLineRequest struct {
	MenuItemId string `json:"menuItemId"`
	SizeName   string `json:"sizeName"`
	Quantity   int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Customer *Customer          `json:"customer,omitempty"`
	Items    []OrderLineRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderLine struct {
	MenuItemId     string `json:"menuItemId"`
	SizeName       string `json:"sizeName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	LineTotalCents int64  `json:"lineTotalCents"`
}

type Order struct {
	Id            string      `json:"id"`
	Customer      *Customer   `json:"customer,omitempty"`
	Items         []OrderLine `json:"items"`
	SubtotalCents int64       `json:"subtotalCents"`
	TaxCents      int64       `json:"taxCents"`
	TotalCents    int64       `json:"totalCents"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

type OrderList struct {
	Items []Order `json:"items"`
}

type MenuSize struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type MenuItem struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Category    *string    `json:"category,omitempty"`
	Sizes       []MenuSize `json:"sizes"`
	IsAvailable bool       `json:"isAvailable"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type MenuItemList struct {
	Items []MenuItem `json:"items"`
}

type CreateMenuItemRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Sizes       []MenuSize `json:"sizes"`
	IsAvailable *bool      `json:"isAvailable,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// UpdateMenuItemRequest leaves absent (or null) fields unchanged.
type UpdateMenuItemRequest struct {
	Name        *string     `json:"name,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Sizes       *[]MenuSize `json:"sizes,omitempty"`
	IsAvailable *bool       `json:"isAvailable,omitempty"`
	Tags        *[]string   `json:"tags,omitempty"`
}

// MenuQueryRequest keeps Question untyped so that a non-string question is
// reported by the handler rather than by schema validation.
type MenuQueryRequest struct {
	Question any `json:"question"`
}

type MenuQueryMeta struct {
	Model           string `json:"model"`
	ItemsConsidered int    `json:"itemsConsidered"`
	MaxDocs         int    `json:"maxDocs"`
}

type MenuQueryResponse struct {
	Answer string        `json:"answer"`
	Meta   MenuQueryMeta `json:"meta"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListMenuItemsParams defines parameters for ListMenuItems.
type ListMenuItemsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
