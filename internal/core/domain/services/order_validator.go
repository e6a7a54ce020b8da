package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"
)

// ErrValidation is wrapped by every order validation failure.
var ErrValidation = errors.New("order validation failed")

// ErrEmptyOrder is returned when a request has no lines.
var ErrEmptyOrder = fmt.Errorf("%w: order has no items", ErrValidation)

// MalformedLineError reports a line with an empty id or size, or a
// quantity that is not a positive integer or prices the order past int64
// cents. Index is zero-based. Reason overrides the default message.
type MalformedLineError struct {
	Index  int
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("line %d is malformed: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("line %d is malformed: menuItemId and sizeName are required, quantity must be positive", e.Index)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrValidation
}

// ItemUnavailableError reports a menu item that does not exist or is not
// currently available.
type ItemUnavailableError struct {
	MenuItemID string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %s is unavailable", e.MenuItemID)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrValidation
}

// SizeNotFoundError reports a size name that the item does not offer.
type SizeNotFoundError struct {
	MenuItemID string
	SizeName   string
}

func (e *SizeNotFoundError) Error() string {
	return fmt.Sprintf("size %q not found for menu item %s", e.SizeName, e.MenuItemID)
}

func (e *SizeNotFoundError) Unwrap() error {
	return ErrValidation
}

// MenuLookup is the read side of the catalog the validator needs. A missing
// item must be reported with an error matching errs.ErrObjectNotFound.
type MenuLookup interface {
	Get(ctx context.Context, id string) (*menu.Item, error)
}

// LineRequest is a requested order line before validation.
type LineRequest struct {
	MenuItemID string
	SizeName   string
	Quantity   int
}

// ValidatedLine pairs a request with the catalog entry and size it resolved to.
type ValidatedLine struct {
	Request LineRequest
	Item    *menu.Item
	Size    menu.Size
}

type OrderValidator struct {
	menu MenuLookup
}

func NewOrderValidator(menu MenuLookup) (*OrderValidator, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	return &OrderValidator{menu: menu}, nil
}

// Validate checks lines strictly in input order. Each line is checked for
// shape, then availability, then size, then that its total and the running
// subtotal fit in int64 cents, before the next line is looked at; the
// first failure is returned. Store errors other than not-found are returned
// unchanged.
func (v *OrderValidator) Validate(ctx context.Context, lines []LineRequest) ([]ValidatedLine, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	validated := make([]ValidatedLine, 0, len(lines))
	var subtotal kernel.Money
	for idx, req := range lines {
		if strings.TrimSpace(req.MenuItemID) == "" || strings.TrimSpace(req.SizeName) == "" || req.Quantity <= 0 {
			return nil, &MalformedLineError{Index: idx}
		}

		item, err := v.menu.Get(ctx, req.MenuItemID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, &ItemUnavailableError{MenuItemID: req.MenuItemID}
		}
		if err != nil {
			return nil, err
		}
		if !item.IsAvailable() {
			return nil, &ItemUnavailableError{MenuItemID: req.MenuItemID}
		}

		size, ok := item.FindSize(req.SizeName)
		if !ok {
			return nil, &SizeNotFoundError{MenuItemID: req.MenuItemID, SizeName: req.SizeName}
		}

		lineTotal, err := size.Price().CheckedMultiply(req.Quantity)
		if err == nil {
			subtotal, err = subtotal.CheckedAdd(lineTotal)
		}
		if err != nil {
			return nil, &MalformedLineError{Index: idx, Reason: "quantity is too large"}
		}

		validated = append(validated, ValidatedLine{Request: req, Item: item, Size: size})
	}
	return validated, nil
}
