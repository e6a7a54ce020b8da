package commands

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds an item to the catalog. Items are available
// unless isAvailable is explicitly false.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	category    string
	sizes       []menu.Size
	isAvailable bool
	tags        []string

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	name, category string,
	sizes []menu.Size,
	isAvailable *bool,
	tags []string,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		category:    category,
		isAvailable: true,
		tags:        tags,
		guard:       guard.NewConstructorGuard(),
	}
	if isAvailable != nil {
		cmd.isAvailable = *isAvailable
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSizes(sizes),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Name() string       { return c.name }
func (c CreateMenuItemCommand) Category() string   { return c.category }
func (c CreateMenuItemCommand) Sizes() []menu.Size { return c.sizes }
func (c CreateMenuItemCommand) IsAvailable() bool  { return c.isAvailable }
func (c CreateMenuItemCommand) Tags() []string     { return c.tags }

func (c *CreateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setSizes(sizes []menu.Size) error {
	if len(sizes) == 0 {
		return errs.NewValueIsRequiredError("sizes")
	}
	c.sizes = make([]menu.Size, len(sizes))
	copy(c.sizes, sizes)
	return nil
}
