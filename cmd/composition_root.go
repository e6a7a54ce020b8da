package cmd

import (
	"context"
	"errors"

	apihttp "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/postgres"
	"coffeeshop/internal/adapters/out/postgres/menurepo"
	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/jobs"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide store client and builds every
// handler from it.
type CompositionRoot struct {
	settings  Settings
	store     *postgres.GormKeyValueStore
	orders    ports.OrderRepository
	menu      ports.MenuRepository
	generator ports.TextGenerator
	logger    *zap.Logger
}

func NewCompositionRoot(
	ctx context.Context,
	settings Settings,
	gormDB *gorm.DB,
	generator ports.TextGenerator,
	logger *zap.Logger,
) (*CompositionRoot, error) {
	if generator == nil {
		return nil, errs.NewValueIsRequiredError("generator")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	store, err := postgres.NewGormKeyValueStore(gormDB)
	if err != nil {
		return nil, err
	}
	if err = store.Migrate(ctx); err != nil {
		return nil, err
	}

	orders, err := orderrepo.NewKVOrderRepository(store, settings.OrdersTable)
	if err != nil {
		return nil, err
	}
	menu, err := menurepo.NewKVMenuRepository(store, settings.MenuTable)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		settings:  settings,
		store:     store,
		orders:    orders,
		menu:      menu,
		generator: generator,
		logger:    logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (*commands.CreateOrderCommandHandler, error) {
	return commands.NewCreateOrderCommandHandler(c.menu, c.orders, c.settings.TaxRate, nil)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() (*commands.UpdateOrderStatusCommandHandler, error) {
	return commands.NewUpdateOrderStatusCommandHandler(c.orders, nil)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() (*commands.CancelOrderCommandHandler, error) {
	return commands.NewCancelOrderCommandHandler(c.orders, nil)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() (*queries.GetOrderQueryHandler, error) {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() (*queries.ListOrdersQueryHandler, error) {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() (*queries.ListOrdersByStatusQueryHandler, error) {
	return queries.NewListOrdersByStatusQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() (*commands.CreateMenuItemCommandHandler, error) {
	return commands.NewCreateMenuItemCommandHandler(c.menu, nil)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() (*commands.UpdateMenuItemCommandHandler, error) {
	return commands.NewUpdateMenuItemCommandHandler(c.menu, nil)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() (*commands.DeleteMenuItemCommandHandler, error) {
	return commands.NewDeleteMenuItemCommandHandler(c.menu)
}

func (c *CompositionRoot) CreateMenuQueryHandler() (*queries.MenuQueryHandler, error) {
	return queries.NewMenuQueryHandler(c.menu)
}

func (c *CompositionRoot) CreateAskMenuQueryHandler() (*queries.AskMenuQueryHandler, error) {
	return queries.NewAskMenuQueryHandler(c.menu, c.generator, c.settings.AIMaxDocs)
}

// CreateHTTPServer builds the echo instance with its own metrics registry.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	var (
		h   apihttp.Handlers
		err error
	)
	h.CreateOrder, err = c.CreateCreateOrderCommandHandler()
	errList := []error{err}
	h.UpdateOrderStatus, err = c.CreateUpdateOrderStatusCommandHandler()
	errList = append(errList, err)
	h.CancelOrder, err = c.CreateCancelOrderCommandHandler()
	errList = append(errList, err)
	h.GetOrder, err = c.CreateGetOrderQueryHandler()
	errList = append(errList, err)
	h.ListOrders, err = c.CreateListOrdersQueryHandler()
	errList = append(errList, err)
	h.CreateMenuItem, err = c.CreateCreateMenuItemCommandHandler()
	errList = append(errList, err)
	h.UpdateMenuItem, err = c.CreateUpdateMenuItemCommandHandler()
	errList = append(errList, err)
	h.DeleteMenuItem, err = c.CreateDeleteMenuItemCommandHandler()
	errList = append(errList, err)
	h.MenuItems, err = c.CreateMenuQueryHandler()
	errList = append(errList, err)
	h.AskMenu, err = c.CreateAskMenuQueryHandler()
	errList = append(errList, err)
	if err = errors.Join(errList...); err != nil {
		return nil, err
	}

	server, err := apihttp.NewServer(h)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return apihttp.NewRouter(server, c.logger, registry)
}

// CreateJobManager returns a manager with the expiry job enabled only when
// ORDER_EXPIRY is set.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.settings.OrderExpiry == 0 {
		return jobs.NewJobManager(nil), nil
	}

	placed, err := c.CreateListOrdersByStatusQueryHandler()
	if err != nil {
		return nil, err
	}
	cancel, err := c.CreateCancelOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	expiry, err := jobs.NewOrderExpiryJob(placed, cancel, c.settings.OrderExpiry, c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(expiry), nil
}
