package http

import (
	"net/http"
	"sync"

	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(servers.RawSpec())
}

var registerSwagger sync.Once

// NewRouter builds the echo instance serving the API together with /health,
// /metrics and /swagger/*.
func NewRouter(server *Server, logger *zap.Logger, registry *prometheus.Registry) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger.With(zap.String("component", "http")))
	e.Use(metrics.Middleware(), RequestLogger(logger.With(zap.String("component", "http"))), validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
