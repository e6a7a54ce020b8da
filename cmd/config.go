package cmd

import (
	"fmt"
	"strings"
	"time"

	"coffeeshop/internal/adapters/out/bedrock"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"go.uber.org/zap/zapcore"
)

const (
	DefaultHTTPPort    = "8080"
	DefaultMenuTable   = "menu"
	DefaultOrdersTable = "orders"
)

// Config is read from the environment once at start-up.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MenuTable      string
	OrdersTable    string
	TaxRatePct     string
	BedrockModelID string
	AIMaxDocs      string
	OrderExpiry    string
	LogLevel       string
}

// Settings are the parsed and defaulted values of a Config.
type Settings struct {
	HTTPPort       string
	MenuTable      ports.Table
	OrdersTable    ports.Table
	TaxRate        kernel.TaxRate
	BedrockModelID string
	AIMaxDocs      int
	OrderExpiry    time.Duration
	LogLevel       zapcore.Level
}

// Parse validates c. An invalid tax rate, expiry or log level is fatal; an
// unparsable AI_MAX_DOCS falls back to the default.
func (c Config) Parse() (Settings, error) {
	s := Settings{
		HTTPPort:       withDefault(c.HTTPPort, DefaultHTTPPort),
		MenuTable:      ports.Table(withDefault(c.MenuTable, DefaultMenuTable)),
		OrdersTable:    ports.Table(withDefault(c.OrdersTable, DefaultOrdersTable)),
		BedrockModelID: withDefault(c.BedrockModelID, bedrock.DefaultModelID),
		AIMaxDocs:      queries.ClampMaxDocs(c.AIMaxDocs),
	}

	rate, err := kernel.ParseTaxRate(strings.TrimSpace(c.TaxRatePct))
	if err != nil {
		return Settings{}, fmt.Errorf("TAX_RATE_PCT: %w", err)
	}
	s.TaxRate = rate

	if raw := strings.TrimSpace(c.OrderExpiry); raw != "" {
		expiry, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("ORDER_EXPIRY: %w", errs.NewValueIsInvalidErrorWithCause("ORDER_EXPIRY", err))
		}
		if expiry < 0 {
			return Settings{}, fmt.Errorf("ORDER_EXPIRY: %w", errs.NewValueIsOutOfRangeError("ORDER_EXPIRY", expiry, 0, "unbounded"))
		}
		s.OrderExpiry = expiry
	}

	s.LogLevel = zapcore.InfoLevel
	if raw := strings.TrimSpace(c.LogLevel); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("LOG_LEVEL: %w", errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
		s.LogLevel = level
	}

	return s, nil
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, withDefault(c.DBSslMode, "disable"))
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
