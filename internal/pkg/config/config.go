// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	HTTPAddr string `env:"STOREFRONT_HTTP_ADDR" envDefault:":8080"`
	SiteName string `env:"STOREFRONT_SITE_NAME" envDefault:"cangroo"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SessionBackend string        `env:"STOREFRONT_SESSION_BACKEND" envDefault:"memory"`
	SessionTTL     time.Duration `env:"STOREFRONT_SESSION_TTL" envDefault:"720h"`
	SessionCookie  string        `env:"STOREFRONT_SESSION_COOKIE" envDefault:"cangroo_visitor"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath     string        `env:"STOREFRONT_SQLITE_PATH" envDefault:"./data/sessions.db"`

	ShippingFee           decimal.Decimal `env:"STOREFRONT_SHIPPING_FEE" envDefault:"6.95"`
	FreeShippingThreshold decimal.Decimal `env:"STOREFRONT_FREE_SHIPPING_THRESHOLD" envDefault:"100.00"`
	TaxRate               decimal.Decimal `env:"STOREFRONT_TAX_RATE" envDefault:"0.08"`

	TracingEnabled bool   `env:"STOREFRONT_TRACING_ENABLED" envDefault:"false"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"storefront"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(decimal.Decimal{}): func(v string) (any, error) {
				return decimal.NewFromString(v)
			},
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.SessionBackend {
	case BackendMemory, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown session backend %q", c.SessionBackend)
	}
	if c.SessionCookie == "" {
		return fmt.Errorf("config: session cookie name is required")
	}
	if c.ShippingFee.IsNegative() || c.FreeShippingThreshold.IsNegative() || c.TaxRate.IsNegative() {
		return fmt.Errorf("config: pricing values must not be negative")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
