package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "6.95", cfg.ShippingFee.StringFixed(2))
	assert.Equal(t, "100.00", cfg.FreeShippingThreshold.StringFixed(2))
	assert.Equal(t, "0.08", cfg.TaxRate.StringFixed(2))
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_SESSION_BACKEND", "redis")
	t.Setenv("STOREFRONT_SESSION_TTL", "15m")
	t.Setenv("STOREFRONT_TAX_RATE", "0.2")
	t.Setenv("REDIS_ADDR", "redis-cache:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "0.20", cfg.TaxRate.StringFixed(2))
	assert.Equal(t, "redis-cache:6379", cfg.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("STOREFRONT_SESSION_BACKEND", "memcached")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown session backend")
	})

	t.Run("negative fee", func(t *testing.T) {
		t.Setenv("STOREFRONT_SHIPPING_FEE", "-1")
		_, err := Load()
		assert.ErrorContains(t, err, "must not be negative")
	})

	t.Run("malformed decimal", func(t *testing.T) {
		t.Setenv("STOREFRONT_TAX_RATE", "eight percent")
		_, err := Load()
		assert.ErrorContains(t, err, "parse env:")
	})
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: ""}.SlogLevel())
}
