package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jcmexdev/cangroo-storefront/internal/pkg/cache"
	"github.com/jcmexdev/cangroo-storefront/internal/pkg/config"
	"github.com/jcmexdev/cangroo-storefront/internal/pkg/telemetry"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/app"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/catalog"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ledger"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ports"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/adapters/session"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/adapters/session/sqlite"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/httpx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	telemetry.InitLogger(cfg.SlogLevel())

	if err := run(cfg); err != nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Error("tracer shutdown error", "error", err)
			}
		}()
	}

	store, closeStore, err := openCartStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore.Close(); err != nil {
			slog.Error("cart store close error", "error", err)
		}
	}()

	products := catalog.Default()
	pricing := ledger.Pricing{
		ShippingFee:           cfg.ShippingFee,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		TaxRate:               cfg.TaxRate,
	}
	service := app.NewService(products, ledger.New(products, pricing), store, cfg.SiteName)

	router := httpx.NewRouter(httpx.NewHandler(service), httpx.RouterOptions{
		VisitorCookie: cfg.SessionCookie,
		VisitorMaxAge: cfg.SessionTTL,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("storefront running", "addr", cfg.HTTPAddr, "session_backend", cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openCartStore(ctx context.Context, cfg config.Config) (ports.CartStore, io.Closer, error) {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		c := cache.NewRedisCache(cfg.RedisAddr, "storefront")
		return session.NewRedisStore(c, cfg.SessionTTL), c, nil

	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		store, err := sqlite.Open(cfg.SQLitePath, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		if n, err := store.Purge(ctx); err != nil {
			slog.Warn("purging expired carts failed", "error", err)
		} else if n > 0 {
			slog.Info("purged expired carts", "count", n)
		}
		return store, store, nil

	default:
		return session.NewMemoryStore(), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
