// Command masterdata serves the configuration registry over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // CA roots for TLS to PostgreSQL from scratch images

	httphandler "github.com/ericfisherdev/masterdata/internal/adapter/driving/http"
	"github.com/ericfisherdev/masterdata/internal/application"
	"github.com/ericfisherdev/masterdata/internal/bootstrap"
	"github.com/ericfisherdev/masterdata/internal/config"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/idgen"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_driver", cfg.DBDriver,
		"db_path", cfg.DBPath,
		"log_level", cfg.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	handler, err := newHandler(cfg, store, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
	}

	return serve(ctx, newServer(handler), ln, cfg.ShutdownTimeout, logger)
}

// newHandler builds the registry, the services and the routed HTTP handler
// over store.
func newHandler(cfg *config.Config, store driven.ConfigStore, logger *slog.Logger) (http.Handler, error) {
	registry, err := bootstrap.NewRegistry()
	if err != nil {
		return nil, err
	}
	logger.Info("config types registered", "types", registry.Types())

	banks := application.NewBankService(store, logger)
	paymentMethods := application.NewPaymentMethodService(store, idgen.UUID, logger)

	h := httphandler.NewHandler(banks, paymentMethods, registry, store, cfg.DefaultActor, logger)
	return httphandler.NewServeMux(h, logger), nil
}

func newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout. A server failure before cancellation is returned.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
