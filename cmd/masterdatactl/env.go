package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ericfisherdev/masterdata/internal/bootstrap"
	"github.com/ericfisherdev/masterdata/internal/config"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
)

// env is the per-invocation wiring shared by the subcommands.
type env struct {
	cfg    *config.Config
	store  driven.ConfigStore
	logger *slog.Logger
	close  func() error
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	w := io.Discard
	if verbose {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, store: store, logger: logger, close: closeStore}, nil
}

// actorOrDefault returns the --actor flag, falling back to the configured default.
func (e *env) actorOrDefault() string {
	if actor != "" {
		return actor
	}
	return e.cfg.DefaultActor
}
