// Package bootstrap wires the config store and type registry shared by the
// masterdata binaries.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	postgresadapter "github.com/ericfisherdev/masterdata/internal/adapter/driven/postgres"
	sqliteadapter "github.com/ericfisherdev/masterdata/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/masterdata/internal/config"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/domain/typeadapter"
	"github.com/ericfisherdev/masterdata/internal/idgen"
)

// OpenStore opens the database selected by cfg.DBDriver, applies migrations
// and returns the config store with a function that releases it.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (driven.ConfigStore, func() error, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := postgresadapter.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		version, err := postgresadapter.Migrate(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("database ready", "driver", cfg.DBDriver, "schema_version", version)
		return postgresadapter.NewConfigStore(db), db.Close, nil

	case config.DriverSQLite:
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		version, err := sqliteadapter.Migrate(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("database ready", "driver", cfg.DBDriver, "path", db.Path(), "schema_version", version)
		return sqliteadapter.NewConfigRepo(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// NewRegistry registers every config type served by this module.
func NewRegistry() (*typeadapter.Registry, error) {
	registry := typeadapter.NewRegistry()
	if err := typeadapter.Register(registry, typeadapter.NewBankAdapter()); err != nil {
		return nil, err
	}
	if err := typeadapter.Register(registry, typeadapter.NewPaymentMethodAdapter(idgen.UUID)); err != nil {
		return nil, err
	}
	return registry, nil
}
