// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Supported values of MASTERDATA_DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultActor is stamped into createdBy and updatedBy when a request names no actor.
const DefaultActor = "00000000-0000-0000-0000-000000000001"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string
	DBDriver        string
	DBPath          string
	DatabaseURL     string
	DefaultActor    string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: MASTERDATA_LISTEN_ADDR (127.0.0.1:8080),
// MASTERDATA_DB_DRIVER (sqlite), MASTERDATA_DB_PATH (masterdata.db),
// MASTERDATA_DEFAULT_ACTOR, MASTERDATA_LOG_LEVEL (info) and
// MASTERDATA_SHUTDOWN_TIMEOUT (10s). MASTERDATA_DATABASE_URL is required when
// the driver is postgres.
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("MASTERDATA_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	driver := DriverSQLite
	if v, ok := os.LookupEnv("MASTERDATA_DB_DRIVER"); ok && strings.TrimSpace(v) != "" {
		driver = strings.ToLower(strings.TrimSpace(v))
	}
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("MASTERDATA_DB_DRIVER has unsupported value %q (want %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	dbPath := "masterdata.db"
	if v, ok := os.LookupEnv("MASTERDATA_DB_PATH"); ok {
		dbPath = v
	}

	databaseURL := os.Getenv("MASTERDATA_DATABASE_URL")
	if driver == DriverPostgres && databaseURL == "" {
		return nil, fmt.Errorf("MASTERDATA_DATABASE_URL is required when MASTERDATA_DB_DRIVER is %s", DriverPostgres)
	}

	actor := DefaultActor
	if v, ok := os.LookupEnv("MASTERDATA_DEFAULT_ACTOR"); ok && strings.TrimSpace(v) != "" {
		actor = strings.TrimSpace(v)
	}

	level := slog.LevelInfo
	if v, ok := os.LookupEnv("MASTERDATA_LOG_LEVEL"); ok && v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("MASTERDATA_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	shutdownTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("MASTERDATA_SHUTDOWN_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("MASTERDATA_SHUTDOWN_TIMEOUT has invalid duration %q: %w", v, err)
		}
		shutdownTimeout = parsed
	}

	return &Config{
		ListenAddr:      listenAddr,
		DBDriver:        driver,
		DBPath:          dbPath,
		DatabaseURL:     databaseURL,
		DefaultActor:    actor,
		LogLevel:        level,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
