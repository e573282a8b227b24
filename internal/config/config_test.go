package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every MASTERDATA_ env var that Load() reads.
var allConfigKeys = []string{
	"MASTERDATA_LISTEN_ADDR",
	"MASTERDATA_DB_DRIVER",
	"MASTERDATA_DB_PATH",
	"MASTERDATA_DATABASE_URL",
	"MASTERDATA_DEFAULT_ACTOR",
	"MASTERDATA_LOG_LEVEL",
	"MASTERDATA_SHUTDOWN_TIMEOUT",
}

// isolateConfigEnv saves and unsets all MASTERDATA_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "masterdata.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, DefaultActor, cfg.DefaultActor)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("MASTERDATA_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("MASTERDATA_DB_DRIVER", "Postgres")
	t.Setenv("MASTERDATA_DATABASE_URL", "postgres://md:md@localhost/md?sslmode=disable")
	t.Setenv("MASTERDATA_DEFAULT_ACTOR", "system")
	t.Setenv("MASTERDATA_LOG_LEVEL", "debug")
	t.Setenv("MASTERDATA_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://md:md@localhost/md?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "system", cfg.DefaultActor)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{
			name:    "unknown driver",
			env:     map[string]string{"MASTERDATA_DB_DRIVER": "mysql"},
			wantKey: "MASTERDATA_DB_DRIVER",
		},
		{
			name:    "postgres without url",
			env:     map[string]string{"MASTERDATA_DB_DRIVER": "postgres"},
			wantKey: "MASTERDATA_DATABASE_URL",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"MASTERDATA_LOG_LEVEL": "loud"},
			wantKey: "MASTERDATA_LOG_LEVEL",
		},
		{
			name:    "bad shutdown timeout",
			env:     map[string]string{"MASTERDATA_SHUTDOWN_TIMEOUT": "soon"},
			wantKey: "MASTERDATA_SHUTDOWN_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestLoad_BlankActorFallsBack(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("MASTERDATA_DEFAULT_ACTOR", "   ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultActor, cfg.DefaultActor)
}
