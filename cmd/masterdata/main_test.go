package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/masterdata/internal/bootstrap"
	"github.com/ericfisherdev/masterdata/internal/config"
)

func TestServe_EndToEnd(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		DBDriver:     config.DriverSQLite,
		DBPath:       ":memory:",
		DefaultActor: config.DefaultActor,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore() })

	handler, err := newHandler(cfg, store, logger)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- serve(ctx, newServer(handler), ln, time.Second, logger) }()

	base := "http://" + ln.Addr().String()

	resp, err := http.Post(base+"/api/v1/banks", "application/json",
		strings.NewReader(`{"code":"KBANK","bankNameTh":"กสิกรไทย"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(base + "/api/v1/banks/KBANK")
	require.NoError(t, err)
	var bank map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bank))
	_ = resp.Body.Close()
	assert.Equal(t, "KBANK", bank["code"])
	assert.Equal(t, config.DefaultActor, bank["createdBy"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_ReturnsServerError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = serve(context.Background(), newServer(http.NotFoundHandler()), ln, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}
