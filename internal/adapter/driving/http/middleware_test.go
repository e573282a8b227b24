package httphandler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRecoverPanics(t *testing.T) {
	logger, buf := newCapturingLogger()

	h := accessLog(logger, "actor-0", recoverPanics(logger, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/banks", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])

	logs := buf.String()
	assert.Contains(t, logs, "panic recovered")
	assert.Contains(t, logs, "level=ERROR msg=\"http request\"")
	assert.Contains(t, logs, "status=500")
}

func TestRecoverPanics_AfterHeaderWritten(t *testing.T) {
	logger, _ := newCapturingLogger()

	h := accessLog(logger, "", recoverPanics(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAccessLog_Actor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "from header", header: "user-7", want: "actor=user-7"},
		{name: "default", header: "", want: "actor=actor-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newCapturingLogger()
			h := accessLog(logger, "actor-0", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			if tt.header != "" {
				req.Header.Set(ActorHeader, tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "status=200")
			assert.Contains(t, buf.String(), "bytes=2")
		})
	}
}

func TestLimitBody(t *testing.T) {
	var readErr error
	h := limitBody(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	big := strings.Repeat("x", maxBodyBytes+1)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/banks", strings.NewReader(big)))
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/banks", strings.NewReader(big)))
	assert.NoError(t, readErr)
}
