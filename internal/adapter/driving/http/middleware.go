package httphandler

import (
	"log/slog"
	"net/http"
	"time"
)

// maxBodyBytes caps request bodies. Config payloads are a handful of short
// strings, so anything larger is malformed.
const maxBodyBytes = 64 << 10

// responseRecorder captures what a handler wrote so the access log can report it.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (rr *responseRecorder) WriteHeader(status int) {
	if rr.wroteHeader {
		return
	}
	rr.status = status
	rr.wroteHeader = true
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if !rr.wroteHeader {
		rr.WriteHeader(http.StatusOK)
	}
	n, err := rr.ResponseWriter.Write(b)
	rr.bytes += n
	return n, err
}

// accessLog logs one line per request. The route pattern is logged rather
// than the raw path so lookups by bank code group together. Server errors are
// logged at error level.
func accessLog(logger *slog.Logger, defaultActor string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rr, r)

		actor := r.Header.Get(ActorHeader)
		if actor == "" {
			actor = defaultActor
		}
		level := slog.LevelInfo
		if rr.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "http request",
			"method", r.Method,
			"route", r.Pattern,
			"path", r.URL.Path,
			"status", rr.status,
			"bytes", rr.bytes,
			"duration", time.Since(start).Round(time.Microsecond),
			"actor", actor,
		)
	})
}

// limitBody bounds the body of write requests.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut:
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanics turns a handler panic into a JSON 500. If the handler already
// started its response the status cannot change, so only the log is written.
func recoverPanics(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rr, ok := w.(*responseRecorder)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.Error("panic recovered", "panic", v, "method", r.Method, "path", r.URL.Path)
			if ok && rr.wroteHeader {
				return
			}
			writeError(w, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
