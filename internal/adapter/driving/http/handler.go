package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/masterdata/internal/application"
	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/domain/typeadapter"
)

// ActorHeader carries the caller identity stamped into createdBy and updatedBy.
const ActorHeader = "X-Actor-ID"

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	banks          *application.BankService
	paymentMethods *application.PaymentMethodService
	registry       *typeadapter.Registry
	store          driven.ConfigStore
	defaultActor   string
	logger         *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. defaultActor is
// used for requests without an ActorHeader.
func NewHandler(
	banks *application.BankService,
	paymentMethods *application.PaymentMethodService,
	registry *typeadapter.Registry,
	store driven.ConfigStore,
	defaultActor string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		banks:          banks,
		paymentMethods: paymentMethods,
		registry:       registry,
		store:          store,
		defaultActor:   defaultActor,
		logger:         logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/banks", h.CreateBank)
	mux.HandleFunc("GET /api/v1/banks", h.ListBanks)
	mux.HandleFunc("GET /api/v1/banks/{code}", h.GetBank)
	mux.HandleFunc("PATCH /api/v1/banks/{code}", h.UpdateBank)
	mux.HandleFunc("DELETE /api/v1/banks/{code}", h.RemoveBank)

	mux.HandleFunc("POST /api/v1/payment-methods", h.CreatePaymentMethod)
	mux.HandleFunc("GET /api/v1/payment-methods", h.ListPaymentMethods)
	mux.HandleFunc("GET /api/v1/payment-methods/code/{code}", h.GetPaymentMethodByCode)
	mux.HandleFunc("GET /api/v1/payment-methods/{id}", h.GetPaymentMethod)
	mux.HandleFunc("PATCH /api/v1/payment-methods/{id}", h.UpdatePaymentMethod)
	mux.HandleFunc("DELETE /api/v1/payment-methods/{id}", h.RemovePaymentMethod)

	mux.HandleFunc("GET /api/v1/configs", h.ListConfigTypes)
	mux.HandleFunc("GET /api/v1/configs/{type}", h.ListConfigRecords)

	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery sits inside the access log so a recovered panic is logged as a 500.
	var wrapped http.Handler = limitBody(mux)
	wrapped = recoverPanics(logger, wrapped)
	return accessLog(logger, h.defaultActor, wrapped)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// actor returns the caller identity for r.
func (h *Handler) actor(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(ActorHeader)); v != "" {
		return v
	}
	return h.defaultActor
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields so
// that attempts to write configType, configName or value slots fail loudly.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// writeServiceError maps domain errors to status codes. Anything unrecognised
// is logged and reported as a 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, msg string, attrs ...any) {
	var (
		verr     *model.ValidationError
		notFound *model.NotFoundError
		conflict *model.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, conflict.Error())
	default:
		h.logger.Error(msg, append(attrs, "error", err)...)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
