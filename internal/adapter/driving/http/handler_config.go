package httphandler

import (
	"net/http"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// ListConfigTypes returns the registered config types and their identity strategies.
func (h *Handler) ListConfigTypes(w http.ResponseWriter, _ *http.Request) {
	types := h.registry.Types()

	resp := make([]ConfigTypeResponse, 0, len(types))
	for _, t := range types {
		d, _ := h.registry.Lookup(t)
		resp = append(resp, ConfigTypeResponse{Type: string(d.Type), Strategy: string(d.Strategy)})
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListConfigRecords returns the raw stored records of one registered type.
func (h *Handler) ListConfigRecords(w http.ResponseWriter, r *http.Request) {
	configType := model.ConfigType(r.PathValue("type"))

	if _, ok := h.registry.Lookup(configType); !ok {
		writeError(w, http.StatusNotFound, "config type not registered")
		return
	}

	recs, err := h.store.FindAll(r.Context(), configType)
	if err != nil {
		h.writeServiceError(w, err, "failed to list configs", "config_type", configType)
		return
	}

	resp := make([]ConfigRecordResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toConfigRecordResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}
