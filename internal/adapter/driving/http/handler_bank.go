package httphandler

import (
	"net/http"
)

// CreateBank adds a new bank.
func (h *Handler) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bank, err := h.banks.Create(r.Context(), h.actor(r), req.toModel())
	if err != nil {
		h.writeServiceError(w, err, "failed to create bank", "code", req.Code)
		return
	}

	writeJSON(w, http.StatusCreated, toBankResponse(bank))
}

// ListBanks returns all banks ordered by code, active or not.
func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.FindAll(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "failed to list banks")
		return
	}

	resp := make([]BankResponse, 0, len(banks))
	for _, b := range banks {
		resp = append(resp, toBankResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetBank returns a single bank by code.
func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	bank, err := h.banks.FindByCode(r.Context(), code)
	if err != nil {
		h.writeServiceError(w, err, "failed to get bank", "code", code)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponse(bank))
}

// UpdateBank applies a partial update to the bank with the given code.
func (h *Handler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	var req UpdateBankRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bank, err := h.banks.Update(r.Context(), h.actor(r), code, req.toModel())
	if err != nil {
		h.writeServiceError(w, err, "failed to update bank", "code", code)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponse(bank))
}

// RemoveBank deletes the bank with the given code.
func (h *Handler) RemoveBank(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	if err := h.banks.Remove(r.Context(), code); err != nil {
		h.writeServiceError(w, err, "failed to remove bank", "code", code)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Bank deleted successfully"})
}
