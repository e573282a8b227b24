package httphandler

import (
	"net/http"
)

// CreatePaymentMethod adds a new payment method with a generated id.
func (h *Handler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentMethodRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pm, err := h.paymentMethods.Create(r.Context(), h.actor(r), req.toModel())
	if err != nil {
		h.writeServiceError(w, err, "failed to create payment method", "code", req.Code)
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentMethodResponse(pm))
}

// ListPaymentMethods returns all payment methods ordered by code.
func (h *Handler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	pms, err := h.paymentMethods.FindAll(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "failed to list payment methods")
		return
	}

	resp := make([]PaymentMethodResponse, 0, len(pms))
	for _, pm := range pms {
		resp = append(resp, toPaymentMethodResponse(pm))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPaymentMethod returns a single payment method by id.
func (h *Handler) GetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	pm, err := h.paymentMethods.FindByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to get payment method", "id", id)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentMethodResponse(pm))
}

// GetPaymentMethodByCode returns a single payment method by code.
func (h *Handler) GetPaymentMethodByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	pm, err := h.paymentMethods.FindByCode(r.Context(), code)
	if err != nil {
		h.writeServiceError(w, err, "failed to get payment method", "code", code)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentMethodResponse(pm))
}

// UpdatePaymentMethod applies a partial update to the payment method with the given id.
func (h *Handler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdatePaymentMethodRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pm, err := h.paymentMethods.Update(r.Context(), h.actor(r), id, req.toModel())
	if err != nil {
		h.writeServiceError(w, err, "failed to update payment method", "id", id)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentMethodResponse(pm))
}

// RemovePaymentMethod deletes the payment method with the given id.
func (h *Handler) RemovePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.paymentMethods.Remove(r.Context(), id); err != nil {
		h.writeServiceError(w, err, "failed to remove payment method", "id", id)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Payment method deleted successfully"})
}
