package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation that has no resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// BankResponse is the JSON representation of a bank.
type BankResponse struct {
	Code       string  `json:"code"`
	BankNameTh string  `json:"bankNameTh"`
	BankNameEn *string `json:"bankNameEn"`
	Active     bool    `json:"active"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
	CreatedBy  string  `json:"createdBy"`
	UpdatedBy  string  `json:"updatedBy"`
}

// PaymentMethodResponse is the JSON representation of a payment method.
type PaymentMethodResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	CreatedBy   string `json:"createdBy"`
	UpdatedBy   string `json:"updatedBy"`
}

// ConfigTypeResponse describes one registered config type.
type ConfigTypeResponse struct {
	Type     string `json:"type"`
	Strategy string `json:"strategy"`
}

// ConfigRecordResponse is the raw stored shape of a config row.
type ConfigRecordResponse struct {
	ID            string  `json:"id"`
	ConfigType    string  `json:"configType"`
	ConfigName    string  `json:"configName"`
	DisplayName   *string `json:"displayName"`
	DisplayNameEn *string `json:"displayNameEn"`
	Value1        *string `json:"value1"`
	Value2        *string `json:"value2"`
	Value3        *string `json:"value3"`
	Active        bool    `json:"active"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
	CreatedBy     string  `json:"createdBy"`
	UpdatedBy     string  `json:"updatedBy"`
}

// HealthResponse is the JSON response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toBankResponse(b model.Bank) BankResponse {
	return BankResponse{
		Code:       b.Code,
		BankNameTh: b.BankNameTh,
		BankNameEn: b.BankNameEn,
		Active:     b.Active,
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
		CreatedBy:  b.CreatedBy,
		UpdatedBy:  b.UpdatedBy,
	}
}

func toPaymentMethodResponse(pm model.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          pm.ID,
		Code:        pm.Code,
		DisplayName: pm.DisplayName,
		Active:      pm.Active,
		CreatedAt:   formatTime(pm.CreatedAt),
		UpdatedAt:   formatTime(pm.UpdatedAt),
		CreatedBy:   pm.CreatedBy,
		UpdatedBy:   pm.UpdatedBy,
	}
}

func toConfigRecordResponse(rec model.ConfigRecord) ConfigRecordResponse {
	return ConfigRecordResponse{
		ID:            rec.ID,
		ConfigType:    string(rec.ConfigType),
		ConfigName:    rec.ConfigName,
		DisplayName:   rec.DisplayName,
		DisplayNameEn: rec.DisplayNameEn,
		Value1:        rec.Value1,
		Value2:        rec.Value2,
		Value3:        rec.Value3,
		Active:        rec.Active,
		CreatedAt:     formatTime(rec.CreatedAt),
		UpdatedAt:     formatTime(rec.UpdatedAt),
		CreatedBy:     rec.CreatedBy,
		UpdatedBy:     rec.UpdatedBy,
	}
}
