package model

import "time"

// PaymentMethod is a payment method reference entry. ID is a generated
// surrogate key; Code is the natural key.
type PaymentMethod struct {
	ID          string
	Code        string
	DisplayName string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}

// CreatePaymentMethodRequest carries the caller's input for a new payment method.
type CreatePaymentMethodRequest struct {
	Code        string
	DisplayName string
	Active      *bool
	CreatedBy   string
	UpdatedBy   string
}

// Validate checks the natural key.
func (r CreatePaymentMethodRequest) Validate() error {
	return ValidateNaturalKey("code", r.Code)
}

// UpdatePaymentMethodRequest is a partial payment method update.
type UpdatePaymentMethodRequest struct {
	Code        *string
	DisplayName Field[string]
	Active      *bool
}
