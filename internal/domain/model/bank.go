package model

import "time"

// Bank is a bank reference entry. Code is the natural key and doubles as the
// record id.
type Bank struct {
	Code       string
	BankNameTh string
	BankNameEn *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
	UpdatedBy  string
}

// CreateBankRequest carries the caller's input for a new bank. A nil Active
// means true; blank actor fields are filled from the caller identity.
type CreateBankRequest struct {
	Code       string
	BankNameTh string
	BankNameEn *string
	Active     *bool
	CreatedBy  string
	UpdatedBy  string
}

// Validate checks the natural key.
func (r CreateBankRequest) Validate() error {
	return ValidateNaturalKey("code", r.Code)
}

// UpdateBankRequest is a partial bank update. Code may be echoed back but must
// match the addressed bank.
type UpdateBankRequest struct {
	Code       *string
	BankNameTh Field[string]
	BankNameEn Field[string]
	Active     *bool
}
