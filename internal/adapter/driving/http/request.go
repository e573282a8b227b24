package httphandler

import "github.com/ericfisherdev/masterdata/internal/domain/model"

// CreateBankRequest is the JSON body of POST /api/v1/banks.
type CreateBankRequest struct {
	Code       string  `json:"code"`
	BankNameTh string  `json:"bankNameTh"`
	BankNameEn *string `json:"bankNameEn"`
	Active     *bool   `json:"active"`
	CreatedBy  string  `json:"createdBy"`
	UpdatedBy  string  `json:"updatedBy"`
}

func (r CreateBankRequest) toModel() model.CreateBankRequest {
	return model.CreateBankRequest{
		Code:       r.Code,
		BankNameTh: r.BankNameTh,
		BankNameEn: r.BankNameEn,
		Active:     r.Active,
		CreatedBy:  r.CreatedBy,
		UpdatedBy:  r.UpdatedBy,
	}
}

// UpdateBankRequest is the JSON body of PATCH /api/v1/banks/{code}. A
// missing key leaves the field unchanged and null clears it.
type UpdateBankRequest struct {
	Code       *string             `json:"code"`
	BankNameTh model.Field[string] `json:"bankNameTh"`
	BankNameEn model.Field[string] `json:"bankNameEn"`
	Active     *bool               `json:"active"`
}

func (r UpdateBankRequest) toModel() model.UpdateBankRequest {
	return model.UpdateBankRequest{
		Code:       r.Code,
		BankNameTh: r.BankNameTh,
		BankNameEn: r.BankNameEn,
		Active:     r.Active,
	}
}

// CreatePaymentMethodRequest is the JSON body of POST /api/v1/payment-methods.
type CreatePaymentMethodRequest struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Active      *bool  `json:"active"`
	CreatedBy   string `json:"createdBy"`
	UpdatedBy   string `json:"updatedBy"`
}

func (r CreatePaymentMethodRequest) toModel() model.CreatePaymentMethodRequest {
	return model.CreatePaymentMethodRequest{
		Code:        r.Code,
		DisplayName: r.DisplayName,
		Active:      r.Active,
		CreatedBy:   r.CreatedBy,
		UpdatedBy:   r.UpdatedBy,
	}
}

// UpdatePaymentMethodRequest is the JSON body of PATCH /api/v1/payment-methods/{id}.
type UpdatePaymentMethodRequest struct {
	Code        *string             `json:"code"`
	DisplayName model.Field[string] `json:"displayName"`
	Active      *bool               `json:"active"`
}

func (r UpdatePaymentMethodRequest) toModel() model.UpdatePaymentMethodRequest {
	return model.UpdatePaymentMethodRequest{
		Code:        r.Code,
		DisplayName: r.DisplayName,
		Active:      r.Active,
	}
}
