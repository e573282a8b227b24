package typeadapter

import "github.com/ericfisherdev/masterdata/internal/domain/model"

// Compile-time interface satisfaction check.
var _ Adapter[model.Bank, model.CreateBankRequest, model.UpdateBankRequest] = BankAdapter{}

// BankAdapter maps banks onto config records. Banks use their code as the
// record id.
//
//	configName    <- Code
//	displayName   <- BankNameTh
//	displayNameEn <- BankNameEn
//	value1..3     unused
type BankAdapter struct{}

// NewBankAdapter creates a BankAdapter.
func NewBankAdapter() BankAdapter { return BankAdapter{} }

func (BankAdapter) Type() model.ConfigType { return model.ConfigTypeBank }

func (BankAdapter) Strategy() model.IdentityStrategy { return model.StrategyNaturalKey }

func (BankAdapter) FromRecord(rec model.ConfigRecord) model.Bank {
	return model.Bank{
		Code:       rec.ConfigName,
		BankNameTh: model.Deref(rec.DisplayName),
		BankNameEn: rec.DisplayNameEn,
		Active:     rec.Active,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
		CreatedBy:  rec.CreatedBy,
		UpdatedBy:  rec.UpdatedBy,
	}
}

func (BankAdapter) FromCreateRequest(req model.CreateBankRequest) model.Bank {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return model.Bank{
		Code:       req.Code,
		BankNameTh: req.BankNameTh,
		BankNameEn: req.BankNameEn,
		Active:     active,
		CreatedBy:  req.CreatedBy,
		UpdatedBy:  req.UpdatedBy,
	}
}

func (a BankAdapter) ToRecord(b model.Bank) model.ConfigRecord {
	nameTh := b.BankNameTh
	return model.ConfigRecord{
		ID:            b.Code,
		ConfigType:    a.Type(),
		ConfigName:    b.Code,
		DisplayName:   &nameTh,
		DisplayNameEn: b.BankNameEn,
		Active:        b.Active,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CreatedBy:     b.CreatedBy,
		UpdatedBy:     b.UpdatedBy,
	}
}

func (BankAdapter) PatchFromUpdate(code string, req model.UpdateBankRequest) (model.RecordPatch, error) {
	if err := checkKeyUnchanged("code", code, req.Code); err != nil {
		return model.RecordPatch{}, err
	}
	nameTh, err := requiredText("bankNameTh", req.BankNameTh)
	if err != nil {
		return model.RecordPatch{}, err
	}
	return model.RecordPatch{
		DisplayName:   nameTh,
		DisplayNameEn: req.BankNameEn,
		Active:        req.Active,
	}, nil
}

func (BankAdapter) ValidateCreate(req model.CreateBankRequest) error { return req.Validate() }

func (BankAdapter) NaturalKey(b model.Bank) string { return b.Code }
