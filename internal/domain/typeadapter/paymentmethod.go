package typeadapter

import (
	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/idgen"
)

// Compile-time interface satisfaction check.
var _ Adapter[model.PaymentMethod, model.CreatePaymentMethodRequest, model.UpdatePaymentMethodRequest] = PaymentMethodAdapter{}

// PaymentMethodAdapter maps payment methods onto config records with a
// generated surrogate id.
//
//	configName  <- Code
//	displayName <- DisplayName
//	displayNameEn, value1..3 unused
type PaymentMethodAdapter struct {
	newID idgen.Generator
}

// NewPaymentMethodAdapter creates a PaymentMethodAdapter drawing new ids from
// newID. A nil generator means idgen.UUID.
func NewPaymentMethodAdapter(newID idgen.Generator) PaymentMethodAdapter {
	if newID == nil {
		newID = idgen.UUID
	}
	return PaymentMethodAdapter{newID: newID}
}

func (PaymentMethodAdapter) Type() model.ConfigType { return model.ConfigTypePaymentMethod }

func (PaymentMethodAdapter) Strategy() model.IdentityStrategy { return model.StrategySurrogate }

func (PaymentMethodAdapter) FromRecord(rec model.ConfigRecord) model.PaymentMethod {
	return model.PaymentMethod{
		ID:          rec.ID,
		Code:        rec.ConfigName,
		DisplayName: model.Deref(rec.DisplayName),
		Active:      rec.Active,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		CreatedBy:   rec.CreatedBy,
		UpdatedBy:   rec.UpdatedBy,
	}
}

func (PaymentMethodAdapter) FromCreateRequest(req model.CreatePaymentMethodRequest) model.PaymentMethod {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return model.PaymentMethod{
		Code:        req.Code,
		DisplayName: req.DisplayName,
		Active:      active,
		CreatedBy:   req.CreatedBy,
		UpdatedBy:   req.UpdatedBy,
	}
}

// ToRecord keeps an existing id and draws a new one only for objects that
// have never been stored.
func (a PaymentMethodAdapter) ToRecord(pm model.PaymentMethod) model.ConfigRecord {
	id := pm.ID
	if id == "" {
		gen := a.newID
		if gen == nil {
			gen = idgen.UUID
		}
		id = gen()
	}
	displayName := pm.DisplayName
	return model.ConfigRecord{
		ID:          id,
		ConfigType:  a.Type(),
		ConfigName:  pm.Code,
		DisplayName: &displayName,
		Active:      pm.Active,
		CreatedAt:   pm.CreatedAt,
		UpdatedAt:   pm.UpdatedAt,
		CreatedBy:   pm.CreatedBy,
		UpdatedBy:   pm.UpdatedBy,
	}
}

func (PaymentMethodAdapter) PatchFromUpdate(code string, req model.UpdatePaymentMethodRequest) (model.RecordPatch, error) {
	if err := checkKeyUnchanged("code", code, req.Code); err != nil {
		return model.RecordPatch{}, err
	}
	displayName, err := requiredText("displayName", req.DisplayName)
	if err != nil {
		return model.RecordPatch{}, err
	}
	return model.RecordPatch{
		DisplayName: displayName,
		Active:      req.Active,
	}, nil
}

func (PaymentMethodAdapter) ValidateCreate(req model.CreatePaymentMethodRequest) error {
	return req.Validate()
}

func (PaymentMethodAdapter) NaturalKey(pm model.PaymentMethod) string { return pm.Code }
