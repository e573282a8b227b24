package typeadapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

var testTime = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func TestBankAdapter_RoundTrip(t *testing.T) {
	a := NewBankAdapter()

	tests := []struct {
		name string
		bank model.Bank
	}{
		{
			name: "with english name",
			bank: model.Bank{
				Code: "SCB", BankNameTh: "ไทยพาณิชย์", BankNameEn: model.StringPtr("Siam Commercial Bank"),
				Active: true, CreatedAt: testTime, UpdatedAt: testTime.Add(time.Hour),
				CreatedBy: "u1", UpdatedBy: "u2",
			},
		},
		{
			name: "without english name, inactive",
			bank: model.Bank{
				Code: "KBANK", BankNameTh: "กสิกรไทย", Active: false,
				CreatedAt: testTime, UpdatedAt: testTime, CreatedBy: "u1", UpdatedBy: "u1",
			},
		},
		{
			name: "empty thai name",
			bank: model.Bank{Code: "BBL", Active: true, CreatedBy: "u1", UpdatedBy: "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bank, a.FromRecord(a.ToRecord(tt.bank)))
		})
	}
}

func TestBankAdapter_ToRecord(t *testing.T) {
	a := NewBankAdapter()
	rec := a.ToRecord(model.Bank{Code: "SCB", BankNameTh: "ไทยพาณิชย์", Active: true})

	assert.Equal(t, "SCB", rec.ID, "banks use the natural key as id")
	assert.Equal(t, model.ConfigTypeBank, rec.ConfigType)
	assert.Equal(t, "SCB", rec.ConfigName)
	require.NotNil(t, rec.DisplayName)
	assert.Equal(t, "ไทยพาณิชย์", *rec.DisplayName)
	assert.Nil(t, rec.DisplayNameEn)
	assert.Nil(t, rec.Value1)
	assert.Nil(t, rec.Value2)
	assert.Nil(t, rec.Value3)
}

func TestBankAdapter_FromRecordNullDisplayName(t *testing.T) {
	a := NewBankAdapter()
	bank := a.FromRecord(model.ConfigRecord{ID: "SCB", ConfigType: model.ConfigTypeBank, ConfigName: "SCB"})

	assert.Equal(t, "", bank.BankNameTh)
	assert.Nil(t, bank.BankNameEn)
}

func TestBankAdapter_FromCreateRequest(t *testing.T) {
	a := NewBankAdapter()

	bank := a.FromCreateRequest(model.CreateBankRequest{Code: "SCB", BankNameTh: "ไทยพาณิชย์"})
	assert.Equal(t, "SCB", bank.Code)
	assert.True(t, bank.Active, "active defaults to true")
	assert.Nil(t, bank.BankNameEn)
	assert.Equal(t, "", bank.CreatedBy)
	assert.Equal(t, "", bank.UpdatedBy)

	bank = a.FromCreateRequest(model.CreateBankRequest{Code: "SCB", Active: model.BoolPtr(false), CreatedBy: "u1"})
	assert.False(t, bank.Active)
	assert.Equal(t, "u1", bank.CreatedBy)
}

func TestBankAdapter_PatchFromUpdate(t *testing.T) {
	a := NewBankAdapter()

	tests := []struct {
		name    string
		req     model.UpdateBankRequest
		wantErr bool
		check   func(t *testing.T, p model.RecordPatch)
	}{
		{
			name: "active only",
			req:  model.UpdateBankRequest{Active: model.BoolPtr(false)},
			check: func(t *testing.T, p model.RecordPatch) {
				require.NotNil(t, p.Active)
				assert.False(t, *p.Active)
				assert.False(t, p.DisplayName.IsSet())
				assert.False(t, p.DisplayNameEn.IsSet())
			},
		},
		{
			name: "names",
			req: model.UpdateBankRequest{
				BankNameTh: model.Set("ธนาคารไทยพาณิชย์"),
				BankNameEn: model.Null[string](),
			},
			check: func(t *testing.T, p model.RecordPatch) {
				assert.Equal(t, "ธนาคารไทยพาณิชย์", *p.DisplayName.Ptr())
				assert.True(t, p.DisplayNameEn.IsNull())
				assert.Nil(t, p.Active)
			},
		},
		{
			name: "same code echoed back is accepted",
			req:  model.UpdateBankRequest{Code: model.StringPtr("SCB")},
			check: func(t *testing.T, p model.RecordPatch) {
				assert.Nil(t, p.ConfigName)
			},
		},
		{name: "changed code rejected", req: model.UpdateBankRequest{Code: model.StringPtr("KBANK")}, wantErr: true},
		{name: "null thai name rejected", req: model.UpdateBankRequest{BankNameTh: model.Null[string]()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := a.PatchFromUpdate("SCB", tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrValidation)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestBankAdapter_Identity(t *testing.T) {
	a := NewBankAdapter()
	assert.Equal(t, model.ConfigTypeBank, a.Type())
	assert.Equal(t, model.StrategyNaturalKey, a.Strategy())
	assert.Equal(t, "SCB", a.NaturalKey(model.Bank{Code: "SCB"}))
	assert.ErrorIs(t, a.ValidateCreate(model.CreateBankRequest{}), model.ErrValidation)
}
