package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/domain/typeadapter"
)

// BankService manages banks. Banks are addressed by code everywhere.
type BankService struct {
	svc *ConfigService[model.Bank, model.CreateBankRequest, model.UpdateBankRequest]
}

// NewBankService creates a BankService over store.
func NewBankService(store driven.ConfigStore, logger *slog.Logger) *BankService {
	return &BankService{svc: NewConfigService(typeadapter.NewBankAdapter(), store, logger)}
}

func (s *BankService) Create(ctx context.Context, actor string, req model.CreateBankRequest) (model.Bank, error) {
	return s.svc.Create(ctx, actor, req)
}

func (s *BankService) FindAll(ctx context.Context) ([]model.Bank, error) {
	return s.svc.FindAll(ctx)
}

func (s *BankService) FindByCode(ctx context.Context, code string) (model.Bank, error) {
	return s.svc.FindByKey(ctx, code)
}

func (s *BankService) Update(ctx context.Context, actor, code string, req model.UpdateBankRequest) (model.Bank, error) {
	return s.svc.Update(ctx, actor, code, req)
}

func (s *BankService) Remove(ctx context.Context, code string) error {
	return s.svc.Remove(ctx, code)
}
