package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/domain/typeadapter"
	"github.com/ericfisherdev/masterdata/internal/idgen"
)

// PaymentMethodService manages payment methods. They are addressed by their
// generated id, with an extra lookup by code.
type PaymentMethodService struct {
	svc *ConfigService[model.PaymentMethod, model.CreatePaymentMethodRequest, model.UpdatePaymentMethodRequest]
}

// NewPaymentMethodService creates a PaymentMethodService over store. A nil
// newID means idgen.UUID.
func NewPaymentMethodService(store driven.ConfigStore, newID idgen.Generator, logger *slog.Logger) *PaymentMethodService {
	return &PaymentMethodService{
		svc: NewConfigService(typeadapter.NewPaymentMethodAdapter(newID), store, logger),
	}
}

func (s *PaymentMethodService) Create(ctx context.Context, actor string, req model.CreatePaymentMethodRequest) (model.PaymentMethod, error) {
	return s.svc.Create(ctx, actor, req)
}

func (s *PaymentMethodService) FindAll(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.svc.FindAll(ctx)
}

func (s *PaymentMethodService) FindByID(ctx context.Context, id string) (model.PaymentMethod, error) {
	return s.svc.FindByID(ctx, id)
}

func (s *PaymentMethodService) FindByCode(ctx context.Context, code string) (model.PaymentMethod, error) {
	return s.svc.FindByKey(ctx, code)
}

func (s *PaymentMethodService) Update(ctx context.Context, actor, id string, req model.UpdatePaymentMethodRequest) (model.PaymentMethod, error) {
	return s.svc.UpdateByID(ctx, actor, id, req)
}

func (s *PaymentMethodService) Remove(ctx context.Context, id string) error {
	return s.svc.RemoveByID(ctx, id)
}
