// Package seed loads reference data from a TOML file into the config store.
//
// A seed file looks like:
//
//	[[bank]]
//	code = "SCB"
//	name_th = "ไทยพาณิชย์"
//	name_en = "Siam Commercial Bank"
//
//	[[payment_method]]
//	code = "PROMPTPAY"
//	display_name = "PromptPay"
//	active = true
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"

	"github.com/ericfisherdev/masterdata/internal/application"
	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// File is the decoded form of a seed file.
type File struct {
	Banks          []Bank          `toml:"bank"`
	PaymentMethods []PaymentMethod `toml:"payment_method"`
}

// Bank is one [[bank]] entry.
type Bank struct {
	Code   string  `toml:"code"`
	NameTh string  `toml:"name_th"`
	NameEn *string `toml:"name_en"`
	Active *bool   `toml:"active"`
}

// PaymentMethod is one [[payment_method]] entry.
type PaymentMethod struct {
	Code        string `toml:"code"`
	DisplayName string `toml:"display_name"`
	Active      *bool  `toml:"active"`
}

// Result counts what Apply did.
type Result struct {
	Created int
	Skipped int
}

// DecodeFile reads a seed file from path.
func DecodeFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode seed file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode seed file %q: unknown key %q", path, undecoded[0].String())
	}
	return &f, nil
}

// Decode reads a seed file from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode seed: unknown key %q", undecoded[0].String())
	}
	return &f, nil
}

// Seeder creates seed entries through the domain services.
type Seeder struct {
	banks          *application.BankService
	paymentMethods *application.PaymentMethodService
	logger         *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(banks *application.BankService, paymentMethods *application.PaymentMethodService, logger *slog.Logger) *Seeder {
	return &Seeder{banks: banks, paymentMethods: paymentMethods, logger: logger}
}

// Apply creates every entry in f as actor. Entries whose natural key already
// exists are skipped and left unchanged; any other error stops the run.
func (s *Seeder) Apply(ctx context.Context, actor string, f *File) (Result, error) {
	var res Result

	for _, b := range f.Banks {
		_, err := s.banks.Create(ctx, actor, model.CreateBankRequest{
			Code:       b.Code,
			BankNameTh: b.NameTh,
			BankNameEn: b.NameEn,
			Active:     b.Active,
		})
		if err := s.count(&res, err, model.ConfigTypeBank, b.Code); err != nil {
			return res, err
		}
	}

	for _, pm := range f.PaymentMethods {
		_, err := s.paymentMethods.Create(ctx, actor, model.CreatePaymentMethodRequest{
			Code:        pm.Code,
			DisplayName: pm.DisplayName,
			Active:      pm.Active,
		})
		if err := s.count(&res, err, model.ConfigTypePaymentMethod, pm.Code); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *Seeder) count(res *Result, err error, configType model.ConfigType, code string) error {
	switch {
	case err == nil:
		res.Created++
		return nil
	case errors.Is(err, model.ErrConflict):
		s.logger.Info("seed entry exists, skipping", "config_type", configType, "code", code)
		res.Skipped++
		return nil
	default:
		return fmt.Errorf("seed %s %q: %w", configType, code, err)
	}
}
