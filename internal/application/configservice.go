// Package application holds the domain services that sit between the driving
// adapters and the config store.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
	"github.com/ericfisherdev/masterdata/internal/domain/typeadapter"
)

// ConfigService runs the create, read, update and remove operations of one
// config type against the shared store. All records it touches carry the
// adapter's config type; ids of other types are reported as not found.
type ConfigService[D, C, U any] struct {
	adapter typeadapter.Adapter[D, C, U]
	store   driven.ConfigStore
	logger  *slog.Logger
}

// NewConfigService creates a ConfigService. A nil logger means slog.Default().
func NewConfigService[D, C, U any](
	adapter typeadapter.Adapter[D, C, U],
	store driven.ConfigStore,
	logger *slog.Logger,
) *ConfigService[D, C, U] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigService[D, C, U]{
		adapter: adapter,
		store:   store,
		logger:  logger.With("config_type", string(adapter.Type())),
	}
}

// Type returns the config type served by s.
func (s *ConfigService[D, C, U]) Type() model.ConfigType { return s.adapter.Type() }

// Create validates req, maps it to a record and stores it. Blank createdBy and
// updatedBy are filled from actor.
func (s *ConfigService[D, C, U]) Create(ctx context.Context, actor string, req C) (D, error) {
	var zero D

	if err := s.adapter.ValidateCreate(req); err != nil {
		return zero, err
	}

	rec := s.adapter.ToRecord(s.adapter.FromCreateRequest(req)).ForCreate()
	if strings.TrimSpace(rec.CreatedBy) == "" {
		rec.CreatedBy = actor
	}
	if strings.TrimSpace(rec.UpdatedBy) == "" {
		rec.UpdatedBy = actor
	}

	saved, err := s.store.Create(ctx, rec)
	if err != nil {
		return zero, err
	}

	s.logger.Debug("config created", "id", saved.ID, "name", saved.ConfigName, "actor", actor)
	return s.adapter.FromRecord(*saved), nil
}

// FindAll returns every entry of the type ordered by natural key, active or not.
func (s *ConfigService[D, C, U]) FindAll(ctx context.Context) ([]D, error) {
	recs, err := s.store.FindAll(ctx, s.adapter.Type())
	if err != nil {
		return nil, err
	}
	return typeadapter.FromRecords(s.adapter, recs), nil
}

// FindByKey returns the entry with the given natural key.
func (s *ConfigService[D, C, U]) FindByKey(ctx context.Context, key string) (D, error) {
	var zero D

	rec, err := s.store.FindByName(ctx, s.adapter.Type(), key)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, s.notFound(key)
	}
	return s.adapter.FromRecord(*rec), nil
}

// FindByID returns the entry with the given record id.
func (s *ConfigService[D, C, U]) FindByID(ctx context.Context, id string) (D, error) {
	var zero D

	rec, err := s.findOwnByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.adapter.FromRecord(*rec), nil
}

// Update applies req to the entry with the given natural key.
func (s *ConfigService[D, C, U]) Update(ctx context.Context, actor, key string, req U) (D, error) {
	var zero D

	rec, err := s.resolveKey(ctx, key)
	if err != nil {
		return zero, err
	}
	return s.apply(ctx, actor, key, rec, req)
}

// UpdateByID applies req to the entry with the given record id.
func (s *ConfigService[D, C, U]) UpdateByID(ctx context.Context, actor, id string, req U) (D, error) {
	var zero D

	rec, err := s.findOwnByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.apply(ctx, actor, id, rec, req)
}

// Remove deletes the entry with the given natural key.
func (s *ConfigService[D, C, U]) Remove(ctx context.Context, key string) error {
	rec, err := s.resolveKey(ctx, key)
	if err != nil {
		return err
	}
	return s.remove(ctx, key, rec.ID)
}

// RemoveByID deletes the entry with the given record id.
func (s *ConfigService[D, C, U]) RemoveByID(ctx context.Context, id string) error {
	if _, err := s.findOwnByID(ctx, id); err != nil {
		return err
	}
	return s.remove(ctx, id, id)
}

// resolveKey finds the record addressed by a natural key. Natural-key types
// are looked up by id directly; surrogate types go through the name index.
func (s *ConfigService[D, C, U]) resolveKey(ctx context.Context, key string) (*model.ConfigRecord, error) {
	var (
		rec *model.ConfigRecord
		err error
	)

	switch s.adapter.Strategy() {
	case model.StrategyNaturalKey:
		rec, err = s.store.FindByID(ctx, key)
		if rec != nil && (rec.ConfigType != s.adapter.Type() || rec.ConfigName != key) {
			rec = nil
		}
	default:
		rec, err = s.store.FindByName(ctx, s.adapter.Type(), key)
	}

	if err != nil {
		return nil, fmt.Errorf("resolve %s %q: %w", s.adapter.Type(), key, err)
	}
	if rec == nil {
		return nil, s.notFound(key)
	}
	return rec, nil
}

func (s *ConfigService[D, C, U]) findOwnByID(ctx context.Context, id string) (*model.ConfigRecord, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.ConfigType != s.adapter.Type() {
		return nil, s.notFound(id)
	}
	return rec, nil
}

// apply translates req against rec and writes it. addressed is the key or id
// the caller used and is only reported back in errors.
func (s *ConfigService[D, C, U]) apply(ctx context.Context, actor, addressed string, rec *model.ConfigRecord, req U) (D, error) {
	var zero D

	patch, err := s.adapter.PatchFromUpdate(rec.ConfigName, req)
	if err != nil {
		return zero, err
	}
	patch.UpdatedBy = actor

	updated, err := s.store.Update(ctx, rec.ID, patch)
	if err != nil {
		return zero, err
	}
	if updated == nil {
		// Deleted between resolve and update.
		return zero, s.notFound(addressed)
	}

	s.logger.Debug("config updated", "id", updated.ID, "name", updated.ConfigName, "actor", actor)
	return s.adapter.FromRecord(*updated), nil
}

func (s *ConfigService[D, C, U]) remove(ctx context.Context, addressed, id string) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return s.notFound(addressed)
	}

	s.logger.Debug("config removed", "id", id)
	return nil
}

func (s *ConfigService[D, C, U]) notFound(key string) error {
	return &model.NotFoundError{ConfigType: s.adapter.Type(), Key: key}
}
