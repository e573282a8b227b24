// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// ConfigStore defines the driven port for the shared configs table. The store
// is ignorant of domain semantics: value and display slots are opaque to it.
//
// Create returns a *model.ConflictError when (ConfigType, ConfigName) or the id
// already exists, and a *model.ValidationError when a required field is blank.
// FindByName, FindByID and Update return (nil, nil) when no row matches.
// Update rejects patches that touch ConfigType or ConfigName.
// Remove reports whether a row was actually deleted.
type ConfigStore interface {
	Create(ctx context.Context, rec model.NewConfigRecord) (*model.ConfigRecord, error)
	FindAll(ctx context.Context, configType model.ConfigType) ([]model.ConfigRecord, error)
	FindByName(ctx context.Context, configType model.ConfigType, configName string) (*model.ConfigRecord, error)
	FindByID(ctx context.Context, id string) (*model.ConfigRecord, error)
	Update(ctx context.Context, id string, patch model.RecordPatch) (*model.ConfigRecord, error)
	Remove(ctx context.Context, id string) (bool, error)
}
