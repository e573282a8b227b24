package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ConfigStore = (*ConfigRepo)(nil)

// ConfigRepo is the SQLite implementation of the ConfigStore port interface.
// Every method runs a single auto-committing statement.
type ConfigRepo struct {
	db  *DB
	now func() time.Time
}

// Option configures a ConfigRepo.
type Option func(*ConfigRepo)

// WithClock overrides the clock used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *ConfigRepo) { r.now = now }
}

// NewConfigRepo creates a new ConfigRepo backed by the given DB.
func NewConfigRepo(db *DB, opts ...Option) *ConfigRepo {
	r := &ConfigRepo{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create inserts a new record. A duplicate (config_type, config_name) or id
// fails with a *model.ConflictError and leaves the existing row untouched.
func (r *ConfigRepo) Create(ctx context.Context, rec model.NewConfigRecord) (*model.ConfigRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO configs (
			id, config_type, config_name, display_name, display_name_en,
			value1, value2, value3, active, created_at, updated_at, created_by, updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + configColumns

	now := formatTime(r.now())
	row := r.db.Writer.QueryRowContext(ctx, query,
		rec.ID, string(rec.ConfigType), rec.ConfigName,
		nullString(rec.DisplayName), nullString(rec.DisplayNameEn),
		nullString(rec.Value1), nullString(rec.Value2), nullString(rec.Value3),
		rec.IsActive(), now, now, rec.CreatedBy, rec.UpdatedBy,
	)

	saved, err := scanConfigRecord(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create config %s/%s: %w", rec.ConfigType, rec.ConfigName,
				&model.ConflictError{ConfigType: rec.ConfigType, ConfigName: rec.ConfigName})
		}
		return nil, fmt.Errorf("create config %s/%s: %w", rec.ConfigType, rec.ConfigName, err)
	}

	return saved, nil
}

// FindAll returns every record of configType ordered by config_name,
// regardless of the active flag.
func (r *ConfigRepo) FindAll(ctx context.Context, configType model.ConfigType) ([]model.ConfigRecord, error) {
	query := `SELECT ` + configColumns + ` FROM configs WHERE config_type = ? ORDER BY config_name ASC`

	rows, err := r.db.Reader.QueryContext(ctx, query, string(configType))
	if err != nil {
		return nil, fmt.Errorf("list configs %s: %w", configType, err)
	}
	defer rows.Close()

	recs := []model.ConfigRecord{}
	for rows.Next() {
		rec, err := scanConfigRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		recs = append(recs, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate configs %s: %w", configType, err)
	}

	return recs, nil
}

// FindByName returns the record with the given natural key, or (nil, nil).
func (r *ConfigRepo) FindByName(ctx context.Context, configType model.ConfigType, configName string) (*model.ConfigRecord, error) {
	query := `SELECT ` + configColumns + ` FROM configs WHERE config_type = ? AND config_name = ?`

	rec, err := scanConfigRecord(r.db.Reader.QueryRowContext(ctx, query, string(configType), configName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config %s/%s: %w", configType, configName, err)
	}

	return rec, nil
}

// FindByID returns the record with the given id of any type, or (nil, nil).
func (r *ConfigRepo) FindByID(ctx context.Context, id string) (*model.ConfigRecord, error) {
	query := `SELECT ` + configColumns + ` FROM configs WHERE id = ?`

	rec, err := scanConfigRecord(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config %q: %w", id, err)
	}

	return rec, nil
}

// Update writes only the fields set in patch and refreshes updated_at. It
// returns (nil, nil) when id does not exist.
func (r *ConfigRepo) Update(ctx context.Context, id string, patch model.RecordPatch) (*model.ConfigRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var (
		sets []string
		args []any
	)
	setText := func(column string, f model.Field[string]) {
		if f.IsSet() {
			sets = append(sets, column+" = ?")
			args = append(args, nullString(f.Ptr()))
		}
	}

	setText("display_name", patch.DisplayName)
	setText("display_name_en", patch.DisplayNameEn)
	setText("value1", patch.Value1)
	setText("value2", patch.Value2)
	setText("value3", patch.Value3)
	if patch.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, *patch.Active)
	}
	sets = append(sets, "updated_by = ?", "updated_at = ?")
	args = append(args, patch.UpdatedBy, formatTime(r.now()), id)

	query := `UPDATE configs SET ` + strings.Join(sets, ", ") + ` WHERE id = ? RETURNING ` + configColumns

	rec, err := scanConfigRecord(r.db.Writer.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update config %q: %w", id, err)
	}

	return rec, nil
}

// Remove deletes the record with the given id and reports whether a row was deleted.
func (r *ConfigRepo) Remove(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM configs WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("remove config %q: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows > 0, nil
}
