package postgres

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

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConfigStore implements driven.ConfigStore backed by a PostgreSQL database.
type ConfigStore struct {
	db  executor
	now func() time.Time
}

// Compile-time check that ConfigStore implements driven.ConfigStore.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Option configures a ConfigStore.
type Option func(*ConfigStore)

// WithClock overrides the clock used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *ConfigStore) { s.now = now }
}

// NewConfigStore wraps an open database handle, typically one returned by Open.
func NewConfigStore(db *sql.DB, opts ...Option) *ConfigStore {
	return newConfigStore(db, opts...)
}

func newConfigStore(db executor, opts ...Option) *ConfigStore {
	s := &ConfigStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ConfigStore) Create(ctx context.Context, rec model.NewConfigRecord) (*model.ConfigRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO configs (
			id, config_type, config_name, display_name, display_name_en,
			value1, value2, value3, active, created_at, updated_at, created_by, updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+configColumns,
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

// FindAll orders by config_name under the "C" collation so the result is in
// byte order whatever the database locale.
func (s *ConfigStore) FindAll(ctx context.Context, configType model.ConfigType) ([]model.ConfigRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+configColumns+` FROM configs WHERE config_type = $1 ORDER BY config_name COLLATE "C" ASC`,
		string(configType))
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

func (s *ConfigStore) FindByName(ctx context.Context, configType model.ConfigType, configName string) (*model.ConfigRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+configColumns+` FROM configs WHERE config_type = $1 AND config_name = $2`,
		string(configType), configName)

	rec, err := scanConfigRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config %s/%s: %w", configType, configName, err)
	}
	return rec, nil
}

func (s *ConfigStore) FindByID(ctx context.Context, id string) (*model.ConfigRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+configColumns+` FROM configs WHERE id = $1`, id)

	rec, err := scanConfigRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config %q: %w", id, err)
	}
	return rec, nil
}

func (s *ConfigStore) Update(ctx context.Context, id string, patch model.RecordPatch) (*model.ConfigRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addText := func(column string, f model.Field[string]) {
		if f.IsSet() {
			add(column, nullString(f.Ptr()))
		}
	}

	addText("display_name", patch.DisplayName)
	addText("display_name_en", patch.DisplayNameEn)
	addText("value1", patch.Value1)
	addText("value2", patch.Value2)
	addText("value3", patch.Value3)
	if patch.Active != nil {
		add("active", *patch.Active)
	}
	add("updated_by", patch.UpdatedBy)
	add("updated_at", s.now().UTC())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE configs SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), configColumns)

	rec, err := scanConfigRecord(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update config %q: %w", id, err)
	}
	return rec, nil
}

func (s *ConfigStore) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM configs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("remove config %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}
	return n > 0, nil
}
