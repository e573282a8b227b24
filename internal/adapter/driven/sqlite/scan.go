package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// configColumns is the column list used for SELECT and RETURNING clauses on
// the configs table. scanConfigRecord depends on this order.
const configColumns = `id, config_type, config_name, display_name, display_name_en,
	value1, value2, value3, active, created_at, updated_at, created_by, updated_by`

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanConfigRecord(row scannable) (*model.ConfigRecord, error) {
	var (
		rec                    model.ConfigRecord
		configType             string
		displayName, nameEn    sql.NullString
		value1, value2, value3 sql.NullString
		createdAt, updatedAt   string
	)

	err := row.Scan(
		&rec.ID, &configType, &rec.ConfigName, &displayName, &nameEn,
		&value1, &value2, &value3, &rec.Active, &createdAt, &updatedAt,
		&rec.CreatedBy, &rec.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	rec.ConfigType = model.ConfigType(configType)
	rec.DisplayName = stringPtr(displayName)
	rec.DisplayNameEn = stringPtr(nameEn)
	rec.Value1 = stringPtr(value1)
	rec.Value2 = stringPtr(value2)
	rec.Value3 = stringPtr(value3)

	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &rec, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// formatTime is the single text encoding used for timestamps written by this package.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime accepts the encodings written by formatTime and by SQLite's
// CURRENT_TIMESTAMP.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func isUniqueViolation(err error) bool {
	var se *moderncsqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
