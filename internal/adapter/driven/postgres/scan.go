package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

// configColumns is the column list used for SELECT and RETURNING clauses on
// the configs table.
const configColumns = `id, config_type, config_name, display_name, display_name_en,
	value1, value2, value3, active, created_at, updated_at, created_by, updated_by`

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func scanConfigRecord(s scanner) (*model.ConfigRecord, error) {
	var (
		rec                    model.ConfigRecord
		configType             string
		displayName, nameEn    sql.NullString
		value1, value2, value3 sql.NullString
	)

	err := s.Scan(
		&rec.ID, &configType, &rec.ConfigName, &displayName, &nameEn,
		&value1, &value2, &value3, &rec.Active, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.CreatedBy, &rec.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	rec.ConfigType = model.ConfigType(configType)
	rec.DisplayName = ptrFromNull(displayName)
	rec.DisplayNameEn = ptrFromNull(nameEn)
	rec.Value1 = ptrFromNull(value1)
	rec.Value2 = ptrFromNull(value2)
	rec.Value3 = ptrFromNull(value3)
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()

	return &rec, nil
}

func ptrFromNull(ns sql.NullString) *string {
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

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
