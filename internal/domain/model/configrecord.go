package model

import (
	"strings"
	"time"
)

// ConfigRecord is one row of the shared configs table. Its display and value
// slots carry type-specific meaning owned by the type adapters.
type ConfigRecord struct {
	ID            string
	ConfigType    ConfigType
	ConfigName    string // natural key within ConfigType
	DisplayName   *string
	DisplayNameEn *string
	Value1        *string
	Value2        *string
	Value3        *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
	UpdatedBy     string
}

// ForCreate converts r into a create input, dropping the store-managed
// timestamps.
func (r ConfigRecord) ForCreate() NewConfigRecord {
	active := r.Active
	return NewConfigRecord{
		ID:            r.ID,
		ConfigType:    r.ConfigType,
		ConfigName:    r.ConfigName,
		DisplayName:   r.DisplayName,
		DisplayNameEn: r.DisplayNameEn,
		Value1:        r.Value1,
		Value2:        r.Value2,
		Value3:        r.Value3,
		Active:        &active,
		CreatedBy:     r.CreatedBy,
		UpdatedBy:     r.UpdatedBy,
	}
}

// NewConfigRecord is the input to a store create. Nil optional fields are
// persisted as NULL and a nil Active defaults to true. Timestamps are set by
// the store.
type NewConfigRecord struct {
	ID            string
	ConfigType    ConfigType
	ConfigName    string
	DisplayName   *string
	DisplayNameEn *string
	Value1        *string
	Value2        *string
	Value3        *string
	Active        *bool
	CreatedBy     string
	UpdatedBy     string
}

// IsActive resolves the Active default.
func (n NewConfigRecord) IsActive() bool {
	if n.Active == nil {
		return true
	}
	return *n.Active
}

// Validate checks the fields every create must carry.
func (n NewConfigRecord) Validate() error {
	switch {
	case strings.TrimSpace(n.ID) == "":
		return NewValidationError("id", "is required")
	case strings.TrimSpace(string(n.ConfigType)) == "":
		return NewValidationError("configType", "is required")
	case strings.TrimSpace(n.ConfigName) == "":
		return NewValidationError("configName", "is required")
	case strings.TrimSpace(n.CreatedBy) == "":
		return NewValidationError("createdBy", "is required")
	case strings.TrimSpace(n.UpdatedBy) == "":
		return NewValidationError("updatedBy", "is required")
	}
	return nil
}

// RecordPatch is a partial update. Only fields that are set are written.
// ConfigType and ConfigName exist so that payloads trying to change them can
// be rejected; the store never applies them.
type RecordPatch struct {
	ConfigType    *string
	ConfigName    *string
	DisplayName   Field[string]
	DisplayNameEn Field[string]
	Value1        Field[string]
	Value2        Field[string]
	Value3        Field[string]
	Active        *bool
	UpdatedBy     string
}

// Validate rejects immutable fields and a missing actor.
func (p RecordPatch) Validate() error {
	if p.ConfigType != nil {
		return NewValidationError("configType", "is immutable")
	}
	if p.ConfigName != nil {
		return NewValidationError("configName", "is immutable")
	}
	if strings.TrimSpace(p.UpdatedBy) == "" {
		return NewValidationError("updatedBy", "is required")
	}
	return nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }

// Deref returns *s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
