// Package typeadapter maps between the generic config record shape and the
// strongly typed domain objects, one adapter per config type.
package typeadapter

import "github.com/ericfisherdev/masterdata/internal/domain/model"

// Adapter is the mapping contract for one config type. D is the domain
// object, C the create request and U the update request. Implementations are
// pure: the only permitted effect is drawing a new surrogate id in ToRecord.
type Adapter[D, C, U any] interface {
	// Type is the fixed discriminator written to every record.
	Type() model.ConfigType
	// Strategy is the identity strategy of the type. It never changes.
	Strategy() model.IdentityStrategy

	// FromRecord maps a stored record to the domain object, substituting
	// domain defaults for NULL on non-nullable fields.
	FromRecord(rec model.ConfigRecord) D
	// FromCreateRequest fills a domain object from a create request and
	// applies defaults. It never assigns an id.
	FromCreateRequest(req C) D
	// ToRecord is the inverse of FromRecord. It sets the type tag, the natural
	// key and the id according to Strategy.
	ToRecord(d D) model.ConfigRecord
	// PatchFromUpdate translates an update addressed at key into a record
	// patch. It fails with a *model.ValidationError when the request tries to
	// change the natural key or null a non-nullable field.
	PatchFromUpdate(key string, req U) (model.RecordPatch, error)

	// ValidateCreate checks a create request before any mapping happens.
	ValidateCreate(req C) error
	// NaturalKey returns the natural key of d.
	NaturalKey(d D) string
}

// FromRecords maps a slice of records with a. The result is never nil.
func FromRecords[D, C, U any](a Adapter[D, C, U], recs []model.ConfigRecord) []D {
	out := make([]D, 0, len(recs))
	for _, rec := range recs {
		out = append(out, a.FromRecord(rec))
	}
	return out
}

// checkKeyUnchanged rejects an update that echoes a different natural key.
func checkKeyUnchanged(field, key string, requested *string) error {
	if requested != nil && *requested != key {
		return model.NewValidationError(field, "is immutable")
	}
	return nil
}

// requiredText converts a patch of a non-nullable domain field. Explicit null
// is rejected; absent stays absent.
func requiredText(field string, f model.Field[string]) (model.Field[string], error) {
	if f.IsNull() {
		return model.Field[string]{}, model.NewValidationError(field, "must not be null")
	}
	return f, nil
}
