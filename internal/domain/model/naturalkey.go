package model

import (
	"strings"
	"unicode"
)

// ValidateNaturalKey rejects blank keys and keys that cannot travel as a
// single URL path segment.
func ValidateNaturalKey(field, key string) error {
	if strings.TrimSpace(key) == "" {
		return NewValidationError(field, "is required")
	}
	for _, ch := range key {
		if unicode.IsSpace(ch) || ch == '/' {
			return NewValidationError(field, "must not contain whitespace or '/'")
		}
	}
	return nil
}
