package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three conditions the registry reports. The typed
// errors below match them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a missing record of a config type. Key is the natural
// key or id the caller asked for.
type NotFoundError struct {
	ConfigType ConfigType
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.ConfigType, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a create that violates the (type, name) uniqueness invariant.
type ConflictError struct {
	ConfigType ConfigType
	ConfigName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.ConfigType, e.ConfigName)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
