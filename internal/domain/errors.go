package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation is matched by every *ValidationError via errors.Is
var ErrValidation = errors.New("validation failed")

// ValidationError carries field-level details of a rejected payload
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a problem with a field; the first reason per field wins
func (e *ValidationError) Add(field, reason string) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = reason
}

// HasErrors returns true if at least one field was rejected
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns nil when there are no field errors, so callers can write
// `return v.OrNil()` without returning a typed nil
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
