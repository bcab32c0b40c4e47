package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds the API distinguishes.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUpstreamUnavailable indicates an external service (document store,
	// text-generation API, identity provider) could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrInvalidResponseShape indicates an upstream returned a response that
	// does not match the expected structured schema.
	ErrInvalidResponseShape = errors.New("upstream returned an unexpected response shape")
)

// ValidationError carries a field-keyed map of validation failures.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError with a single field failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records an additional field failure.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// Empty reports whether any field failure has been recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
