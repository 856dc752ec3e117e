package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldErrors is the validation result of one operation: a 400 AppError
// carrying per-field messages, so callers learn exactly which inputs were
// rejected. It replaces scattered per-field checks with a single composed
// result type.
type FieldErrors struct {
	fields map[string][]string
}

// NewFieldErrors creates an empty validation result.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: make(map[string][]string)}
}

// Add records a message against a field and returns the receiver for chaining.
func (e *FieldErrors) Add(field, message string) *FieldErrors {
	e.fields[field] = append(e.fields[field], message)

	return e
}

// HasErrors reports whether any field message was recorded.
func (e *FieldErrors) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the recorded messages keyed by field name.
func (e *FieldErrors) Fields() map[string][]string {
	return e.fields
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	names := make([]string, 0, len(e.fields))
	for field := range e.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	return "validation failed: " + strings.Join(names, ", ")
}

// HTTPCode returns the HTTP status code
func (e *FieldErrors) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldErrors) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *FieldErrors) Details() string {
	return e.Error()
}
