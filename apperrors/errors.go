package apperrors

import (
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrPermissionDenied is returned when the access-control engine denies an action.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the referenced resource does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries field-level validation messages for a rejected mutation.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a field message, allocating the map on first use.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsValidation extracts a *ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsDuplicate checks if the error is a unique constraint violation surfaced by
// the storage layer. Used to translate a duplicate-like race that slipped past
// the application-level check into the same validation outcome.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsRecordNotFound checks if the error is gorm's missing-row error.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
