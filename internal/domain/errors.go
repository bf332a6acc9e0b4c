package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers missing rentals, vehicles and payments, and also
	// rentals that are already settled (no open rental matches).
	ErrNotFound = errors.New("not found")

	// ErrConflict covers checkout against a vehicle that is already rented
	// or blocked by unresolved maintenance.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields}
}
