// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrValidation)

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrValidation)

	// ErrInvalidScore is returned when a test score is outside the 0-720 scale.
	ErrInvalidScore = fmt.Errorf("%w: score must be between 0 and 720", ErrValidation)

	// ErrInvalidCycleLength is returned when a cycle length is not positive.
	ErrInvalidCycleLength = fmt.Errorf("%w: cycle length must be greater than zero", ErrValidation)

	// ErrInvalidPeriodLength is returned when a period length is negative.
	ErrInvalidPeriodLength = fmt.Errorf("%w: period length cannot be negative", ErrValidation)

	// ErrInvalidTimeRange is returned when a session's end time is not after
	// its start time.
	ErrInvalidTimeRange = fmt.Errorf("%w: end time must be after start time", ErrValidation)

	// ErrInvalidRiskLevel is returned when a risk level is not one of
	// low, medium or high.
	ErrInvalidRiskLevel = fmt.Errorf("%w: invalid risk level", ErrValidation)

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a validation failure for a specific field.
// It wraps a sentinel error so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
