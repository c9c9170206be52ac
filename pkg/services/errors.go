package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrUnauthorized is returned when a bearer token is unknown, revoked or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller's scope does not cover the target.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState is returned when an operation is illegal in the
	// entity's current state (e.g. result for an already-terminal job).
	ErrInvalidState = errors.New("invalid state")

	// ErrRiskPaused is returned when the risk oracle refuses execution for
	// an operation that cannot express the refusal as a verdict.
	ErrRiskPaused = errors.New("execution paused by risk policy")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
