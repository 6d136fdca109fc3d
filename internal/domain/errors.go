package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrBusinessRule  = errors.New("business rule violation")

	// ErrTransient marks storage failures that are safe to retry
	// (serialization failures, deadlocks, dropped connections).
	ErrTransient = errors.New("transient store error")

	// ErrOracleUnavailable is returned by the suggestion oracle when it cannot
	// produce a result. Callers fall back to manual categorization.
	ErrOracleUnavailable = errors.New("suggestion oracle unavailable")
)

// Conversion-specific errors. Each wraps one of the base sentinels so that
// transport layers only need to check the base kind.
var (
	ErrConversionLocked     = fmt.Errorf("chunk is converted: %w", ErrBusinessRule)
	ErrConversionConflict   = fmt.Errorf("chunk already converted: %w", ErrConflict)
	ErrConversionInProgress = fmt.Errorf("conversion in progress: %w", ErrConflict)
	ErrConversionIncomplete = errors.New("conversion incomplete")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConflictError describes a state conflict on a specific entity.
type ConflictError struct {
	Entity  string
	ID      uuid.UUID
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s %s: %s", e.Entity, e.ID, e.Message)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError.
func NewConflictError(entity string, id uuid.UUID, message string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, Message: message}
}

// BusinessRuleError is returned when an operation is well-formed but
// forbidden by the current state of the data.
type BusinessRuleError struct {
	Rule string
}

func (e *BusinessRuleError) Error() string {
	return "business rule: " + e.Rule
}

func (e *BusinessRuleError) Unwrap() error { return ErrBusinessRule }

// NewBusinessRuleError creates a BusinessRuleError.
func NewBusinessRuleError(rule string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule}
}

// ConversionConflictError is returned when a chunk has already been converted
// by a different request. OutcomeID points at the existing outcome.
type ConversionConflictError struct {
	ChunkID   uuid.UUID
	OutcomeID uuid.UUID
}

func (e *ConversionConflictError) Error() string {
	return fmt.Sprintf("chunk %s already converted to outcome %s", e.ChunkID, e.OutcomeID)
}

func (e *ConversionConflictError) Unwrap() error { return ErrConversionConflict }

// ConversionIncompleteError reports a conversion that failed after the
// outcome was created. The outcome must not be recreated; the caller retries
// with the same token and the workflow resumes from Step. Token is the one
// the server generated when the caller sent none.
type ConversionIncompleteError struct {
	ChunkID   uuid.UUID
	OutcomeID uuid.UUID
	Token     uuid.UUID
	Step      ConversionStep
	Err       error
}

func (e *ConversionIncompleteError) Error() string {
	return fmt.Sprintf("conversion of chunk %s incomplete at %s (outcome %s): %v",
		e.ChunkID, e.Step, e.OutcomeID, e.Err)
}

// Unwrap exposes both the incomplete marker and the underlying cause.
func (e *ConversionIncompleteError) Unwrap() []error {
	return []error{ErrConversionIncomplete, e.Err}
}
