package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrGenerationUnavailable is the only error the transform pipeline
	// returns for generator failures. The underlying cause is logged, not wrapped.
	ErrGenerationUnavailable = errors.New("generation unavailable")

	// ErrEmptyGeneration is returned by generators when the model answered
	// without any text.
	ErrEmptyGeneration = errors.New("generator returned no text")
)

// User-facing messages. These are the only texts end users see for the
// corresponding failures.
const (
	MsgEmptyText             = "Please enter some text to transform"
	MsgGenerationUnavailable = "Failed to transform text. The AI model might be temporarily unavailable. Please try again later."
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
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
