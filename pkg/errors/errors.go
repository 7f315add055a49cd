package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeEmptyInput indicates a metric was asked to average zero samples
	ErrorTypeEmptyInput ErrorType = "EMPTY_INPUT"

	// ErrorTypeLengthMismatch indicates predicted and actual series differ in length
	ErrorTypeLengthMismatch ErrorType = "LENGTH_MISMATCH"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// Sentinels for errors.Is. Matching is by Type only.
var (
	ErrEmptyInput     = &AppError{Type: ErrorTypeEmptyInput, Message: "empty input"}
	ErrLengthMismatch = &AppError{Type: ErrorTypeLengthMismatch, Message: "length mismatch"}
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// NewEmptyInputError creates a new empty input error
func NewEmptyInputError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyInput,
		Message: message,
	}
}

// NewLengthMismatchError creates a new length mismatch error for the given series lengths
func NewLengthMismatchError(predicted, actual int) *AppError {
	return &AppError{
		Type:    ErrorTypeLengthMismatch,
		Message: fmt.Sprintf("predicted has %d values, actual has %d", predicted, actual),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err wraps an AppError of type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Type == t
}
