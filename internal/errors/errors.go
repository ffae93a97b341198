// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Every failure this module surfaces to callers
// belongs to a single externally visible kind (ErrInternal) carrying a safe,
// operation-specific message; raw library or OS error text stays out of the chain.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrInternal is the single error kind surfaced to callers. Every classified
	// failure wraps it, so errors.Is(err, ErrInternal) holds for any error this
	// module returns.
	ErrInternal = errors.New("internal server error")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	// It wraps ErrInternal so validation failures share the external error kind
	// while remaining distinguishable internally.
	ErrInvalidInput = fmt.Errorf("invalid input: %w", ErrInternal)
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
