// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. Use cases and repositories return these errors
// (usually wrapped) and handlers map them to HTTP status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared by the category, product and auth modules.
var (
	// ErrNotFound indicates the request matched no route. Unknown ids on update and
	// delete are acknowledged instead.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request carries no credential at all.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the request carries a credential that could not be verified.
	ErrForbidden = errors.New("forbidden")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
