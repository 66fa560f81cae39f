// Package apperr defines error kinds shared across features.
package apperr

import "errors"

// ValidationError reports malformed or out-of-policy input. Its message is
// human-readable and safe to return to the caller verbatim.
type ValidationError struct {
	Message string
}

// Error returns the display message.
func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError with the given display message.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
