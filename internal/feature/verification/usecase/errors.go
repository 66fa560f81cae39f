// Package usecase implements the business logic for the verification feature.
package usecase

import "errors"

var (
	// ErrCodeNotFound is returned when no live record matches the presented
	// email and code pair.
	ErrCodeNotFound = errors.New("verification code not found")

	// ErrUserNotFound is returned when no account exists for the address
	// being verified.
	ErrUserNotFound = errors.New("user not found")

	// ErrMailDelivery wraps transport failures from the mail provider. The
	// stored code survives a delivery failure; an explicit resend issues a
	// fresh one.
	ErrMailDelivery = errors.New("failed to send verification email")
)
