// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotVerified is returned by the verified-caller gate for accounts
	// with an email address that has not been verified yet.
	ErrEmailNotVerified = errors.New("email verification required")

	// ErrNoEmail is returned when an operation needs an email address but the
	// account has none.
	ErrNoEmail = errors.New("account has no email address")
)
