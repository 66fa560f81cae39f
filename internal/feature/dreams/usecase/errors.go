// Package usecase implements the business logic for the dreams feature.
package usecase

import "errors"

var (
	// ErrEntryNotFound is returned when an entry does not exist or is owned
	// by another user. Ownership failures are deliberately reported as
	// not-found so responses never reveal that someone else's entry exists.
	ErrEntryNotFound = errors.New("dream entry not found")
)
