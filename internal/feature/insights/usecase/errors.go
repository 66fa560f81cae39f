package usecase

import "errors"

// ErrInterpreterUnavailable is returned when no interpretation backend is
// configured.
var ErrInterpreterUnavailable = errors.New("dream interpreter is not configured")
