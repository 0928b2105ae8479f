package domain

import "errors"

// Error taxonomy surfaced to callers. Notification-channel failures are
// deliberately absent: the fan-out pipeline logs and swallows them.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")
)
