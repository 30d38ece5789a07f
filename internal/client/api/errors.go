package api

import "errors"

// Failure classes surfaced by the Client. Wrapped errors keep the backend's
// message, so errors.Is matches the class while err.Error() stays readable.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
)
