package domain

import "errors"

// Failure taxonomy shared by every module. Services return these (often
// wrapped); handlers map them onto HTTP status codes in one place.
var (
	// ErrAuthenticationRequired means the action needs a session and none was
	// presented. Distinct from ErrForbidden so callers can signal 401 vs 403.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrForbidden means the caller is authenticated but the role/ownership
	// check failed.
	ErrForbidden = errors.New("forbidden")

	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")

	// ErrConflict surfaces uniqueness violations as a validation-like failure.
	ErrConflict = errors.New("conflict")
)
