package domain

import "errors"

// Business failures surfaced by the identity and blog services. Callers
// distinguish them with errors.Is; login failures are deliberately a single
// value so account existence cannot be probed.
var (
	ErrUserAlreadyRegistered = errors.New("username or email is unavailable")
	ErrRoleNotFound          = errors.New("user role not found")
	ErrInvalidCredentials    = errors.New("credentials were invalid")
	ErrUserNotFound          = errors.New("user not found")
	ErrPostNotFound          = errors.New("blog post not found")
)

// PersistenceError wraps an unexpected storage failure. The cause stays
// available for diagnostics via Unwrap but is never shown to API callers.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
