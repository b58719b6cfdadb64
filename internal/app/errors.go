package app

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	// The message is user-facing and must not enable account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAdminExists rejects registration once the single admin row exists.
	ErrAdminExists = errors.New("admin account already exists")

	// ErrWrongAnswer is returned when the verification answer does not match.
	ErrWrongAnswer = errors.New("verification failed")

	// ErrNotFound is returned when an id resolves to no row.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or malformed request field. The
// HTTP layer maps it to a 400 without logging a server error.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func required(field string) error {
	return ValidationError{Msg: fmt.Sprintf("%s is required", field)}
}
