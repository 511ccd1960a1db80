package service

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned when an admin asks for a status transition
// other than pending -> confirmed or pending -> cancelled.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidCredentials is returned by AdminAuthService.Login on a bad email
// or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a rejected input field. Code is the machine-readable
// value handlers return in the "error" field (e.g. "email_required").
type ValidationError struct {
	Field string
	Code  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Code)
}

func invalid(field, code string) error {
	return &ValidationError{Field: field, Code: code}
}
