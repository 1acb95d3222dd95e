package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the repository and service layers. Handlers map
// them onto HTTP statuses: ErrNotFound -> 404, ErrConflict -> 409,
// ErrUnauthorized -> 401; everything else is a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid email or password")
)

// ValidationError reports a payload that failed a required-field or shape
// check. It maps onto a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
