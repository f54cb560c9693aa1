package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden: record does not belong to the authenticated user")
)

// ValidationError reports a field-scoped input rejection. Handlers surface it
// as a 400 with the offending field named.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-scoped validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
