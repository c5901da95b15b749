package fitness

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrEntryNotFound     = errors.New("workout entry not found")
	ErrAlreadyCompleted  = errors.New("workout entry already completed")
	ErrConcurrentUpdate  = errors.New("progress changed concurrently")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user exists")
	ErrDuplicateWorkout  = errors.New("workout with the same timestamp already logged")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}
