package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated caller lacking the role, tenant or ownership for an action.
var ErrForbidden = errors.New("forbidden")

// ErrInactive indicates that the account behind a credential is not active.
var ErrInactive = fmt.Errorf("account is inactive: %w", ErrForbidden)

// ErrNoChange indicates an update whose values equal the stored ones.
var ErrNoChange = errors.New("no changes to apply")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a human readable reason.
func NewValidationError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrValidation)
}

// NewForbiddenError wraps ErrForbidden with a human readable reason.
func NewForbiddenError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrForbidden)
}
