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

// ErrBusinessRule indicates that an operation violated a business rule
// (e.g. a payment exceeding the bill's remaining payable).
var ErrBusinessRule = errors.New("business rule violation")

// ErrForbidden indicates the authenticated user lacks the role required for an action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a concurrent modification conflict
// (e.g. two payments racing on the same bill balance).
var ErrConflict = errors.New("concurrent modification conflict")

// ErrInternal indicates an unexpected internal failure that should not be
// surfaced to clients in detail.
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with a status code and a safe message.
// Repositories use it to attach context without leaking SQL detail upward.
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

// NewAppError creates a new AppError wrapping the given error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
