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

// ErrInvalidState indicates a state transition that is not allowed from the
// entity's current status (e.g. posting a non-draft entry).
var ErrInvalidState = errors.New("invalid state transition")

// ErrNoOpenPeriod indicates that no open fiscal period covers the entry date.
var ErrNoOpenPeriod = errors.New("no open fiscal period for date")

// ErrAccountNotFound indicates that a journal line references an account id
// that does not exist in the organization's chart of accounts.
var ErrAccountNotFound = errors.New("account not found")

// ErrBusinessRule indicates a domain rule violation that is not a plain input
// validation failure (e.g. deleting a system account).
var ErrBusinessRule = errors.New("business rule violation")

// AppError carries a status-code hint alongside the wrapped cause. Used by the
// repository layer for infrastructure failures.
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
