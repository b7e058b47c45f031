package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConfiguration indicates that a required setting is absent.
var ErrConfiguration = errors.New("configuration error")

// ErrDownstream indicates that the remote reset procedure failed or was unreachable.
var ErrDownstream = errors.New("downstream failure")

// Reset procedure classifications.
var (
	ErrResetDisabled    = errors.New("database reset is disabled")
	ErrDemoUserNotFound = errors.New("demo user not found")
	ErrResetInProgress  = errors.New("reset already in progress")
)

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) error {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationFailedError returns an error matching ErrValidation.
func NewValidationFailedError(message string) error {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError returns an error matching ErrDuplicate.
func NewConflictError(message string) error {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewConfigurationError returns an error matching ErrConfiguration.
func NewConfigurationError(message string) error {
	return NewAppError(http.StatusInternalServerError, message, ErrConfiguration)
}

// Message returns the human readable part of err, without the wrapped sentinel text.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
