package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so WithDetails copies
// still compare equal to the sentinel they came from.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// Errors returned by the fragment store itself.
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid bearer token",
		"",
	)

	ErrFragmentNotFound = NewBaseError(
		http.StatusNotFound,
		"FRAGMENT_NOT_FOUND",
		"fragment not found",
		"",
	)

	ErrUnsupportedType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_TYPE",
		"unsupported fragment type",
		"",
	)

	ErrEmptyFragment = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FRAGMENT",
		"fragment content must not be empty",
		"",
	)

	ErrFragmentTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FRAGMENT_TOO_LARGE",
		"fragment exceeds the maximum size",
		"",
	)

	ErrInvalidGrant = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GRANT",
		"authorization code is invalid or expired",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)
