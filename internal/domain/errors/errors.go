// Package errors defines the application error taxonomy. Every error the
// delivery layer can surface to a caller is an AppError with a fixed HTTP
// status, business code and user-facing message; internal causes stay in the
// logs only.
package errors

import (
	"net/http"

	"myflix/internal/errors"
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

// Is matches on the business error code, so copies produced by WithDetails
// still compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
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

// Predefined error types
var (
	// Credential verification. Unknown username and wrong password share one
	// error so callers cannot enumerate registered usernames.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	// Authorization gate rejections. Each carries the short, identity-agnostic
	// message the gate returns for that rejection path.
	ErrMissingCredentials = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_CREDENTIALS",
		"missing credentials",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"token expired",
		"",
	)

	ErrSubjectGone = NewBaseError(
		http.StatusUnauthorized,
		"SUBJECT_GONE",
		"subject no longer exists",
		"",
	)

	// Owner-restricted mutations. The caller is already authenticated, so the
	// message may safely name the restriction.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"identity mismatch",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"failed to update user",
		"",
	)

	// Movie-related errors
	ErrMovieNotFound = NewBaseError(
		http.StatusNotFound,
		"MOVIE_NOT_FOUND",
		"movie not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a store failure as a generic server error.
// The underlying cause is kept for logging and never sent to the caller.
func NewDatabaseExecuteError(cause error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"service temporarily unavailable",
		"",
	)

	return errors.Wrap(base, message+": "+cause.Error())
}
