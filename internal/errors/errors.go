// Package errors provides the structured error type shared by the valuation
// engine, the services around it, and the HTTP layer.
// Every engine failure is an *AppError built from one of the sentinels below,
// so callers can branch on Code without parsing messages.
package errors

import (
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so a
// message-customised copy still matches its sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Valuation errors.
var (
	ErrInsufficientData  = &AppError{Code: "INSUFFICIENT_DATA", Message: "Not enough market data for this method", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidAssumption = &AppError{Code: "INVALID_ASSUMPTION", Message: "Assumptions make the valuation undefined", StatusCode: http.StatusUnprocessableEntity}
	ErrArithmeticDomain  = &AppError{Code: "ARITHMETIC_DOMAIN", Message: "Computation produced a non-finite result", StatusCode: http.StatusUnprocessableEntity}
	ErrUnknownMethod     = &AppError{Code: "UNKNOWN_METHOD", Message: "Unsupported valuation method", StatusCode: http.StatusBadRequest}
)

// Archive errors.
var (
	ErrValuationNotFound = &AppError{Code: "VALUATION_NOT_FOUND", Message: "Valuation not found", StatusCode: http.StatusNotFound}
)
