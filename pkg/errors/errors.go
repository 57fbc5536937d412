package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeProcessing  ErrorType = "processing"
	ErrorTypeTooLarge    ErrorType = "too_large"
	ErrorTypeUnsupported ErrorType = "unsupported_media"
	ErrorTypeInternal    ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error. The cause, when it
// carries its own message, is kept as the details.
func NewValidationError(message string, cause error) *AppError {
	e := &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
	if cause != nil && cause.Error() != message {
		e.Details = cause.Error()
	}
	return e
}

// NewProcessingError creates a new processing error for input the PDF engine rejected
func NewProcessingError(message string, cause error) *AppError {
	e := &AppError{
		Type:       ErrorTypeProcessing,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewTooLargeError creates an error for uploads over the configured limit
func NewTooLargeError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    message,
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewUnsupportedMediaError creates an error for non-PDF uploads
func NewUnsupportedMediaError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupported,
		Message:    message,
		StatusCode: http.StatusUnsupportedMediaType,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// UserMessage returns the text shown to a client for err
func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return "Internal server error"
	}
	if appErr.Details != "" && appErr.Type != ErrorTypeInternal {
		return appErr.Message + ": " + appErr.Details
	}
	return appErr.Message
}
