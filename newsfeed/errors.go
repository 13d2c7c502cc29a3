// ABOUTME: Error types and handling for the newsfeed library
// ABOUTME: Wraps fetch failures in structured errors that still unwrap to the core error types

package newsfeed

import (
	"errors"
	"fmt"

	coreerrors "guardian-news-api/core/errors"
	"guardian-news-api/core/fetch"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates the URL was rejected before any request
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeStatus indicates the server answered with a non-200 status
	ErrorTypeStatus ErrorType = "status"

	// ErrorTypeNetwork indicates a transport failure
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when Load is called after Close
var ErrClientClosed = NewError(ErrorTypeConfiguration, "client is closed")

// fromFetchError classifies a fetch failure
func fromFetchError(url string, err error) *Error {
	switch {
	case errors.Is(err, fetch.ErrNoHTTPClient):
		return NewError(ErrorTypeConfiguration, "no HTTP client configured").WithCause(err).WithContext("url", url)
	case coreerrors.IsInvalidURL(err):
		return NewError(ErrorTypeValidation, "invalid feed url").WithCause(err).WithContext("url", url)
	case coreerrors.IsBadStatus(err):
		return NewError(ErrorTypeStatus, "feed request was rejected").WithCause(err).
			WithContext("url", url).
			WithContext("status", coreerrors.StatusCode(err))
	default:
		return NewError(ErrorTypeNetwork, "feed request failed").WithCause(err).WithContext("url", url)
	}
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsStatusError checks if an error is a non-200 response
func IsStatusError(err error) bool {
	return hasType(err, ErrorTypeStatus)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}
