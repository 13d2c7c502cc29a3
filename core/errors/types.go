// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates fetch failures, which fail a load cycle, from parse problems, which are absorbed

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// InvalidURLError is returned when a URL is absent or malformed.
// No network call is made.
type InvalidURLError struct {
	URL    string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("invalid url: %s", e.Reason)
	}
	return fmt.Sprintf("invalid url %q: %s", e.URL, e.Reason)
}

// Unwrap returns the underlying parse error, if any
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// BadStatusError is returned when the server answers with anything but 200
type BadStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *BadStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// IOFailureError wraps transport failures: DNS, refused connections, timeouts, broken streams
type IOFailureError struct {
	URL string
	Op  string
	Err error
}

// Error implements the error interface
func (e *IOFailureError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the transport error
func (e *IOFailureError) Unwrap() error {
	return e.Err
}

// MalformedJSONError reports a response body that is not a usable JSON document.
// The extractor logs it and yields an empty result instead of failing the cycle.
type MalformedJSONError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *MalformedJSONError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed json: %v", e.Err)
	}
	return fmt.Sprintf("malformed json at %s: %v", e.Path, e.Err)
}

// Unwrap returns the decoder error
func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// RecordSkippedError describes one result element dropped from the batch.
// Field is empty when the element was not a JSON object at all.
type RecordSkippedError struct {
	Index int
	Field string
}

// Error implements the error interface
func (e *RecordSkippedError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %d skipped: not an object", e.Index)
	}
	return fmt.Sprintf("record %d skipped: missing required field %q", e.Index, e.Field)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var urlErr *InvalidURLError
	return errors.As(err, &urlErr)
}

// IsBadStatus checks if an error is a BadStatusError
func IsBadStatus(err error) bool {
	var statusErr *BadStatusError
	return errors.As(err, &statusErr)
}

// IsIOFailure checks if an error is an IOFailureError
func IsIOFailure(err error) bool {
	var ioErr *IOFailureError
	return errors.As(err, &ioErr)
}

// IsMalformedJSON checks if an error is a MalformedJSONError
func IsMalformedJSON(err error) bool {
	var jsonErr *MalformedJSONError
	return errors.As(err, &jsonErr)
}

// IsFetchFailure reports whether err is one of the errors that fail a load cycle
func IsFetchFailure(err error) bool {
	return IsInvalidURL(err) || IsBadStatus(err) || IsIOFailure(err)
}

// StatusCode returns the HTTP status carried by a BadStatusError, or 0
func StatusCode(err error) int {
	var statusErr *BadStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
