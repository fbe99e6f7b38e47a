package places

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrPropertyNotSet is matched by validation errors for missing required fields.
	ErrPropertyNotSet = errors.New("required property not set")

	// ErrOutOfRange is matched by validation errors for values outside the documented range.
	ErrOutOfRange = errors.New("property out of range")

	// ErrNilOptions is returned when a nil options value is passed to the client.
	ErrNilOptions = errors.New("options must not be nil")
)

// ValidationError is returned before any request is sent when an options
// value cannot be turned into a valid request.
type ValidationError struct {
	Field  string
	Reason string
	Err    error // ErrPropertyNotSet or ErrOutOfRange
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("places: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("places: %s: %v: %s", e.Field, e.Err, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func propertyNotSet(field string) *ValidationError {
	return &ValidationError{Field: field, Err: ErrPropertyNotSet}
}

func outOfRange(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrOutOfRange}
}

// HTTPError is returned when the API answers with a non-200 HTTP status.
// Code and Message come from the {"error": {"code", "message"}} envelope;
// when the body is not such an envelope Message holds the raw body text.
type HTTPError struct {
	Response   *Response
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Google Places API error: %s (status: %d, code: %d)", e.Message, e.StatusCode, e.Code)
}

// IsHTTPStatus reports whether err is an *HTTPError with the given HTTP status.
func IsHTTPStatus(err error, status int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == status
	}
	return false
}

// IsNotFound is shorthand for IsHTTPStatus(err, http.StatusNotFound).
func IsNotFound(err error) bool {
	return IsHTTPStatus(err, http.StatusNotFound)
}
