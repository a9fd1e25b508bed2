package dashboard

import (
	"fmt"
	"net/http"
	"time"
)

// ValidationErrorCode is the ErrorCode of every ValidationError.
const ValidationErrorCode = -1

// ValidationError reports a call rejected locally, before any network I/O,
// because a required parameter or body was missing or malformed.
type ValidationError struct {
	ErrorMessage string
	ErrorCode    int
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{
		ErrorMessage: fmt.Sprintf(format, args...),
		ErrorCode:    ValidationErrorCode,
	}
}

func missingParameter(name string) *ValidationError {
	return newValidationError("The parameter `%s` is a required parameter and cannot be null.", name)
}

func missingBody(name string) *ValidationError {
	return newValidationError("The property `%s` in the input object cannot be null.", name)
}

func (e *ValidationError) Error() string {
	return e.ErrorMessage
}

// CallContext carries the raw request and response metadata of a failed call.
// The API key is never part of RequestHeaders.
type CallContext struct {
	OperationID     string
	Method          string
	URL             string
	RequestHeaders  http.Header
	StatusCode      int
	ResponseHeaders http.Header
	Body            []byte
}

// APIError is the normalized error for transport failures and responses with
// a status outside 200-206.
type APIError struct {
	// ErrorMessage is the Dashboard "errors" entries joined with "; ",
	// a generic message, or the transport failure text.
	ErrorMessage string

	// ErrorCode is the HTTP status code, or 0 for transport failures.
	ErrorCode int

	// Errors holds the individual messages from the response body.
	Errors []string

	// RetryAfter is the server-suggested wait parsed from Retry-After.
	// The client never retries on its own.
	RetryAfter time.Duration

	// Context holds the raw request and response for diagnostics.
	Context *CallContext

	cause error
}

func (e *APIError) Error() string {
	op := ""
	if e.Context != nil && e.Context.OperationID != "" {
		op = e.Context.OperationID + ": "
	}

	if e.ErrorCode == 0 {
		return fmt.Sprintf("%s%s", op, e.ErrorMessage)
	}
	return fmt.Sprintf("%sAPI error (status %d): %s", op, e.ErrorCode, e.ErrorMessage)
}

// Unwrap returns the transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status code, or 0 for transport failures.
func (e *APIError) StatusCode() int {
	return e.ErrorCode
}

// IsNotFound reports whether the API answered 404.
func (e *APIError) IsNotFound() bool {
	return e.ErrorCode == http.StatusNotFound
}

// IsRateLimited reports whether the API answered 429.
func (e *APIError) IsRateLimited() bool {
	return e.ErrorCode == http.StatusTooManyRequests
}
