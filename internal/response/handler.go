// Package response validates Dashboard API responses and decodes their bodies.
package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultErrorMessage is the message used for non-success responses that
// carry no error details.
const DefaultErrorMessage = "HTTP Response Not OK"

// Failure describes a response whose status code is outside the success range.
type Failure struct {
	Message    string
	StatusCode int
	Errors     []string
	RetryAfter time.Duration
}

// IsSuccess reports whether statusCode is in the 200-206 success range.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode <= http.StatusPartialContent
}

// ErrEmptyBody is returned for a successful response that should carry a
// JSON document but has no body.
var ErrEmptyBody = errors.New("empty response body")

// AllowsEmptyBody reports whether a successful response with statusCode
// may legitimately have no body: 204 No Content and 205 Reset Content.
func AllowsEmptyBody(statusCode int) bool {
	return statusCode == http.StatusNoContent || statusCode == http.StatusResetContent
}

// CheckBody returns ErrEmptyBody when a response that must carry a
// document has an empty or whitespace-only body.
func CheckBody(statusCode int, body []byte) error {
	if len(bytes.TrimSpace(body)) > 0 || AllowsEmptyBody(statusCode) {
		return nil
	}
	return errors.WithStack(ErrEmptyBody)
}

// Validate returns nil for successful responses and a populated Failure otherwise.
// The Dashboard API reports problems as {"errors": ["..."]}; those messages
// are joined into Failure.Message when present.
func Validate(statusCode int, header http.Header, body []byte) *Failure {
	if IsSuccess(statusCode) {
		return nil
	}

	failure := &Failure{
		Message:    DefaultErrorMessage,
		StatusCode: statusCode,
		Errors:     ParseErrors(body),
		RetryAfter: ParseRetryAfter(header.Get("Retry-After")),
	}

	if len(failure.Errors) > 0 {
		failure.Message = strings.Join(failure.Errors, "; ")
	}

	return failure
}

// ParseErrors extracts the "errors" array from a Dashboard error body.
// Bodies that are not JSON objects, or lack the array, yield nil.
func ParseErrors(body []byte) []string {
	var payload struct {
		Errors []string `json:"errors"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	return payload.Errors
}

// ParseRetryAfter parses the Retry-After HTTP header and returns the duration to wait.
// The Retry-After header can contain either:
//   - Number of seconds (e.g., "120")
//   - HTTP-date (not currently supported, returns 0)
//
// Returns 0 if the header is empty or cannot be parsed.
func ParseRetryAfter(retryAfterHeader string) time.Duration {
	if retryAfterHeader == "" {
		return 0
	}

	seconds, err := strconv.Atoi(retryAfterHeader)
	if err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return 0
}

// Decode unmarshals a successful response body into a T.
// An empty or whitespace-only body yields the zero value.
func Decode[T any](body []byte) (T, error) {
	var out T

	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, errors.Wrap(err, "failed to decode response body")
	}

	return out, nil
}
