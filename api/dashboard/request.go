package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-meraki/internal/httpclient"
	"github.com/lexfrei/go-meraki/internal/middleware"
	"github.com/lexfrei/go-meraki/internal/response"
	"github.com/lexfrei/go-meraki/observability"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	acceptJSON      = "application/json"
)

// request is one call of an endpoint.
type request struct {
	endpoint *Endpoint
	path     map[string]string
	query    url.Values
	body     any
}

// do validates, builds, and sends req and returns the raw body of a
// successful response. Failures are *ValidationError or *APIError, plus
// response.ErrEmptyBody when an operation with content gets no body.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	ep := req.endpoint

	if err := validate(ep, req); err != nil {
		c.logger.Debug("request rejected",
			observability.F("operation", ep.OperationID),
			observability.F("error", err.ErrorMessage),
		)
		return nil, err
	}

	path, err := ExpandPath(ep.Path, req.path)
	if err != nil {
		return nil, err
	}

	rawURL, err := cleanURL(c.baseURL + path)
	if err != nil {
		return nil, errors.Wrap(err, ep.OperationID)
	}
	if len(req.query) > 0 {
		rawURL += "?" + req.query.Encode()
	}

	var (
		payload  io.Reader
		withBody = !isNil(req.body)
	)
	if withBody {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: failed to encode request body", ep.OperationID)
		}
		payload = bytes.NewReader(encoded)
	}

	ctx = middleware.WithOperation(ctx, middleware.Operation{ID: ep.OperationID, PathTemplate: ep.Path})

	httpReq, err := http.NewRequestWithContext(ctx, ep.Method, rawURL, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to create request", ep.OperationID)
	}

	if !ep.NoContent {
		httpReq.Header.Set("Accept", acceptJSON)
	}
	if withBody {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(ep, httpReq, resp, err)
	}

	if failure := response.Validate(resp.StatusCode, resp.Header, resp.Body); failure != nil {
		return nil, &APIError{
			ErrorMessage: failure.Message,
			ErrorCode:    failure.StatusCode,
			Errors:       failure.Errors,
			RetryAfter:   failure.RetryAfter,
			Context:      newCallContext(ep, httpReq, resp),
		}
	}

	if !ep.NoContent {
		if err := response.CheckBody(resp.StatusCode, resp.Body); err != nil {
			return nil, errors.Wrapf(err, "%s: status %d", ep.OperationID, resp.StatusCode)
		}
	}

	return resp.Body, nil
}

// validate checks path parameters in template order, then the body.
func validate(ep *Endpoint, req request) *ValidationError {
	for _, name := range ep.PathParameters() {
		if req.path[name] == "" {
			return missingParameter(name)
		}
	}

	if ep.BodyRequired && isNil(req.body) {
		return missingBody(ep.OperationID)
	}

	return nil
}

func transportError(ep *Endpoint, req *http.Request, resp *httpclient.Response, err error) *APIError {
	return &APIError{
		ErrorMessage: err.Error(),
		Context:      newCallContext(ep, req, resp),
		cause:        errors.Wrapf(err, "%s %s", req.Method, req.URL.Path),
	}
}

func newCallContext(ep *Endpoint, req *http.Request, resp *httpclient.Response) *CallContext {
	callCtx := &CallContext{
		OperationID:    ep.OperationID,
		Method:         req.Method,
		URL:            req.URL.String(),
		RequestHeaders: req.Header.Clone(),
	}

	if resp != nil {
		callCtx.StatusCode = resp.StatusCode
		callCtx.ResponseHeaders = resp.Header.Clone()
		callCtx.Body = resp.Body
	}

	return callCtx
}

// isNil reports whether v is nil or a nil pointer, map, or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// call executes req and decodes the response body into a T.
func call[T any](ctx context.Context, c *Client, req request) (T, error) {
	var zero T

	body, err := c.do(ctx, req)
	if err != nil {
		return zero, err
	}

	out, err := response.Decode[T](body)
	if err != nil {
		return zero, errors.Wrap(err, req.endpoint.OperationID)
	}

	return out, nil
}

func one[T any](ctx context.Context, c *Client, req request) (*T, error) {
	out, err := call[T](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *Client, req request) ([]T, error) {
	return call[[]T](ctx, c, req)
}

func noContent(ctx context.Context, c *Client, req request) error {
	_, err := c.do(ctx, req)
	return err
}

// queryValues collects the results of addQuery calls and returns the first error.
func queryValues(query url.Values, errs ...error) (url.Values, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return query, nil
}

// Ptr returns a pointer to v. It is a convenience for filling optional model fields.
func Ptr[T any](v T) *T {
	return &v
}
