// Package httpclient sends Dashboard API requests through a chain of
// RoundTripper middleware and hands back fully read responses.
package httpclient

import (
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Middleware wraps an http.RoundTripper. The first middleware given to
// WithMiddleware sees the request first.
type Middleware func(http.RoundTripper) http.RoundTripper

// Client executes requests with a fixed middleware chain. It is safe for
// concurrent use.
type Client struct {
	base      *http.Client
	chain     []Middleware
	userAgent string
}

// Response is an HTTP response whose body has been read and closed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New builds a client from opts. Without WithTimeout there is no client
// timeout; requests are bounded by their contexts.
func New(opts ...Option) *Client {
	c := &Client{base: &http.Client{}}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.chain) > 0 {
		transport := c.base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		for i := len(c.chain) - 1; i >= 0; i-- {
			transport = c.chain[i](transport)
		}
		c.base.Transport = transport
	}

	return c
}

// Do sends req and reads the whole response body. req is given the
// configured User-Agent unless it already has one.
//
// A transport failure returns a nil Response. When only reading the body
// fails, the Response still carries the status and headers.
func (c *Client) Do(req *http.Request) (*Response, error) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err //nolint:wrapcheck // Transport errors are normalized by the caller
	}
	defer resp.Body.Close()

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, errors.Wrap(err, "failed to read response body")
	}
	out.Body = body

	return out, nil
}

// HTTPClient returns the underlying http.Client with the chain installed.
func (c *Client) HTTPClient() *http.Client {
	return c.base
}
