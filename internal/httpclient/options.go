package httpclient

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient starts from a copy of client. The caller's instance is
// never modified when the middleware chain is installed. A nil client is
// ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client == nil {
			return
		}
		clone := *client
		c.base = &clone
	}
}

// WithTimeout sets http.Client.Timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.base.Timeout = timeout
	}
}

// WithTransport replaces the innermost transport. Middleware still wraps it.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base.Transport = transport
	}
}

// WithUserAgent sets the User-Agent sent on requests that have none.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithMiddleware appends to the chain. WithMiddleware(A, B, C) sends a
// request through A, then B, then C, then the transport; responses travel
// back in reverse. Put tracing and logging first and authentication last.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.chain = append(c.chain, middleware...)
	}
}
