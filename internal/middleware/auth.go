package middleware

import "net/http"

// APIKey returns a middleware that sends key in header on every request
// that passes through the transport.
//
// Dashboard answers calls for an organization hosted on another shard
// with a redirect (for example to n149.meraki.com). http.Client follows
// it through the same transport chain, so the redirected request carries
// the key too.
//
// The header is set on a copy of the request: the caller's request, and
// any diagnostics captured from it, never hold the key.
func APIKey(header, key string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &apiKeyTransport{next: next, header: header, key: key}
	}
}

type apiKeyTransport struct {
	next   http.RoundTripper
	header string
	key    string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := *req
	out.Header = req.Header.Clone()
	if out.Header == nil {
		out.Header = http.Header{}
	}
	out.Header.Set(t.header, t.key)

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(&out)
}
