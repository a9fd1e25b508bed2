package middleware

import (
	"crypto/tls"
	"net/http"
)

// TLSConfig returns a middleware that installs config on a copy of the
// innermost transport, for example to trust the private CA of an
// inspecting proxy in front of api.meraki.com. A config without
// MinVersion gets TLS 1.2, the lowest version Dashboard accepts.
//
// It replaces next instead of wrapping it, so it must come last in the
// chain. When next is not an *http.Transport, a copy of
// http.DefaultTransport is used.
func TLSConfig(config *tls.Config) func(http.RoundTripper) http.RoundTripper {
	cfg := config.Clone()
	if cfg == nil {
		cfg = &tls.Config{}
	}
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}

	return func(next http.RoundTripper) http.RoundTripper {
		base, ok := next.(*http.Transport)
		if !ok {
			if base, ok = http.DefaultTransport.(*http.Transport); !ok {
				return next
			}
		}

		transport := base.Clone()
		transport.TLSClientConfig = cfg

		return transport
	}
}

// InsecureSkipVerify returns a config that accepts any server certificate.
// It exists for debugging through intercepting proxies.
func InsecureSkipVerify() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec // Opt-in via --insecure-skip-verify
		MinVersion:         tls.VersionTLS12,
	}
}
