package dashboard

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/trace"

	"github.com/lexfrei/go-meraki/internal/buildinfo"
	"github.com/lexfrei/go-meraki/internal/httpclient"
	"github.com/lexfrei/go-meraki/internal/middleware"
	"github.com/lexfrei/go-meraki/internal/ratelimit"
	"github.com/lexfrei/go-meraki/observability"
)

const (
	// DefaultBaseURL is the Dashboard API v0 base URL.
	DefaultBaseURL = "https://api.meraki.com/api/v0"

	// APIKeyHeader is the header carrying the Dashboard API key.
	//
	//nolint:gosec // Header name, not a credential
	APIKeyHeader = "X-Cisco-Meraki-API-Key"
)

// Client is a Dashboard API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     observability.Logger
}

// Compile-time check to ensure Client implements DashboardAPIClient interface.
var _ DashboardAPIClient = (*Client)(nil)

// ClientConfig holds configuration for the Dashboard API client.
type ClientConfig struct {
	// APIKey is the Dashboard API key (required)
	APIKey string

	// BaseURL is the API base URL (defaults to https://api.meraki.com/api/v0)
	BaseURL string

	// HTTPClient is the HTTP client to use (optional). It is copied, never mutated.
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout (defaults to none)
	Timeout time.Duration

	// TLSConfig overrides the transport TLS settings (optional)
	TLSConfig *tls.Config

	// RateLimitPerSecond enables client-side rate limiting with one bucket per
	// organization (0 disables it). The Dashboard API allows 5 calls per second
	// per organization.
	RateLimitPerSecond int

	// Logger for observability (optional, uses noop logger if nil)
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil)
	Metrics observability.MetricsRecorder

	// TracerProvider for OpenTelemetry spans (optional, uses the global provider if nil)
	TracerProvider trace.TracerProvider
}

// New creates a new Dashboard API client with default settings.
//
// Default settings:
//   - Base URL: https://api.meraki.com/api/v0
//   - Timeout: none (bound calls with a context deadline)
//   - Rate limiting: disabled
//
// For custom configuration, use NewWithConfig.
//
// Example:
//
//	client, err := dashboard.New("your-api-key")
func New(apiKey string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		APIKey: apiKey,
	})
}

// NewWithConfig creates a new Dashboard API client with custom configuration.
// The configuration is read once; later changes to cfg have no effect.
//
// Example:
//
//	client, err := dashboard.NewWithConfig(&dashboard.ClientConfig{
//	    APIKey:             "your-api-key",
//	    RateLimitPerSecond: 5,
//	    Logger:             observability.NewZapLogger(zapLogger),
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, errors.Newf("invalid base URL %q: scheme and host are required", baseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	// Order from outside to inside: Tracing -> Observability -> RateLimit -> APIKey -> TLS
	chain := []httpclient.Middleware{
		middleware.Tracing(cfg.TracerProvider),
		middleware.Observability(logger, metrics),
	}
	if cfg.RateLimitPerSecond > 0 {
		registry := ratelimit.NewRegistry(cfg.RateLimitPerSecond)
		chain = append(chain, middleware.RateLimit(middleware.RateLimitConfig{
			Selector: registry.Select,
			Logger:   logger,
			Metrics:  metrics,
		}))
	}
	chain = append(chain, middleware.APIKey(APIKeyHeader, cfg.APIKey))
	if cfg.TLSConfig != nil {
		chain = append(chain, middleware.TLSConfig(cfg.TLSConfig))
	}

	opts := []httpclient.Option{
		httpclient.WithHTTPClient(cfg.HTTPClient),
		httpclient.WithUserAgent(buildinfo.UserAgent()),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, httpclient.WithTimeout(cfg.Timeout))
	}
	opts = append(opts, httpclient.WithMiddleware(chain...))

	return &Client{
		baseURL:    baseURL,
		httpClient: httpclient.New(opts...),
		logger:     logger,
	}, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
