package middleware

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/lexfrei/go-meraki/observability"
)

// RateLimiterSelector picks the token bucket for a request and names it
// for logs and metrics. A nil limiter lets the request through.
type RateLimiterSelector func(*http.Request) (*rate.Limiter, string)

// Shared returns a selector that puts every request in one bucket.
func Shared(limiter *rate.Limiter, bucket string) RateLimiterSelector {
	return func(*http.Request) (*rate.Limiter, string) {
		return limiter, bucket
	}
}

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	// Selector chooses the bucket. A nil Selector disables limiting.
	Selector RateLimiterSelector

	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// RateLimit returns a middleware that holds each request until its bucket
// has a token. Dashboard budgets calls per organization, so the client
// passes a selector with one bucket per organization ID.
//
// Requests are delayed, never rejected or retried. A request whose
// context ends while waiting fails with the context error and gives its
// token back.
func RateLimit(cfg RateLimitConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		if cfg.Selector == nil {
			return next
		}
		return &rateLimitTransport{
			next:     next,
			selector: cfg.Selector,
			logger:   cfg.Logger,
			metrics:  cfg.Metrics,
		}
	}
}

type rateLimitTransport struct {
	next     http.RoundTripper
	selector RateLimiterSelector
	logger   observability.Logger
	metrics  observability.MetricsRecorder
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	limiter, bucket := t.selector(req)
	if limiter != nil {
		if err := t.wait(req, limiter, bucket); err != nil {
			return nil, err
		}
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

func (t *rateLimitTransport) wait(req *http.Request, limiter *rate.Limiter, bucket string) error {
	reservation := limiter.Reserve()
	if !reservation.OK() {
		return errors.Newf("rate limit bucket %s cannot grant a token", bucket)
	}

	delay := reservation.Delay()
	if delay <= 0 {
		return nil
	}

	operation := req.URL.Path
	if op, ok := OperationFromContext(req.Context()); ok {
		operation = op.ID
	}
	t.logger.Debug("rate limit delay",
		observability.F("bucket", bucket),
		observability.F("delay", delay),
		observability.F("operation", operation),
	)
	t.metrics.RecordRateLimit(bucket, delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-req.Context().Done():
		reservation.Cancel()
		return errors.Wrapf(req.Context().Err(), "waiting for rate limit bucket %s", bucket)
	}
}
