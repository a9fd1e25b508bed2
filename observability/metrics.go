package observability

import "time"

// MetricsRecorder receives client metrics. PrometheusRecorder is the
// bundled implementation.
type MetricsRecorder interface {
	// RecordHTTPRequest is called once per completed Dashboard call. path
	// is the operation's path template, such as
	// "/networks/{networkId}/vlans", or the request path with identifiers
	// replaced by ":id" when no operation is known.
	RecordHTTPRequest(method, path string, statusCode int, duration time.Duration)

	// RecordRateLimit is called when a request had to wait for a token.
	RecordRateLimit(bucket string, wait time.Duration)

	// RecordError counts failed calls. errorType is "NetworkError" for
	// transport failures, "RateLimited" for 429 and the status text
	// ("Not Found") for other error responses.
	RecordError(operation, errorType string)
}

// NoopMetricsRecorder returns the recorder used when ClientConfig.Metrics
// is nil.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopMetricsRecorder() MetricsRecorder {
	return discardMetrics{}
}

type discardMetrics struct{}

func (discardMetrics) RecordHTTPRequest(string, string, int, time.Duration) {}
func (discardMetrics) RecordRateLimit(string, time.Duration)                {}
func (discardMetrics) RecordError(string, string)                           {}
