package observability

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements MetricsRecorder with Prometheus collectors.
// Collectors are created unregistered; call Register to expose them.
type PrometheusRecorder struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	rateLimitWait *prometheus.HistogramVec
	failures      *prometheus.CounterVec
}

// Compile-time check to ensure PrometheusRecorder implements MetricsRecorder.
var _ MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates a recorder whose metric names are prefixed with namespace
// (for example "meraki" produces meraki_http_requests_total).
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	return &PrometheusRecorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of Dashboard API requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of Dashboard API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		rateLimitWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rate_limit_wait_seconds",
				Help:      "Time spent waiting on the client-side rate limiter",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"bucket"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of client errors by operation and type",
			},
			[]string{"operation", "type"},
		),
	}
}

// Register registers all collectors with reg.
func (p *PrometheusRecorder) Register(reg prometheus.Registerer) error {
	for _, c := range p.collectors() {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "failed to register collector")
		}
	}
	return nil
}

func (p *PrometheusRecorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.requests, p.duration, p.rateLimitWait, p.failures}
}

// RecordHTTPRequest implements MetricsRecorder.
func (p *PrometheusRecorder) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	p.requests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	p.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRateLimit implements MetricsRecorder.
func (p *PrometheusRecorder) RecordRateLimit(bucket string, wait time.Duration) {
	p.rateLimitWait.WithLabelValues(bucket).Observe(wait.Seconds())
}

// RecordError implements MetricsRecorder.
func (p *PrometheusRecorder) RecordError(operation, errorType string) {
	p.failures.WithLabelValues(operation, errorType).Inc()
}
