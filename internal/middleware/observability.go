package middleware

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lexfrei/go-meraki/observability"
)

// unlabeledOperation names requests sent without an Operation in context.
const unlabeledOperation = "http_request"

// Observability returns a middleware that logs every round trip and feeds
// the metrics recorder. Metrics are labeled by the operation's path
// template when the request carries an Operation, and by normalizePath
// otherwise.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{next: next, logger: logger, metrics: metrics}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	operation, path := requestLabels(req)
	log := t.logger.With(
		observability.F("operation", operation),
		observability.F("method", req.Method),
		observability.F("url", req.URL.String()),
	)

	log.Debug("dashboard request")

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("dashboard request failed", observability.F("duration", elapsed), observability.Err(err))
		t.metrics.RecordError(operation, "NetworkError")

		//nolint:wrapcheck // Errors from the rest of the chain pass through unchanged
		return nil, err
	}

	t.metrics.RecordHTTPRequest(req.Method, path, resp.StatusCode, elapsed)

	status := []observability.Field{
		observability.F("status", resp.StatusCode),
		observability.F("duration", elapsed),
	}
	if resp.StatusCode < http.StatusBadRequest {
		log.Debug("dashboard response", status...)
		return resp, nil
	}

	log.Warn("dashboard error response", status...)
	t.metrics.RecordError(operation, errorKind(resp.StatusCode))

	return resp, nil
}

// requestLabels returns the operation name and the low-cardinality path
// used for metrics.
func requestLabels(req *http.Request) (string, string) {
	op, ok := OperationFromContext(req.Context())
	if !ok {
		return unlabeledOperation, normalizePath(req.URL.Path)
	}
	if op.PathTemplate == "" {
		return op.ID, normalizePath(req.URL.Path)
	}
	return op.ID, op.PathTemplate
}

func errorKind(status int) string {
	if status == http.StatusTooManyRequests {
		return "RateLimited"
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "HTTP " + strconv.Itoa(status)
}

// dashboardIDSegment matches a path segment holding an organization ID,
// a network ID, a device serial, a client ID or a MAC address.
var dashboardIDSegment = regexp.MustCompile(
	`^(?:\d{4,}|[LN]_\d+|Q[0-9A-Z]{3}-[0-9A-Z]{4}-[0-9A-Z]{4}|k[0-9a-f]{6}|(?:[0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2})$`,
)

var normalizedPaths sync.Map

// normalizePath replaces Dashboard identifiers with ":id" so raw request
// paths stay usable as a metrics label:
//
//	/api/v0/organizations/549236/admins           -> /api/v0/organizations/:id/admins
//	/api/v0/devices/Q234-ABCD-5678/switchPorts/3  -> /api/v0/devices/:id/switchPorts/3
func normalizePath(path string) string {
	if cached, ok := normalizedPaths.Load(path); ok {
		//nolint:forcetypeassert // Only strings are stored
		return cached.(string)
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if dashboardIDSegment.MatchString(segment) {
			segments[i] = ":id"
		}
	}
	normalized := strings.Join(segments, "/")
	normalizedPaths.Store(path, normalized)

	return normalized
}
