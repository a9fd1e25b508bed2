package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/lexfrei/go-meraki"

// Tracing returns a middleware that opens a client span for every request.
// Spans are named after the operation ID when the request context carries
// an Operation, otherwise "HTTP <method>". A nil provider uses the global one.
func Tracing(provider trace.TracerProvider) func(http.RoundTripper) http.RoundTripper {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(tracerName)

	return func(next http.RoundTripper) http.RoundTripper {
		return &tracingTransport{next: next, tracer: tracer}
	}
}

type tracingTransport struct {
	next   http.RoundTripper
	tracer trace.Tracer
}

func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	name := "HTTP " + req.Method
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", req.Method),
		attribute.String("server.address", req.URL.Host),
	}

	if op, ok := OperationFromContext(req.Context()); ok {
		name = op.ID
		attrs = append(attrs,
			attribute.String("meraki.operation", op.ID),
			attribute.String("url.template", op.PathTemplate),
		)
	}

	ctx, span := t.tracer.Start(req.Context(), name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		//nolint:wrapcheck // Tracing middleware records error but passes it through unchanged
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	return resp, nil
}
