package middleware

import "context"

// Operation identifies the Dashboard API operation a request belongs to.
// The request builder attaches it to the request context so that
// observability and tracing can label requests by path template instead
// of the raw URL.
type Operation struct {
	ID           string
	PathTemplate string
}

type operationKey struct{}

// WithOperation returns a copy of ctx carrying op.
func WithOperation(ctx context.Context, op Operation) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFromContext returns the operation stored in ctx, if any.
func OperationFromContext(ctx context.Context) (Operation, bool) {
	op, ok := ctx.Value(operationKey{}).(Operation)
	return op, ok
}
