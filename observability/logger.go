package observability

// Field is one key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Err builds the "error" field. The value is the error text, or nil for a
// nil error, so every Logger implementation renders it the same way.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the structured logger used by the Dashboard client and the
// overview builder. NewZapLogger adapts a *zap.Logger; any other library
// can be plugged in by implementing these five methods.
type Logger interface {
	// Debug records per-request detail: rejected calls, rate-limit waits.
	Debug(msg string, fields ...Field)

	// Info records notable events that need no action.
	Info(msg string, fields ...Field)

	// Warn records API errors and degraded results.
	Warn(msg string, fields ...Field)

	// Error records transport failures.
	Error(msg string, fields ...Field)

	// With returns a logger that adds fields to every entry.
	With(fields ...Field) Logger
}

type noopLogger struct{}

// NoopLogger returns a Logger that discards everything. Clients use it
// when ClientConfig.Logger is nil.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l noopLogger) With(...Field) Logger { return l }
