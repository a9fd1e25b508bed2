// Package observability holds the logging and metrics hooks of the
// Dashboard client. Both are interfaces with no-op defaults, so a client
// built without them records nothing.
//
// # Logging
//
// Logger takes a message plus key-value fields built with F and Err.
// NewZapLogger adapts a *zap.Logger:
//
//	zl, _ := zap.NewProduction()
//	client, err := dashboard.NewWithConfig(&dashboard.ClientConfig{
//		APIKey: apiKey,
//		Logger: observability.NewZapLogger(zl),
//	})
//
// The client logs each request at debug level, API error responses at
// warn level and transport failures at error level.
//
// # Metrics
//
// MetricsRecorder receives one call per completed request, labeled by the
// operation's path template, plus rate-limit waits per bucket and error
// counts per operation. NewPrometheusRecorder exports them:
//
//	recorder := observability.NewPrometheusRecorder("meraki")
//	if err := recorder.Register(prometheus.DefaultRegisterer); err != nil {
//		return err
//	}
//
// examples/observability wires both, with either log/slog or zap as the
// logger.
package observability
