package cli

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lexfrei/go-meraki/internal/overview"
	"github.com/lexfrei/go-meraki/observability"
)

const (
	defaultRefresh   = 2 * time.Minute
	metricsNamespace = "meraki"
)

func (a *app) overviewCmd() *cobra.Command {
	var (
		orgID       string
		exclude     []string
		concurrency int
		watch       time.Duration
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Summarize device status, VPN mode and uplinks per network",
		Example: `  merakictl overview --org 2930418 --exclude "UK transfer"
  merakictl overview --org 2930418 --watch --metrics-addr :9101`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				metrics observability.MetricsRecorder
				gauges  *overview.Gauges
			)
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()

				recorder := observability.NewPrometheusRecorder(metricsNamespace)
				if err := recorder.Register(reg); err != nil {
					return err //nolint:wrapcheck // Already wrapped
				}
				gauges = overview.NewGauges(metricsNamespace)
				if err := gauges.Register(reg); err != nil {
					return err //nolint:wrapcheck // Already wrapped
				}
				metrics = recorder

				stop, err := serveMetrics(metricsAddr, reg, a.logger)
				if err != nil {
					return err
				}
				defer stop()
			}

			client, err := a.client(metrics)
			if err != nil {
				return err
			}

			opts := overview.Options{
				Exclude:     exclude,
				Concurrency: concurrency,
				Logger:      observability.NewZapLogger(a.logger),
			}

			refresh := func() error {
				o, err := overview.Build(ctx, client, orgID, opts)
				if err != nil {
					return err //nolint:wrapcheck // Already wrapped
				}
				if gauges != nil {
					gauges.Update(o)
				}
				return render(a.out, a.cfg.Output, o, func() *table { return overviewTable(o) })
			}

			if err := refresh(); err != nil || watch <= 0 {
				return err
			}

			ticker := time.NewTicker(watch)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := refresh(); err != nil {
						a.logger.Warn("overview refresh failed", zap.Error(err))
					}
				}
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&orgID, "org", "", "organization ID (required)")
	flags.StringArrayVar(&exclude, "exclude", nil, "network name to leave out (repeatable)")
	flags.IntVar(&concurrency, "concurrency", 4, "parallel per-network lookups")
	flags.DurationVar(&watch, "watch", 0, "refresh interval; --watch alone refreshes every 2m")
	flags.Lookup("watch").NoOptDefVal = defaultRefresh.String()
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9101)")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func overviewTable(o *overview.Overview) *table {
	t := &table{header: []string{"NETWORK", "VPN", "UPLINKS", "ONLINE", "OFFLINE", "ALERTING", "DORMANT"}}
	for _, network := range o.Networks {
		d := network.Devices
		t.add(network.Name, network.VPNMode, network.Uplinks, d.Online, d.Offline, d.Alerting, d.Dormant)
	}

	totals := o.Totals
	t.add("TOTAL", "", "", totals.Online, totals.Offline, totals.Alerting, totals.Dormant)

	return t
}

// serveMetrics exposes reg on addr until the returned stop function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
