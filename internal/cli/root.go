// Package cli implements merakictl, a command-line client for the Meraki
// Dashboard API.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lexfrei/go-meraki/api/dashboard"
	"github.com/lexfrei/go-meraki/internal/middleware"
	"github.com/lexfrei/go-meraki/observability"
)

// Execute runs merakictl with the process arguments. SIGINT and SIGTERM
// cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        Config
	out        io.Writer
	errOut     io.Writer
	logger     *zap.Logger
}

// NewRootCmd builds the merakictl command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: newViper(), out: out, errOut: errOut, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "merakictl",
		Short:         "Command-line client for the Meraki Dashboard API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $HOME/.merakictl.yaml)")
	flags.String("api-key", "", "Dashboard API key (env MERAKI_API_KEY)")
	flags.String("base-url", dashboard.DefaultBaseURL, "Dashboard API base URL (env MERAKI_BASE_URL)")
	flags.StringP("output", "o", formatTable, "output format: table|json|yaml")
	flags.Int("rate-limit", 0, "client-side requests per second per organization (0 disables)")
	flags.Duration("timeout", 0, "HTTP client timeout (0 means none)")
	flags.Bool("insecure-skip-verify", false, "skip TLS certificate verification (debugging proxies only)")
	flags.Bool("debug", false, "log every request to stderr")

	cmd.AddCommand(
		a.orgsCmd(),
		a.networksCmd(),
		a.devicesCmd(),
		a.endpointsCmd(),
		a.modelsCmd(),
		a.callCmd(),
		a.overviewCmd(),
		a.auditCmd(),
		a.versionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, cmd.Flags(), a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.errOut, cfg.Debug)

	return nil
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core)
}

// client builds a Dashboard client from the resolved configuration.
func (a *app) client(metrics observability.MetricsRecorder) (*dashboard.Client, error) {
	if a.cfg.APIKey == "" {
		return nil, errors.New("an API key is required: set --api-key, MERAKI_API_KEY or api-key in the config file")
	}

	cfg := &dashboard.ClientConfig{
		APIKey:             a.cfg.APIKey,
		BaseURL:            a.cfg.BaseURL,
		Timeout:            a.cfg.Timeout,
		RateLimitPerSecond: a.cfg.RateLimit,
		Logger:             observability.NewZapLogger(a.logger),
		Metrics:            metrics,
	}
	if a.cfg.InsecureSkipVerify {
		cfg.TLSConfig = middleware.InsecureSkipVerify()
	}

	client, err := dashboard.NewWithConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	return client, nil
}
