package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lexfrei/go-meraki/api/dashboard"
)

const (
	envPrefix      = "MERAKI"
	configFileName = ".merakictl"
)

// Config is the resolved merakictl configuration. Sources are applied
// in order of precedence: flags, MERAKI_* environment variables, the
// config file, defaults.
type Config struct {
	APIKey             string        `mapstructure:"api-key"`
	BaseURL            string        `mapstructure:"base-url"`
	Output             string        `mapstructure:"output"`
	RateLimit          int           `mapstructure:"rate-limit"`
	Timeout            time.Duration `mapstructure:"timeout"`
	InsecureSkipVerify bool          `mapstructure:"insecure-skip-verify"`
	Debug              bool          `mapstructure:"debug"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base-url", dashboard.DefaultBaseURL)
	v.SetDefault("output", formatTable)
	v.SetDefault("rate-limit", 0)
	v.SetDefault("timeout", time.Duration(0))

	return v
}

// loadConfig reads the config file, if any, and resolves flags bound to v.
// An explicit configFile must exist; the default $HOME/.merakictl.yaml is
// optional.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, configFile string) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind flags")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrapf(err, "failed to read config file %s",
					filepath.Join(home, configFileName+".yaml"))
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}

	switch cfg.Output {
	case formatTable, formatJSON, formatYAML:
	default:
		return Config{}, errors.Newf("unsupported output %q (expected table|json|yaml)", cfg.Output)
	}

	return cfg, nil
}
