package commands

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/sameunit/internal/app"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding flags.
const EnvPrefix = "SAMEUNIT"

// Config resolves run settings from flags, SAMEUNIT_* environment variables
// and an optional .sameunit.yaml in the working directory, in that order.
type Config struct {
	vip *viper.Viper
}

// runSettings is the shape of the configuration file.
type runSettings struct {
	Pattern     string   `mapstructure:"pattern"`
	Filter      string   `mapstructure:"filter"`
	FailOnError bool     `mapstructure:"fail_on_error"`
	Changed     bool     `mapstructure:"changed"`
	ReportDir   string   `mapstructure:"report_dir"`
	Reports     []string `mapstructure:"reports"`
	LogLevel    string   `mapstructure:"log_level"`
	SendLogTo   string   `mapstructure:"send_log_to"`
	Summary     bool     `mapstructure:"summary"`
}

// NewConfig creates a Config with the defaults of the run command.
func NewConfig() *Config {
	vip := viper.New()
	vip.SetConfigName(strings.TrimSuffix(domain.ConfigFileName, ".yaml"))
	vip.SetConfigType("yaml")
	vip.AddConfigPath(".")

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("pattern", domain.DefaultScriptPattern)
	vip.SetDefault("fail_on_error", true)
	vip.SetDefault("report_dir", domain.DefaultReportPath())
	vip.SetDefault("log_level", "info")
	vip.SetDefault("send_log_to", "console")

	return &Config{vip: vip}
}

// BindFlags binds each flag to the setting of the same name with dashes
// replaced by underscores.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	var errs error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		errs = errors.Join(errs, c.vip.BindPFlag(key, f))
	})
	return errs
}

// RunOptions reads the configuration file if present and returns the
// resolved options for paths.
func (c *Config) RunOptions(paths []string) (app.RunOptions, error) {
	if err := c.vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return app.RunOptions{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "file", domain.ConfigFileName)
		}
	}

	var s runSettings
	if err := c.vip.Unmarshal(&s); err != nil {
		return app.RunOptions{}, zerr.Wrap(err, "failed to unmarshal config")
	}

	return app.RunOptions{
		Paths:       paths,
		Pattern:     s.Pattern,
		Filter:      s.Filter,
		FailOnError: s.FailOnError,
		Changed:     s.Changed,
		ReportDir:   s.ReportDir,
		Reports:     s.Reports,
		LogLevel:    s.LogLevel,
		SendLogTo:   s.SendLogTo,
		Summary:     s.Summary,
	}, nil
}
