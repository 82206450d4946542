// Package config loads run configuration from defaults, an optional YAML
// config file, environment variables and (via cmd) flag overrides.
package config

import (
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hepworks/higgs-eda/dataset"
	"github.com/hepworks/higgs-eda/pkg/errors"
	"github.com/hepworks/higgs-eda/pkg/log"
)

// Config holds every knob of an EDA run.
type Config struct {
	Input    string   `mapstructure:"input" yaml:"input"`
	NRows    int      `mapstructure:"nrows" yaml:"nrows"`
	OutDir   string   `mapstructure:"outdir" yaml:"outdir"`
	Features []string `mapstructure:"features" yaml:"features"`
	Seed     int64    `mapstructure:"seed" yaml:"seed"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
}

// Load loads configuration.
// Precedence: flags (applied by cmd) > env (HIGGSEDA_*) > config file > defaults.
// If cfgFile is empty, an optional higgs-eda.yaml in the working directory is used.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HIGGSEDA")
	v.AutomaticEnv()

	// Defaults mirror the documented run parameters.
	v.SetDefault("input", "HIGGS.csv.gz")
	v.SetDefault("nrows", 500000)
	v.SetDefault("outdir", "results/eda")
	v.SetDefault("features", dataset.DefaultPlotFeatures())
	v.SetDefault("seed", 42)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("higgs-eda")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for values no run could accept.
func (c *Config) Validate() error {
	if c.NRows < 0 {
		return errors.NewValidationError("nrows", "must be non-negative", c.NRows)
	}
	if c.Input == "" {
		return errors.NewValidationError("input", "must not be empty", c.Input)
	}
	if c.OutDir == "" {
		return errors.NewValidationError("outdir", "must not be empty", c.OutDir)
	}
	if !log.ValidLevel(c.LogLevel) {
		return errors.NewValidationError("log_level", "must be one of debug|info|warn|error", c.LogLevel)
	}
	return nil
}

// Save writes the configuration as YAML to path.
func Save(c *Config, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}
