// Package config provides the configuration structure for the dashlib CLI
// and for embedding dashlib into larger dashboard update jobs.
//
// The configuration is organized into logical sections:
//   - Log: structured logging level and encoding
//   - CSV: how tabular extracts are parsed
//   - Shrink: memory reduction diagnostics
//
// Example usage:
//
//	cfg := config.Default()
//	cfg.CSV.Delimiter = ";"
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gigc-analytics/dashlib/pkg/errors"
)

// Config is the top-level dashlib configuration
type Config struct {
	// Log controls structured logging
	Log LogConfig `yaml:"log" json:"log" mapstructure:"log"`

	// CSV controls how tabular extracts are parsed
	CSV CSVConfig `yaml:"csv" json:"csv" mapstructure:"csv"`

	// Shrink controls the memory reduction pass
	Shrink ShrinkConfig `yaml:"shrink" json:"shrink" mapstructure:"shrink"`
}

// LogConfig contains logging settings
type LogConfig struct {
	// Level is the minimum level emitted (debug, info, warn, error)
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Encoding selects json or console output
	Encoding string `yaml:"encoding" json:"encoding" mapstructure:"encoding"`
	// Development enables colored, stack-traced output
	Development bool `yaml:"development" json:"development" mapstructure:"development"`
}

// CSVConfig contains CSV parsing settings
type CSVConfig struct {
	// Delimiter is the field separator, one character
	Delimiter string `yaml:"delimiter" json:"delimiter" mapstructure:"delimiter"`
	// Comment marks lines to skip, one character, empty to disable
	Comment string `yaml:"comment" json:"comment" mapstructure:"comment"`
	// HasHeader treats the first row as column names
	HasHeader bool `yaml:"has_header" json:"has_header" mapstructure:"has_header"`
	// NullValues are cell contents treated as missing
	NullValues []string `yaml:"null_values" json:"null_values" mapstructure:"null_values"`
	// TrimSpace strips surrounding whitespace from every cell
	TrimSpace bool `yaml:"trim_space" json:"trim_space" mapstructure:"trim_space"`
}

// ShrinkConfig contains memory reduction settings
type ShrinkConfig struct {
	// Verbose prints before/after memory usage to stdout
	Verbose bool `yaml:"verbose" json:"verbose" mapstructure:"verbose"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		CSV: CSVConfig{
			Delimiter:  ",",
			HasHeader:  true,
			NullValues: []string{""},
		},
		Shrink: ShrinkConfig{
			Verbose: true,
		},
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid log level").
			WithDetail("level", c.Log.Level)
	}

	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return errors.New(errors.ErrorTypeConfig, "log encoding must be json or console").
			WithDetail("encoding", c.Log.Encoding)
	}

	if len([]rune(c.CSV.Delimiter)) != 1 {
		return errors.New(errors.ErrorTypeConfig, "csv delimiter must be a single character").
			WithDetail("delimiter", c.CSV.Delimiter)
	}

	if len([]rune(c.CSV.Comment)) > 1 {
		return errors.New(errors.ErrorTypeConfig, "csv comment must be a single character").
			WithDetail("comment", c.CSV.Comment)
	}

	return nil
}

// LoadFile reads a YAML configuration file over the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read config file").
			WithDetail("path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse config file").
			WithDetail("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
