// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spmat/sparse"
)

// EnvPrefix is the prefix of environment overrides, e.g. SPMAT_LOG_LEVEL.
const EnvPrefix = "SPMAT"

// Config is the driver configuration (file, env and flags merged by viper).
type Config struct {
	Log    LogConfig    `json:"log" mapstructure:"log"`
	Output OutputConfig `json:"output" mapstructure:"output"`
	Parse  ParseConfig  `json:"parse" mapstructure:"parse"`
	Arith  ArithConfig  `json:"arith" mapstructure:"arith"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug|info|warn|error
	Format string `json:"format" mapstructure:"format"` // text|json
}

// OutputConfig selects how results are printed
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"` // summary|text|yaml|json
}

// ParseConfig maps onto sparse parse options
type ParseConfig struct {
	Bounds       string `json:"bounds" mapstructure:"bounds"` // reject|ignore
	MaxLineBytes int    `json:"maxLineBytes" mapstructure:"max_line_bytes"`
}

// ArithConfig maps onto the sparse numeric policy
type ArithConfig struct {
	Overflow string `json:"overflow" mapstructure:"overflow"` // error|wrap
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		Output: OutputConfig{Format: FormatSummary},
		Parse: ParseConfig{
			Bounds:       sparse.DefaultBoundsPolicy.String(),
			MaxLineBytes: sparse.DefaultMaxLineBytes,
		},
		Arith: ArithConfig{Overflow: sparse.DefaultOverflowPolicy.String()},
	}
}

// flagKeys binds config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"log.level":            "log-level",
	"log.format":           "log-format",
	"output.format":        "format",
	"parse.bounds":         "bounds",
	"parse.max_line_bytes": "max-line-bytes",
	"arith.overflow":       "overflow",
}

// LoadConfig merges defaults, an optional config file, SPMAT_* environment
// variables and changed flags (highest precedence).
// With configFile == "" it looks for spmat.{yaml,toml,json} in the working
// directory and in <user config dir>/spmat; a missing file is not an error.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("parse.bounds", def.Parse.Bounds)
	v.SetDefault("parse.max_line_bytes", def.Parse.MaxLineBytes)
	v.SetDefault("arith.overflow", def.Arith.Overflow)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("spmat")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "spmat"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated fields and limits.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: err.Error()}
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("%q must be text or json", c.Log.Format)}
	}
	if !isValidFormat(c.Output.Format) {
		return &ConfigError{Field: "output.format", Message: fmt.Sprintf("%q must be one of %v", c.Output.Format, ValidFormats)}
	}
	if _, err := c.boundsPolicy(); err != nil {
		return err
	}
	if _, err := c.overflowPolicy(); err != nil {
		return err
	}
	if c.Parse.MaxLineBytes <= 0 {
		return &ConfigError{Field: "parse.max_line_bytes", Message: "must be > 0"}
	}

	return nil
}

// SparseOptions converts the parse and arith sections into sparse options.
func (c *Config) SparseOptions() ([]sparse.Option, error) {
	bounds, err := c.boundsPolicy()
	if err != nil {
		return nil, err
	}
	overflow, err := c.overflowPolicy()
	if err != nil {
		return nil, err
	}
	if c.Parse.MaxLineBytes <= 0 {
		return nil, &ConfigError{Field: "parse.max_line_bytes", Message: "must be > 0"}
	}

	return []sparse.Option{
		sparse.WithBoundsPolicy(bounds),
		sparse.WithOverflowPolicy(overflow),
		sparse.WithMaxLineBytes(c.Parse.MaxLineBytes),
	}, nil
}

func (c *Config) boundsPolicy() (sparse.BoundsPolicy, error) {
	switch strings.ToLower(c.Parse.Bounds) {
	case "reject":
		return sparse.BoundsReject, nil
	case "ignore":
		return sparse.BoundsIgnore, nil
	}

	return 0, &ConfigError{Field: "parse.bounds", Message: fmt.Sprintf("%q must be reject or ignore", c.Parse.Bounds)}
}

func (c *Config) overflowPolicy() (sparse.OverflowPolicy, error) {
	switch strings.ToLower(c.Arith.Overflow) {
	case "error":
		return sparse.OverflowError, nil
	case "wrap":
		return sparse.OverflowWrap, nil
	}

	return 0, &ConfigError{Field: "arith.overflow", Message: fmt.Sprintf("%q must be error or wrap", c.Arith.Overflow)}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
