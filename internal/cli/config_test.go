// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/sparse"
)

func TestLoadConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	opts, err := cfg.SparseOptions()
	require.NoError(t, err)
	o := sparse.NewOptions(opts...)
	require.Equal(t, sparse.BoundsReject, o.Bounds())
	require.Equal(t, sparse.OverflowError, o.Overflow())
	require.Equal(t, sparse.DefaultMaxLineBytes, o.MaxLineBytes())
}

func TestLoadConfig_File(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, dir, "spmat.yaml", `
log:
  level: debug
output:
  format: yaml
parse:
  bounds: ignore
  max_line_bytes: 256
arith:
  overflow: wrap
`)
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, FormatYAML, cfg.Output.Format)
		require.Equal(t, "ignore", cfg.Parse.Bounds)
		require.Equal(t, 256, cfg.Parse.MaxLineBytes)
		require.Equal(t, "wrap", cfg.Arith.Overflow)
		require.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, dir, "spmat.toml", "[output]\nformat = \"json\"\n")
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		require.Equal(t, FormatJSON, cfg.Output.Format)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "absent.yaml"), nil)
		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "arith:\n  overflow: saturate\n")
		_, err := LoadConfig(path, nil)
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "got %v", err)
		require.Equal(t, "arith.overflow", cfgErr.Field)
	})
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolateConfig(t)
	dir, a, b, _ := fixtures(t)
	cfgPath := writeFile(t, dir, "spmat.yaml", "output:\n  format: json\n")

	// file < env < flag
	res := runCLI(t, "", "--config", cfgPath, "info", b)
	require.Equal(t, ExitOK, res.code, res.stderr)
	require.Contains(t, res.stdout, `"nnz": 2`)

	t.Setenv("SPMAT_OUTPUT_FORMAT", "text")
	res = runCLI(t, "", "--config", cfgPath, "-f", "text", "add", a, b)
	require.Equal(t, ExitOK, res.code, res.stderr)
	require.Contains(t, res.stdout, "(1, 1, 10)")

	res = runCLI(t, "", "--config", cfgPath, "add", a, b)
	require.Equal(t, ExitOK, res.code, res.stderr)
	require.Contains(t, res.stdout, "rows=2\ncols=2\n")

	res = runCLI(t, "", "--config", cfgPath, "--format", "summary", "add", a, b)
	require.Equal(t, ExitOK, res.code, res.stderr)
	require.Equal(t, "Operation completed. Result has 4 non-zero entries.\n", res.stdout)

	t.Setenv("SPMAT_PARSE_MAX_LINE_BYTES", "4")
	res = runCLI(t, "", "add", a, b)
	require.Equal(t, ExitFormat, res.code, res.stderr)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"output format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"bounds", func(c *Config) { c.Parse.Bounds = "clip" }, "parse.bounds"},
		{"overflow", func(c *Config) { c.Arith.Overflow = "saturate" }, "arith.overflow"},
		{"max line", func(c *Config) { c.Parse.MaxLineBytes = 0 }, "parse.max_line_bytes"},
	}

	require.NoError(t, DefaultConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			require.Equal(t, tt.field, cfgErr.Field)
			require.Contains(t, cfgErr.Error(), tt.field)
		})
	}
}

func TestConfig_PoliciesCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parse.Bounds = "IGNORE"
	cfg.Arith.Overflow = "Wrap"

	opts, err := cfg.SparseOptions()
	require.NoError(t, err)
	o := sparse.NewOptions(opts...)
	require.Equal(t, sparse.BoundsIgnore, o.Bounds())
	require.Equal(t, sparse.OverflowWrap, o.Overflow())
}
