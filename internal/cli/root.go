// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spmat/sparse"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitFailure  = 1 // usage, config, output errors
	ExitFormat   = 2 // malformed header/entry, entry out of bounds
	ExitArith    = 3 // dimension mismatch, overflow
	ExitNoSource = 4 // input could not be opened/read
)

// RootOptions holds global flags and the state resolved from them.
type RootOptions struct {
	ConfigFile   string
	LogLevel     string
	LogFormat    string
	Format       string
	Bounds       string
	Overflow     string
	MaxLineBytes int

	cfg    *Config
	logger *slog.Logger
	runID  string
}

// Logger returns the configured logger, or a discarding one before setup.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return newDiscardLogger()
	}
	return o.logger
}

// sparseOptions returns the parse/arith options from the resolved config.
func (o *RootOptions) sparseOptions() ([]sparse.Option, error) {
	if o.cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return o.cfg.SparseOptions()
}

// NewRootCommand creates the root command for the spmat CLI.
func NewRootCommand() *cobra.Command {
	def := DefaultConfig()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "spmat",
		Short: "Sparse integer matrix arithmetic",
		Long: `spmat reads matrices stored as "rows=/cols=" headers followed by
"(row, col, value)" lines and adds, subtracts or multiplies them without
building the dense form. Files ending in .gz or .zst are decoded on the fly;
"-" reads standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.runID = uuid.NewString()
			opts.logger = newLogger(cmd.ErrOrStderr(), cfg.Log).With(
				slog.String("run_id", opts.runID),
				slog.String("command", cmd.Name()),
			)
			opts.logger.Debug("configuration loaded",
				slog.String("output", cfg.Output.Format),
				slog.String("bounds", cfg.Parse.Bounds),
				slog.String("overflow", cfg.Arith.Overflow))
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (default: ./spmat.yaml or <user config>/spmat/spmat.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", def.Log.Level, "log level (debug|info|warn|error)")
	pf.StringVar(&opts.LogFormat, "log-format", def.Log.Format, "log format (text|json)")
	pf.StringVarP(&opts.Format, "format", "f", def.Output.Format, "output format (summary|text|yaml|json)")
	pf.StringVar(&opts.Bounds, "bounds", def.Parse.Bounds, "out-of-range entries at parse time (reject|ignore)")
	pf.StringVar(&opts.Overflow, "overflow", def.Arith.Overflow, "integer overflow policy (error|wrap)")
	pf.IntVar(&opts.MaxLineBytes, "max-line-bytes", def.Parse.MaxLineBytes, "maximum length of one input line")

	// Add subcommands
	cmd.AddCommand(NewOpCommand(opts, sparse.OpAdd))
	cmd.AddCommand(NewOpCommand(opts, sparse.OpSubtract))
	cmd.AddCommand(NewOpCommand(opts, sparse.OpMultiply))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewFmtCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// run executes the command tree against explicit streams.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error (%s): %v\n", ErrorKind(err), err)
		return ExitCode(err)
	}

	return ExitOK
}

// ErrorKind names the failure class of err for user-facing messages.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, sparse.ErrSourceUnavailable):
		return "source unavailable"
	case errors.Is(err, sparse.ErrMalformedHeader):
		return "malformed header"
	case errors.Is(err, sparse.ErrMalformedEntry):
		return "malformed entry"
	case errors.Is(err, sparse.ErrDimension):
		return "dimension error"
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return "dimension mismatch"
	case errors.Is(err, sparse.ErrNumericOverflow):
		return "numeric overflow"
	case errors.Is(err, sparse.ErrUnknownOp):
		return "unknown operation"
	default:
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			return "config"
		}
		return "error"
	}
}

// ExitCode maps err onto the documented exit codes.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, sparse.ErrSourceUnavailable):
		return ExitNoSource
	case errors.Is(err, sparse.ErrMalformedHeader),
		errors.Is(err, sparse.ErrMalformedEntry),
		errors.Is(err, sparse.ErrDimension):
		return ExitFormat
	case errors.Is(err, sparse.ErrDimensionMismatch),
		errors.Is(err, sparse.ErrNumericOverflow):
		return ExitArith
	default:
		return ExitFailure
	}
}
