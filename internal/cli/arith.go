// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spmat/sparse"
)

// opCommandDef describes the cobra surface of one arithmetic operation.
type opCommandDef struct {
	use     string
	aliases []string
	short   string
}

var opCommands = map[sparse.Op]opCommandDef{
	sparse.OpAdd:      {use: "add", aliases: []string{"sum"}, short: "Add two matrices (A + B)"},
	sparse.OpSubtract: {use: "sub", aliases: []string{"subtract", "diff"}, short: "Subtract two matrices (A - B)"},
	sparse.OpMultiply: {use: "mul", aliases: []string{"multiply", "product"}, short: "Multiply two matrices (A × B)"},
}

// NewOpCommand creates the command for a single arithmetic operation.
func NewOpCommand(root *RootOptions, op sparse.Op) *cobra.Command {
	def := opCommands[op]
	var out string

	cmd := &cobra.Command{
		Use:     def.use + " <A> <B>",
		Aliases: def.aliases,
		Short:   def.short,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, root, op, args[0], args[1], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the result in text form to this file (.gz/.zst compress)")

	return cmd
}

// NewRunCommand creates the "run" command, which takes the operation as its
// first argument (name, symbol or menu number 1/2/3).
func NewRunCommand(root *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "run <op> <A> <B>",
		Short: "Apply an operation chosen by name or number (1=add, 2=sub, 3=mul)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := sparse.ParseOp(args[0])
			if err != nil {
				return err
			}
			return runOp(cmd, root, op, args[1], args[2], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the result in text form to this file (.gz/.zst compress)")

	return cmd
}

// runOp loads both operands, applies op and renders the result.
func runOp(cmd *cobra.Command, root *RootOptions, op sparse.Op, pathA, pathB, out string) error {
	log := root.Logger().With(slog.String("op", op.String()))
	if pathA == StdinPath && pathB == StdinPath {
		return errors.New("standard input can supply at most one operand")
	}
	opts, err := root.sparseOptions()
	if err != nil {
		return err
	}

	a, err := loadMatrix(log, pathA, cmd.InOrStdin(), opts)
	if err != nil {
		log.Error("load failed", slog.String("path", pathA), slog.Any("err", err))
		return err
	}
	b, err := loadMatrix(log, pathB, cmd.InOrStdin(), opts)
	if err != nil {
		log.Error("load failed", slog.String("path", pathB), slog.Any("err", err))
		return err
	}

	start := time.Now()
	res, err := sparse.Apply(op, a, b)
	if err != nil {
		log.Error("operation failed", slog.Any("err", err))
		return fmt.Errorf("%s %s %s: %w", op, pathA, pathB, err)
	}
	log.Info("operation completed",
		slog.Int("rows", res.Rows()),
		slog.Int("cols", res.Cols()),
		slog.Int("nnz", res.NNZ()),
		slog.Duration("elapsed", time.Since(start)))

	if out != "" {
		if err := saveMatrix(out, res); err != nil {
			return err
		}
		log.Debug("result written", slog.String("path", out))
	}

	return writeResult(cmd.OutOrStdout(), root.cfg.Output.Format, op, res)
}
