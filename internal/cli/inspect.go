// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewFmtCommand creates the "fmt" command: parse one matrix and print it in
// canonical text form (row-major, one entry per line).
func NewFmtCommand(root *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fmt <FILE>",
		Short: "Validate a matrix file and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.sparseOptions()
			if err != nil {
				return err
			}
			m, err := loadMatrix(root.Logger(), args[0], cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			if out != "" {
				if err := saveMatrix(out, m); err != nil {
					return err
				}
				root.Logger().Info("canonical form written", slog.String("path", out))
				return nil
			}
			_, err = m.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout (.gz/.zst compress)")

	return cmd
}

// NewInfoCommand creates the "info" command: shape, nnz and density.
func NewInfoCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <FILE>",
		Short: "Print shape and fill statistics of a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.sparseOptions()
			if err != nil {
				return err
			}
			m, err := loadMatrix(root.Logger(), args[0], cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), root.cfg.Output.Format, m)
		},
	}
}
