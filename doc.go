// SPDX-License-Identifier: MIT

// Package spmat is a small toolkit for sparse integer matrices: only the
// non-zero cells are stored, and arithmetic never builds the dense form.
//
// What is inside?
//
//	sparse/        Matrix store, text parser, Add/Sub/Mul kernels, serializer
//	internal/cli/  cobra commands, viper config, slog logging, .gz/.zst streams
//	cmd/spmat/     the spmat binary
//
// The text format is two header lines followed by one entry per line:
//
//	rows=2
//	cols=2
//	(0, 0, 1)
//	(1, 1, 4)
//
// Absent cells are zero. Duplicate keys keep the last value, and zero-valued
// entries are never stored.
//
// Quick start:
//
//	a, _ := sparse.ParseFile("a.txt")
//	b, _ := sparse.ParseFile("b.txt")
//	c, err := sparse.Mul(a, b) // errors.Is(err, sparse.ErrDimensionMismatch) on bad shapes
//
// or from the shell:
//
//	spmat mul -f text a.txt b.txt.gz
//
//	go get github.com/katalvlaran/spmat/sparse
package spmat
