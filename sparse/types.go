// SPDX-License-Identifier: MIT

// Package sparse: boundary types used by the parser, serializer and kernels.
// The *Matrix type itself lives in matrix.go; Options in options.go; errors in
// errors.go.
package sparse

import (
	"fmt"
	"strings"
)

// Key addresses one cell. It mirrors the (row, col) pair of the text format.
type Key struct {
	Row int
	Col int
}

// Entry is a (row, col, value) triple. It only exists at the boundaries:
// iteration, parsing and serialization. Stored entries never carry Value == 0.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Key returns the coordinates of e.
func (e Entry) Key() Key { return Key{Row: e.Row, Col: e.Col} }

// String renders e in the text format, e.g. "(0, 1, -3)".
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// Op selects one of the three arithmetic entry points.
type Op uint8

const (
	opInvalid Op = iota
	// OpAdd computes A + B.
	OpAdd
	// OpSubtract computes A − B.
	OpSubtract
	// OpMultiply computes A × B.
	OpMultiply
)

// String returns the canonical lower-case name of the op.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// opAliases maps driver spellings (names, symbols, menu numbers) to ops.
var opAliases = map[string]Op{
	"add": OpAdd, "addition": OpAdd, "sum": OpAdd, "+": OpAdd, "1": OpAdd,
	"sub": OpSubtract, "subtract": OpSubtract, "subtraction": OpSubtract, "diff": OpSubtract, "-": OpSubtract, "2": OpSubtract,
	"mul": OpMultiply, "multiply": OpMultiply, "multiplication": OpMultiply, "product": OpMultiply, "*": OpMultiply, "x": OpMultiply, "3": OpMultiply,
}

// ParseOp maps a case-insensitive name, symbol or menu number to an Op.
// Unknown input fails with ErrUnknownOp.
func ParseOp(s string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}

	return opInvalid, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}
