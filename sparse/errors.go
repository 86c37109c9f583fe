// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every failure surfaced by this package matches exactly one of these
// sentinels via errors.Is. Kernels wrap them with an operation tag through
// sparseErrorf; the parser wraps them in *ParseError to carry line context.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." to keep logs greppable.
// Callers match with errors.Is; the wrapping text is informational only.

var (
	// ErrSourceUnavailable indicates the input stream could not be opened or read.
	// It is never used for format problems.
	ErrSourceUnavailable = errors.New("sparse: source unavailable")

	// ErrMalformedHeader signals a missing, misordered or non-integer rows=/cols= line.
	ErrMalformedHeader = errors.New("sparse: malformed header")

	// ErrMalformedEntry signals an entry line that violates the "(r, c, v)" rules.
	ErrMalformedEntry = errors.New("sparse: malformed entry")

	// ErrDimension signals an entry whose row or col lies outside the declared bounds.
	ErrDimension = errors.New("sparse: entry outside declared dimensions")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNumericOverflow indicates an int64 result that does not fit under OverflowError.
	// For Mul this is the finished cell value, not an intermediate sum.
	ErrNumericOverflow = errors.New("sparse: integer overflow")

	// ErrBadShape is returned by New for negative dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates an index outside [0,rows)×[0,cols) on the checked accessors.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a kernel.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnknownOp indicates an operation tag outside Add|Subtract|Multiply.
	ErrUnknownOp = errors.New("sparse: unknown operation")
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Rule names the specific format rule a ParseError violated.
type Rule string

// Parse rules. Header rules unwrap to ErrMalformedHeader, entry rules to
// ErrMalformedEntry, RuleBounds to ErrDimension. RuleLineLength unwraps to
// ErrMalformedHeader while rows=/cols= is still expected, ErrMalformedEntry after.
const (
	RuleHeaderMissing Rule = "header-missing" // stream ended before rows=/cols=
	RuleHeaderOrder   Rule = "header-order"   // rows= and cols= absent or swapped
	RuleHeaderValue   Rule = "header-value"   // header value is not a non-negative integer
	RuleParentheses   Rule = "parentheses"    // entry not wrapped in exactly one pair of ( )
	RuleFieldCount    Rule = "field-count"    // entry does not hold exactly three fields
	RuleInteger       Rule = "integer"        // a field does not parse as an integer
	RuleLineLength    Rule = "line-length"    // line exceeds the configured maximum
	RuleBounds        Rule = "bounds"         // row/col at or beyond rows/cols
)

// ParseError reports the first malformed line of a text stream.
// Err is one of ErrMalformedHeader, ErrMalformedEntry or ErrDimension.
type ParseError struct {
	Line int    // 1-based line number in the stream
	Rule Rule   // violated rule
	Text string // offending line, trimmed
	Err  error  // sentinel
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v: %q", e.Line, e.Rule, e.Err, e.Text)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// headerError builds a header ParseError.
func headerError(line int, rule Rule, text string) error {
	return &ParseError{Line: line, Rule: rule, Text: text, Err: ErrMalformedHeader}
}

// entryError builds an entry ParseError.
func entryError(line int, rule Rule, text string) error {
	return &ParseError{Line: line, Rule: rule, Text: text, Err: ErrMalformedEntry}
}
