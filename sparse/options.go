// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for parsing and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options travel with a *Matrix. Kernels build their result with the
//     left operand's options, so a policy chosen at parse time follows the
//     data through Add/Sub/Mul.
package sparse

import "fmt"

// BoundsPolicy decides what Parse does with entries outside the declared shape.
type BoundsPolicy uint8

const (
	// BoundsReject fails the parse with ErrDimension (recommended).
	BoundsReject BoundsPolicy = iota
	// BoundsIgnore silently drops the entry.
	BoundsIgnore
)

// String returns the config spelling of the policy.
func (p BoundsPolicy) String() string {
	switch p {
	case BoundsReject:
		return "reject"
	case BoundsIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("BoundsPolicy(%d)", uint8(p))
	}
}

// OverflowPolicy decides how int64 overflow inside kernels is handled.
type OverflowPolicy uint8

const (
	// OverflowError fails the operation with ErrNumericOverflow.
	OverflowError OverflowPolicy = iota
	// OverflowWrap keeps Go's two's-complement wrapping.
	OverflowWrap
)

// String returns the config spelling of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowError:
		return "error"
	case OverflowWrap:
		return "wrap"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoundsPolicy rejects out-of-range entries at parse time.
	DefaultBoundsPolicy = BoundsReject

	// DefaultOverflowPolicy reports overflow instead of wrapping.
	DefaultOverflowPolicy = OverflowError

	// DefaultMaxLineBytes caps a single input line (bufio.Scanner buffer).
	DefaultMaxLineBytes = 1 << 20
)

const (
	panicMaxLineInvalid  = "sparse: WithMaxLineBytes: n must be > 0"
	panicBoundsInvalid   = "sparse: WithBoundsPolicy: unknown policy"
	panicOverflowInvalid = "sparse: WithOverflowPolicy: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	bounds       BoundsPolicy   // DefaultBoundsPolicy
	overflow     OverflowPolicy // DefaultOverflowPolicy
	maxLineBytes int            // DefaultMaxLineBytes
}

// WithBoundsPolicy selects how Parse treats entries outside rows/cols.
// Panics on an unknown policy value.
func WithBoundsPolicy(p BoundsPolicy) Option {
	if p != BoundsReject && p != BoundsIgnore {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) { o.bounds = p }
}

// WithOverflowPolicy selects checked or wrapping int64 arithmetic.
// Panics on an unknown policy value.
func WithOverflowPolicy(p OverflowPolicy) Option {
	if p != OverflowError && p != OverflowWrap {
		panic(panicOverflowInvalid)
	}

	return func(o *Options) { o.overflow = p }
}

// WithMaxLineBytes bounds the length of one input line.
// Longer lines fail with RuleLineLength. Panics when n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Bounds reports the effective bounds policy.
func (o Options) Bounds() BoundsPolicy { return o.bounds }

// Overflow reports the effective overflow policy.
func (o Options) Overflow() OverflowPolicy { return o.overflow }

// MaxLineBytes reports the effective line cap.
func (o Options) MaxLineBytes() int { return o.maxLineBytes }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		bounds:       DefaultBoundsPolicy,
		overflow:     DefaultOverflowPolicy,
		maxLineBytes: DefaultMaxLineBytes,
	}
}

// gatherOptions applies user setters over defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
