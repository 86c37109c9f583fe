// SPDX-License-Identifier: MIT

// Package sparse offers an integer sparse matrix that stores only non-zero
// entries, together with addition, subtraction and multiplication kernels and
// a line-oriented text format for reading and writing matrices.
//
// What & Why:
//
//	Large matrices that are overwhelmingly zero waste memory and time when
//	stored densely. A *Matrix keeps a per-row map (row → col → value) of the
//	non-zero cells only, so memory is O(nnz) and every kernel walks stored
//	entries instead of the r×c index space.
//
// Invariants:
//
//   - No stored entry is zero: Set(i, j, 0) deletes the cell (zero-elimination).
//   - Keys are unique: setting an existing cell overwrites it (last-write-wins).
//   - Matrices built by Parse only hold keys inside the declared bounds.
//   - Kernels never mutate operands and never alias operand storage.
//
// Text format:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	...
//
// Blank lines are ignored. Parse is all-or-nothing: any malformed line aborts
// with a *ParseError that unwraps to ErrMalformedHeader, ErrMalformedEntry or
// ErrDimension. Open/read failures unwrap to ErrSourceUnavailable instead.
//
// Complexity:
//
//	Get/Set: O(1) average.
//	Add/Sub: O(nnz(A) + nnz(B)).
//	Mul:     O(nnz(A) × avg-row-density(B)) plus a one-off row index over B.
//
// Concurrency:
//
//	A *Matrix is not safe for concurrent mutation. Kernels share nothing, so
//	independent operations on distinct matrices may run in parallel freely.
package sparse
