// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by unit tests and benchmarks.
//   • Keep random inputs seeded so failures reproduce.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmat/sparse"
)

// Fixtures from the reference scenario: a dense-ish 2×2 A and a diagonal B.
const (
	fixtureA = "rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)"
	fixtureB = "rows=2\ncols=2\n(0,0,5)\n(1,1,6)"
)

// mustParse parses s or fails the test immediately.
func mustParse(tb testing.TB, s string, opts ...sparse.Option) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.ParseString(s, opts...)
	if err != nil {
		tb.Fatalf("ParseString: %v", err)
	}

	return m
}

// mustNew allocates an empty r×c matrix or fails the test.
func mustNew(tb testing.TB, r, c int, opts ...sparse.Option) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.New(r, c, opts...)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// cells snapshots the stored entries of m as a map, for whole-matrix asserts.
func cells(m *sparse.Matrix) map[sparse.Key]int64 {
	out := make(map[sparse.Key]int64, m.NNZ())
	for e := range m.All() {
		out[e.Key()] = e.Value
	}

	return out
}

// randomSparse fills an r×c matrix with about nnz non-zero values in [-9,9].
// Deterministic for a given seed.
func randomSparse(tb testing.TB, r, c, nnz int, seed int64) *sparse.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustNew(tb, r, c)
	for n := 0; n < nnz; n++ {
		v := int64(rng.Intn(19) - 9)
		if err := m.SetAt(rng.Intn(r), rng.Intn(c), v); err != nil {
			tb.Fatalf("SetAt: %v", err)
		}
	}

	return m
}

// assertNoStoredZero fails if any stored entry equals zero.
func assertNoStoredZero(tb testing.TB, m *sparse.Matrix) {
	tb.Helper()
	count := 0
	for e := range m.All() {
		count++
		if e.Value == 0 {
			tb.Fatalf("stored zero at (%d,%d)", e.Row, e.Col)
		}
	}
	if count != m.NNZ() {
		tb.Fatalf("NNZ()=%d but All() yielded %d entries", m.NNZ(), count)
	}
}
