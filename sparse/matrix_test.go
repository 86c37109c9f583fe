// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for Matrix storage and accessors.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/require"
)

func TestNew_Shapes(t *testing.T) {
	m, err := sparse.New(3, 4)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Zero(t, m.NNZ())

	// Zero dimensions are a legal, empty shape.
	empty, err := sparse.New(0, 0)
	require.NoError(t, err)
	require.Zero(t, empty.Density())

	_, err = sparse.New(-1, 2)
	require.ErrorIs(t, err, sparse.ErrBadShape)
	_, err = sparse.New(2, -1)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestSet_ZeroElimination(t *testing.T) {
	m := mustNew(t, 3, 3)

	m.Set(1, 2, 7)
	require.Equal(t, int64(7), m.Get(1, 2))
	require.Equal(t, 1, m.NNZ())

	// Overwrite keeps a single key.
	m.Set(1, 2, -4)
	require.Equal(t, int64(-4), m.Get(1, 2))
	require.Equal(t, 1, m.NNZ())

	// Setting zero deletes.
	m.Set(1, 2, 0)
	require.Zero(t, m.Get(1, 2))
	require.Zero(t, m.NNZ())

	// Setting zero on an absent key is a no-op.
	m.Set(0, 0, 0)
	require.Zero(t, m.NNZ())
	assertNoStoredZero(t, m)
}

func TestSet_RandomSequenceKeepsInvariants(t *testing.T) {
	m := randomSparse(t, 20, 20, 600, 7) // many overwrites and zero writes
	assertNoStoredZero(t, m)
	require.NoError(t, sparse.ValidateBounds(m))
}

func TestGet_TotalOnAnyCoordinates(t *testing.T) {
	m := mustNew(t, 2, 2)
	m.Set(0, 0, 1)
	require.Zero(t, m.Get(-1, 0))
	require.Zero(t, m.Get(0, 99))
	require.Zero(t, m.Get(1, 1))
}

func TestAtSetAt_Bounds(t *testing.T) {
	m := mustNew(t, 2, 3)
	require.NoError(t, m.SetAt(1, 2, 9))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	err = m.SetAt(0, 3, 1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.Equal(t, 1, m.NNZ(), "failed SetAt must not mutate")
}

func TestValidateBounds_RawSetOutside(t *testing.T) {
	m := mustNew(t, 2, 2)
	m.Set(5, 5, 1) // Set is unchecked by contract
	require.ErrorIs(t, sparse.ValidateBounds(m), sparse.ErrDimension)
	require.ErrorIs(t, sparse.ValidateBounds(nil), sparse.ErrNilMatrix)
}

func TestAll_RestartableAndEarlyStop(t *testing.T) {
	m := mustParse(t, fixtureA)

	first := cells(m)
	second := cells(m)
	require.Equal(t, first, second)
	require.Len(t, first, 4)

	seen := 0
	for range m.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestRow_YieldsOnlyThatRow(t *testing.T) {
	m := mustParse(t, "rows=3\ncols=3\n(0,0,1)\n(1,0,2)\n(1,2,3)")
	got := map[int]int64{}
	for j, v := range m.Row(1) {
		got[j] = v
	}
	require.Equal(t, map[int]int64{0: 2, 2: 3}, got)

	for range m.Row(2) {
		t.Fatal("row 2 is empty")
	}
}

func TestEntries_RowMajorOrder(t *testing.T) {
	m := mustNew(t, 3, 3)
	m.Set(2, 0, 1)
	m.Set(0, 2, 2)
	m.Set(0, 1, 3)
	m.Set(1, 1, 4)

	require.Equal(t, []sparse.Entry{
		{Row: 0, Col: 1, Value: 3},
		{Row: 0, Col: 2, Value: 2},
		{Row: 1, Col: 1, Value: 4},
		{Row: 2, Col: 0, Value: 1},
	}, m.Entries())
}

func TestClone_Independent(t *testing.T) {
	m := mustParse(t, fixtureA)
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, 100)
	c.Set(1, 1, 0)
	require.Equal(t, int64(1), m.Get(0, 0))
	require.Equal(t, int64(4), m.Get(1, 1))
	require.False(t, m.Equal(c))
}

func TestEqual(t *testing.T) {
	a := mustParse(t, fixtureA)
	require.True(t, a.Equal(mustParse(t, fixtureA)))
	require.False(t, a.Equal(mustParse(t, fixtureB)))
	require.False(t, a.Equal(mustNew(t, 2, 3)))
	require.False(t, a.Equal(nil))

	var n1, n2 *sparse.Matrix
	require.True(t, n1.Equal(n2))
}

func TestDensity(t *testing.T) {
	m := mustParse(t, fixtureB)
	require.InDelta(t, 0.5, m.Density(), 1e-12)
}
