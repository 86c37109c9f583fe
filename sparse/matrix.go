// SPDX-License-Identifier: MIT

// Package sparse - per-row map storage & accessors.
//
// Purpose:
//   - Keep only non-zero cells in a row → col → value map.
//   - Provide total O(1) Get/Set for kernels and bounds-checked At/SetAt for callers.
//   - Expose lazy, restartable iteration (All, Row) and a canonical ordered
//     snapshot (Entries) for serialization and tests.
//
// Complexity quicksheet:
//   - New: O(1); Get/Set/At/SetAt: O(1) average; NNZ: O(1);
//     All: O(nnz) lazily; Entries: O(nnz log nnz); Clone/Equal: O(nnz).

package sparse

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxAt    = "At"
	ctxSetAt = "SetAt"
)

// Matrix is an integer matrix that stores non-zero cells only.
//   - rows, cols hold the declared shape (>= 0).
//   - data maps row → (col → value); an empty row map is never kept.
//   - nnz caches the number of stored cells.
//   - opts carries the parse/numeric policy into kernels.
type Matrix struct {
	rows, cols int
	data       map[int]map[int]int64
	nnz        int
	opts       Options
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix.
// Zero dimensions are legal (an empty shape holds no cells); negative ones
// fail with ErrBadShape.
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(ctxNew, fmt.Errorf("%d×%d: %w", rows, cols, ErrBadShape))
	}

	return newMatrix(rows, cols, gatherOptions(opts...)), nil
}

// newMatrix is the internal constructor; callers guarantee non-negative shape.
func newMatrix(rows, cols int, o Options) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make(map[int]map[int]int64),
		opts: o,
	}
}

// Rows returns the declared number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Options returns the policy snapshot the matrix was built with.
func (m *Matrix) Options() Options { return m.opts }

// Get returns the value at (row, col), or 0 when no entry is stored.
// Get is total: any coordinates, including out-of-range ones, are accepted.
// Complexity: O(1) average.
func (m *Matrix) Get(row, col int) int64 {
	return m.data[row][col] // nil inner map reads yield 0
}

// Set stores v at (row, col). v == 0 removes the cell (no-op when absent);
// any other value inserts or overwrites it.
// No bounds check is made here: bounds are enforced once, by Parse and by SetAt.
// Complexity: O(1) average.
func (m *Matrix) Set(row, col int, v int64) {
	if v == 0 {
		m.remove(row, col)
		return
	}
	if m.data == nil {
		m.data = make(map[int]map[int]int64)
	}
	r, ok := m.data[row]
	if !ok {
		r = make(map[int]int64)
		m.data[row] = r
	}
	if _, exists := r[col]; !exists {
		m.nnz++
	}
	r[col] = v
}

// remove deletes (row, col) and drops the row map once it becomes empty.
func (m *Matrix) remove(row, col int) {
	r, ok := m.data[row]
	if !ok {
		return
	}
	if _, exists := r[col]; !exists {
		return
	}
	delete(r, col)
	m.nnz--
	if len(r) == 0 {
		delete(m.data, row)
	}
}

// At is the bounds-checked variant of Get.
// Returns ErrOutOfRange when row ∉ [0,rows) or col ∉ [0,cols).
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, sparseErrorf(ctxAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.Get(row, col), nil
}

// SetAt is the bounds-checked variant of Set.
// Returns ErrOutOfRange and leaves the matrix untouched on bad coordinates.
func (m *Matrix) SetAt(row, col int, v int64) error {
	if !m.inBounds(row, col) {
		return sparseErrorf(ctxSetAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	m.Set(row, col, v)

	return nil
}

// inBounds reports whether (row, col) lies inside the declared shape.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return m.nnz }

// Density returns nnz / (rows*cols), or 0 for an empty shape.
func (m *Matrix) Density() float64 {
	cells := float64(m.rows) * float64(m.cols)
	if cells == 0 {
		return 0
	}

	return float64(m.nnz) / cells
}

// All returns a lazy sequence over every stored entry.
// Order is unspecified; the sequence may be ranged over any number of times.
// The matrix must not be mutated while a range over All is in progress.
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, row := range m.data {
			for j, v := range row {
				if !yield(Entry{Row: i, Col: j, Value: v}) {
					return
				}
			}
		}
	}
}

// Row returns a lazy sequence over the stored (col, value) pairs of row i.
// Rows without entries (or out of range) yield nothing.
func (m *Matrix) Row(i int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for j, v := range m.data[i] {
			if !yield(j, v) {
				return
			}
		}
	}
}

// Entries returns every stored entry in row-major order (row asc, then col asc).
// The slice is freshly allocated.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.nnz)
	for _, i := range sortedKeys(m.data) {
		row := m.data[i]
		for _, j := range sortedKeys(row) {
			out = append(out, Entry{Row: i, Col: j, Value: row[j]})
		}
	}

	return out
}

// Clone returns a deep copy with the same shape, entries and options.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := newMatrix(m.rows, m.cols, m.opts)
	for i, row := range m.data {
		out.data[i] = maps.Clone(row)
	}
	out.nnz = m.nnz

	return out
}

// Equal reports whether m and other have the same shape and the same stored
// entries. Options are not compared. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || m.nnz != other.nnz {
		return false
	}
	for i, row := range m.data {
		orow, ok := other.data[i]
		if !ok || !maps.Equal(row, orow) {
			return false
		}
	}

	return true
}

// sortedKeys returns the keys of a map in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)

	return keys
}
