// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels over *Matrix.
//
// Purpose:
//   - Add, Sub and Mul as pure functions: operands are read only, results are
//     freshly allocated and never share a map with an operand.
//   - Keep every kernel proportional to stored entries, never to rows*cols.
//
// Notes:
//   - All writes into a result go through Set, so zero-elimination holds for
//     every intermediate and final state.
//   - The result inherits the left operand's Options.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opNegate    = "Negate"
	opTranspose = "Transpose"
	opApply     = "Apply"
)

// addSub computes out = a ± b over the union of both key sets.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: copy a's rows into a fresh result (a holds no zeros, so a plain
//     map copy keeps I1).
//   - Stage 3: for each entry of b, read-modify-write result(i,j) via Set; a
//     sum that cancels to 0 removes the key.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNumericOverflow under OverflowError.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, subtract bool, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	res := a.Clone() // fresh maps; a is never written
	policy := a.opts.overflow

	var (
		cur, next int64
		err       error
	)
	for i, row := range b.data {
		for j, bv := range row {
			cur = res.Get(i, j)
			if subtract {
				next, err = subInt64(cur, bv, policy)
			} else {
				next, err = addInt64(cur, bv, policy)
			}
			if err != nil {
				return nil, sparseErrorf(opTag, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			res.Set(i, j, next)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNumericOverflow.
// Complexity: O(nnz(A) + nnz(B)).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh matrix.
// It produces exactly the same stored set as Add(A, Negate(B)).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNumericOverflow.
// Complexity: O(nnz(A) + nnz(B)).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, true, opSub) }

// Subtract is an alias for Sub.
func Subtract(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// colValue is one stored cell of an indexed row.
type colValue struct {
	col int
	val int64
}

// rowIndex lists each stored row of a matrix as (col, value) pairs sorted by col.
// Built once per Mul over the right operand.
type rowIndex map[int][]colValue

// buildRowIndex snapshots m's rows in ascending column order.
// Complexity: O(nnz log nnz).
func buildRowIndex(m *Matrix) rowIndex {
	idx := make(rowIndex, len(m.data))
	for k, row := range m.data {
		cells := make([]colValue, 0, len(row))
		for j, v := range row {
			cells = append(cells, colValue{col: j, val: v})
		}
		slices.SortFunc(cells, func(x, y colValue) int { return cmp.Compare(x.col, y.col) })
		idx[k] = cells
	}

	return idx
}

// Mul performs the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: index b by row once (rowIndex).
//   - Stage 3: for each stored row i of A, walk the indexed row k of B for
//     every stored A(i,k) and accumulate A(i,k)*B(k,j) per output column.
//   - Stage 4: flush the finished row i into C through Set.
//
// Behavior highlights:
//   - Only stored × stored products are formed; absent factors are skipped.
//   - A cell whose sum cancels to exactly 0 is never stored.
//   - Under OverflowError only the finished C(i,j) must fit in int64; running
//     totals that leave the range are carried in big.Int, so the outcome does
//     not depend on term order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNumericOverflow.
//
// Complexity:
//   - Time O(nnz(A) × avg-row-density(B) + nnz log nnz for ordering),
//     never the O(nnz(A)·nnz(B)) pairwise scan.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	res := newMatrix(a.rows, b.cols, a.opts)
	if a.nnz == 0 || b.nnz == 0 {
		return res, nil
	}
	bRows := buildRowIndex(b)
	acc := newRowAccumulator(a.opts.overflow)

	for _, i := range sortedKeys(a.data) {
		arow := a.data[i]
		for _, k := range sortedKeys(arow) {
			brow, ok := bRows[k]
			if !ok {
				continue // B(k,*) is all zero
			}
			av := arow[k]
			for _, cell := range brow {
				acc.add(cell.col, av, cell.val)
			}
		}
		if err := acc.flush(res, i); err != nil {
			return nil, sparseErrorf(opMul, err)
		}
	}

	return res, nil
}

// Multiply is an alias for Mul.
func Multiply(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// Negate returns −m. No zero is ever introduced since −v == 0 iff v == 0.
// Errors: ErrNilMatrix; ErrNumericOverflow for math.MinInt64 under OverflowError.
// Complexity: O(nnz).
func Negate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opNegate, err)
	}
	res := newMatrix(m.rows, m.cols, m.opts)
	for e := range m.All() {
		v, err := subInt64(0, e.Value, m.opts.overflow)
		if err != nil {
			return nil, sparseErrorf(opNegate, fmt.Errorf("(%d,%d): %w", e.Row, e.Col, err))
		}
		res.Set(e.Row, e.Col, v)
	}

	return res, nil
}

// Transpose returns mᵀ with shape cols×rows.
// Errors: ErrNilMatrix. Complexity: O(nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}
	res := newMatrix(m.cols, m.rows, m.opts)
	for e := range m.All() {
		res.Set(e.Col, e.Row, e.Value)
	}

	return res, nil
}

// Apply dispatches op over (a, b). It is the single entry point a driver needs
// once it has turned user input into an Op (see ParseOp).
// Errors: ErrUnknownOp plus whatever the selected kernel returns.
func Apply(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Sub(a, b)
	case OpMultiply:
		return Mul(a, b)
	default:
		return nil, sparseErrorf(opApply, fmt.Errorf("%v: %w", op, ErrUnknownOp))
	}
}
