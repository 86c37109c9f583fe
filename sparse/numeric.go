// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"math/big"
)

// addInt64 returns a+b, or ErrNumericOverflow under OverflowError when the
// true sum does not fit in int64.
func addInt64(a, b int64, p OverflowPolicy) (int64, error) {
	s := a + b
	if p == OverflowError && ((a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0)) {
		return 0, ErrNumericOverflow
	}

	return s, nil
}

// subInt64 returns a-b with the same overflow contract as addInt64.
func subInt64(a, b int64, p OverflowPolicy) (int64, error) {
	d := a - b
	if p == OverflowError && ((b > 0 && d > a) || (b < 0 && d < a)) {
		return 0, ErrNumericOverflow
	}

	return d, nil
}

// mulInt64 returns a*b with the same overflow contract as addInt64.
func mulInt64(a, b int64, p OverflowPolicy) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	prod := a * b
	if p == OverflowError {
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || prod/b != a {
			return 0, ErrNumericOverflow
		}
	}

	return prod, nil
}

// rowAccumulator sums the products that land in one output row of Mul.
// Under OverflowError a cell whose running total leaves int64 is promoted to
// big.Int, so only the finished value is range-checked and the outcome does
// not depend on the order of the terms.
type rowAccumulator struct {
	policy OverflowPolicy
	small  map[int]int64
	wide   map[int]*big.Int
}

func newRowAccumulator(p OverflowPolicy) *rowAccumulator {
	return &rowAccumulator{
		policy: p,
		small:  make(map[int]int64),
		wide:   make(map[int]*big.Int),
	}
}

// add accumulates a*b into column col.
func (r *rowAccumulator) add(col int, a, b int64) {
	if r.policy == OverflowWrap {
		r.small[col] += a * b

		return
	}
	if w, ok := r.wide[col]; ok {
		w.Add(w, new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))

		return
	}
	if prod, err := mulInt64(a, b, OverflowError); err == nil {
		if sum, err := addInt64(r.small[col], prod, OverflowError); err == nil {
			r.small[col] = sum

			return
		}
	}
	// slow path: the running total no longer fits in int64
	w := big.NewInt(r.small[col])
	w.Add(w, new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
	r.wide[col] = w
	delete(r.small, col)
}

// flush stores the finished row into m (zeros are dropped by Set) and resets
// the accumulator. A promoted cell whose final value does not fit fails with
// ErrNumericOverflow; the lowest such column is reported.
func (r *rowAccumulator) flush(m *Matrix, row int) error {
	for _, col := range sortedKeys(r.wide) {
		w := r.wide[col]
		if !w.IsInt64() {
			return fmt.Errorf("C(%d,%d): %w", row, col, ErrNumericOverflow)
		}
		r.small[col] = w.Int64()
	}
	for col, v := range r.small {
		m.Set(row, col, v)
	}
	clear(r.small)
	clear(r.wide)

	return nil
}
