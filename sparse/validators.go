// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single source of truth for operand checks used by the kernels.
//   - Return sentinels wrapped with the validator tag so call sites can wrap
//     once more with their own op tag and still match via errors.Is.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Shape.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%d×%d vs %d×%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%d×%d × %d×%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBounds ensures every stored key of m lies inside its declared shape.
// Matrices built through Parse or SetAt always pass; raw Set may not.
// Errors: ErrNilMatrix, ErrDimension. Complexity: O(nnz).
func ValidateBounds(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateBounds", err)
	}
	for e := range m.All() {
		if !m.inBounds(e.Row, e.Col) {
			return validatorErrorf("ValidateBounds", fmt.Errorf("(%d,%d) in %d×%d: %w", e.Row, e.Col, m.rows, m.cols, ErrDimension))
		}
	}

	return nil
}
