// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// sweep runs forward elimination in place on the leading n×n block of w:
//
//	for k = 1..n−1, for j = k..n−1:
//	    f = w[j,k−1] / w[k−1,k−1]
//	    w[j,i] = w[j,i] − f·w[k−1,i]   for every column i
//
// Operands are duplicated before Div and before being replaced, because a
// scalar type's Div is allowed to consume its arguments' representation.
// There is no pivoting and no zero-pivot check; a failing Div is returned
// wrapped with the pivot coordinates.
//
// Both elimination engines share this loop: GaussianDirect over T itself,
// GaussianSafeDivision over Fraction[T].
//
// Complexity: Time O(n³), Space O(1) beyond w.
func sweep[T any](w *tensor.Dense[T], a scalar.Arith[T], n int) error {
	var i, j, k int
	var f, curr T
	var err error
	for k = 1; k < n; k++ {
		for j = k; j < n; j++ {
			f, err = a.Div(a.Dup(w.Elem(j, k-1)), a.Dup(w.Elem(k-1, k-1)))
			if err != nil {
				return fmt.Errorf("row %d / pivot (%d,%d): %w", j, k-1, k-1, err)
			}
			for i = 0; i < n; i++ {
				curr = a.Dup(w.Elem(j, i))
				w.SetElem(j, i, a.Sub(curr, a.Mul(f, w.Elem(k-1, i))))
			}
		}
	}

	return nil
}

// diagonalProduct returns Π w[i,i] over the leading n×n block.
func diagonalProduct[T any](w *tensor.Dense[T], a scalar.Arith[T], n int) T {
	p := a.One()
	for i := 0; i < n; i++ {
		p = a.Mul(p, w.Elem(i, i))
	}

	return p
}

// GaussianDirect returns the determinant of m by forward elimination using
// the scalar type's own division, then the product of the diagonal.
//
// Implementation:
//   - Stage 1: guard; n == 1 returns a duplicate of the single entry.
//   - Stage 2: clone m through a.Dup into a working matrix (m is never mutated).
//   - Stage 3: sweep; multiply the diagonal.
//
// Behavior highlights:
//   - One native Div per eliminated row, O(n²) in total. Precision is exactly
//     that of a.Div: truncating integer division produces wrong results for
//     most integer matrices. GaussianSafeDivision exists for that case.
//   - Zero pivots are not special-cased: the outcome is whatever a.Div does
//     with a zero divisor (ErrDivisionByZero for the exact stock types,
//     ±Inf/NaN propagating into the result for floats).
//
// Errors: ErrNilArith, shape sentinels, any error returned by a.Div.
//
// Complexity: Time O(n³), Space O(n²).
func GaussianDirect[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	if guardsEnabled {
		if err := guardMatrix(m, a); err != nil {
			var zero T
			return zero, detErrorf(opGaussianDirect, err)
		}
	}
	d, err := gaussianDirect(m, a)
	if err != nil {
		return d, detErrorf(opGaussianDirect, err)
	}

	return d, nil
}

// gaussianDirect is the unguarded engine used by GaussianDirect and Batch.
func gaussianDirect[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	n := m.Rows()
	if n == 1 {
		return a.Dup(m.Elem(0, 0)), nil
	}

	w := m.Clone(a.Dup)
	if err := sweep(w, a, n); err != nil {
		var zero T
		return zero, err
	}

	return diagonalProduct(w, a, n), nil
}
