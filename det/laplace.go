// SPDX-License-Identifier: MIT

package det

import (
	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// Laplace returns the determinant of the square matrix m by cofactor
// expansion along the first row.
//
// Implementation:
//   - Stage 1: guard (non-nil arithmetic, square matrix).
//   - Stage 2: n == 1 returns a duplicate of the single entry.
//   - Stage 3: for each column i: minor(0, i) into a per-level scratch,
//     recurse, accumulate det += sign · m[0,i] · minorDet, flip sign.
//
// Behavior highlights:
//   - Uses Add/Mul/Neg/Dup only, never Div: exact for exact scalar types,
//     which makes it the reference for the elimination engines.
//   - m is read-only.
//
// Errors: ErrNilArith, tensor.ErrNilTensor, tensor.ErrNotMatrix, tensor.ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) (one (k−1)×(k−1) scratch per recursion level k).
//
// AI-Hints:
//   - Fine up to n ≈ 8–9. Past that use GaussianSafeDivision.
func Laplace[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	if guardsEnabled {
		if err := guardMatrix(m, a); err != nil {
			var zero T
			return zero, detErrorf(opLaplace, err)
		}
	}

	return laplace(m, a)
}

// laplace is the unguarded engine used by Laplace and the batch dispatcher.
func laplace[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	return laplaceN(m, a, m.Rows()), nil
}

// laplaceN expands the leading n×n block of m. n may be smaller than the
// matrix size; the public surface always passes the full size. n <= 0 yields
// One (empty product).
//
// The scratch buffer of this level is allocated once, reused for every
// column, and dropped on return; deeper levels allocate their own.
func laplaceN[T any](m *tensor.Dense[T], a scalar.Arith[T], n int) T {
	switch {
	case n <= 0:
		return a.One()
	case n == 1:
		return a.Dup(m.Elem(0, 0))
	}

	det := a.Zero()
	sign := a.One()
	scratch, _ := tensor.NewMatrix[T](n-1, n-1, nil) // n >= 2: cannot fail
	for i := 0; i < n; i++ {
		cofactor(a, m, scratch, 0, i, n)
		term := a.Mul(m.Elem(0, i), laplaceN(scratch, a, n-1))
		det = a.Add(det, a.Mul(sign, term))
		sign = a.Neg(sign)
	}

	return det
}
