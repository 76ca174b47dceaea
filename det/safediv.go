// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// GaussianSafeDivision returns the determinant of m by forward elimination
// over Fraction[T], deferring the only native division of T to the end.
//
// Implementation:
//   - Stage 1: guard; n == 1 returns a duplicate of the single entry.
//   - Stage 2: build the fraction workspace w[i,j] = Dup(m[i,j]) / One.
//   - Stage 3: sweep in fraction arithmetic (no Div of T is ever called).
//   - Stage 4: det = Π w[i,i] as a fraction. Zero denominator → Zero;
//     otherwise one a.Div(det.Num, det.Den).
//
// Behavior highlights:
//   - Exact for unbounded integer-like types whose Div is lossy (*big.Int,
//     polynomials): the final quotient is exact.
//   - Fraction parts are never normalized and grow roughly like products of
//     2^(n-1) entries. For int64 they overflow silently from n = 4 with
//     single-digit entries and the result is wrong without an error; float64
//     parts reach ±Inf around n = 6 and the result is NaN. Use BigInt or BigRat
//     beyond 3×3.
//   - A zero accumulated denominator (a zero pivot somewhere on the
//     elimination path) yields Zero instead of a division fault. That is the
//     right answer for singular matrices, but also what non-singular
//     matrices with a vanishing leading principal minor get, e.g. [[0,1],[1,0]].
//
// Errors: ErrNilArith, shape sentinels, any error returned by the final a.Div.
//
// Complexity: Time O(n³) ring operations on fractions whose parts grow with
// every step, Space O(n²).
func GaussianSafeDivision[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	if guardsEnabled {
		if err := guardMatrix(m, a); err != nil {
			var zero T
			return zero, detErrorf(opGaussianSafe, err)
		}
	}
	d, err := gaussianSafeDivision(m, a)
	if err != nil {
		return d, detErrorf(opGaussianSafe, err)
	}

	return d, nil
}

// gaussianSafeDivision is the unguarded engine used by GaussianSafeDivision and Batch.
func gaussianSafeDivision[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	n := m.Rows()
	if n == 1 {
		return a.Dup(m.Elem(0, 0)), nil
	}

	fa := NewFractionArith(a)
	w := eliminateFractions(m, a, n)
	d := diagonalProduct(w, scalar.Arith[Fraction[T]](fa), n)
	if a.IsZero(d.Den) {
		return a.Zero(), nil
	}

	return d.Reduce(a)
}

// eliminateFractions builds the fraction workspace from the leading n×n
// block of m and sweeps it. Fraction division cannot fail, so neither can this.
func eliminateFractions[T any](m *tensor.Dense[T], a scalar.Arith[T], n int) *tensor.Dense[Fraction[T]] {
	w, _ := tensor.NewMatrix(n, n, func(i, j int) Fraction[T] { // n >= 1: cannot fail
		return FractionOf(a, a.Dup(m.Elem(i, j)))
	})
	_ = sweep(w, scalar.Arith[Fraction[T]](NewFractionArith(a)), n)

	return w
}

// EliminateFractions returns the row-echelon form of m computed by the
// safe-division sweep, with every entry left as an unreduced Fraction.
// m is not modified.
//
// Errors: ErrNilArith, shape sentinels.
// Complexity: Time O(n³), Space O(n²).
func EliminateFractions[T any](m *tensor.Dense[T], a scalar.Arith[T]) (*tensor.Dense[Fraction[T]], error) {
	if guardsEnabled {
		if err := guardMatrix(m, a); err != nil {
			return nil, detErrorf(opEliminateFracs, err)
		}
	}

	return eliminateFractions(m, a, m.Rows()), nil
}

// EliminateSafeDivision returns the row-echelon form of m computed by the
// safe-division sweep, each entry reduced to a single T with one a.Div.
// m is not modified.
//
// Entries whose denominator became zero (zero pivot on the elimination path)
// are reduced like any other, so the stock exact types report
// scalar.ErrDivisionByZero for them; the error carries the entry coordinates.
//
// Errors: ErrNilArith, shape sentinels, any error returned by a.Div.
// Complexity: Time O(n³), Space O(n²).
func EliminateSafeDivision[T any](m *tensor.Dense[T], a scalar.Arith[T]) (*tensor.Dense[T], error) {
	if guardsEnabled {
		if err := guardMatrix(m, a); err != nil {
			return nil, detErrorf(opEliminateSafe, err)
		}
	}
	n := m.Rows()
	w := eliminateFractions(m, a, n)

	var firstErr error
	out, _ := tensor.NewMatrix(n, n, func(i, j int) T {
		if firstErr != nil {
			var zero T
			return zero
		}
		v, err := w.Elem(i, j).Reduce(a)
		if err != nil {
			firstErr = fmt.Errorf("entry (%d,%d): %w", i, j, err)
		}
		return v
	})
	if firstErr != nil {
		return nil, detErrorf(opEliminateSafe, firstErr)
	}

	return out, nil
}
