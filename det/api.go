// SPDX-License-Identifier: MIT

// Package det: public facades.
//
// Facades only compose or forward; each delegates to the canonical engine.

package det

import (
	"fmt"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// Determinant returns det(m) with the safe-division engine: O(n³) and exact
// for unbounded scalar types (BigInt, BigRat). Fixed-width types overflow
// in the unnormalized fractions (int64 from n = 4); see GaussianSafeDivision
// for that and for the zero-pivot caveat.
func Determinant[T any](m *tensor.Dense[T], a scalar.Arith[T]) (T, error) {
	return GaussianSafeDivision(m, a)
}

// DeterminantWith returns det(m) computed by the given engine.
// Errors: ErrUnknownEngine plus everything the chosen engine returns.
func DeterminantWith[T any](m *tensor.Dense[T], a scalar.Arith[T], e Engine) (T, error) {
	switch e {
	case EngineLaplace:
		return Laplace(m, a)
	case EngineGaussianDirect:
		return GaussianDirect(m, a)
	case EngineGaussianSafeDivision:
		return GaussianSafeDivision(m, a)
	default:
		var zero T
		return zero, detErrorf(opDeterminantWith, fmt.Errorf("%v: %w", e, ErrUnknownEngine))
	}
}

// BatchLaplace is Batch with EngineLaplace.
func BatchLaplace[T any](t *tensor.Dense[T], a scalar.Arith[T], opts ...Option) (*tensor.Dense[T], error) {
	return Batch(t, a, EngineLaplace, opts...)
}

// BatchGaussianDirect is Batch with EngineGaussianDirect.
func BatchGaussianDirect[T any](t *tensor.Dense[T], a scalar.Arith[T], opts ...Option) (*tensor.Dense[T], error) {
	return Batch(t, a, EngineGaussianDirect, opts...)
}

// BatchGaussianSafeDivision is Batch with EngineGaussianSafeDivision.
func BatchGaussianSafeDivision[T any](t *tensor.Dense[T], a scalar.Arith[T], opts ...Option) (*tensor.Dense[T], error) {
	return Batch(t, a, EngineGaussianSafeDivision, opts...)
}
