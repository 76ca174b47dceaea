// SPDX-License-Identifier: MIT

package det

import (
	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// guardMatrix is the precondition of every single-matrix entry point:
// non-nil arithmetic, non-nil rank-2 square tensor.
func guardMatrix[T any](m *tensor.Dense[T], a scalar.Arith[T]) error {
	if a == nil {
		return ErrNilArith
	}

	return tensor.ValidateSquareMatrix(m)
}

// guardBatch is the precondition of the batch entry points:
// non-nil arithmetic, rank >= 2, square trailing axes.
func guardBatch[T any](t *tensor.Dense[T], a scalar.Arith[T]) error {
	if a == nil {
		return ErrNilArith
	}

	return tensor.ValidateSquareTrailing(t)
}
