// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/gentensor/scalar"

// Identity returns the n×n identity matrix over a: One on the diagonal,
// Zero elsewhere. Every cell gets its own fresh value.
//
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2).
func Identity[T any](n int, a scalar.Arith[T]) (*Dense[T], error) {
	return NewMatrix(n, n, func(i, j int) T {
		if i == j {
			return a.One()
		}
		return a.Zero()
	})
}

// Transpose returns a new matrix mᵀ whose elements are copies made by dup
// (nil dup copies by assignment).
//
// Errors: ErrNilTensor, ErrNotMatrix.
// Complexity: O(r*c).
func Transpose[T any](m *Dense[T], dup func(T) T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateMatrix(m); err != nil {
		return nil, err
	}

	return NewMatrix(m.Cols(), m.Rows(), func(i, j int) T {
		v := m.Elem(j, i)
		if dup != nil {
			return dup(v)
		}
		return v
	})
}

// Stack builds a rank-3 tensor from equally shaped matrices laid out
// along a new leading axis. Elements are passed through dup.
//
// Errors: ErrInvalidDimensions (no matrices), ErrNilTensor, ErrNotMatrix,
// ErrRaggedRows (shapes differ).
func Stack[T any](ms []*Dense[T], dup func(T) T) (*Dense[T], error) {
	if len(ms) == 0 {
		return nil, validatorErrorf("Stack", ErrInvalidDimensions)
	}
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, validatorErrorf("Stack", err)
		}
		if err := ValidateMatrix(m); err != nil {
			return nil, validatorErrorf("Stack", err)
		}
		if m.Rows() != ms[0].Rows() || m.Cols() != ms[0].Cols() {
			return nil, validatorErrorf("Stack", ErrRaggedRows)
		}
	}

	return NewTensor(Shape{len(ms), ms[0].Rows(), ms[0].Cols()}, func(idx []int) T {
		v := ms[idx[0]].Elem(idx[1], idx[2])
		if dup != nil {
			return dup(v)
		}
		return v
	})
}
