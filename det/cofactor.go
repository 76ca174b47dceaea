// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// Cofactor writes into dst the (n−1)×(n−1) minor of the leading n×n block of
// src obtained by deleting row `row` and column `col`. Entries are copied
// through a.Dup, so dst never aliases src.
//
// Only the leading (n−1)×(n−1) block of dst is written; dst may be larger,
// which lets one scratch buffer serve several minors.
//
// Errors: ErrNilArith, tensor.ErrNilTensor, tensor.ErrNotMatrix,
// tensor.ErrOutOfRange (n, row or col outside the matrices).
// Complexity: O(n²).
func Cofactor[T any](a scalar.Arith[T], src, dst *tensor.Dense[T], row, col, n int) error {
	if a == nil {
		return detErrorf(opCofactor, ErrNilArith)
	}
	for _, m := range []*tensor.Dense[T]{src, dst} {
		if err := tensor.ValidateNotNil(m); err != nil {
			return detErrorf(opCofactor, err)
		}
		if err := tensor.ValidateMatrix(m); err != nil {
			return detErrorf(opCofactor, err)
		}
	}
	switch {
	case n < 1 || n > src.Rows() || n > src.Cols():
		return detErrorf(opCofactor, fmt.Errorf("size %d: %w", n, tensor.ErrOutOfRange))
	case n-1 > dst.Rows() || n-1 > dst.Cols():
		return detErrorf(opCofactor, fmt.Errorf("destination %d×%d too small: %w", dst.Rows(), dst.Cols(), tensor.ErrOutOfRange))
	case row < 0 || row >= n || col < 0 || col >= n:
		return detErrorf(opCofactor, fmt.Errorf("row %d col %d: %w", row, col, tensor.ErrOutOfRange))
	}
	cofactor(a, src, dst, row, col, n)

	return nil
}

// cofactor is the unchecked kernel behind Cofactor.
func cofactor[T any](a scalar.Arith[T], src, dst *tensor.Dense[T], row, col, n int) {
	var i, j, r, c int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		c = 0
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			dst.SetElem(r, c, a.Dup(src.Elem(i, j)))
			c++
		}
		r++
	}
}
