// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"strings"
)

// Shape lists the extent of every axis, outermost first.
// The empty Shape describes a rank-0 tensor holding exactly one element.
type Shape []int

// Size returns the number of elements described by s (1 for rank 0).
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Equal reports whether s and o describe the same shape.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Sub returns a copy of the axes [lo, hi). Sub(0, len(s)-2) is the leading
// (batch) shape of a stack of matrices.
func (s Shape) Sub(lo, hi int) Shape {
	return s[lo:hi].Clone()
}

// Unravel converts a row-major flat offset k into coordinates, writing into
// dst when it has room. k must lie in [0, Size()).
// Complexity: O(rank).
func (s Shape) Unravel(k int, dst []int) []int {
	if cap(dst) < len(s) {
		dst = make([]int, len(s))
	}
	dst = dst[:len(s)]
	for i := len(s) - 1; i >= 0; i-- {
		dst[i] = k % s[i]
		k /= s[i]
	}

	return dst
}

// validate rejects any non-positive extent.
func (s Shape) validate() error {
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("axis %d = %d: %w", i, d, ErrInvalidDimensions)
		}
	}

	return nil
}

// String renders the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprint(d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// stridesOf returns row-major strides for s.
func stridesOf(s Shape) []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// ForEachIndex visits every coordinate of shape in row-major order.
// The idx slice is reused between calls; fn must copy it to retain it.
// The walk stops at the first error returned by fn, which is returned as-is.
// A rank-0 shape yields exactly one visit with an empty idx.
//
// Complexity: O(Size · rank) worst case, O(Size) amortized.
func ForEachIndex(shape Shape, fn func(idx []int) error) error {
	for _, d := range shape {
		if d <= 0 {
			return nil // empty space: nothing to visit
		}
	}
	idx := make([]int, len(shape))
	for {
		if err := fn(idx); err != nil {
			return err
		}
		// Odometer increment, last axis fastest.
		axis := len(shape) - 1
		for ; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < shape[axis] {
				break
			}
			idx[axis] = 0
		}
		if axis < 0 {
			return nil
		}
	}
}
