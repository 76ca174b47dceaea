// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit offset formula
//     offset + Σ idx[k]*stride[k].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked Elem/SetElem for kernels that already validated the shape.
//   - Support no-copy views on trailing axes (Subtensor) and copy-based Clone.
//
// Complexity quicksheet:
//   - NewTensor: O(size) generator calls; At/Set: O(rank); Elem/SetElem: O(1);
//     Subtensor: O(rank); Clone: O(size).

package tensor

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSubtensor = "Subtensor"
	ctxNew       = "NewTensor"
	ctxFromRows  = "FromRows"
)

// denseErrorf wraps err with a uniform Dense context and the offending coordinates.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a generic row-major tensor.
//   - shape holds the extent of each axis; stride the row-major step per axis.
//   - data is the shared backing buffer; offset is where this view starts.
//
// Views produced by Subtensor share data with their parent: writes through a
// view are visible in the parent and vice versa. Clone breaks the sharing.
type Dense[T any] struct {
	shape  Shape
	stride []int
	offset int
	data   []T
}

var _ fmt.Stringer = (*Dense[int])(nil)

// NewTensor allocates a tensor of the given shape and fills it by calling
// gen once per coordinate in row-major order.
//
// Implementation:
//   - Stage 1: validate every extent > 0 (rank 0 is legal: one element).
//   - Stage 2: allocate the flat buffer.
//   - Stage 3: walk ForEachIndex and store gen(idx).
//
// The idx slice passed to gen is reused; gen must not retain it.
//
// Errors: ErrInvalidDimensions.
// Complexity: Time O(size), Space O(size).
func NewTensor[T any](shape Shape, gen func(idx []int) T) (*Dense[T], error) {
	if err := shape.validate(); err != nil {
		return nil, fmt.Errorf("%s%v: %w", ctxNew, shape, err)
	}
	t := newZero[T](shape)
	if gen == nil {
		return t, nil
	}
	k := 0
	_ = ForEachIndex(t.shape, func(idx []int) error {
		t.data[k] = gen(idx)
		k++
		return nil
	})

	return t, nil
}

// NewMatrix is the rank-2 convenience form of NewTensor.
// gen(i, j) produces the element at row i, column j.
func NewMatrix[T any](rows, cols int, gen func(i, j int) T) (*Dense[T], error) {
	var g func(idx []int) T
	if gen != nil {
		g = func(idx []int) T { return gen(idx[0], idx[1]) }
	}

	return NewTensor(Shape{rows, cols}, g)
}

// FromRows builds a matrix from nested rows. Elements are stored as given
// (no duplication); the matrix takes ownership of them.
//
// Errors: ErrInvalidDimensions (no rows or empty rows), ErrRaggedRows.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(r), cols, ErrRaggedRows)
		}
	}

	return NewMatrix(len(rows), cols, func(i, j int) T { return rows[i][j] })
}

// newZero allocates a compact tensor of a shape already known to be valid.
func newZero[T any](shape Shape) *Dense[T] {
	s := shape.Clone()

	return &Dense[T]{
		shape:  s,
		stride: stridesOf(s),
		data:   make([]T, s.Size()),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Dense[T]) Shape() Shape { return t.shape.Clone() }

// Rank returns the number of axes.
func (t *Dense[T]) Rank() int { return len(t.shape) }

// Len returns the number of elements.
func (t *Dense[T]) Len() int { return t.shape.Size() }

// IsMatrix reports whether the tensor has rank 2.
func (t *Dense[T]) IsMatrix() bool { return len(t.shape) == 2 }

// Rows returns the extent of the second-to-last axis (0 for rank < 2).
func (t *Dense[T]) Rows() int {
	if len(t.shape) < 2 {
		return 0
	}

	return t.shape[len(t.shape)-2]
}

// Cols returns the extent of the last axis (0 for rank < 2).
func (t *Dense[T]) Cols() int {
	if len(t.shape) < 2 {
		return 0
	}

	return t.shape[len(t.shape)-1]
}

// offsetOf computes the flat offset of idx or reports ErrOutOfRange.
func (t *Dense[T]) offsetOf(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, denseErrorf(method, idx, ErrOutOfRange)
	}
	off := t.offset
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, denseErrorf(method, idx, ErrOutOfRange)
		}
		off += i * t.stride[k]
	}

	return off, nil
}

// At returns the element at idx. The number of coordinates must equal Rank.
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(rank).
func (t *Dense[T]) At(idx ...int) (T, error) {
	off, err := t.offsetOf(ctxAt, idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.data[off], nil
}

// Set stores v at idx. The number of coordinates must equal Rank.
// Errors: ErrOutOfRange (wrapped with coordinates).
func (t *Dense[T]) Set(v T, idx ...int) error {
	off, err := t.offsetOf(ctxSet, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Elem returns element (i, j) of a rank-2 tensor without any checks.
// Callers must have validated the shape; out-of-range indices may read a
// neighbouring element or panic.
func (t *Dense[T]) Elem(i, j int) T {
	return t.data[t.offset+i*t.stride[0]+j*t.stride[1]]
}

// SetElem stores v at (i, j) of a rank-2 tensor without any checks.
func (t *Dense[T]) SetElem(i, j int, v T) {
	t.data[t.offset+i*t.stride[0]+j*t.stride[1]] = v
}

// Subtensor fixes the leading len(idx) axes and returns a view on the
// remaining trailing axes. The view shares storage with t.
//
// Subtensor() returns a view equal to t; fixing every axis returns a rank-0
// view on a single element.
//
// Errors: ErrOutOfRange when len(idx) > Rank or a coordinate is out of bounds.
// Complexity: O(rank), no element copies.
func (t *Dense[T]) Subtensor(idx ...int) (*Dense[T], error) {
	if len(idx) > len(t.shape) {
		return nil, denseErrorf(ctxSubtensor, idx, ErrOutOfRange)
	}
	off := t.offset
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return nil, denseErrorf(ctxSubtensor, idx, ErrOutOfRange)
		}
		off += i * t.stride[k]
	}
	n := len(idx)

	return &Dense[T]{
		shape:  t.shape.Sub(n, len(t.shape)),
		stride: append([]int(nil), t.stride[n:]...),
		offset: off,
		data:   t.data,
	}, nil
}

// Clone returns a compact, independent copy of t. Every element is passed
// through dup; a nil dup copies elements by assignment, which is only safe
// for value types.
// Complexity: O(size).
func (t *Dense[T]) Clone(dup func(T) T) *Dense[T] {
	out := newZero[T](t.shape)
	k := 0
	_ = ForEachIndex(t.shape, func(idx []int) error {
		off := t.offset
		for a, i := range idx {
			off += i * t.stride[a]
		}
		v := t.data[off]
		if dup != nil {
			v = dup(v)
		}
		out.data[k] = v
		k++
		return nil
	})

	return out
}

// Values returns the elements in row-major order as a fresh slice
// (elements themselves are not duplicated).
func (t *Dense[T]) Values() []T {
	return t.Clone(nil).data
}

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String implements fmt.Stringer. Matrices print one bracketed row per line;
// other ranks print the shape followed by the flat row-major values.
func (t *Dense[T]) String() string {
	var sb strings.Builder
	if t.IsMatrix() {
		for i := 0; i < t.shape[0]; i++ {
			sb.WriteString(_fmtRowOpen)
			for j := 0; j < t.shape[1]; j++ {
				if j > 0 {
					sb.WriteString(_fmtSep)
				}
				fmt.Fprint(&sb, t.Elem(i, j))
			}
			sb.WriteString(_fmtRowClose)
		}

		return sb.String()
	}
	sb.WriteString(t.shape.String())
	sb.WriteString(" ")
	sb.WriteString(_fmtRowOpen)
	for k, v := range t.Values() {
		if k > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]")

	return sb.String()
}
