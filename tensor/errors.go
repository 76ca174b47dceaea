// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All constructors, accessors and validators return these sentinels,
// possibly wrapped with %w; callers match them via errors.Is.

package tensor

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive dimension in a requested shape.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrOutOfRange indicates an index outside valid bounds or a coordinate
	// tuple whose length does not match the rank.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRaggedRows indicates FromRows received rows of different lengths.
	ErrRaggedRows = errors.New("tensor: rows have different lengths")

	// ErrNilTensor indicates a nil *Dense was passed where a tensor is required.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNotMatrix signals that a rank-2 tensor was required.
	ErrNotMatrix = errors.New("tensor: tensor is not a matrix")

	// ErrNonSquare signals that a square matrix (or square trailing
	// dimensions) was required.
	ErrNonSquare = errors.New("tensor: matrix is not square")

	// ErrRankTooLow signals that a tensor of rank >= 2 was required.
	ErrRankTooLow = errors.New("tensor: rank must be at least 2")
)
