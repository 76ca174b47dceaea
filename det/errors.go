// SPDX-License-Identifier: MIT
// Package det: sentinel errors and operation tags.
// Shape violations surface the tensor sentinels (tensor.ErrNotMatrix,
// tensor.ErrNonSquare, ...) and arithmetic failures surface the scalar
// type's own errors; both are wrapped with the operation tag and stay
// matchable via errors.Is.

package det

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArith is returned when a nil arithmetic table is supplied.
	ErrNilArith = errors.New("det: nil arithmetic")

	// ErrUnknownEngine is returned for an Engine value outside the declared set.
	ErrUnknownEngine = errors.New("det: unknown engine")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("det: invalid option supplied")
)

// Operation tags for uniform error wrapping.
const (
	opLaplace         = "Laplace"
	opGaussianDirect  = "GaussianDirect"
	opGaussianSafe    = "GaussianSafeDivision"
	opEliminateSafe   = "EliminateSafeDivision"
	opEliminateFracs  = "EliminateFractions"
	opCofactor        = "Cofactor"
	opBatch           = "Batch"
	opDeterminantWith = "DeterminantWith"
)

// detErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func detErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
