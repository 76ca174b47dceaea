// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their own operation tag and still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package tensor

import "fmt"

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Returns ErrNilTensor if t == nil.
func ValidateNotNil[T any](t *Dense[T]) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateMatrix ensures t has rank 2. Assumes t is not nil.
func ValidateMatrix[T any](t *Dense[T]) error {
	if !t.IsMatrix() {
		return validatorErrorf(fmt.Sprintf("ValidateMatrix: rank %d", t.Rank()), ErrNotMatrix)
	}

	return nil
}

// ValidateSquare ensures the trailing two axes of t have equal extent.
// Assumes rank >= 2 (caller must ensure).
func ValidateSquare[T any](t *Dense[T]) error {
	if t.Rows() != t.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %d×%d", t.Rows(), t.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateSquareMatrix – Composite: NotNil → Matrix → Square.
//
// Errors: ErrNilTensor, ErrNotMatrix, ErrNonSquare.
func ValidateSquareMatrix[T any](t *Dense[T]) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if err := ValidateMatrix(t); err != nil {
		return err
	}

	return ValidateSquare(t)
}

// ValidateSquareTrailing – Composite: NotNil → rank >= 2 → trailing axes square.
// This is the precondition of every batched matrix operation.
//
// Errors: ErrNilTensor, ErrRankTooLow, ErrNonSquare.
func ValidateSquareTrailing[T any](t *Dense[T]) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if t.Rank() < 2 {
		return validatorErrorf(fmt.Sprintf("ValidateSquareTrailing: rank %d", t.Rank()), ErrRankTooLow)
	}

	return ValidateSquare(t)
}
