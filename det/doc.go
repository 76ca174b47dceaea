// SPDX-License-Identifier: MIT

// Package det computes determinants of square matrices whose entries are of
// an arbitrary scalar type, and of every matrix in a stack of matrices.
//
// 🚀 Engines
//
//	Laplace              : cofactor expansion along row 0. Exact, O(n!).
//	                       Division-free: the ground truth for exact types.
//	GaussianDirect       : forward elimination with the scalar type's own
//	                       division. O(n³). Only as precise as that division:
//	                       truncating integer division gives wrong answers.
//	GaussianSafeDivision : the same elimination carried out over fractions
//	                       (num/den pairs of T), so the scalar type divides
//	                       exactly once, at the very end. O(n³).
//
// Every engine leaves its input untouched; elimination runs on a working
// copy whose entries go through Arith.Dup, so reference-like scalars
// (*big.Int, *big.Rat) are never aliased between input and workspace.
//
// ✨ Batches
//
//	Batch applies one engine to every square matrix in the trailing two axes
//	of a rank ≥ 2 tensor and returns a tensor of the leading shape. Slices are
//	independent; WithWorkers(n) spreads them over a worker pool.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/gentensor/det"
//	  "github.com/katalvlaran/gentensor/scalar"
//	  "github.com/katalvlaran/gentensor/tensor"
//	)
//
//	m, _ := tensor.FromRows([][]int64{{1, 2}, {3, 4}})
//	d, err := det.GaussianSafeDivision(m, scalar.Int64{}) // -2
//
// Shape guards (non-matrix, non-square input) run by default and are
// compiled out with the build tag detnoguard; without guards malformed input
// is undefined behavior.
//
// Zero pivots are NOT special-cased by the elimination engines. GaussianDirect
// surfaces whatever the scalar type's Div does with a zero divisor (error for
// Int64/BigInt/BigRat, ±Inf/NaN for floats). GaussianSafeDivision returns Zero
// whenever the accumulated denominator is exactly zero, which also happens for
// some non-singular matrices whose leading principal minors vanish; use
// Laplace when that matters.
//
// The fractions of GaussianSafeDivision are never normalized. Their parts
// overflow int64 from 4×4 matrices on (silently wrong result) and float64
// from about 6×6 (NaN). Only BigInt and BigRat stay exact at every size.
package det
