// Package gentensor is a small kernel for computing determinants of
// matrices over any scalar type, one matrix at a time or over whole
// stacks of matrices held in a dense tensor.
//
// 🚀 What is in the box?
//
//	scalar/ : the Arith[T] capability contract plus stock tables for
//	          float64, complex128, int64, *big.Int and *big.Rat, and an
//	          operation-counting wrapper for instrumentation.
//	tensor/ : Dense[T], a row-major n-dimensional array with zero-copy
//	          trailing-axis views, validators and builders.
//	det/    : the engines (Laplace, GaussianDirect, GaussianSafeDivision),
//	          the fraction arithmetic behind the safe-division engine, and
//	          the batch dispatcher with an optional worker pool.
//
// ✨ Why choose gentensor?
//
//   - Generic over the scalar type: no reflection, no boxing.
//   - Exact where the type is unbounded: the safe-division engine divides
//     once, on fraction parts that outgrow int64 and float64 from n ≈ 4..6.
//   - Inputs are never mutated; reference-like scalars are never aliased.
//   - Batches scale across CPUs with first-error cancellation.
//
// Quick example:
//
//	m, _ := tensor.FromRows([][]int64{{1, 2}, {3, 4}})
//	d, _ := det.Determinant(m, scalar.Int64{}) // -2
//
//	go get github.com/katalvlaran/gentensor
package gentensor
