// SPDX-License-Identifier: MIT

// Package scalar defines the arithmetic capability contract consumed by the
// generic determinant kernels, together with ready-made implementations for
// the scalar types people actually reach for.
//
// 🚀 What is an Arith?
//
//	Arith[T] is an explicit, stateless operation table for a scalar type T:
//	  • identities: Zero, One
//	  • ring operations: Add, Sub, Mul, Neg
//	  • division: Div (the only operation allowed to fail)
//	  • exact zero test: IsZero
//	  • aliasing-safe copy: Dup
//
// The table is passed by value into every kernel, so there is no global
// registry and no reflection. Any type works as long as someone writes an
// Arith for it: floats, machine integers, big integers, exact rationals,
// polynomials, symbolic expressions.
//
// ✨ Stock implementations:
//
//	Float64    : IEEE-754 float64, Div never fails (x/0 = ±Inf or NaN)
//	Complex128 : IEEE complex, Div never fails
//	Int64      : truncated quotient, Div by zero → ErrDivisionByZero
//	BigInt     : *big.Int, truncated quotient, Div by zero → ErrDivisionByZero
//	BigRat     : *big.Rat, exact, Div by zero → ErrDivisionByZero
//	Counting[T]: wraps any Arith and counts every call (instrumentation)
//
// Contract for implementers:
//   - Operations MUST NOT mutate their operands; results are fresh values.
//   - Dup MUST return a value that shares no mutable state with its input.
//     For value types (float64, int64, complex128) Dup is the identity.
//   - IsZero MUST be an exact test (no epsilon) for exact types.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gentensor/scalar"
//
//	var a scalar.Arith[*big.Rat] = scalar.BigRat{}
//	x := a.Add(big.NewRat(1, 2), big.NewRat(1, 3)) // 5/6
package scalar
