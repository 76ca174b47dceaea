// SPDX-License-Identifier: MIT

package scalar

import "math/big"

// Int64 implements Arith[int64] over machine integers.
//
// Div is the truncated Go quotient, which is exactly the kind of lossy
// division the safe-division determinant engine is built to avoid: 7/2 == 3.
// Overflow wraps silently, as it does for the built-in operators. The
// safe-division engine multiplies unnormalized fraction parts, which wrap
// from 4×4 matrices on; use BigInt there.
type Int64 struct{}

var _ Arith[int64] = Int64{}

func (Int64) Zero() int64          { return 0 }
func (Int64) One() int64           { return 1 }
func (Int64) Add(a, b int64) int64 { return a + b }
func (Int64) Sub(a, b int64) int64 { return a - b }
func (Int64) Mul(a, b int64) int64 { return a * b }
func (Int64) Neg(a int64) int64    { return -a }
func (Int64) IsZero(a int64) bool  { return a == 0 }
func (Int64) Dup(a int64) int64    { return a }

// Div returns the truncated quotient a / b, or ErrDivisionByZero when b == 0.
func (Int64) Div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// BigInt implements Arith[*big.Int].
//
// Every operation allocates its result, so operands are never mutated and a
// *big.Int handed to the kernels stays owned by the caller. A nil operand is
// treated as a programmer error and panics inside math/big.
type BigInt struct{}

var _ Arith[*big.Int] = BigInt{}

func (BigInt) Zero() *big.Int             { return new(big.Int) }
func (BigInt) One() *big.Int              { return big.NewInt(1) }
func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) IsZero(a *big.Int) bool     { return a.Sign() == 0 }
func (BigInt) Dup(a *big.Int) *big.Int    { return new(big.Int).Set(a) }

// Div returns the quotient truncated toward zero (big.Int.Quo semantics),
// or ErrDivisionByZero when b == 0.
func (BigInt) Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Int).Quo(a, b), nil
}
