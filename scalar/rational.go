// SPDX-License-Identifier: MIT

package scalar

import "math/big"

// BigRat implements Arith[*big.Rat]: exact rational arithmetic.
// Results are always freshly allocated and normalized by math/big.
type BigRat struct{}

var _ Arith[*big.Rat] = BigRat{}

func (BigRat) Zero() *big.Rat             { return new(big.Rat) }
func (BigRat) One() *big.Rat              { return big.NewRat(1, 1) }
func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (BigRat) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (BigRat) Dup(a *big.Rat) *big.Rat    { return new(big.Rat).Set(a) }

// Div returns the exact quotient a / b, or ErrDivisionByZero when b == 0
// (big.Rat.Quo would panic).
func (BigRat) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	return new(big.Rat).Quo(a, b), nil
}
