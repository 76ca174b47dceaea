// SPDX-License-Identifier: MIT

package det

import (
	"fmt"

	"github.com/katalvlaran/gentensor/scalar"
)

// Fraction is an unevaluated quotient Num/Den over a scalar type T.
// No division of T ever happens while a value stays a Fraction.
type Fraction[T any] struct {
	Num T
	Den T
}

// NewFraction returns num/den as given (no copies, no normalization).
func NewFraction[T any](num, den T) Fraction[T] {
	return Fraction[T]{Num: num, Den: den}
}

// FractionOf returns v/1. v is stored as given; duplicate it first if the
// caller keeps using it.
func FractionOf[T any](a scalar.Arith[T], v T) Fraction[T] {
	return Fraction[T]{Num: v, Den: a.One()}
}

// Reduce performs the deferred division Num / Den with a.Div.
// Errors: whatever a.Div returns (e.g. scalar.ErrDivisionByZero when Den is zero).
func (f Fraction[T]) Reduce(a scalar.Arith[T]) (T, error) {
	return a.Div(f.Num, f.Den)
}

// String implements fmt.Stringer as "num/den".
func (f Fraction[T]) String() string {
	return fmt.Sprintf("%v/%v", f.Num, f.Den)
}

// FractionArith lifts an Arith[T] to Arith[Fraction[T]] using only the
// ring operations of T:
//
//	(a/b) + (c/d) = (a·d + b·c) / (b·d)
//	(a/b) − (c/d) = (a·d − b·c) / (b·d)
//	(a/b) · (c/d) = (a·c) / (b·d)
//	(a/b) / (c/d) = (a·d) / (b·c)
//
// Fractions are never normalized, so numerators and denominators grow with
// every operation; for fixed-width types such as int64 that means overflow
// arrives much sooner than with direct arithmetic. With float64 the parts
// overflow to ±Inf and a final Inf/Inf quotient is NaN.
//
// FractionArith is an ordinary value built from its base; there is no
// registry and no initialization step.
type FractionArith[T any] struct {
	Base scalar.Arith[T]
}

var _ scalar.Arith[Fraction[int64]] = FractionArith[int64]{}

// NewFractionArith returns the fraction lifting of base.
func NewFractionArith[T any](base scalar.Arith[T]) FractionArith[T] {
	return FractionArith[T]{Base: base}
}

// Zero returns 0/1.
func (fa FractionArith[T]) Zero() Fraction[T] {
	return Fraction[T]{Num: fa.Base.Zero(), Den: fa.Base.One()}
}

// One returns 1/1.
func (fa FractionArith[T]) One() Fraction[T] {
	return Fraction[T]{Num: fa.Base.One(), Den: fa.Base.One()}
}

func (fa FractionArith[T]) Add(x, y Fraction[T]) Fraction[T] {
	b := fa.Base
	return Fraction[T]{
		Num: b.Add(b.Mul(x.Num, y.Den), b.Mul(x.Den, y.Num)),
		Den: b.Mul(x.Den, y.Den),
	}
}

func (fa FractionArith[T]) Sub(x, y Fraction[T]) Fraction[T] {
	b := fa.Base
	return Fraction[T]{
		Num: b.Sub(b.Mul(x.Num, y.Den), b.Mul(x.Den, y.Num)),
		Den: b.Mul(x.Den, y.Den),
	}
}

func (fa FractionArith[T]) Mul(x, y Fraction[T]) Fraction[T] {
	b := fa.Base
	return Fraction[T]{
		Num: b.Mul(x.Num, y.Num),
		Den: b.Mul(x.Den, y.Den),
	}
}

// Div cross-multiplies and never fails. Dividing by a zero fraction yields
// a fraction with a zero denominator; the error, if any, surfaces at Reduce.
func (fa FractionArith[T]) Div(x, y Fraction[T]) (Fraction[T], error) {
	b := fa.Base
	return Fraction[T]{
		Num: b.Mul(x.Num, y.Den),
		Den: b.Mul(x.Den, y.Num),
	}, nil
}

// Neg negates the numerator; the denominator is duplicated.
func (fa FractionArith[T]) Neg(x Fraction[T]) Fraction[T] {
	return Fraction[T]{Num: fa.Base.Neg(x.Num), Den: fa.Base.Dup(x.Den)}
}

// IsZero reports whether the numerator is exactly zero.
func (fa FractionArith[T]) IsZero(x Fraction[T]) bool {
	return fa.Base.IsZero(x.Num)
}

// Dup duplicates both parts.
func (fa FractionArith[T]) Dup(x Fraction[T]) Fraction[T] {
	return Fraction[T]{Num: fa.Base.Dup(x.Num), Den: fa.Base.Dup(x.Den)}
}
