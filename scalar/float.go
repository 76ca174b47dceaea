// SPDX-License-Identifier: MIT

package scalar

// Float64 implements Arith[float64] with plain IEEE-754 semantics.
// Div never fails; a zero divisor yields ±Inf or NaN.
type Float64 struct{}

var _ Arith[float64] = Float64{}

func (Float64) Zero() float64            { return 0 }
func (Float64) One() float64             { return 1 }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) IsZero(a float64) bool    { return a == 0 }
func (Float64) Dup(a float64) float64    { return a }

// Div returns a / b. IEEE rules apply to a zero divisor.
func (Float64) Div(a, b float64) (float64, error) { return a / b, nil }

// Complex128 implements Arith[complex128]. Like Float64, Div follows the
// IEEE rules of the runtime and never reports an error.
type Complex128 struct{}

var _ Arith[complex128] = Complex128{}

func (Complex128) Zero() complex128               { return 0 }
func (Complex128) One() complex128                { return 1 }
func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Sub(a, b complex128) complex128 { return a - b }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }
func (Complex128) Neg(a complex128) complex128    { return -a }
func (Complex128) IsZero(a complex128) bool       { return a == 0 }
func (Complex128) Dup(a complex128) complex128    { return a }

// Div returns a / b.
func (Complex128) Div(a, b complex128) (complex128, error) { return a / b, nil }
