// SPDX-License-Identifier: MIT

package scalar

// Arith is the arithmetic capability contract for a scalar type T.
//
// Implementations are expected to be small stateless values (empty structs
// for the stock types) so they can be copied freely and shared across
// goroutines.
//
// Complexity: every method is whatever the underlying type costs; the
// kernels in package det count on Add/Sub/Mul/Neg being total.
type Arith[T any] interface {
	// Zero returns a fresh additive identity.
	Zero() T

	// One returns a fresh multiplicative identity.
	One() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a − b.
	Sub(a, b T) T

	// Mul returns a · b.
	Mul(a, b T) T

	// Div returns a / b. It is the only partial operation of the contract:
	// an implementation without a representation for a/0 returns an error
	// (ErrDivisionByZero for the stock types).
	Div(a, b T) (T, error)

	// Neg returns −a.
	Neg(a T) T

	// IsZero reports whether a equals the additive identity exactly.
	IsZero(a T) bool

	// Dup returns an independent copy of a. No-op for value types.
	Dup(a T) T
}
