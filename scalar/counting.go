// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"sync/atomic"
)

// Op names one operation of the Arith contract.
type Op int

// Contract operations, in declaration order of Arith.
const (
	OpZero Op = iota
	OpOne
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpIsZero
	OpDup

	opCount // number of operations; keep last
)

var opNames = [opCount]string{
	OpZero:   "Zero",
	OpOne:    "One",
	OpAdd:    "Add",
	OpSub:    "Sub",
	OpMul:    "Mul",
	OpDiv:    "Div",
	OpNeg:    "Neg",
	OpIsZero: "IsZero",
	OpDup:    "Dup",
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if o < 0 || o >= opCount {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Counting wraps an Arith and counts every call per operation.
//
// Counting is a value type holding a pointer to shared counters, so copies
// handed to different kernels (or to the batch worker pool) all record into
// the same table. Counters are atomic; concurrent use is safe.
//
// The zero value has neither a base nor counters and panics on first use;
// always construct with NewCounting.
//
// Typical use is instrumentation in tests: wrap Int64, run an engine, and
// assert how many native divisions it performed.
type Counting[T any] struct {
	base  Arith[T]
	calls *[opCount]atomic.Int64
}

var _ Arith[int64] = Counting[int64]{}

// NewCounting returns a Counting wrapper around base with all counters at 0.
func NewCounting[T any](base Arith[T]) Counting[T] {
	return Counting[T]{base: base, calls: new([opCount]atomic.Int64)}
}

// Calls returns the number of calls recorded for op.
func (c Counting[T]) Calls(op Op) int64 {
	if op < 0 || op >= opCount {
		return 0
	}

	return c.calls[op].Load()
}

// Counts returns a snapshot of all non-zero counters.
func (c Counting[T]) Counts() map[Op]int64 {
	out := make(map[Op]int64, opCount)
	for op := Op(0); op < opCount; op++ {
		if n := c.calls[op].Load(); n != 0 {
			out[op] = n
		}
	}

	return out
}

// Reset zeroes every counter.
func (c Counting[T]) Reset() {
	for op := Op(0); op < opCount; op++ {
		c.calls[op].Store(0)
	}
}

func (c Counting[T]) hit(op Op) { c.calls[op].Add(1) }

func (c Counting[T]) Zero() T { c.hit(OpZero); return c.base.Zero() }
func (c Counting[T]) One() T  { c.hit(OpOne); return c.base.One() }

func (c Counting[T]) Add(a, b T) T { c.hit(OpAdd); return c.base.Add(a, b) }
func (c Counting[T]) Sub(a, b T) T { c.hit(OpSub); return c.base.Sub(a, b) }
func (c Counting[T]) Mul(a, b T) T { c.hit(OpMul); return c.base.Mul(a, b) }
func (c Counting[T]) Neg(a T) T    { c.hit(OpNeg); return c.base.Neg(a) }

func (c Counting[T]) Div(a, b T) (T, error) { c.hit(OpDiv); return c.base.Div(a, b) }

func (c Counting[T]) IsZero(a T) bool { c.hit(OpIsZero); return c.base.IsZero(a) }
func (c Counting[T]) Dup(a T) T       { c.hit(OpDup); return c.base.Dup(a) }
