// SPDX-License-Identifier: MIT

package det

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// Engine selects a determinant strategy.
type Engine int

const (
	// EngineLaplace is cofactor expansion: exact, O(n!).
	EngineLaplace Engine = iota

	// EngineGaussianDirect is elimination with native division: O(n³),
	// precision of the scalar type's Div.
	EngineGaussianDirect

	// EngineGaussianSafeDivision is elimination over fractions with a single
	// deferred division: O(n³).
	EngineGaussianSafeDivision
)

var engineNames = map[Engine]string{
	EngineLaplace:              "laplace",
	EngineGaussianDirect:       "gaussian-direct",
	EngineGaussianSafeDivision: "gaussian-safe-division",
}

// String implements fmt.Stringer.
func (e Engine) String() string {
	if s, ok := engineNames[e]; ok {
		return s
	}

	return fmt.Sprintf("Engine(%d)", int(e))
}

// ParseEngine maps a name produced by Engine.String (case-insensitive) back
// to its Engine. Errors: ErrUnknownEngine.
func ParseEngine(s string) (Engine, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, name := range engineNames {
		if name == s {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownEngine)
}

// kernel is the unguarded single-matrix form shared by every engine.
type kernel[T any] func(m *tensor.Dense[T], a scalar.Arith[T]) (T, error)

// kernelOf resolves an Engine to its unguarded kernel.
func kernelOf[T any](e Engine) (kernel[T], error) {
	switch e {
	case EngineLaplace:
		return laplace[T], nil
	case EngineGaussianDirect:
		return gaussianDirect[T], nil
	case EngineGaussianSafeDivision:
		return gaussianSafeDivision[T], nil
	default:
		return nil, fmt.Errorf("%v: %w", e, ErrUnknownEngine)
	}
}
