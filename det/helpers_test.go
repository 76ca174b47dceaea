// SPDX-License-Identifier: MIT
// Package det_test contains test helpers.
//
// Purpose:
//   • Build the same integer matrix in every stock scalar type.
//   • Generate deterministic strictly diagonally dominant matrices, whose
//     leading principal minors are all non-zero, so elimination without
//     pivoting never meets a zero pivot.

package det_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gentensor/tensor"
)

// MustMatrix builds a matrix from int rows converted by conv, or fails the test.
func MustMatrix[T any](t testing.TB, rows [][]int64, conv func(int64) T) *tensor.Dense[T] {
	t.Helper()
	m, err := tensor.NewMatrix(len(rows), len(rows[0]), func(i, j int) T { return conv(rows[i][j]) })
	if err != nil {
		t.Fatalf("tensor.NewMatrix: %v", err)
	}

	return m
}

func asInt64(v int64) int64        { return v }
func asFloat64(v int64) float64    { return float64(v) }
func asBigInt(v int64) *big.Int    { return big.NewInt(v) }
func asBigRat(v int64) *big.Rat    { return big.NewRat(v, 1) }
func asComplex(v int64) complex128 { return complex(float64(v), 0) }

// dominantRows returns a deterministic n×n strictly diagonally dominant
// integer matrix: off-diagonal entries in [-4, 4], diagonal = ±(row sum + 1..3).
func dominantRows(rng *rand.Rand, n int) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		var sum int64
		for j := range rows[i] {
			if i == j {
				continue
			}
			v := int64(rng.Intn(9) - 4)
			rows[i][j] = v
			if v < 0 {
				v = -v
			}
			sum += v
		}
		d := sum + 1 + int64(rng.Intn(3))
		if rng.Intn(2) == 0 {
			d = -d
		}
		rows[i][i] = d
	}

	return rows
}

// cloneRows deep-copies integer rows.
func cloneRows(rows [][]int64) [][]int64 {
	out := make([][]int64, len(rows))
	for i := range rows {
		out[i] = append([]int64(nil), rows[i]...)
	}

	return out
}

// refDet is an independent integer determinant (Bareiss fraction-free
// elimination with row swaps) used as ground truth in tests.
func refDet(rows [][]int64) *big.Int {
	n := len(rows)
	a := make([][]*big.Int, n)
	for i := range rows {
		a[i] = make([]*big.Int, n)
		for j := range rows[i] {
			a[i][j] = big.NewInt(rows[i][j])
		}
	}
	sign := int64(1)
	prev := big.NewInt(1)
	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			swap := -1
			for r := k + 1; r < n; r++ {
				if a[r][k].Sign() != 0 {
					swap = r
					break
				}
			}
			if swap < 0 {
				return new(big.Int)
			}
			a[k], a[swap] = a[swap], a[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				x := new(big.Int).Mul(a[i][j], a[k][k])
				x.Sub(x, new(big.Int).Mul(a[i][k], a[k][j]))
				a[i][j] = x.Quo(x, prev)
			}
		}
		prev = a[k][k]
	}

	return new(big.Int).Mul(a[n-1][n-1], big.NewInt(sign))
}
