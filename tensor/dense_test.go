package tensor_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

func TestNewTensor_RowMajorGenerator(t *testing.T) {
	var seen [][]int
	x, err := tensor.NewTensor(tensor.Shape{2, 3}, func(idx []int) int {
		seen = append(seen, append([]int(nil), idx...))
		return idx[0]*10 + idx[1]
	})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, seen)
	require.Equal(t, []int{0, 1, 2, 10, 11, 12}, x.Values())
	require.Equal(t, 2, x.Rank())
	require.Equal(t, 6, x.Len())
	require.True(t, x.IsMatrix())
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 3, x.Cols())
}

func TestNewTensor_InvalidDimensions(t *testing.T) {
	for _, shape := range []tensor.Shape{{0}, {2, 0}, {3, -1, 2}} {
		_, err := tensor.NewTensor[int](shape, nil)
		require.ErrorIs(t, err, tensor.ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestNewTensor_RankZero(t *testing.T) {
	x, err := tensor.NewTensor(tensor.Shape{}, func([]int) string { return "only" })
	require.NoError(t, err)
	require.Equal(t, 0, x.Rank())
	require.Equal(t, 1, x.Len())
	v, err := x.At()
	require.NoError(t, err)
	require.Equal(t, "only", v)
	require.Equal(t, 0, x.Rows())
	require.Equal(t, 0, x.Cols())
}

func TestFromRows(t *testing.T) {
	m, err := tensor.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Elem(1, 0))
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	_, err = tensor.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, tensor.ErrRaggedRows)

	_, err = tensor.FromRows[int](nil)
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := tensor.NewMatrix[int](2, 2, nil)
	require.NoError(t, err)

	require.NoError(t, m.Set(7, 1, 1))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	for _, idx := range [][]int{{2, 0}, {0, -1}, {0}, {0, 0, 0}} {
		_, err = m.At(idx...)
		require.ErrorIs(t, err, tensor.ErrOutOfRange, "At%v", idx)
		require.ErrorIs(t, m.Set(1, idx...), tensor.ErrOutOfRange, "Set%v", idx)
	}
}

func TestSubtensor_SharesStorage(t *testing.T) {
	x, err := tensor.NewTensor(tensor.Shape{2, 2, 2}, func(idx []int) int {
		return idx[0]*100 + idx[1]*10 + idx[2]
	})
	require.NoError(t, err)

	v, err := x.Subtensor(1)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{2, 2}, v.Shape())
	require.Equal(t, 110, v.Elem(1, 0))

	v.SetElem(0, 1, -1)
	got, err := x.At(1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, -1, got)

	whole, err := x.Subtensor()
	require.NoError(t, err)
	require.Equal(t, x.Values(), whole.Values())

	cell, err := x.Subtensor(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, cell.Rank())
	got, err = cell.At()
	require.NoError(t, err)
	require.Equal(t, 111, got)

	_, err = x.Subtensor(2)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = x.Subtensor(0, 0, 0, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestClone_DuplicatesThroughDup(t *testing.T) {
	a := scalar.BigInt{}
	m, err := tensor.NewMatrix(2, 2, func(i, j int) *big.Int { return big.NewInt(int64(i + j)) })
	require.NoError(t, err)

	c := m.Clone(a.Dup)
	c.Elem(1, 1).SetInt64(99)
	require.Equal(t, "2", m.Elem(1, 1).String())

	shallow := m.Clone(nil)
	require.Same(t, m.Elem(0, 1), shallow.Elem(0, 1))
}

func TestClone_OfViewIsCompact(t *testing.T) {
	x, err := tensor.NewTensor(tensor.Shape{3, 2, 2}, func(idx []int) int { return idx[0] })
	require.NoError(t, err)
	v, err := x.Subtensor(2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2}, v.Clone(nil).Values())
}

func TestShape_Helpers(t *testing.T) {
	s := tensor.Shape{2, 3, 4}
	require.Equal(t, 24, s.Size())
	require.Equal(t, 1, tensor.Shape{}.Size())
	require.Equal(t, tensor.Shape{2}, s.Sub(0, 1))
	require.True(t, s.Equal(tensor.Shape{2, 3, 4}))
	require.False(t, s.Equal(tensor.Shape{2, 3}))
	require.False(t, s.Equal(tensor.Shape{2, 3, 5}))
	require.Equal(t, "(2, 3, 4)", s.String())
	require.Equal(t, []int{1, 2, 3}, s.Unravel(23, nil))
	require.Equal(t, []int{0, 1, 0}, s.Unravel(4, make([]int, 0, 3)))
}

func TestForEachIndex(t *testing.T) {
	count := 0
	require.NoError(t, tensor.ForEachIndex(tensor.Shape{3, 2}, func([]int) error {
		count++
		return nil
	}))
	require.Equal(t, 6, count)

	stop := errors.New("stop")
	count = 0
	err := tensor.ForEachIndex(tensor.Shape{3, 2}, func(idx []int) error {
		count++
		if idx[0] == 1 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 3, count)

	count = 0
	require.NoError(t, tensor.ForEachIndex(tensor.Shape{}, func(idx []int) error {
		require.Empty(t, idx)
		count++
		return nil
	}))
	require.Equal(t, 1, count)
}

func TestString_HigherRank(t *testing.T) {
	x, err := tensor.NewTensor(tensor.Shape{2}, func(idx []int) int { return idx[0] + 1 })
	require.NoError(t, err)
	require.Equal(t, "(2) [1, 2]", x.String())
}
