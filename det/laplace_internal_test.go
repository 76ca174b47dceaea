package det

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

func TestLaplaceN_LeadingBlock(t *testing.T) {
	m, err := tensor.FromRows([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})
	require.NoError(t, err)
	a := scalar.Int64{}

	require.Equal(t, int64(1), laplaceN[int64](m, a, 0), "empty product")
	require.Equal(t, int64(1), laplaceN[int64](m, a, -2), "empty product")
	require.Equal(t, int64(1), laplaceN[int64](m, a, 1))
	require.Equal(t, int64(-3), laplaceN[int64](m, a, 2))
	require.Equal(t, int64(-3), laplaceN[int64](m, a, 3))
}

func TestGatherOptions(t *testing.T) {
	o, err := gatherOptions(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultWorkers, o.workers)
	require.NotNil(t, o.ctx)
	require.Nil(t, o.onSlice)

	o, err = gatherOptions([]Option{WithWorkers(AutoWorkers)})
	require.NoError(t, err)
	require.GreaterOrEqual(t, o.workers, 1)

	// The first violation wins.
	_, err = gatherOptions([]Option{WithWorkers(-3), WithWorkers(-7)})
	require.ErrorIs(t, err, ErrOptionViolation)
	require.Contains(t, err.Error(), "(-3)")
}

func TestAvailableCPUs(t *testing.T) {
	require.GreaterOrEqual(t, availableCPUs(), 1)
}
