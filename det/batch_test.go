package det_test

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gentensor/det"
	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// mustBatchTensor builds a (2, 3, n, n) tensor of dominant integer matrices.
func mustBatchTensor(t *testing.T, n int) *tensor.Dense[*big.Rat] {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	slices := make([][][]int64, 6)
	for k := range slices {
		slices[k] = dominantRows(rng, n)
	}
	x, err := tensor.NewTensor(tensor.Shape{2, 3, n, n}, func(idx []int) *big.Rat {
		return big.NewRat(slices[idx[0]*3+idx[1]][idx[2]][idx[3]], 1)
	})
	require.NoError(t, err)

	return x
}

func TestBatch_MatchesPerSliceEngine(t *testing.T) {
	x := mustBatchTensor(t, 4)
	a := scalar.BigRat{}

	for _, e := range allEngines {
		for _, workers := range []int{1, 3, det.AutoWorkers} {
			out, err := det.Batch(x, a, e, det.WithWorkers(workers))
			require.NoError(t, err, "%v workers=%d", e, workers)
			require.Equal(t, tensor.Shape{2, 3}, out.Shape())

			require.NoError(t, tensor.ForEachIndex(tensor.Shape{2, 3}, func(idx []int) error {
				slice, err := x.Subtensor(idx...)
				require.NoError(t, err)
				want, err := det.DeterminantWith(slice.Clone(a.Dup), a, e)
				require.NoError(t, err)
				got, err := out.At(idx...)
				require.NoError(t, err)
				require.Equal(t, want.RatString(), got.RatString(), "%v idx=%v", e, idx)
				return nil
			}))
		}
	}
}

func TestBatch_DistinctEntryPoints(t *testing.T) {
	x := mustBatchTensor(t, 3)
	a := scalar.BigRat{}

	l, err := det.BatchLaplace(x, a)
	require.NoError(t, err)
	g, err := det.BatchGaussianDirect(x, a, det.WithWorkers(2))
	require.NoError(t, err)
	s, err := det.BatchGaussianSafeDivision(x, a, det.WithWorkers(4))
	require.NoError(t, err)

	lv, gv, sv := l.Values(), g.Values(), s.Values()
	require.Len(t, lv, 6)
	for k := range lv {
		require.Equal(t, lv[k].RatString(), gv[k].RatString(), "slice %d", k)
		require.Equal(t, lv[k].RatString(), sv[k].RatString(), "slice %d", k)
	}
}

func TestBatch_RankTwoYieldsScalarTensor(t *testing.T) {
	m := MustMatrix(t, [][]int64{{1, 2}, {3, 4}}, asInt64)
	out, err := det.BatchGaussianSafeDivision(m, scalar.Int64{})
	require.NoError(t, err)
	require.Equal(t, 0, out.Rank())
	v, err := out.At()
	require.NoError(t, err)
	require.Equal(t, int64(-2), v)
}

func TestBatch_ConcreteSlices(t *testing.T) {
	x, err := tensor.Stack([]*tensor.Dense[int64]{
		MustMatrix(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, asInt64),
		MustMatrix(t, [][]int64{{1, 1, 1}, {1, 2, 2}, {1, 2, 3}}, asInt64),
		MustMatrix(t, [][]int64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, asInt64),
	}, nil)
	require.NoError(t, err)

	for _, e := range allEngines {
		out, err := det.Batch(x, scalar.Int64{}, e)
		require.NoError(t, err, e.String())
		require.Equal(t, []int64{-3, 1, 24}, out.Values(), e.String())
	}
}

func TestBatch_SliceErrorCarriesCoordinates(t *testing.T) {
	x, err := tensor.Stack([]*tensor.Dense[int64]{
		MustMatrix(t, [][]int64{{1, 2}, {3, 4}}, asInt64),
		MustMatrix(t, [][]int64{{0, 1}, {1, 0}}, asInt64),
	}, nil)
	require.NoError(t, err)

	for _, workers := range []int{1, 2} {
		_, err = det.BatchGaussianDirect(x, scalar.Int64{}, det.WithWorkers(workers))
		require.ErrorIs(t, err, scalar.ErrDivisionByZero)
		require.Contains(t, err.Error(), "slice [1]")
	}

	// The Laplace engine has no division and succeeds on the same input.
	out, err := det.BatchLaplace(x, scalar.Int64{})
	require.NoError(t, err)
	require.Equal(t, []int64{-2, -1}, out.Values())
}

func TestBatch_OnSliceHook(t *testing.T) {
	x := mustBatchTensor(t, 2)

	var seen [][]int
	_, err := det.BatchLaplace(x, scalar.BigRat{}, det.WithOnSlice(func(idx []int) error {
		seen = append(seen, append([]int(nil), idx...))
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, seen)

	var (
		mu    sync.Mutex
		calls atomic.Int64
		set   = map[[2]int]bool{}
	)
	_, err = det.BatchLaplace(x, scalar.BigRat{}, det.WithWorkers(4), det.WithOnSlice(func(idx []int) error {
		calls.Add(1)
		mu.Lock()
		set[[2]int{idx[0], idx[1]}] = true
		mu.Unlock()
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, int64(6), calls.Load())
	require.Len(t, set, 6)
}

func TestBatch_HookErrorAborts(t *testing.T) {
	x := mustBatchTensor(t, 2)
	stop := errors.New("stop here")

	for _, workers := range []int{1, 3} {
		_, err := det.BatchLaplace(x, scalar.BigRat{}, det.WithWorkers(workers), det.WithOnSlice(func(idx []int) error {
			if idx[0] == 1 && idx[1] == 1 {
				return stop
			}
			return nil
		}))
		require.ErrorIs(t, err, stop)
	}
}

func TestBatch_ContextCancelled(t *testing.T) {
	x := mustBatchTensor(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := det.BatchLaplace(x, scalar.BigRat{}, det.WithWorkers(workers), det.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestBatch_InvalidOptionsAndEngine(t *testing.T) {
	x := mustBatchTensor(t, 2)

	_, err := det.BatchLaplace(x, scalar.BigRat{}, det.WithWorkers(-1))
	require.ErrorIs(t, err, det.ErrOptionViolation)

	_, err = det.Batch(x, scalar.BigRat{}, det.Engine(-1))
	require.ErrorIs(t, err, det.ErrUnknownEngine)

	// nil options and nil hooks/contexts are ignored
	_, err = det.BatchLaplace(x, scalar.BigRat{}, nil, det.WithOnSlice(nil), det.WithContext(nil))
	require.NoError(t, err)
}

func TestBatch_CountingAcrossWorkers(t *testing.T) {
	x, err := tensor.NewTensor(tensor.Shape{8, 3, 3}, func(idx []int) int64 {
		if idx[1] == idx[2] {
			return int64(idx[0] + 1)
		}
		return 0
	})
	require.NoError(t, err)

	c := scalar.NewCounting[int64](scalar.Int64{})
	out, err := det.BatchGaussianSafeDivision(x, c, det.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, int64(8), c.Calls(scalar.OpDiv), "one deferred division per slice")
	require.Equal(t, []int64{1, 8, 27, 64, 125, 216, 343, 512}, out.Values())
}
