// SPDX-License-Identifier: MIT

package det

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// Batch computes the determinant of every square matrix stacked in the
// trailing two axes of t and returns a tensor of the leading shape holding
// them: out[idx] = engine(t[idx, :, :]).
//
// A rank-2 input has an empty leading shape and yields a rank-0 tensor with
// a single element.
//
// Implementation:
//   - Stage 1: guard (non-nil arithmetic, rank >= 2, square trailing axes);
//     resolve the engine and the options.
//   - Stage 2: allocate the output over Shape[:rank-2].
//   - Stage 3: for every leading coordinate take a zero-copy Subtensor view,
//     run the unguarded engine, store the result, call the hook.
//     Sequential in row-major order with one worker; otherwise slices are
//     queued and drained by a pool (see runPool).
//
// Behavior highlights:
//   - Slices share nothing but the read-only input and the arithmetic table;
//     each result lands in its own output cell.
//   - The first failing slice aborts the batch; its error carries the slice
//     coordinates. With a pool, which failure is "first" depends on scheduling.
//
// Errors: ErrNilArith, tensor.ErrNilTensor, tensor.ErrRankTooLow,
// tensor.ErrNonSquare, ErrUnknownEngine, ErrOptionViolation, context errors,
// hook errors, engine (arithmetic) errors.
//
// Complexity: leading-size × engine cost; Space O(leading size) plus one
// engine workspace per worker.
func Batch[T any](t *tensor.Dense[T], a scalar.Arith[T], engine Engine, opts ...Option) (*tensor.Dense[T], error) {
	if guardsEnabled {
		if err := guardBatch(t, a); err != nil {
			return nil, detErrorf(opBatch, err)
		}
	}
	run, err := kernelOf[T](engine)
	if err != nil {
		return nil, detErrorf(opBatch, err)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, detErrorf(opBatch, err)
	}

	lead := t.Shape().Sub(0, t.Rank()-2)
	out, err := tensor.NewTensor[T](lead, nil)
	if err != nil {
		return nil, detErrorf(opBatch, err)
	}

	d := &dispatcher[T]{src: t, dst: out, arith: a, run: run, onSlice: o.onSlice}
	workers := o.workers
	if total := lead.Size(); workers > total {
		workers = total
	}
	if workers <= 1 {
		err = tensor.ForEachIndex(lead, func(idx []int) error {
			if err := o.ctx.Err(); err != nil {
				return err
			}
			return d.slice(idx)
		})
	} else {
		err = d.runPool(o, lead, workers)
	}
	if err != nil {
		return nil, detErrorf(opBatch, err)
	}

	return out, nil
}

// dispatcher carries the per-call state shared by every slice evaluation.
type dispatcher[T any] struct {
	src     *tensor.Dense[T]
	dst     *tensor.Dense[T]
	arith   scalar.Arith[T]
	run     kernel[T]
	onSlice func(idx []int) error
}

// slice evaluates one leading coordinate and stores the result.
func (d *dispatcher[T]) slice(idx []int) error {
	view, err := d.src.Subtensor(idx...)
	if err != nil {
		return err
	}
	v, err := d.run(view, d.arith)
	if err != nil {
		return fmt.Errorf("slice %v: %w", idx, err)
	}
	if err = d.dst.Set(v, idx...); err != nil {
		return err
	}
	if d.onSlice != nil {
		if err = d.onSlice(idx); err != nil {
			return fmt.Errorf("slice %v: %w", idx, err)
		}
	}

	return nil
}

// runPool drains a FIFO of flat leading offsets with a fixed number of
// workers. The queue is not concurrency-safe on its own; mu serializes
// Remove. The group context is cancelled on the first error so the other
// workers stop at their next dequeue.
func (d *dispatcher[T]) runPool(o Options, lead tensor.Shape, workers int) error {
	jobs := queue.New()
	for k, total := 0, lead.Size(); k < total; k++ {
		jobs.Add(k)
	}

	var mu sync.Mutex
	next := func() (int, bool) {
		mu.Lock()
		defer mu.Unlock()
		if jobs.Length() == 0 {
			return 0, false
		}
		return jobs.Remove().(int), true
	}

	g, ctx := errgroup.WithContext(o.ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			idx := make([]int, len(lead))
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				k, ok := next()
				if !ok {
					return nil
				}
				if err := d.slice(lead.Unravel(k, idx)); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}
