// SPDX-License-Identifier: MIT

// Package det: functional configuration of the batch dispatcher.
//
// Design goals:
//   - No global state: every call gathers its own Options.
//   - Invalid values are recorded and surfaced as ErrOptionViolation when
//     Batch runs, never as a panic.
//   - Defaults reproduce plain sequential evaluation in row-major order.

package det

import (
	"context"
	"fmt"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers evaluates slices sequentially on the calling goroutine.
	DefaultWorkers = 1

	// AutoWorkers asks for one worker per CPU available to the process.
	AutoWorkers = 0
)

// Option configures Batch via functional arguments.
type Option func(*Options)

// Options holds the batch dispatcher configuration.
// Fields are unexported; use the With* constructors.
type Options struct {
	ctx     context.Context
	workers int
	onSlice func(idx []int) error

	err error // first invalid option, surfaced by gatherOptions
}

// DefaultOptions returns the documented defaults:
//   - context.Background()
//   - DefaultWorkers (sequential)
//   - no slice hook
func DefaultOptions() Options {
	return Options{
		ctx:     context.Background(),
		workers: DefaultWorkers,
	}
}

// WithContext sets a context checked before every slice. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent workers.
//
//	n == 1: sequential, row-major order (default)
//	n > 1 : worker pool of n goroutines (capped at the number of slices)
//	n == 0: AutoWorkers, one per CPU available to the process
//	n < 0 : invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			}
			return
		}
		o.workers = n
	}
}

// WithOnSlice registers a hook called after each slice's determinant has
// been stored, with the slice's leading coordinates. idx is reused; copy it
// to retain it. Returning an error aborts the batch with that error.
// With more than one worker the hook runs concurrently and must be safe for
// concurrent use.
func WithOnSlice(fn func(idx []int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onSlice = fn
		}
	}
}

// gatherOptions applies opts over the defaults and resolves AutoWorkers.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if o.workers == AutoWorkers {
		o.workers = availableCPUs()
	}

	return o, nil
}
