// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	log "github.com/golang/glog"

	"github.com/katalvlaran/gentensor/det"
	"github.com/katalvlaran/gentensor/scalar"
	"github.com/katalvlaran/gentensor/tensor"
)

// config is the parsed command line.
type config struct {
	engine  det.Engine
	scalar  string
	workers int
}

// scalar type names accepted by -type
const (
	typeInt64   = "int64"
	typeFloat64 = "float64"
	typeBigInt  = "bigint"
	typeRat     = "rat"
)

// run reads one nested array from r and writes its determinant (rank 2) or
// the tensor of slice determinants (rank > 2) to w.
func run(w io.Writer, r io.Reader, cfg config) error {
	shape, leaves, err := readNested(r)
	if err != nil {
		return err
	}
	log.Infof("engine %s, type %s, shape %v, workers %d", cfg.engine, cfg.scalar, shape, cfg.workers)

	switch cfg.scalar {
	case typeInt64:
		return compute(w, cfg, shape, leaves, scalar.Int64{}, parseInt64,
			func(v int64) string { return strconv.FormatInt(v, 10) })
	case typeFloat64:
		return compute(w, cfg, shape, leaves, scalar.Float64{}, parseFloat64,
			func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	case typeBigInt:
		return compute(w, cfg, shape, leaves, scalar.BigInt{}, parseBigInt,
			func(v *big.Int) string { return v.String() })
	case typeRat:
		return compute(w, cfg, shape, leaves, scalar.BigRat{}, parseRat,
			func(v *big.Rat) string { return v.RatString() })
	default:
		return fmt.Errorf("unknown scalar type %q", cfg.scalar)
	}
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return v, nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return v, nil
}

func parseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrBadInput, s)
	}
	return v, nil
}

func parseRat(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a rational", ErrBadInput, s)
	}
	return v, nil
}

// compute parses the leaves as T, runs the configured engine and prints one
// line per slice: the leading coordinates (omitted for a single matrix)
// followed by the determinant.
func compute[T any](
	w io.Writer,
	cfg config,
	shape tensor.Shape,
	leaves []string,
	a scalar.Arith[T],
	parse func(string) (T, error),
	format func(T) string,
) error {
	vals := make([]T, len(leaves))
	for k, s := range leaves {
		v, err := parse(s)
		if err != nil {
			return fmt.Errorf("element %d: %w", k, err)
		}
		vals[k] = v
	}
	k := 0
	t, err := tensor.NewTensor(shape, func([]int) T {
		v := vals[k]
		k++
		return v
	})
	if err != nil {
		return err
	}

	out, err := det.Batch(t, a, cfg.engine,
		det.WithWorkers(cfg.workers),
		det.WithOnSlice(func(idx []int) error {
			log.V(1).Infof("slice %v done", idx)
			return nil
		}))
	if err != nil {
		return err
	}

	if out.Rank() == 0 {
		v, _ := out.At()
		_, err = fmt.Fprintln(w, format(v))
		return err
	}
	lead, idx := out.Shape(), make([]int, out.Rank())
	for k, v := range out.Values() {
		if _, err = fmt.Fprintln(w, fmt.Sprint(lead.Unravel(k, idx)), format(v)); err != nil {
			return err
		}
	}

	return nil
}
