// SPDX-License-Identifier: MIT

// Command gentensor prints the determinant of a matrix, or of every matrix
// in a stack, read as a nested JSON array.
//
//	echo '[[1,2],[3,4]]' | gentensor
//	gentensor -type=int64 -engine=laplace -input=stack.json -workers=0
//
// Rational entries are written as strings: [["1/2","1/3"],["1/4","1/5"]].
// With -type=int64 the default engine overflows from 4×4 matrices on; the
// default -type=rat is exact at every size.
// Logging goes through glog; pass -logtostderr -v=1 to trace every slice.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/katalvlaran/gentensor/det"
)

var (
	input   = flag.String("input", "-", "input JSON file, - for stdin")
	engine  = flag.String("engine", det.EngineGaussianSafeDivision.String(), "laplace, gaussian-direct or gaussian-safe-division")
	kind    = flag.String("type", typeRat, "scalar type: int64, float64, bigint or rat")
	workers = flag.Int("workers", det.DefaultWorkers, "batch workers, 0 = one per available CPU")
)

func main() {
	flag.Parse()
	defer log.Flush()

	if err := mainErr(); err != nil {
		log.Errorf("gentensor: %v", err)
		fmt.Fprintln(os.Stderr, "gentensor:", err)
		log.Flush()
		os.Exit(1)
	}
}

func mainErr() error {
	e, err := det.ParseEngine(*engine)
	if err != nil {
		return err
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return run(os.Stdout, in, config{engine: e, scalar: *kind, workers: *workers})
}
