// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gentensor/tensor"
)

var (
	// ErrBadInput is returned for JSON that is not a regular nested array
	// of numbers or numeric strings.
	ErrBadInput = errors.New("gentensor: malformed input")
)

// readNested decodes a nested JSON array into its shape and its leaves in
// row-major order. Leaves may be JSON numbers or strings ("1/3" for
// rationals); they are kept as text and parsed later per scalar type.
func readNested(r io.Reader) (tensor.Shape, []string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("%w: trailing data after the array", ErrBadInput)
	}

	var shape tensor.Shape
	for v := root; ; {
		arr, ok := v.([]any)
		if !ok {
			break
		}
		if len(arr) == 0 {
			return nil, nil, fmt.Errorf("%w: empty array at depth %d", ErrBadInput, len(shape))
		}
		shape = append(shape, len(arr))
		v = arr[0]
	}
	if len(shape) == 0 {
		return nil, nil, fmt.Errorf("%w: top level is not an array", ErrBadInput)
	}

	leaves := make([]string, 0, shape.Size())
	var walk func(v any, depth int) error
	walk = func(v any, depth int) error {
		if depth == len(shape) {
			switch x := v.(type) {
			case json.Number:
				leaves = append(leaves, x.String())
			case string:
				leaves = append(leaves, x)
			default:
				return fmt.Errorf("%w: leaf %v is not a number", ErrBadInput, v)
			}
			return nil
		}
		arr, ok := v.([]any)
		if !ok || len(arr) != shape[depth] {
			return fmt.Errorf("%w: ragged array at depth %d, want %d elements", ErrBadInput, depth, shape[depth])
		}
		for _, e := range arr {
			if err := walk(e, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, 0); err != nil {
		return nil, nil, err
	}

	return shape, leaves, nil
}
