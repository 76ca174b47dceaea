// SPDX-License-Identifier: MIT

// Package tensor provides a generic, row-major dense array Dense[T] used as
// the storage layer for matrix and batched-matrix kernels.
//
// The package provides:
//
//   - Construction from a generator over coordinates (NewTensor, NewMatrix)
//     or from nested rows (FromRows).
//   - Shape introspection (Shape, Rank, Len, IsMatrix, Rows, Cols).
//   - Checked accessors At/Set returning ErrOutOfRange instead of panicking,
//     plus unchecked Elem/SetElem for hot 2-D loops.
//   - Zero-copy views on trailing axes (Subtensor) for batched operation.
//   - Deep copies through a caller-supplied duplicator (Clone), so element
//     types with reference semantics (*big.Int, *big.Rat) stay unaliased.
//   - Centralized shape validators returning plain sentinels.
//
// Dense never interprets its elements; arithmetic lives in package scalar
// and is only needed by helpers such as Identity.
package tensor
