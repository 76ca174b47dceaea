// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrDivisionByZero is returned by Div of the stock integer and rational
// types when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("scalar: division by zero")
