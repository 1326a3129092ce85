// SPDX-License-Identifier: MIT
// Package algebra: sentinel errors.
//
// Operators return these sentinels directly; the engine wraps them with the
// operation tag, so callers branch with errors.Is.

package algebra

import "errors"

// ErrDivideByZero is returned by MultiplicativeInverse (and anything built on
// it, e.g. matrixutil.NormalizeRows) when the operand is the additive identity.
var ErrDivideByZero = errors.New("algebra: division by zero")
