// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set shared by the containers, the engine and
// the algorithms built on top of them.
//
// Every message is prefixed with "sparse: ...". Containers wrap the sentinels
// with method context (BitmapVector.ExtractElement(7): ...); callers must branch
// with errors.Is and never compare strings.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// masks, outputs or algorithm containers. Always raised before any write.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrIndexOutOfBounds indicates that an index argument is negative or not
	// below the container's declared size.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrNoValue indicates a read of an absent position through a
	// "must exist" accessor such as ExtractElement.
	ErrNoValue = errors.New("sparse: no value at position")

	// ErrInvalidValue indicates a construction-time precondition violation:
	// zero-size containers, index/value slices of different lengths, or any
	// other invalid argument.
	ErrInvalidValue = errors.New("sparse: invalid value")
)

// vectorErrorf wraps err with BitmapVector method context.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("BitmapVector.%s(%d): %w", method, i, err)
}

// matrixErrorf wraps err with RowMatrix method context.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("RowMatrix.%s(%d,%d): %w", method, i, j, err)
}
