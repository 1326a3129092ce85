// SPDX-License-Identifier: MIT

package graphblas

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// Apply computes out<mask> = accum(out, op(in)) for every present entry of in.
// The first error returned by op aborts the call with out untouched.
// Complexity: O(in.NVals()) compute plus the write step.
func Apply[T, R comparable](
	out sparse.Vector[R],
	mask *VectorMask,
	accum algebra.BinaryOp[R, R],
	op algebra.UnaryOp[T, R],
	in sparse.Vector[T],
	replace bool,
) error {
	if !op.Valid() {
		return opErrorf("Apply")
	}
	if in.Size() != out.Size() {
		return sizeErrorf("Apply input", in.Size(), out.Size())
	}
	if err := mask.check(out.Size()); err != nil {
		return err
	}

	t := newEntries[R](in.NVals())
	for i, x := range in.All() {
		y, err := op.Fn(x)
		if err != nil {
			return fmt.Errorf("graphblas.Apply(%s) at %d: %w", op.Name, i, err)
		}
		t.push(i, y)
	}
	return writeVector(out, mask, accum, t, replace)
}

// ApplyMatrix is Apply over every present entry of a matrix.
func ApplyMatrix[T, R comparable](
	out sparse.Matrix[R],
	mask *MatrixMask,
	accum algebra.BinaryOp[R, R],
	op algebra.UnaryOp[T, R],
	in sparse.Matrix[T],
	replace bool,
) error {
	if !op.Valid() {
		return opErrorf("ApplyMatrix")
	}
	if in.NRows() != out.NRows() || in.NCols() != out.NCols() {
		return shapeErrorf("ApplyMatrix input", in.NRows(), in.NCols(), out.NRows(), out.NCols())
	}
	if err := mask.check(out.NRows(), out.NCols()); err != nil {
		return err
	}

	ncols := out.NCols()
	t := newEntries[R](in.NVals())
	for i := 0; i < in.NRows(); i++ {
		for j, x := range in.Row(i) {
			y, err := op.Fn(x)
			if err != nil {
				return fmt.Errorf("graphblas.ApplyMatrix(%s) at (%d,%d): %w", op.Name, i, j, err)
			}
			t.push(i*ncols+j, y)
		}
	}
	return writeMatrix(out, mask, accum, t, replace)
}

// AssignConstant computes out<mask> = accum(out, value) at every position of
// out. Combined with a mask it is the "fill where selected" primitive.
// Complexity: O(out.Size()).
func AssignConstant[T comparable](
	out sparse.Vector[T],
	mask *VectorMask,
	accum algebra.BinaryOp[T, T],
	value T,
	replace bool,
) error {
	if err := mask.check(out.Size()); err != nil {
		return err
	}
	n := out.Size()
	t := newEntries[T](n)
	for i := 0; i < n; i++ {
		if mask.Selects(i) {
			t.push(i, value)
		}
	}
	return writeVector(out, mask, accum, t, replace)
}
