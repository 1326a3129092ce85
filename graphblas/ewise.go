// SPDX-License-Identifier: MIT

package graphblas

import (
	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// union evaluates op over the union of two sorted entry sets. An operand
// missing at a key contributes op.Identity.
func union[T, R any](a, b entries[T], op algebra.BinaryOp[T, R]) entries[R] {
	out := newEntries[R](max(len(a.keys), len(b.keys)))
	x, y := 0, 0
	for x < len(a.keys) || y < len(b.keys) {
		switch {
		case y >= len(b.keys) || (x < len(a.keys) && a.keys[x] < b.keys[y]):
			out.push(a.keys[x], op.Fn(a.vals[x], op.Identity))
			x++
		case x >= len(a.keys) || b.keys[y] < a.keys[x]:
			out.push(b.keys[y], op.Fn(op.Identity, b.vals[y]))
			y++
		default:
			out.push(a.keys[x], op.Fn(a.vals[x], b.vals[y]))
			x++
			y++
		}
	}
	return out
}

// intersect evaluates op where both operands are present.
func intersect[T, R any](a, b entries[T], op algebra.BinaryOp[T, R]) entries[R] {
	out := newEntries[R](min(len(a.keys), len(b.keys)))
	x, y := 0, 0
	for x < len(a.keys) && y < len(b.keys) {
		switch {
		case a.keys[x] < b.keys[y]:
			x++
		case b.keys[y] < a.keys[x]:
			y++
		default:
			out.push(a.keys[x], op.Fn(a.vals[x], b.vals[y]))
			x++
			y++
		}
	}
	return out
}

// EWiseAdd computes out<mask> = accum(out, a ∪op b): the union of the present
// sets of a and b, where an entry present in only one operand is combined
// with op.Identity. With comparison operators this means a present operand
// wins against an absent one (LessThan(x, absent) is true).
// Complexity: O(a.NVals() + b.NVals()) plus the write step.
func EWiseAdd[T, R comparable](
	out sparse.Vector[R],
	mask *VectorMask,
	accum algebra.BinaryOp[R, R],
	op algebra.BinaryOp[T, R],
	a, b sparse.Vector[T],
	replace bool,
) error {
	if err := checkEWise("EWiseAdd", op.Valid(), out, mask, a, b); err != nil {
		return err
	}
	return writeVector(out, mask, accum, union(vectorEntries(a), vectorEntries(b), op), replace)
}

// EWiseMult computes out<mask> = accum(out, a ∩op b) over the positions where
// both a and b are present.
func EWiseMult[T, R comparable](
	out sparse.Vector[R],
	mask *VectorMask,
	accum algebra.BinaryOp[R, R],
	op algebra.BinaryOp[T, R],
	a, b sparse.Vector[T],
	replace bool,
) error {
	if err := checkEWise("EWiseMult", op.Valid(), out, mask, a, b); err != nil {
		return err
	}
	return writeVector(out, mask, accum, intersect(vectorEntries(a), vectorEntries(b), op), replace)
}

// EWiseAddMatrix is EWiseAdd over matrices of identical shape.
func EWiseAddMatrix[T, R comparable](
	out sparse.Matrix[R],
	mask *MatrixMask,
	accum algebra.BinaryOp[R, R],
	op algebra.BinaryOp[T, R],
	a, b sparse.Matrix[T],
	replace bool,
) error {
	if err := checkEWiseMatrix("EWiseAddMatrix", op.Valid(), out, mask, a, b); err != nil {
		return err
	}
	return writeMatrix(out, mask, accum, union(matrixEntries(a), matrixEntries(b), op), replace)
}

// EWiseMultMatrix is EWiseMult over matrices of identical shape.
func EWiseMultMatrix[T, R comparable](
	out sparse.Matrix[R],
	mask *MatrixMask,
	accum algebra.BinaryOp[R, R],
	op algebra.BinaryOp[T, R],
	a, b sparse.Matrix[T],
	replace bool,
) error {
	if err := checkEWiseMatrix("EWiseMultMatrix", op.Valid(), out, mask, a, b); err != nil {
		return err
	}
	return writeMatrix(out, mask, accum, intersect(matrixEntries(a), matrixEntries(b), op), replace)
}

func checkEWise[T, R comparable](name string, valid bool, out sparse.Vector[R], mask *VectorMask, a, b sparse.Vector[T]) error {
	if !valid {
		return opErrorf(name)
	}
	if a.Size() != out.Size() {
		return sizeErrorf(name+" left", a.Size(), out.Size())
	}
	if b.Size() != out.Size() {
		return sizeErrorf(name+" right", b.Size(), out.Size())
	}
	return mask.check(out.Size())
}

func checkEWiseMatrix[T, R comparable](name string, valid bool, out sparse.Matrix[R], mask *MatrixMask, a, b sparse.Matrix[T]) error {
	if !valid {
		return opErrorf(name)
	}
	for _, in := range []sparse.Matrix[T]{a, b} {
		if in.NRows() != out.NRows() || in.NCols() != out.NCols() {
			return shapeErrorf(name+" input", in.NRows(), in.NCols(), out.NRows(), out.NCols())
		}
	}
	return mask.check(out.NRows(), out.NCols())
}
