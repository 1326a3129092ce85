// SPDX-License-Identifier: MIT

package graphblas

import (
	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// ReduceRows folds each row of m with op into out<mask>. Rows without any
// entry produce no value: the result is absent there, not op.Identity.
// Complexity: O(m.NVals()) plus the write step.
func ReduceRows[T comparable](
	out sparse.Vector[T],
	mask *VectorMask,
	accum algebra.BinaryOp[T, T],
	op algebra.BinaryOp[T, T],
	m sparse.Matrix[T],
	replace bool,
) error {
	if !op.Valid() {
		return opErrorf("ReduceRows")
	}
	if m.NRows() != out.Size() {
		return sizeErrorf("ReduceRows output", out.Size(), m.NRows())
	}
	if err := mask.check(out.Size()); err != nil {
		return err
	}

	t := newEntries[T](m.NRows())
	for i := 0; i < m.NRows(); i++ {
		var (
			acc  T
			seen bool
		)
		for _, x := range m.Row(i) {
			if seen {
				acc = op.Fn(acc, x)
			} else {
				acc, seen = x, true
			}
		}
		if seen {
			t.push(i, acc)
		}
	}
	return writeVector(out, mask, accum, t, replace)
}

// ReduceVector folds every present entry of v with op, starting from
// op.Identity. An empty vector reduces to op.Identity.
func ReduceVector[T comparable](op algebra.BinaryOp[T, T], v sparse.Vector[T]) (T, error) {
	acc := op.Identity
	if !op.Valid() {
		return acc, opErrorf("ReduceVector")
	}
	for _, x := range v.All() {
		acc = op.Fn(acc, x)
	}
	return acc, nil
}

// ReduceMatrix folds every present entry of m with op, starting from
// op.Identity.
func ReduceMatrix[T comparable](op algebra.BinaryOp[T, T], m sparse.Matrix[T]) (T, error) {
	acc := op.Identity
	if !op.Valid() {
		return acc, opErrorf("ReduceMatrix")
	}
	for i := 0; i < m.NRows(); i++ {
		for _, x := range m.Row(i) {
			acc = op.Fn(acc, x)
		}
	}
	return acc, nil
}
