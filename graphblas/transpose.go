// SPDX-License-Identifier: MIT

package graphblas

import (
	"slices"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// Transpose computes out<mask> = accum(out, aᵀ).
// Complexity: O(a.NVals() + a.NCols()) via a counting pass over columns.
func Transpose[T comparable](
	out sparse.Matrix[T],
	mask *MatrixMask,
	accum algebra.BinaryOp[T, T],
	a sparse.Matrix[T],
	replace bool,
) error {
	if out.NRows() != a.NCols() || out.NCols() != a.NRows() {
		return shapeErrorf("Transpose output", out.NRows(), out.NCols(), a.NCols(), a.NRows())
	}
	if err := mask.check(out.NRows(), out.NCols()); err != nil {
		return err
	}

	// Bucket entries by column of a; scanning rows in order keeps each bucket
	// sorted by the new column index.
	start := make([]int, a.NCols()+1)
	for i := 0; i < a.NRows(); i++ {
		for j := range a.Row(i) {
			start[j+1]++
		}
	}
	for j := 1; j < len(start); j++ {
		start[j] += start[j-1]
	}
	nvals := start[len(start)-1]
	t := entries[T]{keys: make([]int, nvals), vals: make([]T, nvals)}
	next := slices.Clone(start[:len(start)-1])
	ncols := out.NCols()
	for i := 0; i < a.NRows(); i++ {
		for j, x := range a.Row(i) {
			p := next[j]
			t.keys[p], t.vals[p] = j*ncols+i, x
			next[j]++
		}
	}
	return writeMatrix(out, mask, accum, t, replace)
}
