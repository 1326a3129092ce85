// SPDX-License-Identifier: MIT

package graphblas

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// entries is a candidate result T in ascending key order. Vector keys are
// indices; matrix keys are row*ncols+col of the output matrix.
type entries[T any] struct {
	keys []int
	vals []T
}

func newEntries[T any](capacity int) entries[T] {
	return entries[T]{keys: make([]int, 0, capacity), vals: make([]T, 0, capacity)}
}

func (e *entries[T]) push(k int, v T) {
	e.keys = append(e.keys, k)
	e.vals = append(e.vals, v)
}

func vectorEntries[T comparable](v sparse.Vector[T]) entries[T] {
	idx, vals := v.ExtractTuples()
	return entries[T]{keys: idx, vals: vals}
}

func matrixEntries[T comparable](m sparse.Matrix[T]) entries[T] {
	rows, cols, vals := m.ExtractTuples()
	ncols := m.NCols()
	keys := make([]int, len(rows))
	for k := range rows {
		keys[k] = rows[k]*ncols + cols[k]
	}
	return entries[T]{keys: keys, vals: vals}
}

// merge applies the write step to the previous content c and the candidate t.
// selects == nil means no mask. Only positions in c ∪ t can end up present, so
// the walk never touches the rest of the domain.
func merge[T any](c, t entries[T], selects func(k int) bool, accum algebra.BinaryOp[T, T], replace bool) entries[T] {
	out := newEntries[T](len(c.keys) + len(t.keys))
	a, b := 0, 0
	for a < len(c.keys) || b < len(t.keys) {
		var (
			k          int
			cv, tv     T
			hasC, hasT bool
		)
		switch {
		case b >= len(t.keys) || (a < len(c.keys) && c.keys[a] < t.keys[b]):
			k, cv, hasC = c.keys[a], c.vals[a], true
			a++
		case a >= len(c.keys) || t.keys[b] < c.keys[a]:
			k, tv, hasT = t.keys[b], t.vals[b], true
			b++
		default:
			k, cv, tv, hasC, hasT = c.keys[a], c.vals[a], t.vals[b], true, true
			a++
			b++
		}

		z, hasZ := tv, hasT
		if accum.Valid() {
			switch {
			case hasC && hasT:
				z = accum.Fn(cv, tv)
			case hasC:
				z, hasZ = cv, true
			}
		}

		if selects == nil || selects(k) {
			if hasZ {
				out.push(k, z)
			}
			continue
		}
		if !replace && hasC {
			out.push(k, cv)
		}
	}
	return out
}

// writeVector merges t into out and publishes the result with one Build.
func writeVector[T comparable](out sparse.Vector[T], mask *VectorMask, accum algebra.BinaryOp[T, T], t entries[T], replace bool) error {
	if mask == nil && !accum.Valid() {
		return out.Build(t.keys, t.vals, nil)
	}
	var sel func(int) bool
	if mask != nil {
		sel = mask.sel
	}
	z := merge(vectorEntries(out), t, sel, accum, replace)
	return out.Build(z.keys, z.vals, nil)
}

// writeMatrix is writeVector for matrices; t keys use out.NCols().
func writeMatrix[T comparable](out sparse.Matrix[T], mask *MatrixMask, accum algebra.BinaryOp[T, T], t entries[T], replace bool) error {
	ncols := out.NCols()
	z := t
	if mask != nil || accum.Valid() {
		var sel func(int) bool
		if mask != nil {
			sel = func(k int) bool { return mask.sel(k/ncols, k%ncols) }
		}
		z = merge(matrixEntries(out), t, sel, accum, replace)
	}
	rows := make([]int, len(z.keys))
	cols := make([]int, len(z.keys))
	for n, k := range z.keys {
		rows[n], cols[n] = k/ncols, k%ncols
	}
	return out.Build(rows, cols, z.vals, nil)
}

func sizeErrorf(what string, got, want int) error {
	return fmt.Errorf("graphblas: %s size %d, want %d: %w", what, got, want, sparse.ErrDimensionMismatch)
}

func shapeErrorf(what string, gotRows, gotCols, wantRows, wantCols int) error {
	return fmt.Errorf("graphblas: %s shape %dx%d, want %dx%d: %w",
		what, gotRows, gotCols, wantRows, wantCols, sparse.ErrDimensionMismatch)
}

func opErrorf(op string) error {
	return fmt.Errorf("graphblas.%s: operator has no function: %w", op, sparse.ErrInvalidValue)
}
