// SPDX-License-Identifier: MIT

package graphblas

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// accumulator is a dense scratch row with a touched list, reset in
// O(touched) between rows.
type accumulator[T any] struct {
	vals    []T
	has     []bool
	touched []int
}

func newAccumulator[T any](n int) *accumulator[T] {
	return &accumulator[T]{vals: make([]T, n), has: make([]bool, n)}
}

func (a *accumulator[T]) add(j int, v T, combine func(x, y T) T) {
	if a.has[j] {
		a.vals[j] = combine(a.vals[j], v)
		return
	}
	a.vals[j], a.has[j] = v, true
	a.touched = append(a.touched, j)
}

// drain emits the touched columns in ascending order with key base+j.
func (a *accumulator[T]) drain(base int, t *entries[T]) {
	slices.Sort(a.touched)
	for _, j := range a.touched {
		t.push(base+j, a.vals[j])
		a.has[j] = false
	}
	a.touched = a.touched[:0]
}

func checkSemiring[T any](name string, s algebra.Semiring[T]) error {
	if s.Combine == nil || s.Extend == nil {
		return fmt.Errorf("graphblas.%s: semiring %q is incomplete: %w", name, s.Name, sparse.ErrInvalidValue)
	}
	return nil
}

// VxM computes out<mask> = accum(out, u ⊕.⊗ a):
//
//	out[j] = Combine over i of Extend(u[i], a[i][j])
//
// where i ranges only over positions present in both u and column j of a.
// Positions the mask rejects are not computed at all.
// Complexity: O(Σ_{i∈u} |row_i(a)|) plus the write step.
func VxM[T comparable](
	out sparse.Vector[T],
	mask *VectorMask,
	accum algebra.BinaryOp[T, T],
	s algebra.Semiring[T],
	u sparse.Vector[T],
	a sparse.Matrix[T],
	replace bool,
) error {
	if err := checkSemiring("VxM", s); err != nil {
		return err
	}
	if u.Size() != a.NRows() {
		return sizeErrorf("VxM vector", u.Size(), a.NRows())
	}
	if out.Size() != a.NCols() {
		return sizeErrorf("VxM output", out.Size(), a.NCols())
	}
	if err := mask.check(out.Size()); err != nil {
		return err
	}

	acc := newAccumulator[T](a.NCols())
	for i, x := range u.All() {
		for j, w := range a.Row(i) {
			if !mask.Selects(j) {
				continue
			}
			acc.add(j, s.Extend(x, w), s.Combine)
		}
	}
	t := newEntries[T](len(acc.touched))
	acc.drain(0, &t)
	return writeVector(out, mask, accum, t, replace)
}

// MxV computes out<mask> = accum(out, a ⊕.⊗ u):
//
//	out[i] = Combine over j of Extend(a[i][j], u[j])
//
// Complexity: O(a.NVals()) plus the write step.
func MxV[T comparable](
	out sparse.Vector[T],
	mask *VectorMask,
	accum algebra.BinaryOp[T, T],
	s algebra.Semiring[T],
	a sparse.Matrix[T],
	u sparse.Vector[T],
	replace bool,
) error {
	if err := checkSemiring("MxV", s); err != nil {
		return err
	}
	if u.Size() != a.NCols() {
		return sizeErrorf("MxV vector", u.Size(), a.NCols())
	}
	if out.Size() != a.NRows() {
		return sizeErrorf("MxV output", out.Size(), a.NRows())
	}
	if err := mask.check(out.Size()); err != nil {
		return err
	}

	t := newEntries[T](a.NRows())
	for i := 0; i < a.NRows(); i++ {
		if !mask.Selects(i) {
			continue
		}
		var (
			sum  T
			seen bool
		)
		for j, w := range a.Row(i) {
			x, ok := u.Lookup(j)
			if !ok {
				continue
			}
			v := s.Extend(w, x)
			if seen {
				sum = s.Combine(sum, v)
			} else {
				sum, seen = v, true
			}
		}
		if seen {
			t.push(i, sum)
		}
	}
	return writeVector(out, mask, accum, t, replace)
}

// MxM computes out<mask> = accum(out, a ⊕.⊗ b) row by row (Gustavson):
//
//	out[i][j] = Combine over k of Extend(a[i][k], b[k][j])
//
// Complexity: O(Σ_{(i,k)∈a} |row_k(b)|) plus the write step.
func MxM[T comparable](
	out sparse.Matrix[T],
	mask *MatrixMask,
	accum algebra.BinaryOp[T, T],
	s algebra.Semiring[T],
	a, b sparse.Matrix[T],
	replace bool,
) error {
	if err := checkSemiring("MxM", s); err != nil {
		return err
	}
	if a.NCols() != b.NRows() {
		return shapeErrorf("MxM right operand", b.NRows(), b.NCols(), a.NCols(), b.NCols())
	}
	if out.NRows() != a.NRows() || out.NCols() != b.NCols() {
		return shapeErrorf("MxM output", out.NRows(), out.NCols(), a.NRows(), b.NCols())
	}
	if err := mask.check(out.NRows(), out.NCols()); err != nil {
		return err
	}

	ncols := out.NCols()
	acc := newAccumulator[T](ncols)
	t := newEntries[T](a.NVals())
	for i := 0; i < a.NRows(); i++ {
		for k, x := range a.Row(i) {
			for j, w := range b.Row(k) {
				if !mask.Selects(i, j) {
					continue
				}
				acc.add(j, s.Extend(x, w), s.Combine)
			}
		}
		acc.drain(i*ncols, &t)
	}
	return writeMatrix(out, mask, accum, t, replace)
}
