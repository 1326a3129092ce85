// SPDX-License-Identifier: MIT

package graphblas

import "github.com/katalvlaran/gblas/sparse"

// VectorMask restricts which positions of a vector output may be written.
// A nil *VectorMask selects everything.
type VectorMask struct {
	size int
	sel  func(i int) bool
}

// ValueMask selects positions of v that are present and differ from the zero
// value of T. For a bool vector that is "present and true".
func ValueMask[T comparable](v sparse.Vector[T]) *VectorMask {
	var zero T
	return &VectorMask{
		size: v.Size(),
		sel: func(i int) bool {
			x, ok := v.Lookup(i)
			return ok && x != zero
		},
	}
}

// StructureMask selects every present position of v, whatever its value.
func StructureMask[T comparable](v sparse.Vector[T]) *VectorMask {
	return &VectorMask{
		size: v.Size(),
		sel: func(i int) bool {
			_, ok := v.Lookup(i)
			return ok
		},
	}
}

// Complement returns the mask selecting exactly what m does not.
func (m *VectorMask) Complement() *VectorMask {
	if m == nil {
		// ¬(all) selects nothing; size is checked against the output only when set.
		return &VectorMask{size: -1, sel: func(int) bool { return false }}
	}
	sel := m.sel
	return &VectorMask{size: m.size, sel: func(i int) bool { return !sel(i) }}
}

// Selects reports whether position i may be written.
func (m *VectorMask) Selects(i int) bool {
	return m == nil || m.sel(i)
}

func (m *VectorMask) check(size int) error {
	if m == nil || m.size < 0 || m.size == size {
		return nil
	}
	return sizeErrorf("mask", m.size, size)
}

// MatrixMask restricts which positions of a matrix output may be written.
// A nil *MatrixMask selects everything.
type MatrixMask struct {
	nrows, ncols int
	sel          func(i, j int) bool
}

// MatrixValueMask selects entries of m that are present and non-zero.
func MatrixValueMask[T comparable](m sparse.Matrix[T]) *MatrixMask {
	var zero T
	return &MatrixMask{
		nrows: m.NRows(),
		ncols: m.NCols(),
		sel: func(i, j int) bool {
			x, ok := m.Lookup(i, j)
			return ok && x != zero
		},
	}
}

// MatrixStructureMask selects every present entry of m.
func MatrixStructureMask[T comparable](m sparse.Matrix[T]) *MatrixMask {
	return &MatrixMask{
		nrows: m.NRows(),
		ncols: m.NCols(),
		sel: func(i, j int) bool {
			_, ok := m.Lookup(i, j)
			return ok
		},
	}
}

// Complement returns the mask selecting exactly what m does not.
func (m *MatrixMask) Complement() *MatrixMask {
	if m == nil {
		return &MatrixMask{nrows: -1, ncols: -1, sel: func(int, int) bool { return false }}
	}
	sel := m.sel
	return &MatrixMask{nrows: m.nrows, ncols: m.ncols, sel: func(i, j int) bool { return !sel(i, j) }}
}

// Selects reports whether entry (i, j) may be written.
func (m *MatrixMask) Selects(i, j int) bool {
	return m == nil || m.sel(i, j)
}

func (m *MatrixMask) check(nrows, ncols int) error {
	if m == nil || m.nrows < 0 || (m.nrows == nrows && m.ncols == ncols) {
		return nil
	}
	return shapeErrorf("mask", m.nrows, m.ncols, nrows, ncols)
}

// PositionMask selects entries by position alone, the way tril/triu select
// does. It does not read any container.
func PositionMask(nrows, ncols int, sel func(i, j int) bool) *MatrixMask {
	return &MatrixMask{nrows: nrows, ncols: ncols, sel: sel}
}
