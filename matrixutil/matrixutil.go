// SPDX-License-Identifier: MIT

// Package matrixutil provides matrix helpers expressed purely as compositions
// of the graphblas engine: diagonal construction, identities, triangular
// split and row/column normalization.
//
// Normalization contract:
//
//	NormalizeRows(A) scales every row of A so that it sums to 1 under the
//	arithmetic semiring: A ← diag(1/rowsum) · A. NormalizeCols does the same
//	for columns: A ← A · diag(1/colsum). A row (column) that is entirely absent
//	or sums to 0 is a defined failure (algebra.ErrDivideByZero), raised before A
//	is touched. Integer scalar kinds use integer division.
package matrixutil

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/sparse"
)

// Operation tags used in error wrapping.
const (
	opDiag           = "Diag"
	opScaledIdentity = "ScaledIdentity"
	opSplit          = "Split"
	opNormalizeRows  = "NormalizeRows"
	opNormalizeCols  = "NormalizeCols"
)

func utilErrorf(op string, err error) error {
	return fmt.Errorf("matrixutil.%s: %w", op, err)
}

// Diag builds the square matrix whose diagonal holds the present entries of v.
// Off-diagonal entries are absent.
// Complexity: O(v.NVals() log v.NVals()).
func Diag[T comparable](v sparse.Vector[T]) (*sparse.RowMatrix[T], error) {
	idx, vals := v.ExtractTuples()
	d, err := sparse.NewMatrixFromTuples(v.Size(), v.Size(), idx, idx, vals, nil)
	if err != nil {
		return nil, utilErrorf(opDiag, err)
	}
	return d, nil
}

// ScaledIdentity returns the n×n matrix with val on every diagonal position.
func ScaledIdentity[T comparable](n int, val T) (*sparse.RowMatrix[T], error) {
	v, err := sparse.NewFilledVector(n, val)
	if err != nil {
		return nil, utilErrorf(opScaledIdentity, err)
	}
	return Diag[T](v)
}

// Identity returns the n×n multiplicative identity.
func Identity[T algebra.Number](n int) (*sparse.RowMatrix[T], error) {
	return ScaledIdentity(n, T(1))
}

// Split partitions the entries of A: row ≥ col (diagonal included) into L,
// row < col into U. L and U are overwritten and must have A's shape.
//
// Implementation:
//   - Stage 1: Validate that L and U are distinct (ErrInvalidValue) and
//     shaped like A (ErrDimensionMismatch); nothing is written on failure.
//   - Stage 2: L<tril> = A with replace, U<¬tril> = A with replace.
//
// A may be passed as L or U; it is snapshotted first in that case.
func Split[T comparable](a, l, u sparse.Matrix[T]) error {
	if l == u {
		return utilErrorf(opSplit, fmt.Errorf("L and U are the same matrix: %w", sparse.ErrInvalidValue))
	}
	nr, nc := a.NRows(), a.NCols()
	for _, m := range []sparse.Matrix[T]{l, u} {
		if m.NRows() != nr || m.NCols() != nc {
			return utilErrorf(opSplit, fmt.Errorf("output %dx%d, want %dx%d: %w",
				m.NRows(), m.NCols(), nr, nc, sparse.ErrDimensionMismatch))
		}
	}

	src := a
	if l == a || u == a {
		// A doubles as an output; read both halves from a snapshot.
		rows, cols, vals := a.ExtractTuples()
		snap, err := sparse.NewMatrixFromTuples(nr, nc, rows, cols, vals, nil)
		if err != nil {
			return utilErrorf(opSplit, err)
		}
		src = snap
	}

	lower := graphblas.PositionMask(nr, nc, func(i, j int) bool { return i >= j })
	if err := graphblas.ApplyMatrix(l, lower, algebra.NoAccumulate[T](), algebra.Identity[T](), src, true); err != nil {
		return utilErrorf(opSplit, err)
	}
	if err := graphblas.ApplyMatrix(u, lower.Complement(), algebra.NoAccumulate[T](), algebra.Identity[T](), src, true); err != nil {
		return utilErrorf(opSplit, err)
	}
	return nil
}

// NormalizeRows scales A in place so that every row sums to 1.
//
// Implementation:
//   - Stage 1: w = ReduceRows(A) under Plus.
//   - Stage 2: fail if some row produced no sum; w = 1/w (fails on a zero sum).
//   - Stage 3: A = diag(w) · A under the arithmetic semiring.
//
// Complexity: O(nnz(A)) plus one MxM with a diagonal left operand.
func NormalizeRows[T algebra.Number](a sparse.Matrix[T]) error {
	w, err := inverseSums(opNormalizeRows, "row", a)
	if err != nil {
		return err
	}
	d, err := Diag[T](w)
	if err != nil {
		return utilErrorf(opNormalizeRows, err)
	}
	if err = graphblas.MxM(a, nil, algebra.NoAccumulate[T](), algebra.Arithmetic[T](), d, a, false); err != nil {
		return utilErrorf(opNormalizeRows, err)
	}
	return nil
}

// NormalizeCols scales A in place so that every column sums to 1:
// A = A · diag(1/colsum), with the column sums taken as row sums of Aᵀ.
func NormalizeCols[T algebra.Number](a sparse.Matrix[T]) error {
	at, err := sparse.NewMatrix[T](a.NCols(), a.NRows())
	if err != nil {
		return utilErrorf(opNormalizeCols, err)
	}
	if err = graphblas.Transpose[T](at, nil, algebra.NoAccumulate[T](), a, false); err != nil {
		return utilErrorf(opNormalizeCols, err)
	}
	w, err := inverseSums(opNormalizeCols, "column", at)
	if err != nil {
		return err
	}
	d, err := Diag[T](w)
	if err != nil {
		return utilErrorf(opNormalizeCols, err)
	}
	if err = graphblas.MxM(a, nil, algebra.NoAccumulate[T](), algebra.Arithmetic[T](), a, d, false); err != nil {
		return utilErrorf(opNormalizeCols, err)
	}
	return nil
}

// inverseSums returns 1/rowsum for every row of m, failing with
// ErrDivideByZero if a row is empty or sums to zero.
func inverseSums[T algebra.Number](op, kind string, m sparse.Matrix[T]) (*sparse.BitmapVector[T], error) {
	n := m.NRows()
	w, err := sparse.NewVector[T](n)
	if err != nil {
		return nil, utilErrorf(op, err)
	}
	if err = graphblas.ReduceRows(w, nil, algebra.NoAccumulate[T](), algebra.Plus[T](), m, false); err != nil {
		return nil, utilErrorf(op, err)
	}
	if w.NVals() < n {
		for i := 0; i < n; i++ {
			if _, ok := w.Lookup(i); !ok {
				return nil, utilErrorf(op, fmt.Errorf("%s %d is empty: %w", kind, i, algebra.ErrDivideByZero))
			}
		}
	}
	if err = graphblas.Apply(w, nil, algebra.NoAccumulate[T](), algebra.MultiplicativeInverse[T](), w, false); err != nil {
		return nil, utilErrorf(op, err)
	}
	return w, nil
}
