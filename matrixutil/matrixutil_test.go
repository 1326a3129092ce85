// SPDX-License-Identifier: MIT

package matrixutil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/matrixutil"
	"github.com/katalvlaran/gblas/sparse"
)

const eps = 1e-12

func dense(t *testing.T, rows [][]float64) *sparse.RowMatrix[float64] {
	t.Helper()
	m, err := sparse.NewMatrixFromDense(rows, 0)
	require.NoError(t, err)
	return m
}

func TestDiag(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVectorFromTuples(3, []int{0, 2}, []int{4, 6}, nil)
	require.NoError(t, err)
	d, err := matrixutil.Diag[int](v)
	require.NoError(t, err)
	assert.Equal(t, "[4, -, -]\n[-, -, -]\n[-, -, 6]", d.String())

	id, err := matrixutil.Identity[int](2)
	require.NoError(t, err)
	assert.Equal(t, "[1, -]\n[-, 1]", id.String())

	s, err := matrixutil.ScaledIdentity(2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NVals())

	_, err = matrixutil.Identity[int](0)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)
}

func TestSplit_RoundTrip(t *testing.T) {
	t.Parallel()
	a := dense(t, [][]float64{
		{1, 2, 0},
		{3, 4, 5},
		{0, 6, 7},
	})
	l, _ := sparse.NewMatrix[float64](3, 3)
	u, _ := sparse.NewMatrix[float64](3, 3)
	require.NoError(t, matrixutil.Split[float64](a, l, u))

	assert.Equal(t, "[1, -, -]\n[3, 4, -]\n[-, 6, 7]", l.String())
	assert.Equal(t, "[-, 2, -]\n[-, -, 5]\n[-, -, -]", u.String())

	back, _ := sparse.NewMatrix[float64](3, 3)
	require.NoError(t, graphblas.EWiseAddMatrix(back, nil, algebra.NoAccumulate[float64](), algebra.Plus[float64](), l, u, false))
	assert.True(t, back.Equal(a))

	// No entry in both halves.
	both, _ := sparse.NewMatrix[float64](3, 3)
	require.NoError(t, graphblas.EWiseMultMatrix(both, nil, algebra.NoAccumulate[float64](), algebra.Times[float64](), l, u, false))
	assert.Equal(t, 0, both.NVals())
}

func TestSplit_InPlaceAndShape(t *testing.T) {
	t.Parallel()
	a := dense(t, [][]float64{{1, 2}, {3, 4}})
	u, _ := sparse.NewMatrix[float64](2, 2)
	require.NoError(t, matrixutil.Split[float64](a, a, u))
	assert.Equal(t, "[1, -]\n[3, 4]", a.String())
	assert.Equal(t, "[-, 2]\n[-, -]", u.String())

	bad, _ := sparse.NewMatrix[float64](3, 2)
	require.ErrorIs(t, matrixutil.Split[float64](a, bad, u), sparse.ErrDimensionMismatch)

	// One matrix cannot receive both halves.
	out := dense(t, [][]float64{{9, 9}, {9, 9}})
	before := out.Clone()
	require.ErrorIs(t, matrixutil.Split[float64](a, out, out), sparse.ErrInvalidValue)
	assert.True(t, out.Equal(before))
}

func rowSums(t *testing.T, m sparse.Matrix[float64]) []float64 {
	t.Helper()
	w, _ := sparse.NewVector[float64](m.NRows())
	require.NoError(t, graphblas.ReduceRows(w, nil, algebra.NoAccumulate[float64](), algebra.Plus[float64](), m, false))
	out := make([]float64, m.NRows())
	for i, x := range w.All() {
		out[i] = x
	}
	return out
}

func TestNormalizeRows(t *testing.T) {
	t.Parallel()
	a := dense(t, [][]float64{
		{1, 3, 0},
		{0, 0.5, 0},
		{2, 2, 4},
	})
	require.NoError(t, matrixutil.NormalizeRows[float64](a))
	for i, s := range rowSums(t, a) {
		assert.InDelta(t, 1.0, s, eps, "row %d", i)
	}
	x, err := a.ExtractElement(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, x, eps)
}

func TestNormalizeCols(t *testing.T) {
	t.Parallel()
	a := dense(t, [][]float64{
		{1, 3},
		{3, 1},
		{4, 0},
	})
	require.NoError(t, matrixutil.NormalizeCols[float64](a))

	at, _ := sparse.NewMatrix[float64](2, 3)
	require.NoError(t, graphblas.Transpose[float64](at, nil, algebra.NoAccumulate[float64](), a, false))
	for j, s := range rowSums(t, at) {
		assert.InDelta(t, 1.0, s, eps, "column %d", j)
	}
}

func TestNormalize_DivideByZeroLeavesInput(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]float64
		cols bool
	}{
		{"empty row", [][]float64{{1, 2}, {0, 0}}, false},
		{"zero sum", [][]float64{{1, -1}, {2, 3}}, false},
		{"empty column", [][]float64{{1, 0}, {2, 0}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := dense(t, tc.rows)
			before := a.Clone()
			var err error
			if tc.cols {
				err = matrixutil.NormalizeCols[float64](a)
			} else {
				err = matrixutil.NormalizeRows[float64](a)
			}
			require.ErrorIs(t, err, algebra.ErrDivideByZero)
			assert.True(t, a.Equal(before))
		})
	}
}

func ExampleNormalizeRows() {
	a, _ := sparse.NewMatrixFromDense([][]float64{
		{1, 1, 2},
		{0, 4, 0},
	}, 0)
	if err := matrixutil.NormalizeRows[float64](a); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a)
	// Output:
	// [0.25, 0.25, 0.5]
	// [-, 1, -]
}
