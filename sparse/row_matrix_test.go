// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/sparse"
)

func TestNewMatrix_Validation(t *testing.T) {
	t.Parallel()
	_, err := sparse.NewMatrix[int](0, 3)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)

	_, err = sparse.NewMatrixFromDense([][]int{{1, 2}, {3}}, 0)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)

	// nrows·ncols must stay addressable as a row-major int position.
	_, err = sparse.NewMatrix[int](math.MaxInt/2+1, 2)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)
	_, err = sparse.NewMatrix[int](math.MaxInt/3, 4)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)
	wide, err := sparse.NewMatrix[int](1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, wide.NCols())
}

func TestMatrix_FromDense(t *testing.T) {
	t.Parallel()
	m, err := sparse.NewMatrixFromDense([][]int{
		{0, 1, 0},
		{2, 0, 3},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NRows())
	assert.Equal(t, 3, m.NCols())
	assert.Equal(t, 3, m.NVals())
	assert.Equal(t, "[-, 1, -]\n[2, -, 3]", m.String())
}

func TestMatrix_Build_SortsAndFolds(t *testing.T) {
	t.Parallel()
	m, err := sparse.NewMatrix[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Build(
		[]int{2, 0, 2, 0},
		[]int{1, 2, 1, 0},
		[]int{5, 1, 6, 4},
		sum,
	))
	assert.Equal(t, 3, m.NVals())

	rows, cols, vals := m.ExtractTuples()
	assert.Equal(t, []int{0, 0, 2}, rows)
	assert.Equal(t, []int{0, 2, 1}, cols)
	assert.Equal(t, []int{4, 1, 11}, vals)
}

func TestMatrix_Build_FailureLeavesContent(t *testing.T) {
	t.Parallel()
	m, err := sparse.NewMatrixFromTuples(2, 2, []int{0}, []int{1}, []int{9}, nil)
	require.NoError(t, err)
	before := m.Clone()

	require.ErrorIs(t, m.Build([]int{0, 2}, []int{0, 0}, []int{1, 1}, nil), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Build([]int{0}, []int{0, 1}, []int{1}, nil), sparse.ErrInvalidValue)
	assert.True(t, m.Equal(before))
}

func TestMatrix_ElementAccess(t *testing.T) {
	t.Parallel()
	m, err := sparse.NewMatrix[float64](2, 4)
	require.NoError(t, err)

	require.NoError(t, m.SetElement(1, 3, 2.5))
	require.NoError(t, m.SetElement(1, 0, 1.5))
	require.NoError(t, m.SetElement(1, 3, 3.5))
	assert.Equal(t, 2, m.NVals())

	x, err := m.ExtractElement(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.5, x)

	_, err = m.ExtractElement(0, 0)
	require.ErrorIs(t, err, sparse.ErrNoValue)
	_, err = m.HasElement(2, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.SetElement(0, 4, 1), sparse.ErrIndexOutOfBounds)

	var cols []int
	for j := range m.Row(1) {
		cols = append(cols, j)
	}
	assert.Equal(t, []int{0, 3}, cols, "Row iterates in ascending column order")

	require.NoError(t, m.RemoveElement(1, 0))
	require.NoError(t, m.RemoveElement(1, 0))
	assert.Equal(t, 1, m.NVals())

	m.Clear()
	assert.Equal(t, 0, m.NVals())
	assert.Equal(t, 4, m.NCols())
}

func TestMatrix_EqualAndClone(t *testing.T) {
	t.Parallel()
	a, _ := sparse.NewMatrixFromTuples(2, 2, []int{0, 1}, []int{1, 0}, []int{1, 2}, nil)
	b := a.Clone()
	assert.True(t, a.Equal(b))
	assert.True(t, sparse.MatricesEqual[int](a, b))

	require.NoError(t, b.SetElement(0, 0, 7))
	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, a.NVals(), "clone is independent")
}
