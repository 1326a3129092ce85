// SPDX-License-Identifier: MIT

// Package sparse_test validates the bundled backends: construction modes,
// the presence/count invariant, Build folding and failure atomicity.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/sparse"
)

func sum(a, b int) int { return a + b }

// assertCountInvariant checks NVals against an independent HasElement scan.
func assertCountInvariant[T comparable](t *testing.T, v sparse.Vector[T]) {
	t.Helper()
	present := 0
	for i := 0; i < v.Size(); i++ {
		ok, err := v.HasElement(i)
		require.NoError(t, err)
		if ok {
			present++
		}
	}
	assert.Equal(t, present, v.NVals(), "NVals must equal the number of present positions")
}

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestNewVector_ZeroSizeRejected(t *testing.T) {
	t.Parallel()
	_, err := sparse.NewVector[int](0)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)

	_, err = sparse.NewVectorFromDense([]int{})
	require.ErrorIs(t, err, sparse.ErrInvalidValue)
}

func TestNewFilledVector_AllPresent(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewFilledVector(5, 3.5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.NVals())
	for i := 0; i < 5; i++ {
		x, err := v.ExtractElement(i)
		require.NoError(t, err)
		assert.Equal(t, 3.5, x)
	}
	assertCountInvariant[float64](t, v)
}

func TestNewVectorFromDenseZero_SentinelBecomesAbsent(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVectorFromDenseZero([]int{1, 0, 3, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v.NVals())
	assert.Equal(t, "[1, -, 3, -]", v.String())

	_, err = v.ExtractElement(1)
	require.ErrorIs(t, err, sparse.ErrNoValue)
	assertCountInvariant[int](t, v)
}

func TestNewVectorFromDense_KeepsZeros(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVectorFromDense([]int{0, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, v.NVals())
	assert.Equal(t, "[0, 0, 2]", v.String())
}

// ------------------------------------------------------------------------
// 2. Element access
// ------------------------------------------------------------------------

func TestVector_Bounds(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVector[int](3)
	require.NoError(t, err)

	_, err = v.HasElement(3)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
	_, err = v.ExtractElement(-1)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.SetElement(7, 1), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.RemoveElement(3), sparse.ErrIndexOutOfBounds)

	_, ok := v.Lookup(99)
	assert.False(t, ok)
}

func TestVector_SetElement_CountsFirstInsertOnly(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVector[int](4)
	require.NoError(t, err)

	require.NoError(t, v.SetElement(2, 10))
	require.NoError(t, v.SetElement(2, 11))
	assert.Equal(t, 1, v.NVals())
	x, err := v.ExtractElement(2)
	require.NoError(t, err)
	assert.Equal(t, 11, x)

	require.NoError(t, v.RemoveElement(2))
	require.NoError(t, v.RemoveElement(2))
	assert.Equal(t, 0, v.NVals())
	assertCountInvariant[int](t, v)
}

func TestVector_Clear(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewFilledVector(70, 1)
	require.NoError(t, err)
	v.Clear()
	assert.Equal(t, 0, v.NVals())
	assert.Equal(t, 70, v.Size())
	assertCountInvariant[int](t, v)
}

// ------------------------------------------------------------------------
// 3. Build
// ------------------------------------------------------------------------

func TestVector_Build_FoldsDuplicates(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVector[int](6)
	require.NoError(t, err)
	require.NoError(t, v.Build([]int{2, 2, 5}, []int{3, 4, 7}, sum))

	ok, err := v.HasElement(2)
	require.NoError(t, err)
	assert.True(t, ok)
	x, _ := v.ExtractElement(2)
	assert.Equal(t, 7, x)
	x, _ = v.ExtractElement(5)
	assert.Equal(t, 7, x)
	assert.Equal(t, 2, v.NVals())
	assertCountInvariant[int](t, v)
}

func TestVector_Build_ArrivalOrder(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVector[int](2)
	require.NoError(t, err)

	// Minus is not commutative: ((10 - 3) - 2) = 5.
	minus := func(prev, in int) int { return prev - in }
	require.NoError(t, v.Build([]int{1, 1, 1}, []int{10, 3, 2}, minus))
	x, _ := v.ExtractElement(1)
	assert.Equal(t, 5, x)

	// nil dup keeps the last value.
	require.NoError(t, v.Build([]int{0, 0}, []int{4, 9}, nil))
	x, _ = v.ExtractElement(0)
	assert.Equal(t, 9, x)
	assert.Equal(t, 1, v.NVals(), "Build replaces the previous content")
}

func TestVector_Build_FailureLeavesContent(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVectorFromTuples(4, []int{0, 3}, []int{1, 2}, nil)
	require.NoError(t, err)
	before := v.Clone()

	require.ErrorIs(t, v.Build([]int{1, 4}, []int{1, 1}, nil), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.Build([]int{1}, []int{1, 2}, nil), sparse.ErrInvalidValue)
	assert.True(t, v.Equal(before))
}

// ------------------------------------------------------------------------
// 4. Iteration and equality
// ------------------------------------------------------------------------

func TestVector_TuplesAndAll(t *testing.T) {
	t.Parallel()
	v, err := sparse.NewVectorFromTuples(130, []int{129, 3, 64}, []int{1, 2, 3}, nil)
	require.NoError(t, err)

	idx, vals := v.ExtractTuples()
	assert.Equal(t, []int{3, 64, 129}, idx)
	assert.Equal(t, []int{2, 3, 1}, vals)

	// All is restartable.
	for range 2 {
		var seen []int
		for i := range v.All() {
			seen = append(seen, i)
		}
		assert.Equal(t, idx, seen)
	}

	// Early break stops the sequence.
	n := 0
	for range v.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestVector_Equal(t *testing.T) {
	t.Parallel()
	a, _ := sparse.NewVectorFromTuples(4, []int{1, 2}, []int{5, 6}, nil)
	b, _ := sparse.NewVectorFromTuples(4, []int{2, 1}, []int{6, 5}, nil)
	c, _ := sparse.NewVectorFromTuples(4, []int{1, 3}, []int{5, 6}, nil)
	d, _ := sparse.NewVectorFromTuples(5, []int{1, 2}, []int{5, 6}, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different presence pattern")
	assert.False(t, a.Equal(d), "different size")

	cl := a.Clone()
	require.NoError(t, cl.SetElement(1, 0))
	assert.False(t, a.Equal(cl), "clone is independent")
}
