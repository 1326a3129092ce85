// SPDX-License-Identifier: MIT

// Package sparse: backend interfaces.
// The engine and every algorithm are generic over these interfaces, not over
// a concrete storage layout. BitmapVector and RowMatrix are the bundled
// implementations; any other backend satisfying the contract plugs in as is.
package sparse

import "iter"

// DupFunc folds two values that arrive for the same index in one Build batch.
// It is called as dup(previous, incoming). A nil DupFunc keeps the incoming one.
type DupFunc[T any] func(previous, incoming T) T

// Vector is the sparse vector contract.
type Vector[T comparable] interface {
	// Size returns the immutable length of the vector.
	Size() int

	// NVals returns the number of present entries.
	NVals() int

	// HasElement reports presence at i; ErrIndexOutOfBounds if i is outside [0,Size).
	HasElement(i int) (bool, error)

	// ExtractElement returns the value at i; ErrIndexOutOfBounds or ErrNoValue.
	ExtractElement(i int) (T, error)

	// SetElement inserts or overwrites the value at i.
	SetElement(i int, v T) error

	// RemoveElement drops the entry at i (no-op when absent).
	RemoveElement(i int) error

	// Clear drops every entry; Size is unchanged.
	Clear()

	// Build replaces the whole content with (indices[k], values[k]) pairs.
	Build(indices []int, values []T, dup DupFunc[T]) error

	// ExtractTuples returns all present pairs in ascending index order.
	ExtractTuples() ([]int, []T)

	// All iterates present pairs in ascending index order. The sequence is
	// lazy, finite and may be ranged over any number of times.
	All() iter.Seq2[int, T]

	// Lookup is the non-failing probe used by hot loops: ok is false for
	// absent or out-of-range positions.
	Lookup(i int) (T, bool)
}

// Matrix is the sparse matrix contract consumed by the engine.
type Matrix[T comparable] interface {
	// NRows returns the number of rows.
	NRows() int

	// NCols returns the number of columns.
	NCols() int

	// NVals returns the number of present entries.
	NVals() int

	// HasElement reports presence at (i, j).
	HasElement(i, j int) (bool, error)

	// ExtractElement returns the value at (i, j); ErrIndexOutOfBounds or ErrNoValue.
	ExtractElement(i, j int) (T, error)

	// SetElement inserts or overwrites the value at (i, j).
	SetElement(i, j int, v T) error

	// RemoveElement drops the entry at (i, j) (no-op when absent).
	RemoveElement(i, j int) error

	// Clear drops every entry; the shape is unchanged.
	Clear()

	// Build replaces the whole content with (rows[k], cols[k], values[k]) triples.
	Build(rows, cols []int, values []T, dup DupFunc[T]) error

	// ExtractTuples returns all present triples in row-major ascending order.
	ExtractTuples() ([]int, []int, []T)

	// Row iterates the present (column, value) pairs of row i in ascending
	// column order. Out-of-range rows yield nothing.
	Row(i int) iter.Seq2[int, T]

	// Lookup is the non-failing probe: ok is false for absent or out-of-range positions.
	Lookup(i, j int) (T, bool)
}
