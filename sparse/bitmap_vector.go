// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"iter"
	"strings"
)

// BitmapVector is a sparse vector stored as a presence bitset plus a dense
// value slice. vals[i] is meaningful only where bits.test(i) holds.
type BitmapVector[T comparable] struct {
	size  int    // immutable after construction
	nvals int    // number of set bits, kept in sync on every mutation
	vals  []T    // dense backing storage, len == size
	bits  bitset // presence map
}

// Compile-time check that BitmapVector satisfies Vector.
var _ Vector[int] = (*BitmapVector[int])(nil)

// NewVector creates an empty vector of size n.
// Returns ErrInvalidValue if n <= 0.
// Complexity: O(n) time and memory.
func NewVector[T comparable](n int) (*BitmapVector[T], error) {
	if n <= 0 {
		return nil, vectorErrorf("New", n, ErrInvalidValue)
	}
	return &BitmapVector[T]{
		size: n,
		vals: make([]T, n),
		bits: newBitset(n),
	}, nil
}

// NewFilledVector creates a vector of size n with value present everywhere.
func NewFilledVector[T comparable](n int, value T) (*BitmapVector[T], error) {
	v, err := NewVector[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v.vals[i] = value
		v.bits.set(i)
	}
	v.nvals = n
	return v, nil
}

// NewVectorFromDense creates a vector whose size is len(dense) and whose
// every position is present.
func NewVectorFromDense[T comparable](dense []T) (*BitmapVector[T], error) {
	v, err := NewVector[T](len(dense))
	if err != nil {
		return nil, err
	}
	copy(v.vals, dense)
	for i := range dense {
		v.bits.set(i)
	}
	v.nvals = len(dense)
	return v, nil
}

// NewVectorFromDenseZero creates a vector from dense values where every value
// equal to zero becomes an absent position (the implied zero).
func NewVectorFromDenseZero[T comparable](dense []T, zero T) (*BitmapVector[T], error) {
	v, err := NewVector[T](len(dense))
	if err != nil {
		return nil, err
	}
	for i, x := range dense {
		if x == zero {
			continue
		}
		v.vals[i] = x
		v.bits.set(i)
		v.nvals++
	}
	return v, nil
}

// NewVectorFromTuples creates a vector of size n and builds it from parallel
// index/value slices, folding duplicates with dup.
func NewVectorFromTuples[T comparable](n int, indices []int, values []T, dup DupFunc[T]) (*BitmapVector[T], error) {
	v, err := NewVector[T](n)
	if err != nil {
		return nil, err
	}
	if err = v.Build(indices, values, dup); err != nil {
		return nil, err
	}
	return v, nil
}

// Size returns the immutable length.
func (v *BitmapVector[T]) Size() int { return v.size }

// NVals returns the number of present entries.
func (v *BitmapVector[T]) NVals() int { return v.nvals }

// HasElement reports presence at i.
func (v *BitmapVector[T]) HasElement(i int) (bool, error) {
	if i < 0 || i >= v.size {
		return false, vectorErrorf("HasElement", i, ErrIndexOutOfBounds)
	}
	return v.bits.test(i), nil
}

// ExtractElement returns the value at i.
func (v *BitmapVector[T]) ExtractElement(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, vectorErrorf("ExtractElement", i, ErrIndexOutOfBounds)
	}
	if !v.bits.test(i) {
		return zero, vectorErrorf("ExtractElement", i, ErrNoValue)
	}
	return v.vals[i], nil
}

// Lookup returns the value at i and whether it is present.
func (v *BitmapVector[T]) Lookup(i int) (T, bool) {
	if i < 0 || i >= v.size || !v.bits.test(i) {
		var zero T
		return zero, false
	}
	return v.vals[i], true
}

// SetElement inserts or overwrites the value at i; NVals grows only on the
// first insert at i.
func (v *BitmapVector[T]) SetElement(i int, x T) error {
	if i < 0 || i >= v.size {
		return vectorErrorf("SetElement", i, ErrIndexOutOfBounds)
	}
	v.vals[i] = x
	if !v.bits.test(i) {
		v.bits.set(i)
		v.nvals++
	}
	return nil
}

// RemoveElement drops the entry at i, if any.
func (v *BitmapVector[T]) RemoveElement(i int) error {
	if i < 0 || i >= v.size {
		return vectorErrorf("RemoveElement", i, ErrIndexOutOfBounds)
	}
	if v.bits.test(i) {
		v.bits.unset(i)
		v.nvals--
	}
	return nil
}

// Clear drops every entry.
func (v *BitmapVector[T]) Clear() {
	v.bits.reset()
	v.nvals = 0
}

// Build replaces the whole content.
// Stage 1 (Validate): equal slice lengths, every index in range.
// Stage 2 (Prepare): fold into fresh buffers, duplicates via dup in arrival order.
// Stage 3 (Publish): swap the buffers in.
// Complexity: O(size + len(indices)).
func (v *BitmapVector[T]) Build(indices []int, values []T, dup DupFunc[T]) error {
	if len(indices) != len(values) {
		return vectorErrorf("Build", len(indices), ErrInvalidValue)
	}
	for _, i := range indices {
		if i < 0 || i >= v.size {
			return vectorErrorf("Build", i, ErrIndexOutOfBounds)
		}
	}

	vals := make([]T, v.size)
	bits := newBitset(v.size)
	nvals := 0
	for k, i := range indices {
		if bits.test(i) {
			if dup != nil {
				vals[i] = dup(vals[i], values[k])
			} else {
				vals[i] = values[k]
			}
			continue
		}
		vals[i] = values[k]
		bits.set(i)
		nvals++
	}

	v.vals, v.bits, v.nvals = vals, bits, nvals
	return nil
}

// ExtractTuples returns all present pairs in ascending index order.
func (v *BitmapVector[T]) ExtractTuples() ([]int, []T) {
	indices := make([]int, 0, v.nvals)
	values := make([]T, 0, v.nvals)
	for i := v.bits.next(0); i >= 0; i = v.bits.next(i + 1) {
		indices = append(indices, i)
		values = append(values, v.vals[i])
	}
	return indices, values
}

// All iterates present pairs in ascending index order.
func (v *BitmapVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.bits.next(0); i >= 0; i = v.bits.next(i + 1) {
			if !yield(i, v.vals[i]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy.
func (v *BitmapVector[T]) Clone() *BitmapVector[T] {
	vals := make([]T, v.size)
	copy(vals, v.vals)
	return &BitmapVector[T]{size: v.size, nvals: v.nvals, vals: vals, bits: v.bits.clone()}
}

// Equal reports same size, same NVals, same presence pattern and equal values
// wherever both are present.
func (v *BitmapVector[T]) Equal(other Vector[T]) bool {
	return VectorsEqual[T](v, other)
}

// String renders the vector densely, "-" marking absent positions: [1, -, 3].
func (v *BitmapVector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v.bits.test(i) {
			fmt.Fprint(&sb, v.vals[i])
		} else {
			sb.WriteByte('-')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
