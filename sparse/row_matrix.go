// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// rowList holds the present entries of one row, cols strictly ascending.
type rowList[T comparable] struct {
	cols []int
	vals []T
}

// RowMatrix is a sparse matrix stored as one sorted column list per row.
type RowMatrix[T comparable] struct {
	nrows, ncols int
	nvals        int
	rows         []rowList[T]
}

var _ Matrix[int] = (*RowMatrix[int])(nil)

// NewMatrix creates an empty nrows×ncols matrix.
// Returns ErrInvalidValue if either dimension is <= 0 or if nrows·ncols does
// not fit in an int, since row-major positions row·ncols+col must.
func NewMatrix[T comparable](nrows, ncols int) (*RowMatrix[T], error) {
	if nrows <= 0 || ncols <= 0 || nrows > math.MaxInt/ncols {
		return nil, matrixErrorf("New", nrows, ncols, ErrInvalidValue)
	}
	return &RowMatrix[T]{nrows: nrows, ncols: ncols, rows: make([]rowList[T], nrows)}, nil
}

// NewMatrixFromTuples creates an nrows×ncols matrix and builds it from triples.
func NewMatrixFromTuples[T comparable](nrows, ncols int, rows, cols []int, values []T, dup DupFunc[T]) (*RowMatrix[T], error) {
	m, err := NewMatrix[T](nrows, ncols)
	if err != nil {
		return nil, err
	}
	if err = m.Build(rows, cols, values, dup); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMatrixFromDense creates a matrix from a rectangular [][]T; entries equal
// to zero become absent. Ragged input returns ErrInvalidValue.
func NewMatrixFromDense[T comparable](dense [][]T, zero T) (*RowMatrix[T], error) {
	if len(dense) == 0 {
		return nil, matrixErrorf("FromDense", 0, 0, ErrInvalidValue)
	}
	m, err := NewMatrix[T](len(dense), len(dense[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range dense {
		if len(r) != m.ncols {
			return nil, matrixErrorf("FromDense", i, len(r), ErrInvalidValue)
		}
		for j, x := range r {
			if x == zero {
				continue
			}
			m.rows[i].cols = append(m.rows[i].cols, j)
			m.rows[i].vals = append(m.rows[i].vals, x)
			m.nvals++
		}
	}
	return m, nil
}

// NRows returns the number of rows.
func (m *RowMatrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *RowMatrix[T]) NCols() int { return m.ncols }

// NVals returns the number of present entries.
func (m *RowMatrix[T]) NVals() int { return m.nvals }

func (m *RowMatrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.nrows && j >= 0 && j < m.ncols
}

// find returns the position of column j in row i and whether it is present.
func (m *RowMatrix[T]) find(i, j int) (int, bool) {
	return slices.BinarySearch(m.rows[i].cols, j)
}

// HasElement reports presence at (i, j).
func (m *RowMatrix[T]) HasElement(i, j int) (bool, error) {
	if !m.inBounds(i, j) {
		return false, matrixErrorf("HasElement", i, j, ErrIndexOutOfBounds)
	}
	_, ok := m.find(i, j)
	return ok, nil
}

// ExtractElement returns the value at (i, j).
func (m *RowMatrix[T]) ExtractElement(i, j int) (T, error) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, matrixErrorf("ExtractElement", i, j, ErrIndexOutOfBounds)
	}
	k, ok := m.find(i, j)
	if !ok {
		return zero, matrixErrorf("ExtractElement", i, j, ErrNoValue)
	}
	return m.rows[i].vals[k], nil
}

// Lookup returns the value at (i, j) and whether it is present.
func (m *RowMatrix[T]) Lookup(i, j int) (T, bool) {
	var zero T
	if !m.inBounds(i, j) {
		return zero, false
	}
	k, ok := m.find(i, j)
	if !ok {
		return zero, false
	}
	return m.rows[i].vals[k], true
}

// SetElement inserts or overwrites the value at (i, j).
// Complexity: O(log k) search + O(k) shift for a row of k entries.
func (m *RowMatrix[T]) SetElement(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return matrixErrorf("SetElement", i, j, ErrIndexOutOfBounds)
	}
	k, ok := m.find(i, j)
	if ok {
		m.rows[i].vals[k] = v
		return nil
	}
	m.rows[i].cols = slices.Insert(m.rows[i].cols, k, j)
	m.rows[i].vals = slices.Insert(m.rows[i].vals, k, v)
	m.nvals++
	return nil
}

// RemoveElement drops the entry at (i, j), if any.
func (m *RowMatrix[T]) RemoveElement(i, j int) error {
	if !m.inBounds(i, j) {
		return matrixErrorf("RemoveElement", i, j, ErrIndexOutOfBounds)
	}
	k, ok := m.find(i, j)
	if !ok {
		return nil
	}
	m.rows[i].cols = slices.Delete(m.rows[i].cols, k, k+1)
	m.rows[i].vals = slices.Delete(m.rows[i].vals, k, k+1)
	m.nvals--
	return nil
}

// Clear drops every entry.
func (m *RowMatrix[T]) Clear() {
	m.rows = make([]rowList[T], m.nrows)
	m.nvals = 0
}

// triple is one pending Build entry.
type triple[T any] struct {
	row, col int
	val      T
}

// Build replaces the whole content with the given triples.
// Stage 1 (Validate): equal slice lengths, every (row, col) in range.
// Stage 2 (Prepare): stable sort by (row, col); fold duplicates in arrival order.
// Stage 3 (Publish): swap the new rows in.
// Complexity: O(nnz log nnz).
func (m *RowMatrix[T]) Build(rows, cols []int, values []T, dup DupFunc[T]) error {
	if len(rows) != len(cols) || len(rows) != len(values) {
		return matrixErrorf("Build", len(rows), len(cols), ErrInvalidValue)
	}
	pending := make([]triple[T], len(rows))
	for k := range rows {
		if !m.inBounds(rows[k], cols[k]) {
			return matrixErrorf("Build", rows[k], cols[k], ErrIndexOutOfBounds)
		}
		pending[k] = triple[T]{row: rows[k], col: cols[k], val: values[k]}
	}
	slices.SortStableFunc(pending, func(a, b triple[T]) int {
		if c := cmp.Compare(a.row, b.row); c != 0 {
			return c
		}
		return cmp.Compare(a.col, b.col)
	})

	out := make([]rowList[T], m.nrows)
	nvals := 0
	for _, p := range pending {
		r := &out[p.row]
		last := len(r.cols) - 1
		if last >= 0 && r.cols[last] == p.col {
			if dup != nil {
				r.vals[last] = dup(r.vals[last], p.val)
			} else {
				r.vals[last] = p.val
			}
			continue
		}
		r.cols = append(r.cols, p.col)
		r.vals = append(r.vals, p.val)
		nvals++
	}

	m.rows, m.nvals = out, nvals
	return nil
}

// ExtractTuples returns all present triples in row-major ascending order.
func (m *RowMatrix[T]) ExtractTuples() ([]int, []int, []T) {
	rows := make([]int, 0, m.nvals)
	cols := make([]int, 0, m.nvals)
	vals := make([]T, 0, m.nvals)
	for i := range m.rows {
		for k, j := range m.rows[i].cols {
			rows = append(rows, i)
			cols = append(cols, j)
			vals = append(vals, m.rows[i].vals[k])
		}
	}
	return rows, cols, vals
}

// Row iterates the entries of row i in ascending column order.
func (m *RowMatrix[T]) Row(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if i < 0 || i >= m.nrows {
			return
		}
		r := m.rows[i]
		for k, j := range r.cols {
			if !yield(j, r.vals[k]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy.
func (m *RowMatrix[T]) Clone() *RowMatrix[T] {
	out := &RowMatrix[T]{nrows: m.nrows, ncols: m.ncols, nvals: m.nvals, rows: make([]rowList[T], m.nrows)}
	for i, r := range m.rows {
		out.rows[i] = rowList[T]{cols: slices.Clone(r.cols), vals: slices.Clone(r.vals)}
	}
	return out
}

// Equal reports same shape, same pattern and equal values.
func (m *RowMatrix[T]) Equal(other Matrix[T]) bool {
	return MatricesEqual[T](m, other)
}

// String renders one dense row per line, "-" marking absent entries.
func (m *RowMatrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.nrows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		r := m.rows[i]
		k := 0
		for j := 0; j < m.ncols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if k < len(r.cols) && r.cols[k] == j {
				fmt.Fprint(&sb, r.vals[k])
				k++
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
