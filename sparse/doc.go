// Package sparse provides the storage backends consumed by the gblas engine:
// the Vector and Matrix interfaces and their concrete implementations.
//
// Backends:
//
//   - BitmapVector[T]: a presence bitset plus a dense value slice. O(1)
//     existence checks, lookups and writes; O(size) full scans. Size is fixed at
//     construction and a zero size is rejected with ErrInvalidValue.
//   - RowMatrix[T]: one sorted (column, value) list per row. O(log k) lookups
//     within a row of k entries; row iteration in ascending column order, which
//     is exactly what vector-matrix products need.
//
// Presence and count invariant:
//
//	For every container at every observable point NVals() equals the number of
//	positions for which HasElement reports true. Absent positions have no value
//	and are never read: ExtractElement on an absent position returns ErrNoValue.
//
// Bulk replace:
//
//	Build replaces the whole content. Duplicate indices inside one batch are
//	folded pairwise with the supplied operator in arrival order (nil means the
//	last value wins). Build validates the entire batch before touching the
//	container, so a failing Build leaves the previous content intact.
//
// Usage:
//
//	v, err := sparse.NewVector[int](6)
//	if err != nil { ... }
//	_ = v.Build([]int{2, 2, 5}, []int{3, 4, 7}, func(a, b int) int { return a + b })
//	x, _ := v.ExtractElement(2) // 7
//	for i, val := range v.All() { ... } // ascending index order
//
// Thread safety:
//
//	Containers are not synchronized. Concurrent readers are fine; any writer
//	requires external synchronization.
package sparse
