// SPDX-License-Identifier: MIT

package sparse

// VectorsEqual compares any two Vector backends: same size, same NVals, same
// presence pattern and equal values where present.
// Complexity: O(nvals) lookups.
func VectorsEqual[T comparable](a, b Vector[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() || a.NVals() != b.NVals() {
		return false
	}
	for i, x := range a.All() {
		y, ok := b.Lookup(i)
		if !ok || x != y {
			return false
		}
	}
	return true
}

// MatricesEqual compares any two Matrix backends entry for entry.
func MatricesEqual[T comparable](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.NRows() != b.NRows() || a.NCols() != b.NCols() || a.NVals() != b.NVals() {
		return false
	}
	for i := 0; i < a.NRows(); i++ {
		for j, x := range a.Row(i) {
			y, ok := b.Lookup(i, j)
			if !ok || x != y {
				return false
			}
		}
	}
	return true
}
