// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_path.go - Path(n): vertices 0..n-1, edges i→i+1.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path P_n (n ≥ 2) with edges emitted in i asc order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(sink *edgeSink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		sink.vertices(n)
		for i := 0; i+1 < n; i++ {
			sink.edge(i, i+1, cfg.weight())
		}
		return nil
	}
}
