// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_complete.go - Complete(n): every pair of distinct vertices.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n (n ≥ 1).
// Undirected: pairs i<j, each drawn once. Directed: every ordered pair i≠j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(sink *edgeSink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		sink.vertices(n)
		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				sink.edge(i, j, cfg.weight())
			}
		}
		return nil
	}
}
