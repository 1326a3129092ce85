// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_cycle.go - Cycle(n): Path(n) plus the closing edge n-1→0.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(sink *edgeSink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		sink.vertices(n)
		for i := 0; i < n; i++ {
			sink.edge(i, (i+1)%n, cfg.weight())
		}
		return nil
	}
}
