// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_star.go - Star(n): center 0 with leaves 1..n-1.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	// StarCenter is the vertex index of the star's hub.
	StarCenter = 0
)

// Star builds a star with center StarCenter and n-1 leaves (n ≥ 2).
// Directed stars point outward from the center.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(sink *edgeSink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		sink.vertices(n)
		for leaf := 1; leaf < n; leaf++ {
			sink.edge(StarCenter, leaf, cfg.weight())
		}
		return nil
	}
}
