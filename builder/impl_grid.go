// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Determinism:
//   • Vertex index of (r,c) is r*cols + c (row-major).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridIndex maps a grid cell to its vertex index.
func GridIndex(r, c, cols int) int { return r*cols + c }

// Grid builds an R×C 4-neighbourhood grid.
// Complexity: O(R*C).
func Grid(rows, cols int) Constructor {
	return func(sink *edgeSink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		sink.vertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIndex(r, c, cols)
				if c+1 < cols {
					sink.edge(u, GridIndex(r, c+1, cols), cfg.weight())
				}
				if r+1 < rows {
					sink.edge(u, GridIndex(r+1, c, cols), cfg.weight())
				}
			}
		}
		return nil
	}
}
