// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(bopts, cons...). Resolves cfg, runs cons in order,
//     publishes one matrix whose size is the largest vertex count any constructor asked for.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// edgeSink collects the triples emitted by constructors.
type edgeSink struct {
	n          int
	rows, cols []int
	vals       []float64
	directed   bool
}

// vertices grows the vertex count to at least n.
func (s *edgeSink) vertices(n int) {
	if n > s.n {
		s.n = n
	}
}

// edge emits u→v with weight w, and v→u as well for undirected graphs.
func (s *edgeSink) edge(u, v int, w float64) {
	s.rows = append(s.rows, u)
	s.cols = append(s.cols, v)
	s.vals = append(s.vals, w)
	if !s.directed && u != v {
		s.rows = append(s.rows, v)
		s.cols = append(s.cols, u)
		s.vals = append(s.vals, w)
	}
}

// Constructor emits a deterministic set of vertices and edges using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Declare their vertex range through sink.vertices before emitting edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(sink *edgeSink, cfg builderConfig) error

// BuildMatrix resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting adjacency. Parallel edges
// keep the minimum weight.
//
// Complexity:
//   - Applying K constructors: Σ cost of each constructor.
//   - Publishing: O(E log E) for the sorted Build.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) (*sparse.RowMatrix[float64], error) {
	cfg := newBuilderConfig(bopts...)
	sink := &edgeSink{directed: cfg.directed}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sink, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}
	if sink.n == 0 {
		return nil, fmt.Errorf("BuildMatrix: no vertices: %w", ErrTooFewVertices)
	}

	m, err := sparse.NewMatrixFromTuples(sink.n, sink.n, sink.rows, sink.cols, sink.vals, algebra.Min[float64]().Fn)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w: %w", ErrConstructFailed, err)
	}
	return m, nil
}

// Build is BuildMatrix for a single constructor.
func Build(con Constructor, bopts ...BuilderOption) (*sparse.RowMatrix[float64], error) {
	return BuildMatrix(bopts, con)
}
