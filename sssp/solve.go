// SPDX-License-Identifier: MIT

package sssp

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// Algorithm names one member of the solver family.
type Algorithm string

// Supported algorithms.
const (
	BellmanFord Algorithm = "bellman-ford"
	Filtered    Algorithm = "filtered"
	Delta       Algorithm = "delta"
	Batch       Algorithm = "batch"
)

// Algorithms lists every name accepted by ParseAlgorithm, in display order.
var Algorithms = []Algorithm{BellmanFord, Filtered, Delta, Batch}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// FromSource allocates a distance vector seeded at src and runs SSSP on it.
func FromSource[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], src int, opts ...Option) (*sparse.BitmapVector[T], error) {
	path, err := seeded(graph, src, "FromSource")
	if err != nil {
		return nil, err
	}
	if err = SSSP(ctx, graph, path, opts...); err != nil {
		return nil, err
	}
	return path, nil
}

// FromSources allocates a len(sources)×n distance matrix, seeds row k at
// sources[k] and runs BatchSSSP on it.
func FromSources[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], sources []int, opts ...Option) (*sparse.RowMatrix[T], error) {
	n := graph.NRows()
	if err := checkSquare("FromSources", graph, graph.NCols()); err != nil {
		return nil, err
	}
	rows := make([]int, len(sources))
	zeros := make([]T, len(sources))
	for k, src := range sources {
		if err := checkSource("FromSources", src, n); err != nil {
			return nil, err
		}
		rows[k] = k
	}
	paths, err := sparse.NewMatrixFromTuples(len(sources), n, rows, sources, zeros, nil)
	if err != nil {
		return nil, fmt.Errorf("sssp.FromSources: %w", err)
	}
	if err = BatchSSSP(ctx, graph, paths, opts...); err != nil {
		return nil, err
	}
	return paths, nil
}

// Solve runs algo from src and returns the distance vector. delta is only
// read by Delta; Batch runs the single source as a one-row batch.
func Solve[T algebra.Number](ctx context.Context, algo Algorithm, graph sparse.Matrix[T], src int, delta T, opts ...Option) (*sparse.BitmapVector[T], error) {
	switch algo {
	case BellmanFord:
		return FromSource(ctx, graph, src, opts...)
	case Filtered:
		dist, err := seeded(graph, src, "Solve")
		if err != nil {
			return nil, err
		}
		if err = FilteredSSSP(ctx, graph, dist, opts...); err != nil {
			return nil, err
		}
		return dist, nil
	case Delta:
		dist, err := sparse.NewVector[T](graph.NRows())
		if err != nil {
			return nil, err
		}
		if err = DeltaStep(ctx, graph, delta, src, dist, opts...); err != nil {
			return nil, err
		}
		return dist, nil
	case Batch:
		paths, err := FromSources(ctx, graph, []int{src}, opts...)
		if err != nil {
			return nil, err
		}
		idx, vals := []int{}, []T{}
		for j, x := range paths.Row(0) {
			idx = append(idx, j)
			vals = append(vals, x)
		}
		return sparse.NewVectorFromTuples(graph.NRows(), idx, vals, nil)
	default:
		return nil, fmt.Errorf("sssp.Solve: %w: %q", ErrUnknownAlgorithm, algo)
	}
}

// seeded returns an n-vector holding 0 at src.
func seeded[T algebra.Number](graph sparse.Matrix[T], src int, name string) (*sparse.BitmapVector[T], error) {
	n := graph.NRows()
	if err := checkSquare(name, graph, graph.NCols()); err != nil {
		return nil, err
	}
	if err := checkSource(name, src, n); err != nil {
		return nil, err
	}
	return sparse.NewVectorFromTuples(n, []int{src}, []T{0}, nil)
}
