// SPDX-License-Identifier: MIT

package sssp

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/sparse"
)

// SSSP relaxes path against graph for exactly n = graph.NRows() rounds:
//
//	path = min(path, path min.+ graph)
//
// The caller seeds path with 0 at the source and leaves every other position
// absent. n rounds suffice for any graph without negative cycles; the loop
// does not stop early (see FilteredSSSP for that).
//
// ctx only parents the span. Complexity: O(n · E).
func SSSP[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], path sparse.Vector[T], opts ...Option) error {
	o := resolve(opts)
	_, span := startSpan(ctx, o, "sssp.SSSP", graph)
	defer span.End()

	if err := checkSquare("SSSP", graph, path.Size()); err != nil {
		return fail(span, err)
	}

	n := graph.NRows()
	s := algebra.MinPlus[T]()
	accum := algebra.Min[T]()
	for k := 0; k < n; k++ {
		if err := graphblas.VxM(path, nil, accum, s, path, graph, false); err != nil {
			return fail(span, fmt.Errorf("sssp.SSSP round %d: %w", k, err))
		}
	}

	span.SetAttributes(attribute.Int("rounds", n), attribute.Int("reached", path.NVals()))
	o.Logger.Debug("sssp finished", slog.Int("rounds", n), slog.Int("reached", path.NVals()))
	return nil
}

// BatchSSSP is SSSP for many sources at once: each row of paths is an
// independent distance vector seeded with 0 at its own source. It runs exactly
// n rounds of paths = min(paths, paths min.+ graph).
//
// Complexity: O(n · Σ_rows E).
func BatchSSSP[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], paths sparse.Matrix[T], opts ...Option) error {
	o := resolve(opts)
	_, span := startSpan(ctx, o, "sssp.BatchSSSP", graph)
	defer span.End()

	if err := checkSquare("BatchSSSP", graph, paths.NCols()); err != nil {
		return fail(span, err)
	}

	n := graph.NRows()
	s := algebra.MinPlus[T]()
	accum := algebra.Min[T]()
	for k := 0; k < n; k++ {
		if err := graphblas.MxM(paths, nil, accum, s, paths, graph, false); err != nil {
			return fail(span, fmt.Errorf("sssp.BatchSSSP round %d: %w", k, err))
		}
	}

	span.SetAttributes(
		attribute.Int("rounds", n),
		attribute.Int("sources", paths.NRows()),
		attribute.Int("reached", paths.NVals()),
	)
	o.Logger.Debug("batch sssp finished", slog.Int("rounds", n), slog.Int("sources", paths.NRows()))
	return nil
}

// FilteredSSSP relaxes only the vertices that improved in the previous round
// and stops on the first round in which nothing improves:
//
//	candidate = frontier min.+ graph
//	improved  = candidate < distance    (only where candidate is present)
//	frontier  = candidate<improved>
//	distance  = min(distance, frontier)
//
// For non-negative weights the result equals SSSP and at most n rounds run.
// Complexity: O(rounds · E).
func FilteredSSSP[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], distance sparse.Vector[T], opts ...Option) error {
	o := resolve(opts)
	_, span := startSpan(ctx, o, "sssp.FilteredSSSP", graph)
	defer span.End()

	if err := checkSquare("FilteredSSSP", graph, distance.Size()); err != nil {
		return fail(span, err)
	}

	n := graph.NRows()
	frontier, err := snapshot(distance)
	if err != nil {
		return fail(span, err)
	}
	improved, err := sparse.NewVector[bool](n)
	if err != nil {
		return fail(span, err)
	}

	var (
		s      = algebra.MinPlus[T]()
		none   = algebra.NoAccumulate[T]()
		noneB  = algebra.NoAccumulate[bool]()
		less   = algebra.LessThan[T]()
		minOp  = algebra.Min[T]()
		same   = algebra.Identity[T]()
		rounds int
	)
	for {
		rounds++
		if err = graphblas.VxM(frontier, nil, none, s, frontier, graph, false); err != nil {
			return fail(span, fmt.Errorf("sssp.FilteredSSSP round %d: %w", rounds, err))
		}
		if err = graphblas.EWiseAdd(improved, graphblas.StructureMask(frontier), noneB, less, frontier, distance, true); err != nil {
			return fail(span, fmt.Errorf("sssp.FilteredSSSP round %d: %w", rounds, err))
		}
		if err = graphblas.Apply(frontier, graphblas.ValueMask(improved), none, same, frontier, true); err != nil {
			return fail(span, fmt.Errorf("sssp.FilteredSSSP round %d: %w", rounds, err))
		}
		o.Logger.Debug("filtered round", slog.Int("round", rounds), slog.Int("improved", frontier.NVals()))
		if frontier.NVals() == 0 {
			break
		}
		if err = graphblas.EWiseAdd(distance, nil, none, minOp, frontier, distance, false); err != nil {
			return fail(span, fmt.Errorf("sssp.FilteredSSSP round %d: %w", rounds, err))
		}
	}

	span.SetAttributes(attribute.Int("rounds", rounds), attribute.Int("reached", distance.NVals()))
	o.Logger.Debug("filtered sssp finished", slog.Int("rounds", rounds), slog.Int("reached", distance.NVals()))
	return nil
}

// snapshot copies any sparse.Vector into a fresh BitmapVector.
func snapshot[T comparable](v sparse.Vector[T]) (*sparse.BitmapVector[T], error) {
	idx, vals := v.ExtractTuples()
	return sparse.NewVectorFromTuples(v.Size(), idx, vals, nil)
}
