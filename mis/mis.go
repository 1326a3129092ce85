// SPDX-License-Identifier: MIT

package mis

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/sparse"
)

// minScore keeps every drawn score strictly positive.
const minScore = 0.0001

// MIS overwrites iset with a maximal independent set of graph: iset[v] is
// true for members and absent otherwise.
//
// Errors: sparse.ErrDimensionMismatch if graph is not square or iset.Size() != n.
// Complexity: O(rounds · E), with O(log n) rounds expected.
func MIS[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], iset sparse.Vector[bool], opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	_, span := o.Tracer.Start(ctx, "mis.MIS", trace.WithAttributes(
		attribute.Int("vertices", graph.NRows()),
		attribute.Int("edges", graph.NVals()),
		attribute.Int64("seed", o.Seed),
	))
	defer span.End()

	rounds, err := run(graph, iset, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("rounds", rounds), attribute.Int("members", iset.NVals()))
	o.Logger.Debug("mis finished", slog.Int("rounds", rounds), slog.Int("members", iset.NVals()))
	return nil
}

func run[T algebra.Number](graph sparse.Matrix[T], iset sparse.Vector[bool], o Options) (int, error) {
	n := graph.NRows()
	if graph.NCols() != n || iset.Size() != n {
		return 0, fmt.Errorf("mis.MIS: graph is %dx%d, set %d: %w", n, graph.NCols(), iset.Size(), sparse.ErrDimensionMismatch)
	}

	var (
		none  = algebra.NoAccumulate[float64]()
		noneB = algebra.NoAccumulate[bool]()
		andOp = algebra.LogicalAnd()
	)

	adj, flags, err := adjacency(graph)
	if err != nil {
		return 0, err
	}
	degrees, err := sparse.NewVector[float64](n)
	if err != nil {
		return 0, err
	}
	if err = graphblas.ReduceRows(degrees, nil, none, algebra.Plus[float64](), adj, false); err != nil {
		return 0, err
	}

	var (
		prob, neighborMax              *sparse.BitmapVector[float64]
		candidates, members, neighbors *sparse.BitmapVector[bool]
	)
	for _, p := range []**sparse.BitmapVector[float64]{&prob, &neighborMax} {
		if *p, err = sparse.NewVector[float64](n); err != nil {
			return 0, err
		}
	}
	for _, p := range []**sparse.BitmapVector[bool]{&candidates, &members, &neighbors} {
		if *p, err = sparse.NewVector[bool](n); err != nil {
			return 0, err
		}
	}

	// Vertices with neighbours start as candidates; the isolated ones are members.
	hasEdges := graphblas.StructureMask(degrees)
	if err = graphblas.AssignConstant(candidates, hasEdges, noneB, true, true); err != nil {
		return 0, err
	}
	if err = graphblas.AssignConstant(iset, hasEdges.Complement(), noneB, true, true); err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(o.Seed))
	score := algebra.UnaryOp[float64, float64]{
		Name: "luby_score",
		Fn: func(degree float64) (float64, error) {
			return minScore + rng.Float64()/(1+2*degree), nil
		},
	}

	rounds := 0
	for candidates.NVals() > 0 {
		rounds++
		// prob<candidates> = score(degrees)
		if err = graphblas.Apply(prob, graphblas.StructureMask(candidates), none, score, degrees, true); err != nil {
			return rounds, err
		}
		// neighborMax<candidates> = max over candidate neighbours of prob
		if err = graphblas.MxV(neighborMax, graphblas.StructureMask(candidates), none, algebra.MaxSelect2nd[float64](), adj, prob, true); err != nil {
			return rounds, err
		}
		// members = prob > neighborMax, true entries only
		if err = graphblas.EWiseAdd(members, nil, noneB, algebra.GreaterThan[float64](), prob, neighborMax, false); err != nil {
			return rounds, err
		}
		if err = graphblas.Apply(members, graphblas.ValueMask(members), noneB, algebra.Identity[bool](), members, true); err != nil {
			return rounds, err
		}
		if err = graphblas.EWiseAdd(iset, nil, noneB, algebra.LogicalOr(), iset, members, false); err != nil {
			return rounds, err
		}
		// candidates<¬members> = candidates
		if err = graphblas.EWiseMult(candidates, graphblas.StructureMask(members).Complement(), noneB, andOp, candidates, candidates, true); err != nil {
			return rounds, err
		}
		o.Logger.Debug("mis round",
			slog.Int("round", rounds),
			slog.Int("new_members", members.NVals()),
			slog.Int("candidates", candidates.NVals()),
		)
		if candidates.NVals() == 0 {
			break
		}
		// neighbors<candidates> = adj ∨.∧ members; candidates<¬neighbors> = candidates
		if err = graphblas.MxV(neighbors, graphblas.StructureMask(candidates), noneB, algebra.Logical(), flags, members, true); err != nil {
			return rounds, err
		}
		if err = graphblas.EWiseMult(candidates, graphblas.ValueMask(neighbors).Complement(), noneB, andOp, candidates, candidates, true); err != nil {
			return rounds, err
		}
	}
	return rounds, nil
}

// adjacency strips the diagonal and the edge values from graph and returns
// the pattern twice: 1 on every edge, and true on every edge.
func adjacency[T algebra.Number](graph sparse.Matrix[T]) (*sparse.RowMatrix[float64], *sparse.RowMatrix[bool], error) {
	n := graph.NRows()
	offDiagonal := graphblas.PositionMask(n, n, func(i, j int) bool { return i != j })

	ones, err := sparse.NewMatrix[float64](n, n)
	if err != nil {
		return nil, nil, err
	}
	if err = graphblas.ApplyMatrix(ones, offDiagonal, algebra.NoAccumulate[float64](), algebra.One[T, float64](), graph, true); err != nil {
		return nil, nil, err
	}
	flags, err := sparse.NewMatrix[bool](n, n)
	if err != nil {
		return nil, nil, err
	}
	edge := algebra.Bind2nd(algebra.GreaterThan[float64](), 0)
	if err = graphblas.ApplyMatrix(flags, nil, algebra.NoAccumulate[bool](), edge, ones, false); err != nil {
		return nil, nil, err
	}
	return ones, flags, nil
}

// VertexIDs returns the member indices of iset in ascending order.
func VertexIDs(iset sparse.Vector[bool]) []int {
	ids := make([]int, 0, iset.NVals())
	for i, ok := range iset.All() {
		if ok {
			ids = append(ids, i)
		}
	}
	return ids
}
