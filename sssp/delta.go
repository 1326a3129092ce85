// SPDX-License-Identifier: MIT

package sssp

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/sparse"
)

// DeltaStep computes shortest distances from src with the delta-stepping
// bucket scheme and writes them into paths (cleared first).
//
// Edges split into light (w ≤ delta) and heavy (w > delta). Bucket i holds the
// vertices whose tentative distance lies in [i·delta, (i+1)·delta). For each
// bucket, light edges are relaxed until no improvement lands back in the
// bucket; only then are heavy edges relaxed once from every vertex the bucket
// settled. Bucket i+1 starts after that heavy pass. The scan over buckets ends
// when no tentative distance is ≥ i·delta.
//
// Errors (checked before any write):
//   - sparse.ErrDimensionMismatch if graph is not square or paths.Size() != n.
//   - sparse.ErrInvalidValue if delta ≤ 0.
//   - sparse.ErrIndexOutOfBounds if src is outside [0,n).
//   - ErrNegativeWeight if any edge weight is negative.
//
// Complexity: O(buckets · (light rounds + 1) · E) in the worst case.
func DeltaStep[T algebra.Number](ctx context.Context, graph sparse.Matrix[T], delta T, src int, paths sparse.Vector[T], opts ...Option) error {
	o := resolve(opts)
	_, span := startSpan(ctx, o, "sssp.DeltaStep", graph)
	defer span.End()
	span.SetAttributes(attribute.Float64("delta", float64(delta)), attribute.Int("source", src))

	if err := validateDelta(graph, delta, src, paths); err != nil {
		return fail(span, err)
	}

	d, err := newDeltaState(graph, delta)
	if err != nil {
		return fail(span, err)
	}
	if err = d.t.SetElement(src, 0); err != nil {
		return fail(span, err)
	}

	buckets, err := d.run(span, o.Logger)
	if err != nil {
		return fail(span, err)
	}

	paths.Clear()
	if err = graphblas.Apply(paths, nil, d.none, d.same, d.t, false); err != nil {
		return fail(span, err)
	}

	span.SetAttributes(attribute.Int("rounds", buckets), attribute.Int("reached", paths.NVals()))
	o.Logger.Debug("delta-stepping finished",
		slog.Int("buckets", buckets),
		slog.Int("reached", paths.NVals()),
	)
	return nil
}

func validateDelta[T algebra.Number](graph sparse.Matrix[T], delta T, src int, paths sparse.Vector[T]) error {
	if err := checkSquare("DeltaStep", graph, paths.Size()); err != nil {
		return err
	}
	if delta <= 0 {
		return fmt.Errorf("sssp.DeltaStep: delta=%v must be > 0: %w", delta, sparse.ErrInvalidValue)
	}
	n := graph.NRows()
	if err := checkSource("DeltaStep", src, n); err != nil {
		return err
	}
	for u := 0; u < n; u++ {
		for v, w := range graph.Row(u) {
			if w < 0 {
				return fmt.Errorf("sssp.DeltaStep: edge %d→%d weight=%v: %w", u, v, w, ErrNegativeWeight)
			}
		}
	}
	return nil
}

// deltaState holds the light/heavy split and the working vectors of one run.
type deltaState[T algebra.Number] struct {
	n     int
	delta T
	light *sparse.RowMatrix[T]
	heavy *sparse.RowMatrix[T]

	t       *sparse.BitmapVector[T]    // tentative distances
	masked  *sparse.BitmapVector[T]    // t restricted to the active set
	req     *sparse.BitmapVector[T]    // relaxation requests
	bucket  *sparse.BitmapVector[bool] // active members of the current bucket
	settled *sparse.BitmapVector[bool] // every vertex the bucket has processed
	less    *sparse.BitmapVector[bool] // req < t
	pending *sparse.BitmapVector[bool] // t ≥ i·delta

	s     algebra.Semiring[T]
	none  algebra.BinaryOp[T, T]
	noneB algebra.BinaryOp[bool, bool]
	same  algebra.UnaryOp[T, T]
	sameB algebra.UnaryOp[bool, bool]
	minOp algebra.BinaryOp[T, T]
}

func newDeltaState[T algebra.Number](graph sparse.Matrix[T], delta T) (*deltaState[T], error) {
	n := graph.NRows()
	d := &deltaState[T]{
		n:     n,
		delta: delta,
		s:     algebra.MinPlus[T](),
		none:  algebra.NoAccumulate[T](),
		noneB: algebra.NoAccumulate[bool](),
		same:  algebra.Identity[T](),
		sameB: algebra.Identity[bool](),
		minOp: algebra.Min[T](),
	}

	var err error
	if d.light, err = filterEdges(graph, algebra.Bind2nd(algebra.LessEqual[T](), delta)); err != nil {
		return nil, err
	}
	if d.heavy, err = filterEdges(graph, algebra.Bind2nd(algebra.GreaterThan[T](), delta)); err != nil {
		return nil, err
	}
	for _, p := range []**sparse.BitmapVector[T]{&d.t, &d.masked, &d.req} {
		if *p, err = sparse.NewVector[T](n); err != nil {
			return nil, err
		}
	}
	for _, p := range []**sparse.BitmapVector[bool]{&d.bucket, &d.settled, &d.less, &d.pending} {
		if *p, err = sparse.NewVector[bool](n); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// filterEdges keeps the entries of graph for which keep is true:
// flags = keep(graph); out<flags> = graph.
func filterEdges[T algebra.Number](graph sparse.Matrix[T], keep algebra.UnaryOp[T, bool]) (*sparse.RowMatrix[T], error) {
	n := graph.NRows()
	flags, err := sparse.NewMatrix[bool](n, n)
	if err != nil {
		return nil, err
	}
	if err = graphblas.ApplyMatrix(flags, nil, algebra.NoAccumulate[bool](), keep, graph, false); err != nil {
		return nil, err
	}
	out, err := sparse.NewMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	err = graphblas.ApplyMatrix(out, graphblas.MatrixValueMask(flags), algebra.NoAccumulate[T](), algebra.Identity[T](), graph, true)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// bound returns k·delta and whether it is representable in T. Integer kinds
// wrap on overflow, so the product is checked by division.
func (d *deltaState[T]) bound(k int) (T, bool) {
	f := T(k)
	p := f * d.delta
	if algebra.IsFloat[T]() {
		return p, true
	}
	if int(f) != k || (k != 0 && p/f != d.delta) {
		return 0, false
	}
	return p, true
}

// bucketRange selects bucket i: t ∈ [i·delta, (i+1)·delta). When (i+1)·delta
// does not fit in T the bucket is the last one and reaches the top value.
func (d *deltaState[T]) bucketRange(i int) algebra.UnaryOp[T, bool] {
	lo, _ := d.bound(i)
	if hi, ok := d.bound(i + 1); ok {
		return algebra.InRange(lo, hi)
	}
	return algebra.Bind2nd(algebra.GreaterEqual[T](), lo)
}

// refreshPending recomputes pending = (t ≥ i·delta), keeping only true flags.
// An unrepresentable i·delta exceeds every distance, so pending is empty.
func (d *deltaState[T]) refreshPending(i int) error {
	lo, ok := d.bound(i)
	if !ok {
		d.pending.Clear()
		return nil
	}
	geq := algebra.Bind2nd(algebra.GreaterEqual[T](), lo)
	if err := graphblas.Apply(d.pending, nil, d.noneB, geq, d.t, false); err != nil {
		return err
	}
	return graphblas.Apply(d.pending, graphblas.ValueMask(d.pending), d.noneB, d.sameB, d.pending, true)
}

// run executes the outer bucket loop and returns the number of buckets scanned.
func (d *deltaState[T]) run(span trace.Span, log *slog.Logger) (int, error) {
	i := 0
	if err := d.refreshPending(i); err != nil {
		return 0, err
	}
	for d.pending.NVals() > 0 {
		inner, err := d.bucketPass(i)
		if err != nil {
			return i, fmt.Errorf("sssp.DeltaStep bucket %d: %w", i, err)
		}

		settled := 0
		for _, ok := range d.settled.All() {
			if ok {
				settled++
			}
		}
		span.AddEvent("bucket", trace.WithAttributes(
			attribute.Int("bucket", i),
			attribute.Int("inner_rounds", inner),
			attribute.Int("settled", settled),
		))
		log.Debug("bucket done",
			slog.Int("bucket", i),
			slog.Int("inner_rounds", inner),
			slog.Int("settled", settled),
		)

		i++
		if err = d.refreshPending(i); err != nil {
			return i, err
		}
	}
	return i, nil
}

// bucketPass settles bucket i: light edges to a fixed point, then one heavy pass.
// It returns the number of light rounds.
func (d *deltaState[T]) bucketPass(i int) (int, error) {
	d.settled.Clear()
	inRange := d.bucketRange(i)

	// bucket = t ∈ [i·delta, (i+1)·delta); masked = t<bucket>
	if err := graphblas.Apply(d.bucket, nil, d.noneB, inRange, d.t, false); err != nil {
		return 0, err
	}
	if err := graphblas.Apply(d.bucket, graphblas.ValueMask(d.bucket), d.noneB, d.sameB, d.bucket, true); err != nil {
		return 0, err
	}
	if err := graphblas.Apply(d.masked, graphblas.ValueMask(d.bucket), d.none, d.same, d.t, true); err != nil {
		return 0, err
	}

	inner := 0
	for d.masked.NVals() > 0 {
		inner++
		// req = masked min.+ light
		if err := graphblas.VxM(d.req, nil, d.none, d.s, d.masked, d.light, false); err != nil {
			return inner, err
		}
		// settled |= bucket
		if err := graphblas.EWiseAdd(d.settled, nil, d.noneB, algebra.LogicalOr(), d.settled, d.bucket, false); err != nil {
			return inner, err
		}
		// less<req> = req < t
		if err := graphblas.EWiseAdd(d.less, graphblas.StructureMask(d.req), d.noneB, algebra.LessThan[T](), d.req, d.t, true); err != nil {
			return inner, err
		}
		// bucket<less> = req ∈ [i·delta, (i+1)·delta)
		if err := graphblas.Apply(d.bucket, graphblas.ValueMask(d.less), d.noneB, inRange, d.req, true); err != nil {
			return inner, err
		}
		// t = min(t, req)
		if err := graphblas.EWiseAdd(d.t, nil, d.none, d.minOp, d.t, d.req, false); err != nil {
			return inner, err
		}
		// masked = t<bucket>
		if err := graphblas.Apply(d.masked, graphblas.ValueMask(d.bucket), d.none, d.same, d.t, true); err != nil {
			return inner, err
		}
	}

	// Heavy pass from every vertex processed in this bucket.
	if err := graphblas.Apply(d.masked, graphblas.ValueMask(d.settled), d.none, d.same, d.t, true); err != nil {
		return inner, err
	}
	if err := graphblas.VxM(d.req, nil, d.none, d.s, d.masked, d.heavy, false); err != nil {
		return inner, err
	}
	if err := graphblas.EWiseAdd(d.t, nil, d.none, d.minOp, d.t, d.req, false); err != nil {
		return inner, err
	}
	return inner, nil
}
