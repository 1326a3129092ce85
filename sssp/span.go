// SPDX-License-Identifier: MIT

package sssp

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// startSpan opens the per-call span with the graph size attributes.
func startSpan[T algebra.Number](ctx context.Context, o Options, name string, graph sparse.Matrix[T]) (context.Context, trace.Span) {
	return o.Tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("vertices", graph.NRows()),
		attribute.Int("edges", graph.NVals()),
	))
}

// fail marks the span as failed and returns err unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// checkSquare verifies that graph is n×n and that the distance container has n slots.
func checkSquare[T algebra.Number](name string, graph sparse.Matrix[T], size int) error {
	n := graph.NRows()
	if graph.NCols() != n || size != n {
		return fmt.Errorf("sssp.%s: graph is %dx%d, distances %d: %w",
			name, n, graph.NCols(), size, sparse.ErrDimensionMismatch)
	}
	return nil
}

// checkSource verifies 0 ≤ src < n.
func checkSource(name string, src, n int) error {
	if src < 0 || src >= n {
		return fmt.Errorf("sssp.%s: source %d of %d: %w", name, src, n, sparse.ErrIndexOutOfBounds)
	}
	return nil
}
