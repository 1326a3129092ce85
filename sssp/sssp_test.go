// SPDX-License-Identifier: MIT

package sssp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/dijkstra"
	"github.com/katalvlaran/gblas/sparse"
	"github.com/katalvlaran/gblas/sssp"
)

// chain is the 4-vertex graph 0→1 (1), 1→2 (2), 0→2 (5), 2→3 (1).
func chain(t testing.TB) *sparse.RowMatrix[int64] {
	t.Helper()
	g, err := sparse.NewMatrixFromTuples(4, 4,
		[]int{0, 1, 0, 2},
		[]int{1, 2, 2, 3},
		[]int64{1, 2, 5, 1},
		nil,
	)
	require.NoError(t, err)
	return g
}

func seed(t testing.TB, n, src int) *sparse.BitmapVector[int64] {
	t.Helper()
	v, err := sparse.NewVectorFromTuples(n, []int{src}, []int64{0}, nil)
	require.NoError(t, err)
	return v
}

// recorder returns a tracer option plus the recorder collecting its spans.
func recorder() (sssp.Option, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return sssp.WithTracer(tp.Tracer("test")), rec
}

func intAttr(t *testing.T, span sdktrace.ReadOnlySpan, key string) int64 {
	t.Helper()
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value.AsInt64()
		}
	}
	t.Fatalf("span %s has no attribute %q", span.Name(), key)
	return 0
}

func randomGraph(t testing.TB, n int, p float64, seed int64) *sparse.RowMatrix[float64] {
	t.Helper()
	g, err := builder.Build(builder.RandomSparse(n, p),
		builder.WithSeed(seed), builder.WithDirected(true), builder.WithIntegerWeight(0, 9))
	require.NoError(t, err)
	return g
}

func oracle(t testing.TB, g sparse.Matrix[float64], src int) *sparse.BitmapVector[float64] {
	t.Helper()
	dist, _, err := dijkstra.Dijkstra[float64](g, dijkstra.Source(src))
	require.NoError(t, err)
	return dist
}

func TestSSSP_FourVertexChain(t *testing.T) {
	t.Parallel()
	g := chain(t)
	path := seed(t, 4, 0)
	require.NoError(t, sssp.SSSP(context.Background(), g, path))
	assert.Equal(t, "[0, 1, 3, 4]", path.String())
}

func TestSSSP_RoundsAttribute(t *testing.T) {
	t.Parallel()
	opt, rec := recorder()
	require.NoError(t, sssp.SSSP(context.Background(), chain(t), seed(t, 4, 0), opt))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sssp.SSSP", spans[0].Name())
	assert.Equal(t, int64(4), intAttr(t, spans[0], "rounds"))
	assert.Equal(t, int64(4), intAttr(t, spans[0], "vertices"))
	assert.Equal(t, int64(4), intAttr(t, spans[0], "edges"))
}

func TestDimensionErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := chain(t)
	short := seed(t, 3, 0)
	rect, err := sparse.NewMatrix[int64](3, 4)
	require.NoError(t, err)

	require.ErrorIs(t, sssp.SSSP(ctx, g, short), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sssp.SSSP(ctx, rect, seed(t, 3, 0)), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sssp.FilteredSSSP(ctx, g, short), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sssp.DeltaStep(ctx, g, 1, 0, short), sparse.ErrDimensionMismatch)

	paths, err := sparse.NewMatrix[int64](2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, sssp.BatchSSSP(ctx, g, paths), sparse.ErrDimensionMismatch)

	// Nothing is written before the check fails.
	assert.Equal(t, "[0, -, -]", short.String())
}

func TestFailureIsRecordedOnSpan(t *testing.T) {
	t.Parallel()
	opt, rec := recorder()
	err := sssp.SSSP(context.Background(), chain(t), seed(t, 2, 0), opt)
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Error", spans[0].Status().Code.String())
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestBatchSSSP_MatchesPerSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := chain(t)
	n := g.NRows()

	sources := make([]int, n)
	for i := range sources {
		sources[i] = i
	}
	paths, err := sssp.FromSources(ctx, g, sources)
	require.NoError(t, err)

	for src := 0; src < n; src++ {
		path := seed(t, n, src)
		require.NoError(t, sssp.SSSP(ctx, g, path))
		for j := 0; j < n; j++ {
			want, wok := path.Lookup(j)
			got, gok := paths.Lookup(src, j)
			require.Equal(t, wok, gok, "row %d col %d presence", src, j)
			assert.Equal(t, want, got, "row %d col %d", src, j)
		}
	}
}

func TestFilteredSSSP_MatchesSSSPWithinNRounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, s := range []int64{1, 2, 3, 4, 5} {
		g := randomGraph(t, 30, 0.08, s)
		n := g.NRows()

		want, err := sssp.FromSource(ctx, g, 0)
		require.NoError(t, err)

		opt, rec := recorder()
		got, err := sparse.NewVectorFromTuples(n, []int{0}, []float64{0}, nil)
		require.NoError(t, err)
		require.NoError(t, sssp.FilteredSSSP(ctx, g, got, opt))

		assert.True(t, got.Equal(want), "seed %d: filtered %v, sssp %v", s, got, want)
		spans := rec.Ended()
		require.Len(t, spans, 1)
		assert.LessOrEqual(t, intAttr(t, spans[0], "rounds"), int64(n), "seed %d", s)
	}
}

func TestFilteredSSSP_StopsEarlyOnChain(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Path(50), builder.WithDirected(true))
	require.NoError(t, err)

	opt, rec := recorder()
	dist, err := sparse.NewVectorFromTuples(50, []int{0}, []float64{0}, nil)
	require.NoError(t, err)
	require.NoError(t, sssp.FilteredSSSP(context.Background(), g, dist, opt))

	x, err := dist.ExtractElement(49)
	require.NoError(t, err)
	assert.Equal(t, 49.0, x)
	// 49 improving rounds plus the empty one.
	assert.Equal(t, int64(50), intAttr(t, rec.Ended()[0], "rounds"))
}

func TestFilteredSSSP_ZeroWeightEdges(t *testing.T) {
	t.Parallel()
	g, err := sparse.NewMatrixFromTuples(3, 3, []int{0, 1}, []int{1, 2}, []int64{0, 0}, nil)
	require.NoError(t, err)
	dist := seed(t, 3, 0)
	require.NoError(t, sssp.FilteredSSSP(context.Background(), g, dist))
	assert.Equal(t, "[0, 0, 0]", dist.String())
}

func TestDeltaStep_MatchesSSSP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := chain(t)
	want := seed(t, 4, 0)
	require.NoError(t, sssp.SSSP(ctx, g, want))

	// Below the minimum weight, between, and above the maximum weight.
	for _, delta := range []int64{1, 2, 3, 100} {
		paths, err := sparse.NewFilledVector[int64](4, 42)
		require.NoError(t, err)
		require.NoError(t, sssp.DeltaStep(ctx, g, delta, 0, paths))
		assert.True(t, paths.Equal(want), "delta %d: got %v", delta, paths)
	}
}

func TestDeltaStep_BucketEvents(t *testing.T) {
	t.Parallel()
	opt, rec := recorder()
	paths, err := sparse.NewVector[int64](4)
	require.NoError(t, err)
	require.NoError(t, sssp.DeltaStep(context.Background(), chain(t), 2, 0, paths, opt))

	span := rec.Ended()[0]
	assert.Equal(t, "sssp.DeltaStep", span.Name())
	buckets := 0
	for _, ev := range span.Events() {
		if ev.Name == "bucket" {
			buckets++
		}
	}
	// Distances 0,1,3,4 with delta 2 span buckets 0, 1 and 2.
	assert.Equal(t, 3, buckets)
	assert.Equal(t, int64(buckets), intAttr(t, span, "rounds"))
}

func TestDeltaStep_NarrowIntegerBuckets(t *testing.T) {
	t.Parallel()
	// 0→1 (201), 1→2 (10), 2→3 (40): distances end at 251, close to the uint8 top.
	g, err := sparse.NewMatrixFromTuples(4, 4, []int{0, 1, 2}, []int{1, 2, 3}, []uint8{201, 10, 40}, nil)
	require.NoError(t, err)

	cases := []struct {
		delta   uint8
		buckets int64
	}{
		{delta: 60, buckets: 5},
		{delta: 100, buckets: 3},
		{delta: 120, buckets: 3},
		{delta: 200, buckets: 2},
		{delta: 255, buckets: 1},
	}
	for _, tc := range cases {
		opt, rec := recorder()
		paths, err := sparse.NewVector[uint8](4)
		require.NoError(t, err)
		require.NoError(t, sssp.DeltaStep(context.Background(), g, tc.delta, 0, paths, opt))
		assert.Equal(t, "[0, 201, 211, 251]", paths.String(), "delta %d", tc.delta)
		assert.Equal(t, tc.buckets, intAttr(t, rec.Ended()[0], "rounds"), "delta %d", tc.delta)
	}
}

func TestDeltaStep_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := chain(t)
	paths, err := sparse.NewVector[int64](4)
	require.NoError(t, err)

	require.ErrorIs(t, sssp.DeltaStep(ctx, g, 0, 0, paths), sparse.ErrInvalidValue)
	require.ErrorIs(t, sssp.DeltaStep(ctx, g, -1, 0, paths), sparse.ErrInvalidValue)
	require.ErrorIs(t, sssp.DeltaStep(ctx, g, 1, 4, paths), sparse.ErrIndexOutOfBounds)

	neg, err := sparse.NewMatrixFromTuples(2, 2, []int{0}, []int{1}, []int64{-3}, nil)
	require.NoError(t, err)
	short, err := sparse.NewVector[int64](2)
	require.NoError(t, err)
	require.ErrorIs(t, sssp.DeltaStep(ctx, neg, 1, 0, short), sssp.ErrNegativeWeight)
}

func TestAllVariantsAgreeWithDijkstra(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for _, s := range []int64{11, 12, 13} {
		g := randomGraph(t, 40, 0.07, s)
		want := oracle(t, g, 0)
		for _, algo := range sssp.Algorithms {
			for _, delta := range []float64{0.5, 3, 20} {
				got, err := sssp.Solve(ctx, algo, g, 0, delta)
				require.NoError(t, err)
				assert.True(t, got.Equal(want), "seed %d %s delta %g:\n got %v\nwant %v", s, algo, delta, got, want)
			}
		}
	}
}

func TestDeltaStep_UndirectedGrid(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Grid(6, 7), builder.WithSeed(3), builder.WithIntegerWeight(1, 5))
	require.NoError(t, err)
	want := oracle(t, g, builder.GridIndex(2, 3, 7))
	got, err := sssp.Solve(context.Background(), sssp.Delta, g, builder.GridIndex(2, 3, 7), 2.0)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
	assert.Equal(t, 42, got.NVals())
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()
	a, err := sssp.ParseAlgorithm(" Delta ")
	require.NoError(t, err)
	assert.Equal(t, sssp.Delta, a)

	_, err = sssp.ParseAlgorithm("floyd")
	require.ErrorIs(t, err, sssp.ErrUnknownAlgorithm)
	_, err = sssp.Solve(context.Background(), sssp.Algorithm("floyd"), chain(t), 0, 1)
	require.ErrorIs(t, err, sssp.ErrUnknownAlgorithm)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { sssp.WithLogger(nil) })
	assert.Panics(t, func() { sssp.WithTracer(nil) })
}

func ExampleFromSource() {
	g, _ := sparse.NewMatrixFromTuples(4, 4,
		[]int{0, 1, 0, 2},
		[]int{1, 2, 2, 3},
		[]float64{1, 2, 5, 1},
		nil,
	)
	dist, err := sssp.FromSource(context.Background(), g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0, 1, 3, 4]
}

func ExampleDeltaStep() {
	g, _ := sparse.NewMatrixFromTuples(4, 4,
		[]int{0, 1, 0, 2},
		[]int{1, 2, 2, 3},
		[]int{1, 2, 5, 1},
		nil,
	)
	paths, _ := sparse.NewVector[int](4)
	if err := sssp.DeltaStep(context.Background(), g, 2, 0, paths); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(paths)
	// Output: [0, 1, 3, 4]
}

func BenchmarkSSSP(b *testing.B) {
	g := randomGraph(b, 200, 0.02, 1)
	ctx := context.Background()
	for _, algo := range sssp.Algorithms {
		b.Run(string(algo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := sssp.Solve(ctx, algo, g, 0, 3.0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
