// SPDX-License-Identifier: MIT

package mis_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/mis"
	"github.com/katalvlaran/gblas/sparse"
)

// assertMaximalIndependent checks both defining properties of the result.
func assertMaximalIndependent(t *testing.T, g sparse.Matrix[float64], iset sparse.Vector[bool]) {
	t.Helper()
	member := make([]bool, g.NRows())
	for _, v := range mis.VertexIDs(iset) {
		member[v] = true
	}
	for u := 0; u < g.NRows(); u++ {
		covered := member[u]
		for v := range g.Row(u) {
			if v == u {
				continue
			}
			if member[u] && member[v] {
				t.Fatalf("members %d and %d are adjacent", u, v)
			}
			covered = covered || member[v]
		}
		assert.True(t, covered, "vertex %d is neither a member nor next to one", u)
	}
}

func run(t *testing.T, g sparse.Matrix[float64], opts ...mis.Option) *sparse.BitmapVector[bool] {
	t.Helper()
	iset, err := sparse.NewVector[bool](g.NRows())
	require.NoError(t, err)
	require.NoError(t, mis.MIS(context.Background(), g, iset, opts...))
	return iset
}

func TestMIS_Topologies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ctor builder.Constructor
	}{
		{"Path(9)", builder.Path(9)},
		{"Cycle(10)", builder.Cycle(10)},
		{"Star(7)", builder.Star(7)},
		{"Complete(6)", builder.Complete(6)},
		{"Grid(5,6)", builder.Grid(5, 6)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assertMaximalIndependent(t, g, run(t, g, mis.WithSeed(5)))
		})
	}
}

func TestMIS_CompleteGraphHasOneMember(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Complete(8))
	require.NoError(t, err)
	assert.Len(t, mis.VertexIDs(run(t, g)), 1)
}

func TestMIS_RandomGraphs(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.Build(builder.RandomSparse(60, 0.08), builder.WithSeed(seed))
		require.NoError(t, err)
		assertMaximalIndependent(t, g, run(t, g, mis.WithSeed(seed)))
	}
}

func TestMIS_IsolatedAndSelfLoops(t *testing.T) {
	t.Parallel()
	// 0-1 edge, 2 isolated with a self-loop, 3 fully isolated.
	g, err := sparse.NewMatrixFromTuples(4, 4,
		[]int{0, 1, 2},
		[]int{1, 0, 2},
		[]float64{1, 1, 7},
		nil,
	)
	require.NoError(t, err)
	iset := run(t, g)
	ids := mis.VertexIDs(iset)
	assert.Contains(t, ids, 2)
	assert.Contains(t, ids, 3)
	assert.Len(t, ids, 3)
	assertMaximalIndependent(t, g, iset)
}

func TestMIS_SeedIsReproducible(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.RandomSparse(50, 0.1), builder.WithSeed(9))
	require.NoError(t, err)
	a := run(t, g, mis.WithSeed(42))
	b := run(t, g, mis.WithSeed(42))
	assert.True(t, a.Equal(b))
}

func TestMIS_OverwritesPreviousContent(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Path(4))
	require.NoError(t, err)
	iset, err := sparse.NewFilledVector(4, true)
	require.NoError(t, err)
	require.NoError(t, mis.MIS(context.Background(), g, iset))
	assertMaximalIndependent(t, g, iset)
	assert.Less(t, iset.NVals(), 4)
}

func TestMIS_DimensionMismatch(t *testing.T) {
	t.Parallel()
	g, err := builder.Build(builder.Path(4))
	require.NoError(t, err)
	iset, err := sparse.NewVector[bool](3)
	require.NoError(t, err)
	require.ErrorIs(t, mis.MIS(context.Background(), g, iset), sparse.ErrDimensionMismatch)
}

func TestMIS_Span(t *testing.T) {
	t.Parallel()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	g, err := builder.Build(builder.Cycle(12))
	require.NoError(t, err)
	run(t, g, mis.WithTracer(tp.Tracer("test")))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mis.MIS", spans[0].Name())
	keys := map[string]bool{}
	for _, kv := range spans[0].Attributes() {
		keys[string(kv.Key)] = true
	}
	for _, k := range []string{"vertices", "edges", "seed", "rounds", "members"} {
		assert.True(t, keys[k], "missing attribute %q", k)
	}
}

func ExampleMIS() {
	g, _ := builder.Build(builder.Star(9))
	iset, _ := sparse.NewVector[bool](9)
	if err := mis.MIS(context.Background(), g, iset, mis.WithSeed(1)); err != nil {
		fmt.Println("error:", err)
		return
	}
	// The leaves have the lowest degree, so they win against the hub.
	fmt.Println(mis.VertexIDs(iset))
	// Output: [1 2 3 4 5 6 7 8]
}
