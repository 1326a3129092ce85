// Package builder provides deterministic "functional-options"-style graph
// fixtures emitted directly as sparse adjacency matrices. It feeds the SSSP and
// MIS tests, benchmarks and the gblas CLI with reproducible inputs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMatrix:      resolves options, runs constructors in order and
//     publishes one *sparse.RowMatrix[float64].
//     – Constructor:      a closure that emits edges into an edgeSink.
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithDirected, WithLoops, WithWeightFn.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:    constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:   fixed user-provided value.
//     – UniformWeightFn:    uniform ∼U[min,max].
//     – IntegerWeightFn:    uniform integer in [min,max], exact under float sums.
//
// Graph mode:
//
//	Undirected (default) graphs are emitted as symmetric matrices: every edge
//	{u,v} becomes entries (u,v) and (v,u) with the same weight. Parallel edges
//	produced by composing constructors keep the lightest weight.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping builder sentinels for invalid build
//     parameters; callers branch with errors.Is.
//   - Determinism: same constructors, options and seed ⇒ identical matrices.
package builder
