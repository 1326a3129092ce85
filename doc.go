// Package gblas is a generic sparse linear-algebra engine for graph
// computation: sparse vectors and matrices, masked and accumulated
// semiring operations over them, and shortest-path and independent-set
// algorithms built from nothing but those operations.
//
// What is inside:
//
//	algebra/      Number constraint, unary/binary operator catalog, semirings (min-plus, arithmetic, ...)
//	sparse/       Vector/Matrix backend interfaces, BitmapVector and RowMatrix
//	graphblas/    Apply, EWiseAdd/Mult, ReduceRows, VxM, MxV, MxM, Transpose, AssignConstant, masks
//	matrixutil/   Diag, ScaledIdentity, Split, NormalizeRows/Cols
//	sssp/         SSSP, BatchSSSP, FilteredSSSP, DeltaStep
//	mis/          Luby's maximal independent set
//	dijkstra/     heap-based reference shortest paths (oracle for sssp)
//	builder/      deterministic graph fixtures: path, cycle, star, complete, grid, random sparse
//	bfs/          breadth-first search as masked VxM, with depth and parent vectors
//	cmd/gblas     CLI: generate a graph, run a solver, verify against dijkstra
//
// Every bulk operation follows the same write rule. The candidate result T is
// computed from a snapshot of the inputs; then for each position i
//
//	Z = accum ? accum(C, T) over the union : T
//	mask selects i  → C[i] = Z[i]
//	otherwise       → C[i] cleared if replace, else unchanged
//
// and the output is published with one bulk Build, so an output may alias
// any of its inputs or its mask.
//
// Quick example (distances from vertex 0):
//
//	g, _ := sparse.NewMatrixFromTuples(4, 4,
//	    []int{0, 1, 0, 2}, []int{1, 2, 2, 3}, []float64{1, 2, 5, 1}, nil)
//	dist, _ := sssp.FromSource(ctx, g, 0)
//	fmt.Println(dist) // [0, 1, 3, 4]
//
//	go get github.com/katalvlaran/gblas
package gblas
