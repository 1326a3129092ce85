// Package sssp computes single-source shortest paths with the masked
// semiring operations of package graphblas.
//
// Overview:
//
//   - SSSP:         exactly n rounds of path = min(path, path min.+ graph).
//   - BatchSSSP:    the same relaxation for many sources at once, one per row, via MxM.
//   - FilteredSSSP: frontier relaxation that stops as soon as no vertex improves.
//   - DeltaStep:    light/heavy bucket scheme; every light edge of bucket i is
//     relaxed to a fixed point before the single heavy pass of bucket i.
//
// Graph model:
//
//   - graph is a square sparse.Matrix where graph[u][v] is the weight of u→v.
//   - An absent entry is an infinite weight; an absent distance is unreachable.
//
// Observability:
//
//   - Every entry point runs inside an OpenTelemetry span named after it
//     ("sssp.SSSP", "sssp.DeltaStep", ...) with vertices, edges and rounds
//     attributes. DeltaStep adds one "bucket" event per outer iteration.
//   - WithLogger attaches a *slog.Logger for debug records; the default discards.
//   - Results never depend on whether a tracer or logger is attached.
//
// Errors:
//
//   - sparse.ErrDimensionMismatch: non-square graph or a distance container of the wrong size.
//   - sparse.ErrIndexOutOfBounds:  source vertex outside [0,n).
//   - sparse.ErrInvalidValue:      delta ≤ 0.
//   - ErrNegativeWeight:           DeltaStep found a negative edge.
//
// Example:
//
//	dist, err := sssp.FromSource[float64](ctx, g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist) // [0, 1, 3, 4]
package sssp
