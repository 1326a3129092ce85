// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on sparse adjacency matrices with non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = NRows and E = NVals.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Distances come back as a *sparse.BitmapVector, the same container the
//     semiring solvers in package sssp fill, so results compare with Equal.
//
// When to use:
//
//   - As the reference oracle for sssp.SSSP, sssp.FilteredSSSP and sssp.DeltaStep.
//   - When the graph is small or very sparse and a single source is needed.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       Source option was not given.
//   - ErrNilGraph:       nil matrix.
//   - ErrNegativeWeight: any entry is negative (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panic).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra[float64](g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, ok := dist.Lookup(3)
package dijkstra
