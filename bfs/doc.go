// Package bfs provides a level-synchronous breadth-first search over a
// sparse.Matrix adjacency, returning unweighted distances, parent links, and
// visit order.
//
// What
//
//   - Every level is one masked VxM: the frontier, carrying its own vertex
//     ids, is pushed through the adjacency under the min-select-first
//     semiring, restricted to vertices not yet reached (complemented mask).
//   - The result is the lowest-numbered parent of each newly reached vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence (level by level, ascending ids within a level)
//   - Depth:  vector of edge counts from the start vertex
//   - Parent: vector of BFS-tree predecessors (absent for the root)
//   - Supports an OnVisit hook (may abort with an error), a MaxDepth limit
//     (d>0) or explicit “no limit” (d==0), and a context checked per level.
//
// Determinism
//
//	Ties between parents resolve to the smallest id and each level is visited
//	in ascending id order, so results are fully reproducible.
//
// Complexity (V = NRows, E = NVals)
//
//   - Time:   O(levels · V + E)
//   - Memory: O(V + E) for the structural adjacency copy
//
// Errors
//
//   - ErrGraphNil:            nil graph.
//   - ErrStartVertexNotFound: start outside [0, n).
//   - ErrOptionViolation:     invalid option (negative MaxDepth).
//   - sparse.ErrDimensionMismatch: graph is not square.
//   - ctx.Err() or the OnVisit error, returned as is.
package bfs
