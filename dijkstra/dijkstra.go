// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// sparse.Matrix adjacency with non-negative weights.
//
// It serves as the reference oracle for the semiring-based SSSP family: it
// follows vertex order by distance through a min-heap instead of bulk
// relaxation, so agreement between the two is a strong correctness check.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all entries (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"reflect"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of
// the square adjacency g, where g[u][v] is the weight of edge u→v.
//
// Returns:
//
//   - dist: vector of size n; absent positions are unreachable (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise);
//     prev[v] == NoPredecessor for the source and unreachable vertices.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil, also as a typed nil pointer (ErrNilGraph).
//  3. g must be square (sparse.ErrDimensionMismatch).
//  4. Source < n (sparse.ErrIndexOutOfBounds).
//  5. No entry may be negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[T algebra.Number](g sparse.Matrix[T], opts ...Option) (*sparse.BitmapVector[T], []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil || (reflect.ValueOf(g).Kind() == reflect.Pointer && reflect.ValueOf(g).IsNil()) {
		return nil, nil, ErrNilGraph
	}
	n := g.NRows()
	if g.NCols() != n {
		return nil, nil, fmt.Errorf("dijkstra: graph is %dx%d: %w", n, g.NCols(), sparse.ErrDimensionMismatch)
	}
	if cfg.Source >= n {
		return nil, nil, fmt.Errorf("dijkstra: source %d of %d: %w", cfg.Source, n, sparse.ErrIndexOutOfBounds)
	}

	// 3) Pre-scan all entries to detect negative weights.
	for u := 0; u < n; u++ {
		for v, w := range g.Row(u) {
			if w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	// 4) Prepare state and run.
	r := &runner[T]{
		g:       g,
		options: cfg,
		dist:    make([]T, n),
		reached: make([]bool, n),
		visited: make([]bool, n),
		pq:      make(nodePQ[T], 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoPredecessor
		}
	}
	r.init()
	r.process()

	// 5) Publish settled distances.
	dist, err := sparse.NewVector[T](n)
	if err != nil {
		return nil, nil, err
	}
	idx := make([]int, 0, n)
	vals := make([]T, 0, n)
	for v := 0; v < n; v++ {
		if r.visited[v] {
			idx = append(idx, v)
			vals = append(vals, r.dist[v])
		}
	}
	if err = dist.Build(idx, vals, nil); err != nil {
		return nil, nil, err
	}
	return dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T algebra.Number] struct {
	g       sparse.Matrix[T] // read-only adjacency
	options Options
	dist    []T    // current best distance, valid where reached
	reached []bool // dist[v] holds a finite tentative value
	visited []bool // dist[v] is final
	prev    []int  // predecessor on the shortest path, nil unless ReturnPath
	pq      nodePQ[T]
}

// init pushes Source=0 into the heap.
func (r *runner[T]) init() {
	s := r.options.Source
	r.dist[s], r.reached[s] = 0, true
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[T]{id: s, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance and relaxes
// its outgoing edges, until the heap is empty or the next distance exceeds
// MaxDistance.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if float64(item.dist) > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the tentative distance of every out-neighbour of u.
func (r *runner[T]) relax(u int) {
	for v, w := range r.g.Row(u) {
		if r.visited[v] {
			continue
		}
		nd := r.dist[u] + w
		if float64(nd) > r.options.MaxDistance {
			continue
		}
		// Strict "<" avoids pushing duplicates when distances are equal.
		if r.reached[v] && nd >= r.dist[v] {
			continue
		}
		r.dist[v], r.reached[v] = nd, true
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[T]{id: v, dist: nd})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[T algebra.Number] struct {
	id   int
	dist T
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[T algebra.Number] []*nodeItem[T]

// Len returns the number of items in the heap.
func (pq nodePQ[T]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[T]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be *nodeItem[T].
func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the last element (heap.Pop has already swapped the minimum there).
func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
