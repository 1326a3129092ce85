// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/graphblas"
	"github.com/katalvlaran/gblas/sparse"
)

// walker encapsulates mutable BFS state.
type walker struct {
	opts     Options
	adj      *sparse.RowMatrix[int]    // 1 on every edge
	ids      *sparse.BitmapVector[int] // ids[v] = v
	frontier *sparse.BitmapVector[int] // current level, valued by own id
	next     *sparse.BitmapVector[int] // next level, valued by parent id
	res      *Result
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. Edge values are ignored; any present entry g[u][v]
// is an arc u→v.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[T algebra.Number](g sparse.Matrix[T], start int, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NRows()
	if g.NCols() != n {
		return nil, fmt.Errorf("bfs: graph is %dx%d: %w", n, g.NCols(), sparse.ErrDimensionMismatch)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartVertexNotFound, start, n)
	}

	w, err := newWalker(g, o)
	if err != nil {
		return nil, err
	}
	if err = w.seed(start); err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(g any) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func newWalker[T algebra.Number](g sparse.Matrix[T], o Options) (*walker, error) {
	n := g.NRows()
	adj, err := sparse.NewMatrix[int](n, n)
	if err != nil {
		return nil, err
	}
	if err = graphblas.ApplyMatrix(adj, nil, algebra.NoAccumulate[int](), algebra.One[T, int](), g, false); err != nil {
		return nil, err
	}

	dense := make([]int, n)
	for v := range dense {
		dense[v] = v
	}
	ids, err := sparse.NewVectorFromDense(dense)
	if err != nil {
		return nil, err
	}

	w := &walker{opts: o, adj: adj, ids: ids, res: &Result{}}
	for _, p := range []**sparse.BitmapVector[int]{&w.frontier, &w.next, &w.res.Depth, &w.res.Parent} {
		if *p, err = sparse.NewVector[int](n); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// seed publishes the start vertex as level 0.
func (w *walker) seed(start int) error {
	if err := w.res.Depth.SetElement(start, 0); err != nil {
		return err
	}
	if err := w.frontier.SetElement(start, start); err != nil {
		return err
	}
	w.res.Order = append(w.res.Order, start)
	return w.opts.OnVisit(start, 0)
}

// loop expands one level per iteration until the frontier is empty, the depth
// limit is reached, or the context is done.
func (w *walker) loop() error {
	var (
		none   = algebra.NoAccumulate[int]()
		pick   = algebra.MinSelect1st[int]()
		copyOp = algebra.Identity[int]()
		second = algebra.Second[int]()
	)
	for level := 1; w.frontier.NVals() > 0; level++ {
		if w.opts.MaxDepth > 0 && level > w.opts.MaxDepth {
			return nil
		}
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		// next<¬depth> = frontier min.first adj
		unvisited := graphblas.StructureMask(w.res.Depth).Complement()
		if err := graphblas.VxM(w.next, unvisited, none, pick, w.frontier, w.adj, true); err != nil {
			return err
		}
		if w.next.NVals() == 0 {
			return nil
		}

		reached := graphblas.StructureMask(w.next)
		if err := graphblas.Apply(w.res.Parent, reached, none, copyOp, w.next, false); err != nil {
			return err
		}
		if err := graphblas.AssignConstant(w.res.Depth, reached, none, level, false); err != nil {
			return err
		}
		// frontier = ids restricted to next
		if err := graphblas.EWiseMult(w.frontier, nil, none, second, w.next, w.ids, false); err != nil {
			return err
		}

		for v := range w.next.All() {
			w.res.Order = append(w.res.Order, v)
			if err := w.opts.OnVisit(v, level); err != nil {
				return err
			}
		}
	}
	return nil
}
