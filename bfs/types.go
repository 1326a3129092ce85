// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gblas/sparse"
)

// Sentinel errors for BFS.
var (
	// ErrStartVertexNotFound is returned when the start index is outside the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned when a nil graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// Ctx is checked before each level; cancellation stops the search.
	Ctx context.Context

	// OnVisit is called for each vertex when its level is published.
	// Returning an error aborts the search.
	OnVisit func(v, depth int) error

	// MaxDepth limits the search depth (0 = unlimited).
	MaxDepth int

	// err records the first invalid option.
	err error
}

// DefaultOptions returns the default BFS options: background context, no-op
// hook, unlimited depth.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called for every reached vertex; nil is ignored.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d levels below the start (0 = unlimited).
// A negative d is reported by BFS as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertices level by level, ascending within a level.
	Order []int
	// Depth holds the edge count from the start for every reached vertex.
	Depth *sparse.BitmapVector[int]
	// Parent holds the BFS-tree predecessor; the start vertex has none.
	Parent *sparse.BitmapVector[int]
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if ok, err := r.Depth.HasElement(dest); err != nil || !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent.Lookup(cur)
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
