// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilPassable is returned if a nil passability predicate is passed.
	ErrNilPassable = errors.New("bfs: passability predicate is nil")

	// ErrStartOutOfBounds is returned when the start cell is outside the bounds.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for cells the search never reached.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(c grid.Cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with background context, no-op hooks
// and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Cell, int) {},
		OnVisit:   func(grid.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Start  grid.Cell
	Order  []grid.Cell
	Depth  map[grid.Cell]int
	Parent map[grid.Cell]grid.Cell
}

// Reached reports whether c was discovered by the search.
func (r *Result) Reached(c grid.Cell) bool {
	_, ok := r.Depth[c]
	return ok
}

// Reachable returns the discovered cells as a set.
func (r *Result) Reachable() map[grid.Cell]struct{} {
	out := make(map[grid.Cell]struct{}, len(r.Depth))
	for c := range r.Depth {
		out[c] = struct{}{}
	}
	return out
}

// PathTo reconstructs the path from the start cell to dest, both inclusive.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest grid.Cell) ([]grid.Cell, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := make([]grid.Cell, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
