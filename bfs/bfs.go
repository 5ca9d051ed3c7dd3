package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/grid"
)

// errReached stops Distance once the goal is dequeued.
var errReached = errors.New("bfs: goal reached")

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	passable func(grid.Cell) bool
	bounds   grid.Bounds
	opts     Options
	ctx      context.Context
	queue    []queueItem
	res      *Result
}

// BFS runs breadth-first search from start over every in-bounds cell for which
// passable holds. The start cell itself is always visited, passable or not.
// Returns ErrNilPassable or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(passable func(grid.Cell) bool, bounds grid.Bounds, start grid.Cell, opts ...Option) (*Result, error) {
	if passable == nil {
		return nil, ErrNilPassable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !bounds.Contains(start) {
		return nil, ErrStartOutOfBounds
	}

	n := bounds.Size()
	w := &walker{
		passable: passable,
		bounds:   bounds,
		opts:     o,
		ctx:      o.Ctx,
		queue:    make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Cell, 0, n),
			Depth:  make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks c discovered at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(c grid.Cell, d int) {
	w.res.Depth[c] = d
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen passable neighbour in N, E, S, W order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, h := range grid.Headings {
		nbr := item.cell.Add(h.Delta())
		if !w.bounds.Contains(nbr) || !w.passable(nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.cell
		w.enqueue(nbr, next)
	}
}

// Distance returns the step count from start to goal, or ErrUnreachable.
// The search stops as soon as goal is dequeued. opts are applied as for BFS,
// except that any OnVisit hook is replaced by the early stop.
func Distance(passable func(grid.Cell) bool, bounds grid.Bounds, start, goal grid.Cell, opts ...Option) (int, error) {
	opts = append(opts[:len(opts):len(opts)], WithOnVisit(func(c grid.Cell, _ int) error {
		if c == goal {
			return errReached
		}
		return nil
	}))
	res, err := BFS(passable, bounds, start, opts...)
	if err != nil && !errors.Is(err, errReached) {
		return 0, err
	}
	d, ok := res.Depth[goal]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}
	return d, nil
}
