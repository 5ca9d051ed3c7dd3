// Package astar implements A* search on a 4-connected, uniform-cost grid.
//
// The frontier is ordered by f = g + h where g is the number of steps taken
// and h is the Manhattan distance to the goal. Manhattan distance is admissible
// and consistent on this grid, so the first time the goal is popped its path
// is a shortest one.
//
// Notes on implementation choices:
//
//   - Neighbours are expanded in the fixed N, E, S, W order.
//   - Heap ties on f go to the lower h, then to the earlier insertion, which
//     keeps the output path deterministic.
//   - We use a "lazy" decrease-key strategy: a cell is re-pushed whenever its g
//     strictly improves; a popped entry whose g is worse than the recorded best
//     is stale and skipped.
//   - Cells outside bounds are never inspected.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/micromouse/grid"
)

// Search returns a shortest path from start to goal, both inclusive, moving
// only through cells for which passable holds. The start cell is always
// occupiable; a path of length 1 is returned when start == goal.
//
// Returns ErrNoPath when the goal cannot be reached. That outcome is routine.
//
// Preconditions and validation (in order):
//  1. passable must be non-nil (ErrNilPassable).
//  2. options must be valid (ErrOptionViolation).
//  3. start must be inside bounds (ErrStartOutOfBounds).
//  4. goal must be inside bounds (ErrGoalOutOfBounds).
//
// Complexity:
//
//   - Time:  O(E log V) over reachable cells.
//   - Space: O(V) for cost and predecessor maps plus O(E) heap entries.
func Search(passable Passable, bounds grid.Bounds, start, goal grid.Cell, opts ...Option) ([]grid.Cell, error) {
	if passable == nil {
		return nil, ErrNilPassable
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !bounds.Contains(start) {
		return nil, ErrStartOutOfBounds
	}
	if !bounds.Contains(goal) {
		return nil, ErrGoalOutOfBounds
	}
	if start == goal {
		return []grid.Cell{start}, nil
	}

	r := &runner{
		passable: passable,
		bounds:   bounds,
		goal:     goal,
		options:  cfg,
		cost:     make(map[grid.Cell]int),
		prev:     make(map[grid.Cell]grid.Cell),
	}
	r.push(start, 0)

	return r.process(start)
}

// runner holds the mutable state for a single search.
type runner struct {
	passable Passable
	bounds   grid.Bounds
	goal     grid.Cell
	options  Options

	cost map[grid.Cell]int       // best known g per cell
	prev map[grid.Cell]grid.Cell // predecessor on the best known path
	pq   frontier
	seq  int
}

// push records g as the best cost of c and inserts it into the frontier.
func (r *runner) push(c grid.Cell, g int) {
	h := c.Manhattan(r.goal)
	r.cost[c] = g
	r.seq++
	heap.Push(&r.pq, &entry{cell: c, g: g, h: h, seq: r.seq})
	r.options.OnPush(c, g+h)
}

// process pops cells until the goal is reached or the frontier is empty.
func (r *runner) process(start grid.Cell) ([]grid.Cell, error) {
	expanded := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)
		if item.g > r.cost[item.cell] {
			continue // stale: a cheaper entry for this cell was pushed later
		}
		if item.cell == r.goal {
			return r.reconstruct(start), nil
		}
		if r.options.MaxExpansions > 0 && expanded >= r.options.MaxExpansions {
			return nil, ErrExpansionLimit
		}
		expanded++
		r.options.OnExpand(item.cell, item.g)
		r.relax(item)
	}
	return nil, ErrNoPath
}

// relax offers every passable in-bounds neighbour of item a cost of g+1.
func (r *runner) relax(item *entry) {
	next := item.g + 1
	for _, h := range grid.Headings {
		nbr := item.cell.Add(h.Delta())
		if !r.bounds.Contains(nbr) || !r.passable(nbr) {
			continue
		}
		if best, seen := r.cost[nbr]; seen && next >= best {
			continue
		}
		r.prev[nbr] = item.cell
		r.push(nbr, next)
	}
}

// reconstruct walks predecessor links from the goal back to start.
func (r *runner) reconstruct(start grid.Cell) []grid.Cell {
	path := make([]grid.Cell, r.cost[r.goal]+1)
	cur := r.goal
	for i := len(path) - 1; i > 0; i-- {
		path[i] = cur
		cur = r.prev[cur]
	}
	path[0] = start
	return path
}

// entry is one frontier record. Several entries may exist for the same cell;
// only the one whose g matches cost[cell] is live.
type entry struct {
	cell grid.Cell
	g, h int
	seq  int
}

// frontier is a min-heap of *entry ordered by f, then h, then insertion order.
type frontier []*entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
