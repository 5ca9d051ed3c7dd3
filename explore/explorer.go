package explore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/micromouse/astar"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/grid"
)

// Explorer discovers the maze behind a Sensor. It holds configuration only;
// every Run builds fresh knowledge, so an Explorer may be reused.
type Explorer struct {
	sensor Sensor
	opts   Options
}

// New returns an Explorer over sensor configured by opts.
func New(sensor Sensor, opts ...Option) *Explorer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Explorer{sensor: sensor, opts: cfg}
}

// Run explores from the sensor's start until no reachable unvisited cell remains.
// The logger is taken from ctx (see ctxlog). ctx is polled once per Selecting
// phase; cancellation returns ctx.Err().
//
// Returns ErrNilSensor or ErrStartOutOfBounds for unusable input. An unreachable
// goal is not an error: it is reported as Result.Outcome.
func (e *Explorer) Run(ctx context.Context) (*Result, error) {
	if e.sensor == nil {
		return nil, ErrNilSensor
	}
	bounds := e.sensor.Bounds()
	start := e.sensor.Start()
	if !bounds.Contains(start) {
		return nil, fmt.Errorf("%w: %v not in %dx%d", ErrStartOutOfBounds, start, bounds.Rows, bounds.Cols)
	}

	r := &runner{
		ctx:     ctx,
		sensor:  e.sensor,
		opts:    e.opts,
		bounds:  bounds,
		start:   start,
		known:   NewPartialMap(bounds),
		visited: NewVisitedSet(bounds),
		log:     ctxlog.FromContext(ctx),
	}
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.result()
}

// runner holds the state of a single exploration.
type runner struct {
	ctx     context.Context
	sensor  Sensor
	opts    Options
	bounds  grid.Bounds
	start   grid.Cell
	known   *PartialMap
	visited *VisitedSet
	log     *slog.Logger

	state     State
	pos       grid.Cell
	path      []grid.Cell
	steps     int
	phases    int
	goalFound bool
	goal      grid.Cell

	expansions int
}

func (r *runner) run() error {
	r.pos = r.start
	r.enter(r.start, r.footprint(r.start))

	r.state = Sensing
	for r.state != Done {
		switch r.state {
		case Sensing:
			r.sense(r.pos)
			r.transition(Selecting)

		case Selecting:
			if err := r.ctx.Err(); err != nil {
				return err
			}
			path, err := r.selectTarget()
			if err != nil {
				return err
			}
			if path == nil {
				r.transition(Done)
				continue
			}
			r.path = path
			r.transition(Traveling)

		case Traveling:
			r.travel()
			r.transition(Sensing)
		}
	}
	return nil
}

func (r *runner) transition(to State) {
	from := r.state
	r.state = to
	if r.log.Enabled(r.ctx, slog.LevelDebug) {
		r.log.DebugContext(r.ctx, "explore transition", "from", from, "to", to, "pos", r.pos, "visited", r.visited.Len())
	}
	if r.opts.OnTransition != nil {
		r.opts.OnTransition(from, to)
	}
}

// footprint resolves the state of the cell the agent stands on.
func (r *runner) footprint(c grid.Cell) CellState {
	if r.sensor.IsGoal(c) {
		return Goal
	}
	return Open
}

// enter marks c as occupied.
func (r *runner) enter(c grid.Cell, s CellState) {
	r.known.Resolve(c, s)
	r.visited.Add(c)
	if r.known.State(c) == Goal && !r.goalFound {
		r.goalFound = true
		r.goal = c
		r.log.InfoContext(r.ctx, "explore goal found", "cell", c, "steps", r.steps)
	}
}

// sense resolves every Unknown orthogonal neighbour of c against the sensor.
func (r *runner) sense(c grid.Cell) {
	for _, h := range grid.Headings {
		n := c.Add(h.Delta())
		if !r.bounds.Contains(n) || r.known.State(n) != Unknown {
			continue
		}
		s := Blocked
		if r.sensor.Passable(n) {
			s = r.footprint(n)
		}
		r.known.Resolve(n, s)
	}
}

// selectTarget returns the shortest known path from the current cell to an
// unvisited passable cell, or nil when none is reachable. Candidates are scanned
// in the configured order; a later candidate replaces the best only when it is
// strictly shorter, and one whose Manhattan bound cannot beat the best is not searched.
func (r *runner) selectTarget() ([]grid.Cell, error) {
	var best []grid.Cell
	rows, cols := r.bounds.Rows, r.bounds.Cols
	outer, inner := rows, cols
	if r.opts.Order == ColumnMajor {
		outer, inner = cols, rows
	}

	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			c := grid.Cell{Row: i, Col: j}
			if r.opts.Order == ColumnMajor {
				c = grid.Cell{Row: j, Col: i}
			}
			if !r.known.Passable(c) || r.visited.Has(c) {
				continue
			}
			if best != nil && r.pos.Manhattan(c)+1 >= len(best) {
				continue
			}
			path, err := r.search(r.pos, c)
			if errors.Is(err, astar.ErrNoPath) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("explore: select target %v: %w", c, err)
			}
			if best == nil || len(path) < len(best) {
				best = path
			}
		}
	}
	return best, nil
}

// search runs A* over the partial map and counts the cells it expands.
func (r *runner) search(from, to grid.Cell) ([]grid.Cell, error) {
	return astar.Search(r.known.Passable, r.bounds, from, to,
		astar.WithOnExpand(func(grid.Cell, int) { r.expansions++ }))
}

// travel walks r.path cell by cell, sensing after every move.
func (r *runner) travel() {
	for _, c := range r.path[1:] {
		r.pos = c
		r.steps++
		r.enter(c, r.footprint(c))
		if r.opts.OnStep != nil {
			r.opts.OnStep(c)
		}
		r.sense(c)
	}
	r.path = nil
	r.phases++
}

func (r *runner) result() (*Result, error) {
	res := &Result{
		Visited:   r.visited,
		Map:       r.known,
		Steps:     r.steps,
		Phases:    r.phases,
		GoalFound: r.goalFound,
		Outcome:   OutcomeGoalUnreachable,
	}
	if r.goalFound {
		route, err := r.search(r.start, r.goal)
		if err != nil {
			return nil, fmt.Errorf("explore: final route %v→%v: %w", r.start, r.goal, err)
		}
		res.Goal = r.goal
		res.Route = route
		res.Outcome = OutcomeRouted
	}
	res.Expansions = r.expansions
	r.log.InfoContext(r.ctx, "explore done",
		"visited", res.Visited.Len(),
		"steps", res.Steps,
		"phases", res.Phases,
		"expansions", res.Expansions,
		"goal_found", res.GoalFound,
		"outcome", res.Outcome)
	return res, nil
}
