package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/explore"
	"github.com/katalvlaran/micromouse/grid"
)

// Option configures an Emulator.
type Option func(*Options)

// Options holds replay limits and hooks.
type Options struct {
	// MaxTicks bounds the replay. Must be positive.
	MaxTicks int

	// Heading is the robot's initial facing.
	Heading grid.Heading

	// OnTick is called after every driver step with the tick number (from 1).
	OnTick func(tick int, r *Robot)

	err error
}

// DefaultOptions returns DefaultMaxTicks, a north-facing robot and no hooks.
func DefaultOptions() Options {
	return Options{MaxTicks: DefaultMaxTicks, Heading: grid.North}
}

// WithMaxTicks sets the tick budget. A non-positive n is recorded as ErrOptionViolation.
func WithMaxTicks(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxTicks=%d must be positive", ErrOptionViolation, n)
			return
		}
		o.MaxTicks = n
	}
}

// WithHeading sets the initial heading. Panics on an invalid heading.
func WithHeading(h grid.Heading) Option {
	if !h.Valid() {
		panic(fmt.Sprintf("sim: WithHeading(%d) invalid heading", int(h)))
	}
	return func(o *Options) {
		o.Heading = h
	}
}

// WithOnTick registers a per-tick hook.
func WithOnTick(fn func(tick int, r *Robot)) Option {
	return func(o *Options) {
		o.OnTick = fn
	}
}

// Emulator replays one driver on one board.
type Emulator struct {
	board  *grid.Board
	driver Driver
	opts   Options
}

// NewEmulator binds board and driver. Validation happens in Run.
func NewEmulator(board *grid.Board, driver Driver, opts ...Option) *Emulator {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Emulator{board: board, driver: driver, opts: cfg}
}

// Board returns the replayed board.
func (e *Emulator) Board() *grid.Board { return e.board }

// Driver returns the replayed driver.
func (e *Emulator) Driver() Driver { return e.driver }

// Run places a fresh robot on the start cell and ticks the driver until the
// robot stands on the goal or the budget is spent. The goal test happens
// before each step. Drivers implementing Resetter are reset first, so an
// Emulator can be run again. ctx supplies the logger and is checked every tick.
func (e *Emulator) Run(ctx context.Context) (*Report, error) {
	switch {
	case e.board == nil:
		return nil, ErrNilBoard
	case e.driver == nil:
		return nil, ErrNilDriver
	case e.opts.err != nil:
		return nil, e.opts.err
	}

	if rs, ok := e.driver.(Resetter); ok {
		rs.Reset()
	}

	id := uuid.New()
	log := ctxlog.FromContext(ctx).With("run_id", id.String(), "driver", e.driver.Name())
	ctx = ctxlog.WithLogger(ctx, log)

	robot := NewRobot(grid.Pose{Position: e.board.Start(), Heading: e.opts.Heading})
	log.Debug("replay start", "start", robot.Pose, "goal", e.board.Goal(), "max_ticks", e.opts.MaxTicks)

	outcome := OutcomeLoop
	ticks := 0
	for ticks < e.opts.MaxTicks {
		if e.board.IsGoal(robot.Pose.Position) {
			outcome = OutcomeSuccess
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.driver.Step(ctx, robot, e.board); err != nil {
			return nil, fmt.Errorf("sim: %s tick %d: %w", e.driver.Name(), ticks+1, err)
		}
		ticks++
		if e.opts.OnTick != nil {
			e.opts.OnTick(ticks, robot)
		}
	}

	rep := &Report{
		RunID:        id,
		Driver:       e.driver.Name(),
		Bounds:       e.board.Bounds(),
		Outcome:      outcome,
		Ticks:        ticks,
		Final:        robot.Pose,
		Steps:        robot.Steps,
		Turns:        robot.Turns,
		OptimalSteps: optimalSteps(ctx, e.board),
	}
	if x, ok := e.driver.(interface{ Exploration() *explore.Result }); ok {
		if res := x.Exploration(); res != nil {
			rep.Exploration = &ExplorationStats{
				Visited:    res.Visited.Len(),
				Steps:      res.Steps,
				Expansions: res.Expansions,
				GoalFound:  res.GoalFound,
			}
		}
	}
	log.Info("replay done", "outcome", outcome, "ticks", ticks, "steps", robot.Steps, "turns", robot.Turns)
	return rep, nil
}

// optimalSteps is the BFS distance start→goal on the true board, or -1.
func optimalSteps(ctx context.Context, b *grid.Board) int {
	d, err := bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Goal(), bfs.WithContext(ctx))
	if err != nil {
		return -1
	}
	return d
}
