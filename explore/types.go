package explore

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/grid"
)

var (
	// ErrNilSensor indicates that New was given a nil Sensor.
	ErrNilSensor = errors.New("explore: sensor is nil")

	// ErrStartOutOfBounds indicates that the sensor's start cell lies outside its bounds.
	ErrStartOutOfBounds = errors.New("explore: start cell outside bounds")

	// ErrGoalUnreachable is returned by Plan when exploration finished without
	// observing the goal. It is an expected outcome, not a fault.
	ErrGoalUnreachable = errors.New("explore: goal unreachable from start")
)

// Sensor is the ground truth the explorer may query, one neighbour at a time.
// *grid.Board satisfies it.
type Sensor interface {
	Bounds() grid.Bounds
	Start() grid.Cell
	Passable(c grid.Cell) bool
	IsGoal(c grid.Cell) bool
}

// CellState is the explorer's knowledge about one cell.
type CellState uint8

const (
	Unknown CellState = iota
	Open
	Blocked
	Goal
)

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Passable reports whether an agent may enter a cell in state s.
func (s CellState) Passable() bool {
	return s == Open || s == Goal
}

// State is a phase of the exploration state machine.
type State uint8

const (
	Sensing State = iota
	Selecting
	Traveling
	Done
)

func (s State) String() string {
	switch s {
	case Sensing:
		return "sensing"
	case Selecting:
		return "selecting"
	case Traveling:
		return "traveling"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// TargetOrder breaks ties between equally distant exploration targets:
// the first candidate in scan order wins.
type TargetOrder uint8

const (
	// RowMajor scans rows top to bottom, columns left to right within a row.
	RowMajor TargetOrder = iota
	// ColumnMajor scans columns left to right, rows top to bottom within a column.
	ColumnMajor
)

func (o TargetOrder) String() string {
	switch o {
	case RowMajor:
		return "row_major"
	case ColumnMajor:
		return "column_major"
	}
	return fmt.Sprintf("TargetOrder(%d)", uint8(o))
}

// Outcome is the terminal verdict of a run.
type Outcome uint8

const (
	// OutcomeRouted means the goal was observed and Result.Route holds the shortest known path.
	OutcomeRouted Outcome = iota
	// OutcomeGoalUnreachable means every reachable cell was visited without seeing the goal.
	OutcomeGoalUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRouted:
		return "routed"
	case OutcomeGoalUnreachable:
		return "goal_unreachable"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Option configures an Explorer.
type Option func(*Options)

// Options holds explorer policy and observation hooks.
type Options struct {
	// Order breaks ties between equally short exploration targets.
	Order TargetOrder

	// Reversal is handed to the command compiler by Plan.
	Reversal command.Reversal

	// OnTransition is called on every state change, after the new state is set.
	OnTransition func(from, to State)

	// OnStep is called for every cell entered while traveling.
	OnStep func(c grid.Cell)
}

// DefaultOptions returns row-major targeting, clockwise reversals and no hooks.
func DefaultOptions() Options {
	return Options{Order: RowMajor, Reversal: command.Clockwise}
}

// WithTargetOrder sets the exploration tie-break. Panics on an unknown order.
func WithTargetOrder(o TargetOrder) Option {
	if o != RowMajor && o != ColumnMajor {
		panic(fmt.Sprintf("explore: WithTargetOrder(%d) unknown order", uint8(o)))
	}
	return func(opts *Options) {
		opts.Order = o
	}
}

// WithReversal sets the 180° turn policy used by Plan. Panics on an unknown value.
func WithReversal(r command.Reversal) Option {
	if r != command.Clockwise && r != command.CounterClockwise {
		panic(fmt.Sprintf("explore: WithReversal(%d) unknown policy", int(r)))
	}
	return func(opts *Options) {
		opts.Reversal = r
	}
}

// WithOnTransition registers a state-change hook.
func WithOnTransition(fn func(from, to State)) Option {
	return func(opts *Options) {
		opts.OnTransition = fn
	}
}

// WithOnStep registers a hook invoked for each traversed cell.
func WithOnStep(fn func(c grid.Cell)) Option {
	return func(opts *Options) {
		opts.OnStep = fn
	}
}

// Result is the plain-data summary of one exploration run.
type Result struct {
	// Visited holds every cell occupied during exploration, the start included.
	Visited *VisitedSet

	// Map is the knowledge grid at Done.
	Map *PartialMap

	// Steps counts single-cell moves made while traveling.
	Steps int

	// Phases counts Traveling phases.
	Phases int

	// Expansions counts cells expanded by every A* search of the run,
	// target selection and the final route together.
	Expansions int

	// GoalFound reports whether the agent stood on a goal cell at some point.
	GoalFound bool

	// Goal is the first goal cell reached. Meaningful only when GoalFound.
	Goal grid.Cell

	// Route is the shortest known path start→Goal over Map, nil unless GoalFound.
	Route []grid.Cell

	Outcome Outcome
}
