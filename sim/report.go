package sim

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/micromouse/grid"
)

// Report is the plain-data summary of one replay.
type Report struct {
	RunID   uuid.UUID
	Driver  string
	Bounds  grid.Bounds
	Outcome Outcome

	// Ticks is the number of driver steps taken.
	Ticks int

	// Final is the robot pose when the replay stopped.
	Final grid.Pose

	Steps int
	Turns int

	// OptimalSteps is the shortest start→goal distance on the board, -1 when
	// the goal is unreachable.
	OptimalSteps int

	// Exploration is set for drivers that explored before moving.
	Exploration *ExplorationStats
}

// ExplorationStats is what the frontier explorer reports about its run.
type ExplorationStats struct {
	Visited    int
	Steps      int
	Expansions int
	GoalFound  bool
}

// WriteTo renders the report as the emulator status block, one fact per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.printf("Run: %s\n", r.RunID)
	cw.printf("Driver: %s on %dx%d board\n", r.Driver, r.Bounds.Rows, r.Bounds.Cols)
	cw.printf("Result: %s\n", r.Outcome)
	cw.printf("Final position: %v\n", r.Final.Position)
	cw.printf("Total steps: %d\n", r.Steps)
	cw.printf("Total turns: %d\n", r.Turns)
	cw.printf("Final direction: %v\n", r.Final.Heading)
	cw.printf("Ticks: %d\n", r.Ticks)
	if r.OptimalSteps >= 0 {
		cw.printf("Optimal steps: %d\n", r.OptimalSteps)
	} else {
		cw.printf("Optimal steps: unreachable\n")
	}
	if x := r.Exploration; x != nil {
		cw.printf("Explored cells: %d\n", x.Visited)
		cw.printf("Exploration steps: %d\n", x.Steps)
		cw.printf("Search expansions: %d\n", x.Expansions)
		cw.printf("Goal found: %t\n", x.GoalFound)
	}
	return cw.n, cw.err
}

// countingWriter keeps the first write error and the byte total.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}
