package explore

import (
	"context"

	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/grid"
)

// Plan explores the maze behind sensor and compiles the shortest known route
// into commands for an agent starting at the sensor's start facing heading.
//
// The Result is returned whenever exploration itself succeeded, including
// alongside ErrGoalUnreachable, so callers can still report coverage.
func Plan(ctx context.Context, sensor Sensor, heading grid.Heading, opts ...Option) (command.Sequence, *Result, error) {
	e := New(sensor, opts...)
	res, err := e.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	if res.Outcome != OutcomeRouted {
		return nil, res, ErrGoalUnreachable
	}
	seq, err := command.Compile(res.Route, heading, command.WithReversal(e.opts.Reversal))
	if err != nil {
		return nil, res, err
	}
	return seq, res, nil
}
