package command

import (
	"fmt"

	"github.com/katalvlaran/micromouse/grid"
)

// Compile converts path into commands starting from heading initial.
// For every consecutive pair it rotates toward the required heading by the
// shorter arc, then emits one Forward. A path of zero or one cells yields an
// empty Sequence.
//
// Returns ErrInvalidStep, wrapped with the offending cells, if two consecutive
// cells are not orthogonally adjacent.
func Compile(path []grid.Cell, initial grid.Heading, opts ...Option) (Sequence, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(path) < 2 {
		return Sequence{}, nil
	}

	out := make(Sequence, 0, 2*(len(path)-1))
	heading := initial
	for i := 1; i < len(path); i++ {
		need, ok := grid.HeadingOf(path[i].Sub(path[i-1]))
		if !ok {
			return nil, fmt.Errorf("%w: step %d from %v to %v", ErrInvalidStep, i, path[i-1], path[i])
		}
		out = append(out, Turns(heading, need, cfg.Reversal)...)
		out = append(out, Forward)
		heading = need
	}
	return out, nil
}

// MustCompile is Compile for paths produced by trusted code. A malformed path is
// an upstream defect, so it panics instead of returning an error.
func MustCompile(path []grid.Cell, initial grid.Heading, opts ...Option) Sequence {
	seq, err := Compile(path, initial, opts...)
	if err != nil {
		panic(err)
	}
	return seq
}

// Turns returns the minimal turn commands rotating from one heading to another:
// none, one R, one L, or two turns in the direction chosen by reversal.
func Turns(from, to grid.Heading, reversal Reversal) Sequence {
	cw := from.ClockwiseTo(to)
	ccw := (4 - cw) % 4
	switch {
	case cw == 0:
		return nil
	case cw < ccw:
		return repeat(TurnRight, cw)
	case ccw < cw:
		return repeat(TurnLeft, ccw)
	case reversal == CounterClockwise:
		return repeat(TurnLeft, ccw)
	default:
		return repeat(TurnRight, cw)
	}
}

func repeat(c Command, n int) Sequence {
	out := make(Sequence, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// Replay applies seq to a pose, ignoring walls, and returns every position the
// pose occupies: the start plus one entry per Forward.
func Replay(start grid.Pose, seq Sequence) ([]grid.Cell, grid.Pose) {
	cells := []grid.Cell{start.Position}
	p := start
	for _, c := range seq {
		p = c.Apply(p)
		if c == Forward {
			cells = append(cells, p.Position)
		}
	}
	return cells, p
}
