package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/micromouse/grid"
)

var (
	// ErrInvalidStep indicates two consecutive path cells that are not orthogonal neighbours.
	ErrInvalidStep = errors.New("command: path cells are not orthogonally adjacent")
	// ErrUnknownCommand indicates a symbol outside the F/L/R alphabet.
	ErrUnknownCommand = errors.New("command: unknown command symbol")
)

// Command is one replayable instruction.
type Command byte

const (
	Forward   Command = 'F'
	TurnLeft  Command = 'L'
	TurnRight Command = 'R'
)

// Valid reports whether c is one of Forward, TurnLeft, TurnRight.
func (c Command) Valid() bool {
	return c == Forward || c == TurnLeft || c == TurnRight
}

// String returns the single-letter symbol.
func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Command(%q)", byte(c))
	}
	return string(rune(c))
}

// Apply returns the pose after executing c, ignoring walls. Forward moves one
// cell along the heading; turns rotate in place.
func (c Command) Apply(p grid.Pose) grid.Pose {
	switch c {
	case Forward:
		p.Position = p.Ahead()
	case TurnLeft:
		p.Heading = p.Heading.Left()
	case TurnRight:
		p.Heading = p.Heading.Right()
	}
	return p
}

// Sequence is an ordered list of commands.
type Sequence []Command

// String concatenates the symbols, e.g. "RFFRFF".
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// Forwards counts Forward commands.
func (s Sequence) Forwards() int {
	n := 0
	for _, c := range s {
		if c == Forward {
			n++
		}
	}
	return n
}

// Turns counts TurnLeft and TurnRight commands.
func (s Sequence) Turns() int {
	return len(s) - s.Forwards()
}

// Parse converts an F/L/R string into a Sequence. Whitespace is ignored.
func Parse(s string) (Sequence, error) {
	out := make(Sequence, 0, len(s))
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		c := Command(r)
		if r > 0x7f || !c.Valid() {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownCommand, r, i)
		}
		out = append(out, c)
	}
	return out, nil
}

// Reversal selects the turn direction for an exact 180° rotation.
type Reversal int

const (
	// Clockwise resolves reversals as two right turns.
	Clockwise Reversal = iota
	// CounterClockwise resolves reversals as two left turns.
	CounterClockwise
)

// String returns "clockwise" or "counter_clockwise".
func (r Reversal) String() string {
	switch r {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter_clockwise"
	}
	return fmt.Sprintf("Reversal(%d)", int(r))
}

// Option configures Compile.
type Option func(*Options)

// Options holds compiler policy.
type Options struct {
	Reversal Reversal
}

// DefaultOptions resolves reversals clockwise.
func DefaultOptions() Options {
	return Options{Reversal: Clockwise}
}

// WithReversal sets the reversal policy. Panics on an unknown value.
func WithReversal(r Reversal) Option {
	if r != Clockwise && r != CounterClockwise {
		panic(fmt.Sprintf("command: WithReversal(%d) unknown policy", int(r)))
	}
	return func(o *Options) {
		o.Reversal = r
	}
}
