package sim

import (
	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/grid"
)

// Robot is the simulated mouse. Pose changes only through Execute.
type Robot struct {
	Pose grid.Pose

	// Steps counts successful Forward moves.
	Steps int

	// Turns counts quarter turns.
	Turns int
}

// NewRobot places a robot at pose.
func NewRobot(pose grid.Pose) *Robot {
	return &Robot{Pose: pose}
}

// Execute applies c against b and reports whether the pose changed.
// A Forward into a wall or off the board leaves the robot where it is.
func (r *Robot) Execute(c command.Command, b *grid.Board) bool {
	switch c {
	case command.TurnLeft, command.TurnRight:
		r.Pose = c.Apply(r.Pose)
		r.Turns++
		return true
	case command.Forward:
		next := r.Pose.Ahead()
		if !b.Passable(next) {
			return false
		}
		r.Pose.Position = next
		r.Steps++
		return true
	}
	return false
}

// ExecuteAll runs seq in order and returns how many commands changed the pose.
func (r *Robot) ExecuteAll(seq command.Sequence, b *grid.Board) int {
	n := 0
	for _, c := range seq {
		if r.Execute(c, b) {
			n++
		}
	}
	return n
}

// CanMove reports whether the cell one step towards h is passable.
func (r *Robot) CanMove(h grid.Heading, b *grid.Board) bool {
	return b.Passable(r.Pose.Position.Add(h.Delta()))
}

func (r *Robot) canForward(b *grid.Board) bool { return r.CanMove(r.Pose.Heading, b) }
func (r *Robot) canRight(b *grid.Board) bool   { return r.CanMove(r.Pose.Heading.Right(), b) }
func (r *Robot) canLeft(b *grid.Board) bool    { return r.CanMove(r.Pose.Heading.Left(), b) }
