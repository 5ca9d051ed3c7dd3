package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/grid"
	"github.com/katalvlaran/micromouse/sim"
)

func mustParse(t *testing.T, s string) *grid.Board {
	t.Helper()
	b, err := grid.ParseString(s)
	require.NoError(t, err)
	return b
}

func TestRobot_Execute(t *testing.T) {
	b := mustParse(t, "S.\n#G\n")
	r := sim.NewRobot(grid.Pose{Position: b.Start(), Heading: grid.North})

	assert.False(t, r.Execute(command.Forward, b), "off the board")
	assert.True(t, r.Execute(command.TurnRight, b))
	assert.True(t, r.Execute(command.Forward, b))
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, r.Pose.Position)
	assert.False(t, r.Execute(command.Command('X'), b))

	r.Pose.Heading = grid.West
	r.Pose.Position = grid.Cell{Row: 1, Col: 1}
	assert.False(t, r.Execute(command.Forward, b), "into a wall")
	assert.Equal(t, 1, r.Steps)
	assert.Equal(t, 1, r.Turns)

	seq, err := command.Parse("RRFLF")
	require.NoError(t, err)
	r = sim.NewRobot(grid.Pose{Position: b.Start(), Heading: grid.West})
	assert.Equal(t, 4, r.ExecuteAll(seq, b))
	assert.Equal(t, grid.Pose{Position: grid.Cell{Row: 0, Col: 1}, Heading: grid.North}, r.Pose)
}

func TestRobot_CanMove(t *testing.T) {
	b := mustParse(t, "S.\n#G\n")
	r := sim.NewRobot(grid.Pose{Position: b.Start(), Heading: grid.East})
	assert.True(t, r.CanMove(grid.East, b))
	assert.False(t, r.CanMove(grid.South, b))
	assert.False(t, r.CanMove(grid.North, b))
	assert.False(t, r.CanMove(grid.West, b))
}
