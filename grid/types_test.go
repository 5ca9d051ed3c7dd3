package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/grid"
)

// TestHeading_Cycle walks the fixed N→E→S→W cycle in both directions.
func TestHeading_Cycle(t *testing.T) {
	h := grid.North
	for i, want := range []grid.Heading{grid.East, grid.South, grid.West, grid.North} {
		h = h.Right()
		assert.Equal(t, want, h, "right turn %d", i+1)
	}
	for i, want := range []grid.Heading{grid.West, grid.South, grid.East, grid.North} {
		h = h.Left()
		assert.Equal(t, want, h, "left turn %d", i+1)
	}
}

// TestHeading_Delta pins the direction vectors.
func TestHeading_Delta(t *testing.T) {
	assert.Equal(t, grid.Delta{DRow: -1, DCol: 0}, grid.North.Delta())
	assert.Equal(t, grid.Delta{DRow: 0, DCol: 1}, grid.East.Delta())
	assert.Equal(t, grid.Delta{DRow: 1, DCol: 0}, grid.South.Delta())
	assert.Equal(t, grid.Delta{DRow: 0, DCol: -1}, grid.West.Delta())

	for _, h := range grid.Headings {
		got, ok := grid.HeadingOf(h.Delta())
		require.True(t, ok)
		assert.Equal(t, h, got)
	}
	_, ok := grid.HeadingOf(grid.Delta{DRow: 1, DCol: 1})
	assert.False(t, ok)
	_, ok = grid.HeadingOf(grid.Delta{})
	assert.False(t, ok)
}

// TestHeading_ClockwiseTo checks clockwise distances around the cycle.
func TestHeading_ClockwiseTo(t *testing.T) {
	assert.Equal(t, 0, grid.East.ClockwiseTo(grid.East))
	assert.Equal(t, 1, grid.North.ClockwiseTo(grid.East))
	assert.Equal(t, 2, grid.North.ClockwiseTo(grid.South))
	assert.Equal(t, 3, grid.North.ClockwiseTo(grid.West))
	assert.Equal(t, 1, grid.West.ClockwiseTo(grid.North))
}

// TestParseHeading accepts letters and names and rejects the rest.
func TestParseHeading(t *testing.T) {
	for in, want := range map[string]grid.Heading{"N": grid.North, "east": grid.East, "South": grid.South, "w": grid.West} {
		got, err := grid.ParseHeading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := grid.ParseHeading("up")
	assert.True(t, errors.Is(err, grid.ErrBadHeading))
	assert.Equal(t, "Heading(7)", grid.Heading(7).String())
}

// TestCell_Arithmetic covers Add, Sub, Manhattan and Pose.Ahead.
func TestCell_Arithmetic(t *testing.T) {
	c := grid.Cell{Row: 2, Col: 3}
	assert.Equal(t, grid.Cell{Row: 1, Col: 3}, c.Add(grid.North.Delta()))
	assert.Equal(t, grid.East.Delta(), grid.Cell{Row: 2, Col: 4}.Sub(c))
	assert.Equal(t, 5, c.Manhattan(grid.Cell{Row: 0, Col: 0}))
	assert.Equal(t, "(2,3)", c.String())

	p := grid.Pose{Position: c, Heading: grid.West}
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, p.Ahead())
	assert.Equal(t, "(2,3)/W", p.String())
}
