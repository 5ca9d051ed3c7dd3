package sim_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/grid"
	"github.com/katalvlaran/micromouse/sim"
)

// EmulatorSuite replays every driver over fixed and generated boards.
type EmulatorSuite struct {
	suite.Suite
	ctx context.Context
}

func TestEmulatorSuite(t *testing.T) {
	suite.Run(t, new(EmulatorSuite))
}

func (s *EmulatorSuite) SetupTest() {
	s.ctx = ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func (s *EmulatorSuite) driver(name string) sim.Driver {
	d, err := sim.NewDriver(name, sim.DriverOptions{Seed: 3})
	s.Require().NoError(err)
	return d
}

func (s *EmulatorSuite) TestCorridor_RightHand() {
	b := mustParse(s.T(), "S..G\n")
	var ticks []int
	rep, err := sim.NewEmulator(b, s.driver(sim.DriverRightHand),
		sim.WithOnTick(func(tick int, _ *sim.Robot) { ticks = append(ticks, tick) }),
	).Run(s.ctx)
	s.Require().NoError(err)

	s.Equal(sim.OutcomeSuccess, rep.Outcome)
	s.Equal(3, rep.Ticks)
	s.Equal([]int{1, 2, 3}, ticks)
	s.Equal(grid.Pose{Position: grid.Cell{Row: 0, Col: 3}, Heading: grid.East}, rep.Final)
	s.Equal(3, rep.Steps)
	s.Equal(1, rep.Turns)
	s.Equal(3, rep.OptimalSteps)
	s.Nil(rep.Exploration)
	s.NotEqual("", rep.RunID.String())
}

func (s *EmulatorSuite) TestStartOnGoal() {
	b, err := grid.NewBoard([][]bool{{true}}, grid.Cell{}, grid.Cell{})
	s.Require().NoError(err)
	rep, err := sim.NewEmulator(b, s.driver(sim.DriverRandom)).Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(sim.OutcomeSuccess, rep.Outcome)
	s.Zero(rep.Ticks)
	s.Zero(rep.OptimalSteps)
}

// TestRunTwice replays the same emulator twice and expects identical reports
// apart from the run ID. The planned drivers must solve the board both times.
func (s *EmulatorSuite) TestRunTwice() {
	b := mustParse(s.T(), "S..\n..G\n")
	for _, name := range sim.DriverNames() {
		em := sim.NewEmulator(b, s.driver(name), sim.WithMaxTicks(50))

		first, err := em.Run(s.ctx)
		s.Require().NoError(err, name)
		second, err := em.Run(s.ctx)
		s.Require().NoError(err, name)

		if name == sim.DriverAStar || name == sim.DriverExplorer {
			s.Equal(sim.OutcomeSuccess, first.Outcome, name)
		}
		s.Equal(first.Outcome, second.Outcome, name)
		s.Equal(first.Ticks, second.Ticks, name)
		s.Equal(first.Final, second.Final, name)
		s.Equal(first.Exploration, second.Exploration, name)
		s.NotEqual(first.RunID, second.RunID, name)
	}
}

func TestPlanned_Reset(t *testing.T) {
	b := mustParse(t, "S..\n..G\n")
	p := &sim.Planned{Explore: true}
	_, err := sim.NewEmulator(b, p).Run(ctxlog.WithLogger(context.Background(), ctxlog.Discard()))
	require.NoError(t, err)
	require.NotNil(t, p.Commands())
	require.NotNil(t, p.Exploration())

	p.Reset()
	assert.Nil(t, p.Commands())
	assert.Nil(t, p.Exploration())
}

// TestGeneratedMazes checks that the deterministic drivers solve perfect mazes
// and that the planned drivers move exactly the optimal number of cells.
func (s *EmulatorSuite) TestGeneratedMazes() {
	for seed := int64(1); seed <= 8; seed++ {
		b, err := grid.Generate(6, 6, grid.WithSeed(seed))
		s.Require().NoError(err)

		for _, name := range []string{sim.DriverRightHand, sim.DriverLeftHand, sim.DriverAStar, sim.DriverExplorer} {
			d := s.driver(name)
			rep, err := sim.NewEmulator(b, d, sim.WithHeading(grid.South)).Run(s.ctx)
			s.Require().NoError(err)
			s.Equal(sim.OutcomeSuccess, rep.Outcome, "seed %d driver %s\n%s", seed, name, b)
			s.Equal(b.Goal(), rep.Final.Position)

			if p, ok := d.(*sim.Planned); ok {
				s.Equal(rep.OptimalSteps, rep.Steps, "seed %d driver %s", seed, name)
				s.Equal(len(p.Commands()), rep.Ticks)
				s.Equal(p.Commands().Turns(), rep.Turns)
			}
			if name == sim.DriverExplorer {
				s.Require().NotNil(rep.Exploration)
				s.True(rep.Exploration.GoalFound)
				s.Equal(b.OpenCells(), rep.Exploration.Visited)
			}
		}

		rep, err := sim.NewEmulator(b, s.driver(sim.DriverRandom), sim.WithMaxTicks(50)).Run(s.ctx)
		s.Require().NoError(err)
		s.LessOrEqual(rep.Ticks, 50)
	}
}

func (s *EmulatorSuite) TestUnreachableGoal() {
	b := mustParse(s.T(), "S.#G\n..##\n")
	for _, name := range []string{sim.DriverAStar, sim.DriverExplorer} {
		rep, err := sim.NewEmulator(b, s.driver(name), sim.WithMaxTicks(20)).Run(s.ctx)
		s.Require().NoError(err)
		s.Equal(sim.OutcomeLoop, rep.Outcome)
		s.Equal(20, rep.Ticks)
		s.Zero(rep.Steps)
		s.Equal(-1, rep.OptimalSteps)
		if name == sim.DriverExplorer {
			s.Require().NotNil(rep.Exploration)
			s.False(rep.Exploration.GoalFound)
			s.Equal(4, rep.Exploration.Visited)
		}
	}
}

func (s *EmulatorSuite) TestReversalPolicy() {
	b := mustParse(s.T(), "S\n.\nG\n")
	d, err := sim.NewDriver(sim.DriverAStar, sim.DriverOptions{Reversal: command.CounterClockwise})
	s.Require().NoError(err)
	_, err = sim.NewEmulator(b, d).Run(s.ctx)
	s.Require().NoError(err)
	s.Equal("LLFF", d.(*sim.Planned).Commands().String())
}

func (s *EmulatorSuite) TestErrors() {
	b := mustParse(s.T(), "S..G\n")

	_, err := sim.NewEmulator(nil, s.driver(sim.DriverAStar)).Run(s.ctx)
	s.True(errors.Is(err, sim.ErrNilBoard))

	_, err = sim.NewEmulator(b, nil).Run(s.ctx)
	s.True(errors.Is(err, sim.ErrNilDriver))

	_, err = sim.NewEmulator(b, s.driver(sim.DriverAStar), sim.WithMaxTicks(0)).Run(s.ctx)
	s.True(errors.Is(err, sim.ErrOptionViolation))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = sim.NewEmulator(b, s.driver(sim.DriverAStar)).Run(ctx)
	s.True(errors.Is(err, context.Canceled))

	s.Panics(func() { sim.WithHeading(grid.Heading(7)) })
}

func TestNewDriver(t *testing.T) {
	for _, name := range sim.DriverNames() {
		d, err := sim.NewDriver(name, sim.DriverOptions{})
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}
	_, err := sim.NewDriver("teleport", sim.DriverOptions{})
	assert.True(t, errors.Is(err, sim.ErrUnknownDriver))
}

func TestReport_WriteTo(t *testing.T) {
	b := mustParse(t, "S..G\n")
	d, err := sim.NewDriver(sim.DriverExplorer, sim.DriverOptions{})
	require.NoError(t, err)
	rep, err := sim.NewEmulator(b, d, sim.WithHeading(grid.East)).Run(ctxlog.WithLogger(context.Background(), ctxlog.Discard()))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	for _, line := range []string{
		"Driver: explorer on 1x4 board",
		"Result: SUCCESS",
		"Final position: (0,3)",
		"Total steps: 3",
		"Total turns: 0",
		"Final direction: E",
		"Optimal steps: 3",
		"Explored cells: 4",
		"Goal found: true",
	} {
		assert.Contains(t, out, line+"\n")
	}
	require.NotNil(t, rep.Exploration)
	assert.Positive(t, rep.Exploration.Expansions)
	assert.Contains(t, out, "Search expansions: ")
	assert.True(t, strings.HasPrefix(out, "Run: "+rep.RunID.String()))
}
