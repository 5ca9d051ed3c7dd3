package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/grid"
)

func mustBoard(t *testing.T, s string) *grid.Board {
	t.Helper()
	b, err := grid.ParseString(s)
	require.NoError(t, err)
	return b
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	bounds := grid.Bounds{Rows: 2, Cols: 2}
	open := func(grid.Cell) bool { return true }

	_, err := bfs.BFS(nil, bounds, grid.Cell{})
	assert.True(t, errors.Is(err, bfs.ErrNilPassable), "nil predicate: got %v", err)

	_, err = bfs.BFS(open, bounds, grid.Cell{Row: 2})
	assert.True(t, errors.Is(err, bfs.ErrStartOutOfBounds), "start outside: got %v", err)

	_, err = bfs.BFS(open, bounds, grid.Cell{}, bfs.WithMaxDepth(-1))
	assert.True(t, errors.Is(err, bfs.ErrOptionViolation), "negative depth: got %v", err)
}

// TestBFS_Layers checks depths, order and parent links on an open 3×3 grid.
func TestBFS_Layers(t *testing.T) {
	b := mustBoard(t, "S  \n   \n  G\n")
	res, err := bfs.BFS(b.Passable, b.Bounds(), b.Start())
	require.NoError(t, err)

	want := []grid.Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 0},
		{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0},
		{Row: 1, Col: 2}, {Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, res.Depth[b.Goal()])

	path, err := res.PathTo(b.Goal())
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, b.Start(), path[0])
	assert.Equal(t, b.Goal(), path[4])
}

// TestBFS_Walls confirms walls split the reachable set.
func TestBFS_Walls(t *testing.T) {
	b := mustBoard(t, "S #  \n  # G\n")
	res, err := bfs.BFS(b.Passable, b.Bounds(), b.Start())
	require.NoError(t, err)

	assert.Len(t, res.Reachable(), 4)
	assert.False(t, res.Reached(b.Goal()))
	_, err = res.PathTo(b.Goal())
	assert.True(t, errors.Is(err, bfs.ErrUnreachable))

	_, err = bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Goal())
	assert.True(t, errors.Is(err, bfs.ErrUnreachable))
}

// TestBFS_MaxDepth limits the explored radius.
func TestBFS_MaxDepth(t *testing.T) {
	b := mustBoard(t, "S    G\n")
	res, err := bfs.BFS(b.Passable, b.Bounds(), b.Start(), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
}

// TestBFS_Hooks covers OnEnqueue counting and OnVisit aborting.
func TestBFS_Hooks(t *testing.T) {
	b := mustBoard(t, "S  \n  G\n")
	enq := 0
	stop := errors.New("stop")
	_, err := bfs.BFS(b.Passable, b.Bounds(), b.Start(),
		bfs.WithOnEnqueue(func(grid.Cell, int) { enq++ }),
		bfs.WithOnVisit(func(c grid.Cell, _ int) error {
			if c == b.Goal() {
				return stop
			}
			return nil
		}),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 6, enq)
}

// TestBFS_Cancel aborts on a cancelled context.
func TestBFS_Cancel(t *testing.T) {
	b := mustBoard(t, "S  \n  G\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(b.Passable, b.Bounds(), b.Start(), bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestDistance returns the step count on a reachable pair.
func TestDistance(t *testing.T) {
	b := mustBoard(t, "S # \n    \n # G\n")
	d, err := bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Goal())
	require.NoError(t, err)
	assert.Equal(t, 5, d)
}

// TestDistance_StopsAtGoal leaves the cells beyond the goal undiscovered.
func TestDistance_StopsAtGoal(t *testing.T) {
	b := mustBoard(t, "SG    \n")
	enq := 0
	d, err := bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Goal(),
		bfs.WithOnEnqueue(func(grid.Cell, int) { enq++ }))
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	assert.Equal(t, 2, enq)

	d, err = bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Start())
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestDistance_Cancel surfaces the context error rather than ErrUnreachable.
func TestDistance_Cancel(t *testing.T) {
	b := mustBoard(t, "S  \n  G\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Distance(b.Passable, b.Bounds(), b.Start(), b.Goal(), bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, bfs.ErrUnreachable))
}
