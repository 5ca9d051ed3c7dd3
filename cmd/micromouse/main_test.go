package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		err := run(context.Background(), out, &bytes.Buffer{}, args)
		require.NoError(t, err, "args %v", args)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestRun_ParseError(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--not-a-flag"})
	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -not-a-flag")
}

func TestRun_BadValues(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "b.txt", "S..G\n")
	cases := [][]string{
		{"-board", board, "-log-level", "loud"},
		{"-board", board, "-log-format", "xml"},
		{"-board", board, "-max-ticks", "0"},
		{"-board", board, "-driver", "teleport"},
		{"-board", board, "-heading", "up"},
		{"-board", board, "-reversal", "sideways"},
		{"-board", board, "-rows", "3", "-cols", "3"},
		{"-rows", "3", "-cols", "3", "-braid", "1.5"},
	}
	for _, args := range cases {
		err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)
		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "args %v: got %v", args, err)
		require.Equal(t, 2, exitErr.Code, "args %v", args)
	}
}

func TestRun_BoardAllDrivers(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "b.txt", "+-+-+\n|S  |\n+ + +\n|  G|\n+-+-+\n")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"-board", board, "-seed", "4", "-show-commands", "-log-format", "json"})
	require.NoError(t, err)

	text := out.String()
	for _, d := range []string{"right_hand", "left_hand", "random", "astar", "explorer"} {
		require.Contains(t, text, "| "+d+" ---")
	}
	require.Equal(t, 5, strings.Count(text, "Final position:"))
	require.Contains(t, text, "Commands: ")
	require.Contains(t, text, "Explored cells: ")
	require.Contains(t, logs.String(), `"msg":"all runs finished"`)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRun_ReportWriteError(t *testing.T) {
	dir := t.TempDir()
	board := writeFile(t, dir, "b.txt", "S..G\n")
	diskFull := errors.New("disk full")

	err := run(context.Background(), failingWriter{err: diskFull}, &bytes.Buffer{},
		[]string{"-board", board, "-driver", "astar", "-show-commands", "-show-board"})
	require.Error(t, err)
	require.True(t, errors.Is(err, diskFull), "got %v", err)
	require.Contains(t, err.Error(), `(astar)`)
}

func TestRun_GeneratedShowBoard(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{
		"-rows", "4", "-cols", "4", "-seed", "2", "-driver", "astar", "-show-board", "-log-level", "error",
	})
	require.NoError(t, err)
	text := out.String()
	require.Contains(t, text, "--- wilson 4x4 seed 2 | astar ---")
	require.Contains(t, text, "Result: SUCCESS")
	require.Contains(t, text, "#########\n")
	require.Contains(t, text, ".")
}

func TestRun_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.txt", "S.#\n#..\n#.G\n")
	scenario := writeFile(t, dir, "tiny.hcl", `
run "tiny" {
  board    = "tiny.txt"
  driver   = driver.explorer
  heading  = heading.east
  reversal = reversal.counter_clockwise
}
`)
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"-show-commands", scenario}))
	require.Contains(t, out.String(), "--- tiny | explorer ---")
	require.Contains(t, out.String(), "Commands: FRFLFRF\n")

	err := run(context.Background(), out, &bytes.Buffer{}, []string{filepath.Join(dir, "missing.hcl")})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
}
