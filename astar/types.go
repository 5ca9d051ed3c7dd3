// Package astar defines core types and configuration options
// for A* shortest-path search on 4-connected uniform-cost grids.
//
// Options:
//
//	– OnExpand:       hook called for every cell popped and expanded.
//	– OnPush:         hook called for every frontier insertion.
//	– MaxExpansions:  optional guard on expanded cells (0 = unlimited).
//
// Errors (sentinel):
//
//	– ErrNilPassable       if the passability predicate is nil.
//	– ErrStartOutOfBounds  if start lies outside bounds.
//	– ErrGoalOutOfBounds   if goal lies outside bounds.
//	– ErrNoPath            if the frontier is exhausted before reaching goal.
//	– ErrOptionViolation   if an option carries a meaningless value.
//	– ErrExpansionLimit    if MaxExpansions was reached first.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilPassable indicates that a nil passability predicate was supplied.
	ErrNilPassable = errors.New("astar: passability predicate is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the search bounds.
	ErrStartOutOfBounds = errors.New("astar: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the search bounds.
	ErrGoalOutOfBounds = errors.New("astar: goal cell out of bounds")

	// ErrNoPath indicates that no route exists between start and goal.
	// It is an ordinary outcome: callers are expected to branch on it.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrOptionViolation indicates an option was given a meaningless value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions cells.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Passable answers whether a cell can be entered.
type Passable func(grid.Cell) bool

// Options configures the behavior of Search.
//
// OnExpand      – called with each cell and its final cost g when it is expanded.
// OnPush        – called with each cell and its priority f when it enters the frontier.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions; 0 disables the guard.
type Options struct {
	OnExpand      func(c grid.Cell, g int)
	OnPush        func(c grid.Cell, f int)
	MaxExpansions int

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithOnExpand registers a callback invoked for every expanded cell.
func WithOnExpand(fn func(c grid.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback invoked for every frontier insertion.
func WithOnPush(fn func(c grid.Cell, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithMaxExpansions bounds the number of expanded cells.
//
//	n > 0: stop with ErrExpansionLimit once n cells have been expanded
//	n == 0: unlimited (default)
//	n < 0: ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns no-op hooks and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Cell, int) {},
		OnPush:   func(grid.Cell, int) {},
	}
}

// Length returns the number of steps (edges) along path; 0 for empty or single-cell paths.
func Length(path []grid.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
