package explore

import (
	"strings"

	"github.com/katalvlaran/micromouse/grid"
)

// PartialMap is the explorer's knowledge grid. Entries only move away from
// Unknown and never change once resolved.
type PartialMap struct {
	bounds grid.Bounds
	states []CellState
	counts [4]int
}

// NewPartialMap returns a map of the given shape with every cell Unknown.
func NewPartialMap(b grid.Bounds) *PartialMap {
	m := &PartialMap{bounds: b, states: make([]CellState, b.Size())}
	m.counts[Unknown] = b.Size()
	return m
}

// Bounds returns the map's shape.
func (m *PartialMap) Bounds() grid.Bounds { return m.bounds }

// State returns the knowledge about c. Cells outside the bounds read as Blocked.
func (m *PartialMap) State(c grid.Cell) CellState {
	if !m.bounds.Contains(c) {
		return Blocked
	}
	return m.states[m.bounds.Index(c)]
}

// Passable reports whether c is known to be Open or Goal. Unknown cells are not
// passable, so searches over the map stay inside explored territory.
func (m *PartialMap) Passable(c grid.Cell) bool {
	return m.State(c).Passable()
}

// Resolve records s for c if c is still Unknown and reports whether the map changed.
// Already-known and out-of-bounds cells are left untouched, as is s == Unknown.
func (m *PartialMap) Resolve(c grid.Cell, s CellState) bool {
	if s == Unknown || s > Goal || !m.bounds.Contains(c) {
		return false
	}
	idx := m.bounds.Index(c)
	if m.states[idx] != Unknown {
		return false
	}
	m.states[idx] = s
	m.counts[Unknown]--
	m.counts[s]++
	return true
}

// Count returns how many cells are currently in state s.
func (m *PartialMap) Count(s CellState) int {
	if s > Goal {
		return 0
	}
	return m.counts[s]
}

// String renders the map one row per line: '?' unknown, '.' open, '#' blocked, 'G' goal.
func (m *PartialMap) String() string {
	var sb strings.Builder
	sb.Grow((m.bounds.Cols + 1) * m.bounds.Rows)
	for r := 0; r < m.bounds.Rows; r++ {
		for c := 0; c < m.bounds.Cols; c++ {
			sb.WriteByte(stateGlyph[m.states[m.bounds.Index(grid.Cell{Row: r, Col: c})]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var stateGlyph = [4]byte{Unknown: '?', Open: '.', Blocked: '#', Goal: 'G'}

// VisitedSet is the grow-only set of cells the agent has occupied.
type VisitedSet struct {
	bounds grid.Bounds
	seen   []bool
	n      int
}

// NewVisitedSet returns an empty set over b.
func NewVisitedSet(b grid.Bounds) *VisitedSet {
	return &VisitedSet{bounds: b, seen: make([]bool, b.Size())}
}

// Add inserts c and reports whether it was new. Cells outside the bounds are ignored.
func (v *VisitedSet) Add(c grid.Cell) bool {
	if !v.bounds.Contains(c) {
		return false
	}
	idx := v.bounds.Index(c)
	if v.seen[idx] {
		return false
	}
	v.seen[idx] = true
	v.n++
	return true
}

// Has reports membership.
func (v *VisitedSet) Has(c grid.Cell) bool {
	return v.bounds.Contains(c) && v.seen[v.bounds.Index(c)]
}

// Len returns the number of visited cells.
func (v *VisitedSet) Len() int { return v.n }

// Cells lists members in row-major order.
func (v *VisitedSet) Cells() []grid.Cell {
	out := make([]grid.Cell, 0, v.n)
	for idx, ok := range v.seen {
		if ok {
			out = append(out, v.bounds.CellAt(idx))
		}
	}
	return out
}
