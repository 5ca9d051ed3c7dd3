package grid

import "strings"

// Board is the immutable ground-truth maze. open[r][c] is true for enterable cells.
type Board struct {
	bounds Bounds
	open   [][]bool
	start  Cell
	goal   Cell
}

// NewBoard constructs a Board from a non-empty, rectangular 2D slice of open flags.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrStartOutOfBounds, ErrGoalOutOfBounds,
// ErrStartBlocked or ErrGoalBlocked, checked in that order.
// Complexity: O(R×C) time and memory.
func NewBoard(open [][]bool, start, goal Cell) (*Board, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(open), len(open[0])
	for _, row := range open {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	bounds := Bounds{Rows: rows, Cols: cols}
	if !bounds.Contains(start) {
		return nil, ErrStartOutOfBounds
	}
	if !bounds.Contains(goal) {
		return nil, ErrGoalOutOfBounds
	}
	if !open[start.Row][start.Col] {
		return nil, ErrStartBlocked
	}
	if !open[goal.Row][goal.Col] {
		return nil, ErrGoalBlocked
	}

	cells := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]bool, cols)
		copy(cells[r], open[r])
	}

	return &Board{bounds: bounds, open: cells, start: start, goal: goal}, nil
}

// Bounds returns the board shape.
func (b *Board) Bounds() Bounds { return b.bounds }

// Start returns the designated start cell.
func (b *Board) Start() Cell { return b.start }

// Goal returns the designated goal cell.
func (b *Board) Goal() Cell { return b.goal }

// Passable reports whether c can be entered. Cells outside the board are walls.
// Complexity: O(1).
func (b *Board) Passable(c Cell) bool {
	return b.bounds.Contains(c) && b.open[c.Row][c.Col]
}

// IsWall is the negation of Passable.
func (b *Board) IsWall(c Cell) bool {
	return !b.Passable(c)
}

// IsGoal reports whether c is the goal cell.
func (b *Board) IsGoal(c Cell) bool {
	return c == b.goal
}

// Neighbors returns the in-bounds orthogonal neighbours of c in N, E, S, W order,
// regardless of passability.
func (b *Board) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Headings))
	for _, h := range Headings {
		n := c.Add(h.Delta())
		if b.bounds.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenCells counts passable cells.
func (b *Board) OpenCells() int {
	n := 0
	for _, row := range b.open {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the open flags.
func (b *Board) Rows() [][]bool {
	out := make([][]bool, b.bounds.Rows)
	for r := range out {
		out[r] = make([]bool, b.bounds.Cols)
		copy(out[r], b.open[r])
	}
	return out
}

// String renders the board with '#' walls, 'S' start, 'G' goal and ' ' open cells.
func (b *Board) String() string {
	return b.Render(nil)
}

// Render draws the board like String, overlaying mark(c) for every cell where it
// returns a non-zero rune. Start and goal markers win over overlays.
func (b *Board) Render(mark func(Cell) rune) string {
	var sb strings.Builder
	sb.Grow(b.bounds.Rows * (b.bounds.Cols + 1))
	for r := 0; r < b.bounds.Rows; r++ {
		for c := 0; c < b.bounds.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			switch {
			case cell == b.start:
				sb.WriteByte('S')
			case cell == b.goal:
				sb.WriteByte('G')
			case !b.open[r][c]:
				sb.WriteByte('#')
			default:
				if mark != nil {
					if ch := mark(cell); ch != 0 {
						sb.WriteRune(ch)
						continue
					}
				}
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
