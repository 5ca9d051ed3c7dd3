package grid

import "fmt"

// Cell is a (row, col) position. Row grows southwards, Col grows eastwards.
type Cell struct {
	Row, Col int
}

// Delta is a unit step between orthogonally adjacent cells.
type Delta struct {
	DRow, DCol int
}

// Add returns the cell reached from c by applying d.
func (c Cell) Add(d Delta) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Sub returns the step that leads from c to other.
func (c Cell) Sub(other Cell) Delta {
	return Delta{DRow: c.Row - other.Row, DCol: c.Col - other.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and other.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds is the shape of a grid. Cells with 0 ≤ Row < Rows and 0 ≤ Col < Cols are inside.
type Bounds struct {
	Rows, Cols int
}

// Contains reports whether c lies inside b.
// Complexity: O(1).
func (b Bounds) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Size is the number of cells covered by b.
func (b Bounds) Size() int {
	return b.Rows * b.Cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure b.Contains(c).
func (b Bounds) Index(c Cell) int {
	return c.Row*b.Cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
func (b Bounds) CellAt(idx int) Cell {
	return Cell{Row: idx / b.Cols, Col: idx % b.Cols}
}

// Heading is one of the four cardinal facing directions.
// The numeric order North, East, South, West is the clockwise cycle.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists the four headings in their fixed cyclic order.
// It is also the neighbour expansion order used by every search.
var Headings = [4]Heading{North, East, South, West}

var headingDeltas = [4]Delta{
	North: {DRow: -1, DCol: 0},
	East:  {DRow: 0, DCol: 1},
	South: {DRow: 1, DCol: 0},
	West:  {DRow: 0, DCol: -1},
}

var headingNames = [4]string{North: "N", East: "E", South: "S", West: "W"}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Delta returns the unit step of h.
func (h Heading) Delta() Delta {
	return headingDeltas[h.normalize()]
}

// Right returns the heading after one clockwise quarter turn.
func (h Heading) Right() Heading {
	return (h.normalize() + 1) % 4
}

// Left returns the heading after one counter-clockwise quarter turn.
func (h Heading) Left() Heading {
	return (h.normalize() + 3) % 4
}

// ClockwiseTo returns how many Right() turns lead from h to other (0..3).
func (h Heading) ClockwiseTo(other Heading) int {
	return int((other.normalize() - h.normalize() + 4) % 4)
}

// String returns the single-letter name: "N", "E", "S" or "W".
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

func (h Heading) normalize() Heading {
	return ((h % 4) + 4) % 4
}

// HeadingOf returns the heading whose unit step equals d.
// ok is false when d is not one of the four orthogonal unit steps.
func HeadingOf(d Delta) (h Heading, ok bool) {
	for _, h = range Headings {
		if headingDeltas[h] == d {
			return h, true
		}
	}
	return 0, false
}

// ParseHeading accepts "N", "E", "S", "W" or the full names, case-insensitively.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "N", "n", "north", "North", "NORTH":
		return North, nil
	case "E", "e", "east", "East", "EAST":
		return East, nil
	case "S", "s", "south", "South", "SOUTH":
		return South, nil
	case "W", "w", "west", "West", "WEST":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadHeading, s)
}

// Pose is the agent's position plus heading.
type Pose struct {
	Position Cell
	Heading  Heading
}

// Ahead returns the cell directly in front of the pose.
func (p Pose) Ahead() Cell {
	return p.Position.Add(p.Heading.Delta())
}

// String renders the pose as "(row,col)/H".
func (p Pose) String() string {
	return p.Position.String() + "/" + p.Heading.String()
}
