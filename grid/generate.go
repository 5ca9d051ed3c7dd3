package grid

import (
	"fmt"
	"math/rand"
)

// MaxGenerateDimension caps the number of maze cells per side accepted by Generate.
const MaxGenerateDimension = 128

// GenerateOption customises Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	rng   *rand.Rand
	start Cell
	goal  *Cell
	braid float64
}

// WithSeed makes generation deterministic.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) GenerateOption {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *generateConfig) {
		c.rng = r
	}
}

// WithStart places the start marker in maze cell (row, col) (not board coordinates).
// Default is the top-left maze cell.
func WithStart(row, col int) GenerateOption {
	return func(c *generateConfig) {
		c.start = Cell{Row: row, Col: col}
	}
}

// WithGoal places the goal marker in maze cell (row, col).
// Default is the bottom-right maze cell.
func WithGoal(row, col int) GenerateOption {
	return func(c *generateConfig) {
		c.goal = &Cell{Row: row, Col: col}
	}
}

// WithBraid removes one wall from each dead end with probability p, adding loops.
// Panics unless 0 ≤ p ≤ 1.
func WithBraid(p float64) GenerateOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("grid: WithBraid(%v) outside [0,1]", p))
	}
	return func(c *generateConfig) {
		c.braid = p
	}
}

// walls of a single maze cell, indexed by Heading.
type mazeCell [4]bool

// wilson holds the cell-level maze while it is carved.
type wilson struct {
	bounds Bounds
	cells  []mazeCell
	rng    *rand.Rand
}

// Generate builds a rows×cols perfect maze with Wilson's loop-erased random walk
// and rasterises it into a (2·rows+1)×(2·cols+1) Board where '+', '-' and '|'
// positions become walls. Every maze cell is reachable from every other one
// (unless braiding adds loops, which keeps that property).
//
// Returns ErrBadDimensions if rows or cols is ≤0 or exceeds MaxGenerateDimension,
// or if the start/goal options fall outside the maze.
func Generate(rows, cols int, opts ...GenerateOption) (*Board, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxGenerateDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	cfg := generateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	goal := Cell{Row: rows - 1, Col: cols - 1}
	if cfg.goal != nil {
		goal = *cfg.goal
	}
	bounds := Bounds{Rows: rows, Cols: cols}
	if !bounds.Contains(cfg.start) || !bounds.Contains(goal) {
		return nil, fmt.Errorf("%w: start %v or goal %v outside %dx%d maze", ErrBadDimensions, cfg.start, goal, rows, cols)
	}

	w := &wilson{bounds: bounds, cells: make([]mazeCell, bounds.Size()), rng: cfg.rng}
	for i := range w.cells {
		w.cells[i] = mazeCell{true, true, true, true}
	}
	w.carve()
	if cfg.braid > 0 {
		w.braid(cfg.braid)
	}

	return NewBoard(w.raster(), toBoard(cfg.start), toBoard(goal))
}

// toBoard maps a maze cell to its board coordinates.
func toBoard(c Cell) Cell {
	return Cell{Row: 2*c.Row + 1, Col: 2*c.Col + 1}
}

// carve runs Wilson's algorithm: repeatedly random-walk from an unvisited cell
// until the walk hits the tree, then add the loop-erased walk to the tree.
func (w *wilson) carve() {
	total := w.bounds.Size()
	inTree := make([]bool, total)
	inTree[w.rng.Intn(total)] = true
	remaining := total - 1

	// exit[i] is the last heading taken out of cell i during the current walk;
	// overwriting it on revisits is what erases loops.
	exit := make([]Heading, total)

	for idx := 0; remaining > 0; idx++ {
		if inTree[idx] {
			continue
		}
		cur := idx
		for !inTree[cur] {
			h := w.randomHeading(w.bounds.CellAt(cur))
			exit[cur] = h
			cur = w.bounds.Index(w.bounds.CellAt(cur).Add(h.Delta()))
		}
		for cur = idx; !inTree[cur]; {
			inTree[cur] = true
			remaining--
			next := w.openWall(w.bounds.CellAt(cur), exit[cur])
			cur = w.bounds.Index(next)
		}
	}
}

// randomHeading picks a uniformly random heading that stays inside the maze.
func (w *wilson) randomHeading(c Cell) Heading {
	var options [4]Heading
	n := 0
	for _, h := range Headings {
		if w.bounds.Contains(c.Add(h.Delta())) {
			options[n] = h
			n++
		}
	}
	return options[w.rng.Intn(n)]
}

// openWall removes the wall between c and its neighbour in direction h and
// returns that neighbour.
func (w *wilson) openWall(c Cell, h Heading) Cell {
	n := c.Add(h.Delta())
	w.cells[w.bounds.Index(c)][h] = false
	w.cells[w.bounds.Index(n)][h.Right().Right()] = false
	return n
}

// braid knocks one interior wall out of each dead end with probability p.
func (w *wilson) braid(p float64) {
	for idx := range w.cells {
		c := w.bounds.CellAt(idx)
		var closed []Heading
		for _, h := range Headings {
			if w.cells[idx][h] && w.bounds.Contains(c.Add(h.Delta())) {
				closed = append(closed, h)
			}
		}
		walls := 0
		for _, wall := range w.cells[idx] {
			if wall {
				walls++
			}
		}
		if walls != 3 || len(closed) == 0 || w.rng.Float64() >= p {
			continue
		}
		w.openWall(c, closed[w.rng.Intn(len(closed))])
	}
}

// raster converts the cell-level maze into board open flags.
func (w *wilson) raster() [][]bool {
	rows, cols := 2*w.bounds.Rows+1, 2*w.bounds.Cols+1
	open := make([][]bool, rows)
	for r := range open {
		open[r] = make([]bool, cols)
	}
	for idx, cell := range w.cells {
		c := toBoard(w.bounds.CellAt(idx))
		open[c.Row][c.Col] = true
		if !cell[East] {
			open[c.Row][c.Col+1] = true
		}
		if !cell[South] {
			open[c.Row+1][c.Col] = true
		}
	}
	return open
}
