package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/explore"
	"github.com/katalvlaran/micromouse/grid"
	"github.com/katalvlaran/micromouse/sim"
)

var (
	// ErrNoRuns indicates a scenario file without run blocks.
	ErrNoRuns = errors.New("config: scenario defines no runs")

	// ErrDuplicateRun indicates two run blocks with the same label.
	ErrDuplicateRun = errors.New("config: duplicate run name")

	// ErrBoardSource indicates a run that sets both or neither of board and generate.
	ErrBoardSource = errors.New("config: run needs exactly one of board or generate")

	// ErrBadValue indicates an attribute value outside its allowed set.
	ErrBadValue = errors.New("config: invalid value")
)

// Scenario is one fully resolved run.
type Scenario struct {
	Name string

	// BoardPath is set for file boards; Generate for generated ones.
	BoardPath string
	Generate  *GenerateSpec

	Driver   string
	Heading  grid.Heading
	Reversal command.Reversal
	Order    explore.TargetOrder
	MaxTicks int
	Seed     int64
}

// GenerateSpec describes a Wilson maze in maze-cell units.
type GenerateSpec struct {
	Rows, Cols int
	Seed       int64
	Braid      float64
}

// hclScenarioFile is the top-level decoding target.
type hclScenarioFile struct {
	Runs []*hclRun `hcl:"run,block"`
}

type hclRun struct {
	Name     string       `hcl:"name,label"`
	Board    *string      `hcl:"board,optional"`
	Driver   string       `hcl:"driver"`
	Heading  *string      `hcl:"heading,optional"`
	Reversal *string      `hcl:"reversal,optional"`
	Order    *string      `hcl:"order,optional"`
	MaxTicks *int         `hcl:"max_ticks,optional"`
	Seed     *int64       `hcl:"seed,optional"`
	Generate *hclGenerate `hcl:"generate,block"`
}

type hclGenerate struct {
	Rows  int      `hcl:"rows"`
	Cols  int      `hcl:"cols"`
	Seed  *int64   `hcl:"seed,optional"`
	Braid *float64 `hcl:"braid,optional"`
}

var (
	reversals = map[string]command.Reversal{
		command.Clockwise.String():        command.Clockwise,
		command.CounterClockwise.String(): command.CounterClockwise,
	}
	orders = map[string]explore.TargetOrder{
		explore.RowMajor.String():    explore.RowMajor,
		explore.ColumnMajor.String(): explore.ColumnMajor,
	}
)

// ParseReversal accepts "clockwise" or "counter_clockwise".
func ParseReversal(s string) (command.Reversal, error) {
	rev, ok := reversals[s]
	if !ok {
		return 0, fmt.Errorf("%w: reversal %q", ErrBadValue, s)
	}
	return rev, nil
}

// ParseOrder accepts "row_major" or "column_major".
func ParseOrder(s string) (explore.TargetOrder, error) {
	o, ok := orders[s]
	if !ok {
		return 0, fmt.Errorf("%w: order %q", ErrBadValue, s)
	}
	return o, nil
}

// EvalContext exposes the symbolic names scenario files may reference.
func EvalContext() *hcl.EvalContext {
	drivers := map[string]cty.Value{}
	for _, name := range sim.DriverNames() {
		drivers[name] = cty.StringVal(name)
	}
	headings := map[string]cty.Value{
		"north": cty.StringVal(grid.North.String()),
		"east":  cty.StringVal(grid.East.String()),
		"south": cty.StringVal(grid.South.String()),
		"west":  cty.StringVal(grid.West.String()),
	}
	revs := map[string]cty.Value{}
	for name := range reversals {
		revs[name] = cty.StringVal(name)
	}
	ords := map[string]cty.Value{}
	for name := range orders {
		ords[name] = cty.StringVal(name)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"driver":   cty.ObjectVal(drivers),
			"heading":  cty.ObjectVal(headings),
			"reversal": cty.ObjectVal(revs),
			"order":    cty.ObjectVal(ords),
		},
	}
}

// LoadScenarios parses the HCL file at path. Relative board paths are resolved
// against defaults.BoardsDir, or the file's own directory when that is ".".
func LoadScenarios(ctx context.Context, path string, defaults Settings) ([]Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding scenario file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read scenario %s: %w", path, err)
	}
	if defaults.BoardsDir == "" || defaults.BoardsDir == "." {
		defaults.BoardsDir = filepath.Dir(path)
	}
	runs, err := ParseScenarios(src, path, defaults)
	if err != nil {
		return nil, err
	}
	logger.Debug("Successfully decoded scenario file.", "path", path, "runs_found", len(runs))
	return runs, nil
}

// ParseScenarios decodes HCL source. filename is used in diagnostics only.
func ParseScenarios(src []byte, filename string, defaults Settings) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}

	var decoded hclScenarioFile
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}
	if len(decoded.Runs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, filename)
	}

	seen := make(map[string]bool, len(decoded.Runs))
	out := make([]Scenario, 0, len(decoded.Runs))
	for _, r := range decoded.Runs {
		if seen[r.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateRun, r.Name, filename)
		}
		seen[r.Name] = true

		sc, err := r.resolve(defaults)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", r.Name, err)
		}
		out = append(out, sc)
	}
	return out, nil
}

func (r *hclRun) resolve(d Settings) (Scenario, error) {
	sc := Scenario{
		Name:     r.Name,
		Driver:   r.Driver,
		Heading:  grid.North,
		MaxTicks: d.MaxTicks,
		Seed:     d.Seed,
	}
	if _, err := sim.NewDriver(r.Driver, sim.DriverOptions{}); err != nil {
		return Scenario{}, fmt.Errorf("%w: driver: %w", ErrBadValue, err)
	}

	if (r.Board == nil) == (r.Generate == nil) {
		return Scenario{}, ErrBoardSource
	}
	if r.Board != nil {
		sc.BoardPath = *r.Board
		if !filepath.IsAbs(sc.BoardPath) && d.BoardsDir != "" {
			sc.BoardPath = filepath.Join(d.BoardsDir, sc.BoardPath)
		}
	}

	if r.Seed != nil {
		sc.Seed = *r.Seed
	}
	if r.Generate != nil {
		g := &GenerateSpec{Rows: r.Generate.Rows, Cols: r.Generate.Cols, Seed: sc.Seed}
		if r.Generate.Seed != nil {
			g.Seed = *r.Generate.Seed
		}
		if r.Generate.Braid != nil {
			g.Braid = *r.Generate.Braid
		}
		if g.Braid < 0 || g.Braid > 1 {
			return Scenario{}, fmt.Errorf("%w: braid %v outside [0,1]", ErrBadValue, g.Braid)
		}
		if min(g.Rows, g.Cols) <= 0 || max(g.Rows, g.Cols) > grid.MaxGenerateDimension {
			return Scenario{}, fmt.Errorf("%w: generate %dx%d", ErrBadValue, g.Rows, g.Cols)
		}
		sc.Generate = g
	}

	if r.Heading != nil {
		h, err := grid.ParseHeading(*r.Heading)
		if err != nil {
			return Scenario{}, fmt.Errorf("%w: heading: %w", ErrBadValue, err)
		}
		sc.Heading = h
	}
	if r.Reversal != nil {
		rev, err := ParseReversal(*r.Reversal)
		if err != nil {
			return Scenario{}, err
		}
		sc.Reversal = rev
	}
	if r.Order != nil {
		o, err := ParseOrder(*r.Order)
		if err != nil {
			return Scenario{}, err
		}
		sc.Order = o
	}
	if r.MaxTicks != nil {
		if *r.MaxTicks <= 0 {
			return Scenario{}, fmt.Errorf("%w: max_ticks %d must be positive", ErrBadValue, *r.MaxTicks)
		}
		sc.MaxTicks = *r.MaxTicks
	}
	return sc, nil
}

// Board loads or generates the scenario's maze.
func (s Scenario) Board() (*grid.Board, error) {
	if s.Generate != nil {
		g := s.Generate
		return grid.Generate(g.Rows, g.Cols, grid.WithSeed(g.Seed), grid.WithBraid(g.Braid))
	}
	return grid.Load(s.BoardPath)
}

// Emulator builds the board and driver and binds them into a ready emulator.
// extra options are applied after the scenario's own.
func (s Scenario) Emulator(extra ...sim.Option) (*sim.Emulator, *grid.Board, error) {
	board, err := s.Board()
	if err != nil {
		return nil, nil, err
	}
	driver, err := sim.NewDriver(s.Driver, sim.DriverOptions{Seed: s.Seed, Reversal: s.Reversal, Order: s.Order})
	if err != nil {
		return nil, nil, err
	}
	opts := append([]sim.Option{sim.WithMaxTicks(s.MaxTicks), sim.WithHeading(s.Heading)}, extra...)
	return sim.NewEmulator(board, driver, opts...), board, nil
}
