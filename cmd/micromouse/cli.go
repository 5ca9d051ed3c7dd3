package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/grid"
	"github.com/katalvlaran/micromouse/sim"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// cliConfig is everything the command line decided.
type cliConfig struct {
	ScenarioPath string
	BoardPath    string
	Rows, Cols   int
	Braid        float64
	Drivers      []string
	Heading      string
	Reversal     string
	Order        string
	MaxTicks     int
	Seed         int64
	LogLevel     string
	LogFormat    string
	ShowBoard    bool
	ShowCommands bool
}

// parseArgs processes command-line arguments over defaults taken from the
// environment. It returns the config, whether the program should exit cleanly
// (help or nothing to do), or an ExitError.
func parseArgs(args []string, output io.Writer, defaults config.Settings) (*cliConfig, bool, error) {
	fs := flag.NewFlagSet("micromouse", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
micromouse - replay maze-solving drivers on text or generated boards.

Usage:
  micromouse [options] [SCENARIO.hcl]

Arguments:
  SCENARIO.hcl
    HCL file with one or more run blocks. When given, board flags are ignored.

Options:
`)
		fs.PrintDefaults()
	}

	cfg := &cliConfig{}
	fs.StringVar(&cfg.BoardPath, "board", "", "Path to a text board ('S' start, 'G' goal, '|', '+', '-', '#' walls).")
	fs.IntVar(&cfg.Rows, "rows", 0, "Generate a maze with this many cell rows (with -cols).")
	fs.IntVar(&cfg.Cols, "cols", 0, "Generate a maze with this many cell columns (with -rows).")
	fs.Float64Var(&cfg.Braid, "braid", 0, "Probability of opening an extra wall at each dead end of a generated maze.")
	driverFlag := fs.String("driver", "all", "Driver name or 'all'. One of: "+strings.Join(sim.DriverNames(), ", ")+".")
	fs.StringVar(&cfg.Heading, "heading", "N", "Initial heading: N, E, S or W.")
	fs.StringVar(&cfg.Reversal, "reversal", "clockwise", "Direction of 180° turns: 'clockwise' or 'counter_clockwise'.")
	fs.StringVar(&cfg.Order, "order", "row_major", "Exploration tie-break: 'row_major' or 'column_major'.")
	fs.IntVar(&cfg.MaxTicks, "max-ticks", defaults.MaxTicks, "Tick budget per run.")
	fs.Int64Var(&cfg.Seed, "seed", defaults.Seed, "Seed for the random driver and generated mazes.")
	fs.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&cfg.LogFormat, "log-format", defaults.LogFormat, "Log output format: 'text' or 'json'.")
	fs.BoolVar(&cfg.ShowBoard, "show-board", false, "Print the board with the cells the robot occupied.")
	fs.BoolVar(&cfg.ShowCommands, "show-commands", false, "Print the compiled command string of planned drivers.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		cfg.ScenarioPath = fs.Arg(0)
	}

	if cfg.ScenarioPath == "" && cfg.BoardPath == "" && cfg.Rows == 0 && cfg.Cols == 0 {
		fs.Usage()
		return nil, true, nil
	}

	if *driverFlag == "all" {
		cfg.Drivers = sim.DriverNames()
	} else {
		cfg.Drivers = strings.Split(*driverFlag, ",")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	settings := config.Settings{
		MaxTicks:  cfg.MaxTicks,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
		BoardsDir: defaults.BoardsDir,
		Seed:      cfg.Seed,
	}
	if err := settings.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg.ScenarioPath == "" && cfg.BoardPath != "" && (cfg.Rows != 0 || cfg.Cols != 0) {
		return nil, false, &ExitError{Code: 2, Message: "use either -board or -rows/-cols, not both"}
	}
	return cfg, false, nil
}

// scenarios expands the flag-driven configuration into one run per driver.
func (c *cliConfig) scenarios() ([]config.Scenario, error) {
	heading, err := grid.ParseHeading(c.Heading)
	if err != nil {
		return nil, err
	}
	reversal, err := config.ParseReversal(c.Reversal)
	if err != nil {
		return nil, err
	}
	order, err := config.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}

	base := config.Scenario{
		Heading:  heading,
		Reversal: reversal,
		Order:    order,
		MaxTicks: c.MaxTicks,
		Seed:     c.Seed,
	}
	if c.BoardPath != "" {
		base.Name = c.BoardPath
		base.BoardPath = c.BoardPath
	} else {
		if c.Braid < 0 || c.Braid > 1 {
			return nil, fmt.Errorf("%w: braid %v outside [0,1]", config.ErrBadValue, c.Braid)
		}
		base.Name = fmt.Sprintf("wilson %dx%d seed %d", c.Rows, c.Cols, c.Seed)
		base.Generate = &config.GenerateSpec{Rows: c.Rows, Cols: c.Cols, Seed: c.Seed, Braid: c.Braid}
	}

	out := make([]config.Scenario, 0, len(c.Drivers))
	for _, d := range c.Drivers {
		sc := base
		sc.Driver = strings.TrimSpace(d)
		if _, err := sim.NewDriver(sc.Driver, sim.DriverOptions{}); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
