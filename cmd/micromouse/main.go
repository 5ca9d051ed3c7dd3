// Command micromouse replays maze-solving drivers and prints a status report
// for each run.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/micromouse/config"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/grid"
	"github.com/katalvlaran/micromouse/sim"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic: reports go to outW, logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	cfg, shouldExit, err := parseArgs(args, outW, settings)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	var runs []config.Scenario
	if cfg.ScenarioPath != "" {
		runs, err = config.LoadScenarios(ctx, cfg.ScenarioPath, settings)
	} else {
		runs, err = cfg.scenarios()
	}
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	failed := 0
	for _, sc := range runs {
		ok, err := replay(ctx, outW, sc, cfg)
		if err != nil {
			return fmt.Errorf("run %q (%s): %w", sc.Name, sc.Driver, err)
		}
		if !ok {
			failed++
		}
	}
	logger.Info("all runs finished", "runs", len(runs), "failed", failed)
	return nil
}

// replay runs one scenario and writes its report. ok is false when the robot
// did not reach the goal.
func replay(ctx context.Context, outW io.Writer, sc config.Scenario, cfg *cliConfig) (bool, error) {
	var trail map[grid.Cell]bool
	var extra []sim.Option
	if cfg.ShowBoard {
		trail = make(map[grid.Cell]bool)
		extra = append(extra, sim.WithOnTick(func(_ int, r *sim.Robot) {
			trail[r.Pose.Position] = true
		}))
	}

	em, board, err := sc.Emulator(extra...)
	if err != nil {
		return false, err
	}
	rep, err := em.Run(ctx)
	if err != nil {
		return false, err
	}

	bw := bufio.NewWriter(outW)
	fmt.Fprintf(bw, "\n--- %s | %s ---\n", sc.Name, sc.Driver)
	rep.WriteTo(bw)
	if cfg.ShowCommands {
		if p, ok := em.Driver().(*sim.Planned); ok {
			fmt.Fprintf(bw, "Commands: %s\n", p.Commands())
		}
	}
	if cfg.ShowBoard {
		bw.WriteString(board.Render(func(c grid.Cell) rune {
			if trail[c] {
				return '.'
			}
			return 0
		}))
	}
	// bufio.Writer keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}
	return rep.Outcome == sim.OutcomeSuccess, nil
}
