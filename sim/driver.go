package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/micromouse/astar"
	"github.com/katalvlaran/micromouse/command"
	"github.com/katalvlaran/micromouse/ctxlog"
	"github.com/katalvlaran/micromouse/explore"
	"github.com/katalvlaran/micromouse/grid"
)

// Driver decides the robot's action for one tick.
type Driver interface {
	// Name identifies the driver in reports and logs.
	Name() string

	// Step performs at most a few commands on r. A non-nil error aborts the replay.
	Step(ctx context.Context, r *Robot, b *grid.Board) error
}

// Resetter is implemented by drivers that keep state between ticks.
// Emulator.Run calls Reset before the first tick of every run.
type Resetter interface {
	Reset()
}

// DriverOptions carries the policy knobs NewDriver forwards to the drivers
// that use them. The zero value is valid.
type DriverOptions struct {
	// Seed feeds RandomWalk.
	Seed int64

	// Reversal resolves 180° turns in planned routes.
	Reversal command.Reversal

	// Order breaks ties between exploration targets.
	Order explore.TargetOrder
}

// NewDriver builds the driver registered under name.
func NewDriver(name string, o DriverOptions) (Driver, error) {
	switch name {
	case DriverRightHand:
		return &WallFollower{Hand: RightHand}, nil
	case DriverLeftHand:
		return &WallFollower{Hand: LeftHand}, nil
	case DriverRandom:
		return NewRandomWalk(o.Seed), nil
	case DriverAStar:
		return &Planned{Reversal: o.Reversal}, nil
	case DriverExplorer:
		return &Planned{
			Explore:  true,
			Reversal: o.Reversal,
			Options:  []explore.Option{explore.WithTargetOrder(o.Order)},
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
}

// WallFollower prefers turning toward Hand, then straight ahead, and
// otherwise rotates away from Hand in place.
type WallFollower struct {
	Hand Hand
}

func (w *WallFollower) Name() string {
	if w.Hand == LeftHand {
		return DriverLeftHand
	}
	return DriverRightHand
}

func (w *WallFollower) Step(_ context.Context, r *Robot, b *grid.Board) error {
	toward, away, canToward := command.TurnRight, command.TurnLeft, r.canRight(b)
	if w.Hand == LeftHand {
		toward, away, canToward = command.TurnLeft, command.TurnRight, r.canLeft(b)
	}
	switch {
	case canToward:
		r.Execute(toward, b)
		r.Execute(command.Forward, b)
	case r.canForward(b):
		r.Execute(command.Forward, b)
	default:
		r.Execute(away, b)
	}
	return nil
}

// RandomWalk moves in a uniformly chosen open direction among forward, left
// and right. In a dead end it turns around.
type RandomWalk struct {
	seed int64
	rng  *rand.Rand
}

// NewRandomWalk returns a RandomWalk with a deterministic source.
func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Reset rewinds the source to its seed so every run replays the same walk.
func (w *RandomWalk) Reset() { w.rng = rand.New(rand.NewSource(w.seed)) }

func (*RandomWalk) Name() string { return DriverRandom }

func (w *RandomWalk) Step(_ context.Context, r *Robot, b *grid.Board) error {
	choices := make([]command.Sequence, 0, 3)
	if r.canForward(b) {
		choices = append(choices, command.Sequence{command.Forward})
	}
	if r.canLeft(b) {
		choices = append(choices, command.Sequence{command.TurnLeft, command.Forward})
	}
	if r.canRight(b) {
		choices = append(choices, command.Sequence{command.TurnRight, command.Forward})
	}
	if len(choices) == 0 {
		r.ExecuteAll(command.Sequence{command.TurnRight, command.TurnRight}, b)
		return nil
	}
	r.ExecuteAll(choices[w.rng.Intn(len(choices))], b)
	return nil
}

// Planned compiles a complete route on its first Step and then replays one
// command per tick. With Explore unset the route comes from a single A* search
// over the whole board; with Explore set the frontier explorer discovers the
// maze first and the route is the shortest known path. If no route exists the
// driver idles.
type Planned struct {
	Explore bool

	// Reversal resolves 180° turns when compiling the route.
	Reversal command.Reversal

	// Options are handed to the explorer when Explore is set.
	Options []explore.Option

	planned bool
	seq     command.Sequence
	next    int
	result  *explore.Result
}

func (p *Planned) Name() string {
	if p.Explore {
		return DriverExplorer
	}
	return DriverAStar
}

// Commands returns the compiled route, nil before the first Step.
func (p *Planned) Commands() command.Sequence { return p.seq }

// Exploration returns the explorer result, nil unless Explore is set and the
// plan has been made.
func (p *Planned) Exploration() *explore.Result { return p.result }

// Reset discards the route so the next Step plans again from the robot's pose.
func (p *Planned) Reset() {
	p.planned = false
	p.seq = nil
	p.next = 0
	p.result = nil
}

func (p *Planned) Step(ctx context.Context, r *Robot, b *grid.Board) error {
	if !p.planned {
		if err := p.plan(ctx, r, b); err != nil {
			return err
		}
		p.planned = true
	}
	if p.next >= len(p.seq) {
		return nil
	}
	r.Execute(p.seq[p.next], b)
	p.next++
	return nil
}

func (p *Planned) plan(ctx context.Context, r *Robot, b *grid.Board) error {
	log := ctxlog.FromContext(ctx)
	from := r.Pose.Position

	if p.Explore {
		opts := append([]explore.Option{explore.WithReversal(p.Reversal)}, p.Options...)
		seq, res, err := explore.Plan(ctx, startAt{Board: b, start: from}, r.Pose.Heading, opts...)
		p.result = res
		if errors.Is(err, explore.ErrGoalUnreachable) {
			log.Warn("planned driver idle: goal never observed", "visited", res.Visited.Len())
			return nil
		}
		if err != nil {
			return fmt.Errorf("sim: explore from %v: %w", from, err)
		}
		p.seq = seq
		return nil
	}

	path, err := astar.Search(b.Passable, b.Bounds(), from, b.Goal())
	if errors.Is(err, astar.ErrNoPath) {
		log.Warn("planned driver idle: no path", "from", from, "goal", b.Goal())
		return nil
	}
	if err != nil {
		return fmt.Errorf("sim: route from %v: %w", from, err)
	}
	p.seq, err = command.Compile(path, r.Pose.Heading, command.WithReversal(p.Reversal))
	return err
}

// startAt presents a board to the explorer with the robot's cell as start.
type startAt struct {
	*grid.Board
	start grid.Cell
}

func (s startAt) Start() grid.Cell { return s.start }
