// Package micromouse is an exploration and path-planning engine for a grid
// maze robot, plus the tooling to replay it.
//
// The mouse starts in a maze it does not know. It senses its four neighbours,
// walks to the nearest unexplored cell, and repeats until nothing reachable is
// left. If it ever stood on the goal it plans the shortest known route and
// compiles it into a minimal-turn command string of F (forward), L and R.
//
// Packages, leaves first:
//
//	grid/      Cell, Heading, Pose, the immutable Board, text loader, Wilson generator
//	bfs/       breadth-first reachability and distances (reference and reporting)
//	astar/     shortest path over any passability predicate (Manhattan heuristic)
//	command/   F/L/R commands, the route compiler and replay
//	explore/   PartialMap, VisitedSet and the frontier explorer state machine
//	sim/       Robot, drivers (wall follower, random walk, planned) and the tick loop
//	config/    MICROMOUSE_* settings (.env aware) and HCL scenario files
//	ctxlog/    slog logger carried in context.Context
//
// The micromouse command under cmd/ replays drivers on text boards, generated
// mazes or scenario files and prints a status report per run.
//
// Quick start:
//
//	board, _ := grid.Generate(8, 8, grid.WithSeed(1))
//	seq, res, err := explore.Plan(ctx, board, grid.North)
//	if errors.Is(err, explore.ErrGoalUnreachable) {
//	    // every reachable cell was visited, the goal was never seen
//	}
//	fmt.Println(seq, res.Visited.Len(), res.Steps)
//
// Everything is single-threaded and synchronous. A PartialMap and VisitedSet
// belong to exactly one exploration run.
package micromouse
