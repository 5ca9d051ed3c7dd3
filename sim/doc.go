// Package sim replays a driver against a maze, one tick at a time.
//
// A Robot carries a pose and move counters and executes single commands
// against a *grid.Board: turns always succeed, Forward only moves into a
// passable cell. A Driver decides what the robot does on each tick. The
// drivers are:
//
//	– WallFollower: keeps a hand on the left or right wall.
//	– RandomWalk:   picks uniformly among open relative directions.
//	– Planned:      compiles a route once (with full knowledge, or by running
//	                the frontier explorer first) and replays one command per tick.
//
// The Emulator stops when the robot stands on the goal (OutcomeSuccess) or
// when MaxTicks ticks have passed (OutcomeLoop). Run returns a Report of plain
// data that can render itself with WriteTo.
package sim
