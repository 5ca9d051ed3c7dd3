// Package explore implements a frontier explorer that discovers an unknown
// grid maze one cell at a time and then plans the shortest known route to the goal.
//
// The explorer owns two grow-only structures for the lifetime of one run:
//
//	– PartialMap: per-cell knowledge (Unknown, Open, Blocked, Goal), refined
//	  only by sensing the four orthogonal neighbours of the current cell.
//	– VisitedSet: the cells physically occupied so far.
//
// A run is a small state machine:
//
//	Sensing → Selecting → Traveling → Sensing … → Done
//
// Selecting runs astar.Search from the current cell to every known, passable,
// unvisited cell and keeps the shortest path. Ties are broken by scan order
// (TargetOrder, row-major by default). Traveling walks that path, sensing at
// every new cell. When no candidate remains reachable the run is Done.
//
// Termination: every Traveling phase adds at least one cell to VisitedSet and
// the reachable set is finite, so a run needs at most (open cells) phases.
// After Done the VisitedSet equals the set of cells reachable from the start.
//
// If the goal was observed, a final astar.Search over the resolved PartialMap
// yields Result.Route; Plan compiles it into a command.Sequence. A goal that is
// never observed is a normal outcome reported as ErrGoalUnreachable.
//
// Complexity:
//
//	– Time:  O(P · C · V log V) worst case, P phases, C candidates per phase,
//	         V known cells; Manhattan pruning skips most searches in practice.
//	– Space: O(V) for the map and the visited set.
package explore
