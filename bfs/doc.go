// Package bfs provides breadth-first search over a grid passability predicate,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step distance from a start cell.
//   - Neighbours are expanded in the fixed N, E, S, W order, so the visit
//     sequence and parent tree are fully reproducible.
//   - Supports hooks at two stages: OnEnqueue and OnVisit (OnVisit may abort).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Brute-force reference for the A* implementation on small grids.
//   - Reachable-set computation: which open cells can a mouse ever stand on.
//   - Optimal step counts for comparing drivers in simulation reports.
//
// Complexity (N = reachable cells)
//
//   - Time:   O(N)   (each cell enqueued at most once, 4 neighbours each)
//   - Memory: O(N)
//
// Usage
//
//	res, err := bfs.BFS(board.Passable, board.Bounds(), board.Start())
//	if err != nil {
//		// ErrNilPassable, ErrStartOutOfBounds, ErrOptionViolation or a hook error
//	}
//	path, err := res.PathTo(board.Goal())
//
// Errors
//
//   - ErrNilPassable          if the predicate is nil.
//   - ErrStartOutOfBounds     if the start cell lies outside bounds.
//   - ErrOptionViolation      if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrUnreachable          from PathTo when the destination was never reached.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
