// Package grid models the immutable maze a mouse runs in: a rectangular
// passability oracle with a designated start and goal cell.
//
// What:
//
//   - Cell, Bounds, Heading and Pose value types shared by every other package.
//   - Board wraps a rectangular [][]bool of open flags plus start and goal.
//   - Parse/Load read the text board format ('S' start, 'G' goal, '+', '-', '|'
//     and '#' walls, anything else open).
//   - Generate builds a perfect maze with Wilson's loop-erased random walk and
//     rasterises it into a Board.
//
// Headings:
//
//	North=(-1,0)  East=(0,1)  South=(1,0)  West=(0,-1)
//
// The cyclic order N → E → S → W is fixed; Right() steps clockwise and Left()
// counter-clockwise around it.
//
// Complexity:
//
//   - NewBoard, Parse: O(R×C) time and memory.
//   - Passable, IsGoal, Neighbors: O(1).
//   - Generate: expected O(R×C×log(R×C)) walk steps for Wilson's algorithm.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input slices.
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrStartBlocked, ErrGoalBlocked.
//   - ErrMissingStart, ErrMissingGoal, ErrDuplicateStart, ErrDuplicateGoal: text boards.
//   - ErrBadDimensions: Generate called with unusable sizes.
//
// A Board never changes after construction; every other component only reads it.
package grid
