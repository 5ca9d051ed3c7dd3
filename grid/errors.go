package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("grid: start cell out of bounds")
	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("grid: goal cell out of bounds")
	// ErrStartBlocked indicates the start cell is a wall.
	ErrStartBlocked = errors.New("grid: start cell is blocked")
	// ErrGoalBlocked indicates the goal cell is a wall.
	ErrGoalBlocked = errors.New("grid: goal cell is blocked")

	// ErrMissingStart indicates a text board without an 'S' marker.
	ErrMissingStart = errors.New("grid: board has no start marker 'S'")
	// ErrMissingGoal indicates a text board without a 'G' marker.
	ErrMissingGoal = errors.New("grid: board has no goal marker 'G'")
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = errors.New("grid: board has more than one start marker")
	// ErrDuplicateGoal indicates more than one 'G' marker.
	ErrDuplicateGoal = errors.New("grid: board has more than one goal marker")

	// ErrBadDimensions indicates Generate was asked for an unusable maze size.
	ErrBadDimensions = errors.New("grid: invalid maze dimensions")
	// ErrBadHeading indicates an unrecognised heading name.
	ErrBadHeading = errors.New("grid: unknown heading")
)
