package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBoard indicates that an Emulator was built without a board.
	ErrNilBoard = errors.New("sim: board is nil")

	// ErrNilDriver indicates that an Emulator was built without a driver.
	ErrNilDriver = errors.New("sim: driver is nil")

	// ErrUnknownDriver is returned by NewDriver for an unrecognised name.
	ErrUnknownDriver = errors.New("sim: unknown driver")

	// ErrOptionViolation is returned by Run when an invalid Option was supplied.
	ErrOptionViolation = errors.New("sim: invalid option supplied")
)

// DefaultMaxTicks bounds a replay when no WithMaxTicks option is given.
const DefaultMaxTicks = 1000

// Outcome is the verdict of one replay.
type Outcome uint8

const (
	// OutcomeSuccess means the robot reached the goal within the tick budget.
	OutcomeSuccess Outcome = iota
	// OutcomeLoop means the tick budget ran out first.
	OutcomeLoop
)

// String returns the status line used in reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomeLoop:
		return "FAILED (loop)"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Hand selects which wall a WallFollower keeps contact with.
type Hand uint8

const (
	RightHand Hand = iota
	LeftHand
)

func (h Hand) String() string {
	if h == LeftHand {
		return "left"
	}
	return "right"
}

// Driver names accepted by NewDriver.
const (
	DriverRightHand = "right_hand"
	DriverLeftHand  = "left_hand"
	DriverRandom    = "random"
	DriverAStar     = "astar"
	DriverExplorer  = "explorer"
)

// DriverNames lists every name NewDriver accepts, in menu order.
func DriverNames() []string {
	return []string{DriverRightHand, DriverLeftHand, DriverRandom, DriverAStar, DriverExplorer}
}
