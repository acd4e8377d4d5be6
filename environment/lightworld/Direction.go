package lightworld

import (
	"errors"
	"fmt"
)

// Direction enumerates the eight compass directions in which the agent
// can move. The integer value of each Direction is its discrete action
// encoding.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of legal compass directions
const NumDirections int = 8

// ErrInvalidAction is returned by Step when an action does not encode
// one of the eight compass directions
var ErrInvalidAction = errors.New("action does not denote a compass direction")

// offsets is the single source of truth mapping each Direction to the
// change in (x, y) from moving one step in that direction. Diagonal
// moves change both coordinates by one unit.
var offsets = [NumDirections][2]float64{
	North:     {0.0, 1.0},
	NorthEast: {1.0, 1.0},
	East:      {1.0, 0.0},
	SouthEast: {1.0, -1.0},
	South:     {0.0, -1.0},
	SouthWest: {-1.0, -1.0},
	West:      {-1.0, 0.0},
	NorthWest: {-1.0, 1.0},
}

// FromAction converts a discrete action scalar to a Direction. Actions
// outside {0, 1, ..., 7} or with a fractional part result in an error
// wrapping ErrInvalidAction.
func FromAction(action float64) (Direction, error) {
	a := int(action)
	if float64(a) != action || a < 0 || a >= NumDirections {
		return 0, fmt.Errorf("%w: %v is not in (0, 1, ..., %d)",
			ErrInvalidAction, action, NumDirections-1)
	}
	return Direction(a), nil
}

// Offset returns the change in the (x, y) coordinates of the agent from
// moving one step in direction d
func (d Direction) Offset() (dx, dy float64) {
	return offsets[d][0], offsets[d][1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
