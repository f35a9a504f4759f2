package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a value outside the four movement
// directions reaches the input boundary.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is a cardinal movement direction
type Direction int

const (
	NoDirection Direction = iota // 0, never a movement direction
	Up                           // 1
	Right                        // 2
	Down                         // 3
	Left                         // 4
)

// Directions lists the four movement directions in a stable order
var Directions = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four movement directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Delta converts a Direction into a unit displacement vector
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse of d. Up/Down and Left/Right pair up.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return NoDirection
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps a name (case-insensitive) to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// RandomDirection picks one of the four movement directions
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
