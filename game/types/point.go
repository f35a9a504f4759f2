package types

import "fmt"

// Point is a cell on the grid. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p offset by the unit vector of d
func (p Point) Add(d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Set is a lookup of occupied cells
type Set map[Point]struct{}

// NewSet builds a set from a list of cells
func NewSet(points []Point) Set {
	s := make(Set, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set
func (s Set) Has(p Point) bool {
	_, ok := s[p]
	return ok
}
