package entity

import (
	"gridsnake/game/types"
)

// Snake is the creature: an ordered run of cells, head first.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	Color         types.Color
	pending       types.Direction // NoDirection when nothing is queued
	growthPending int
}

// NewSnake creates a single-cell snake at the grid centre heading in a random direction
func NewSnake(grid types.Grid, rng types.Rand) *Snake {
	s := &Snake{Color: types.SnakeColor}
	s.Reset(grid, rng)
	return s
}

// Reset reinitialises the snake in place, whatever state it was in
func (s *Snake) Reset(grid types.Grid, rng types.Rand) {
	s.Body = []types.Point{grid.Center()}
	s.Direction = types.RandomDirection(rng)
	s.pending = types.NoDirection
	s.growthPending = 0
}

// Head returns the front cell
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Len returns the number of occupied cells
func (s *Snake) Len() int {
	return len(s.Body)
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Pending returns the queued direction, NoDirection if none
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// GrowthPending returns the number of tail extensions not yet materialised
func (s *Snake) GrowthPending() int {
	return s.growthPending
}

// RequestDirection queues d for the next Advance. A reversal of the current
// direction is dropped silently.
func (s *Snake) RequestDirection(d types.Direction) {
	if !d.Valid() || d == s.Direction.Opposite() {
		return
	}
	s.pending = d
}

// Grow schedules one extra cell; it shows up on the next Advance
func (s *Snake) Grow() {
	s.growthPending++
}

// Advance moves the snake one cell. The pending direction is resolved first,
// exactly once, so a turn and the step it causes land in the same tick.
func (s *Snake) Advance(grid types.Grid) {
	if s.pending != types.NoDirection {
		s.Direction = s.pending
		s.pending = types.NoDirection
	}

	newHead := grid.Wrap(s.Head().Add(s.Direction))

	// Insert new head
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	// Keep the tail while growing
	if s.growthPending > 0 {
		s.growthPending--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// IsSelfColliding reports whether the head sits on any other body cell
func (s *Snake) IsSelfColliding() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Render paints the body, head last so it stays on top
func (s *Snake) Render(surface types.Surface) {
	for i := len(s.Body) - 1; i >= 0; i-- {
		surface.FillCell(s.Body[i], s.Color)
		surface.OutlineCell(s.Body[i], types.CellBorder)
	}
}
