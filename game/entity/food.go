package entity

import (
	"gridsnake/game/types"
)

// Food is the target the snake eats to grow
type Food struct {
	position types.Point
	Color    types.Color
}

// NewFood places food on a random cell not in excluded
func NewFood(grid types.Grid, rng types.Rand, excluded types.Set) *Food {
	f := &Food{Color: types.FoodColor}
	f.Relocate(grid, rng, excluded)
	return f
}

// Position returns the occupied cell
func (f *Food) Position() types.Point {
	return f.position
}

// Relocate moves the food to a uniformly random free cell. It tries a bounded
// number of random draws, then picks among the free cells found by a full
// scan. It returns false, leaving the food where it was, when the board has
// no free cell at all.
func (f *Food) Relocate(grid types.Grid, rng types.Rand, excluded types.Set) bool {
	for i := 0; i < types.MaxRelocateAttempts; i++ {
		p := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if !excluded.Has(p) {
			f.position = p
			return true
		}
	}

	var free []types.Point
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !excluded.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	f.position = free[rng.Intn(len(free))]
	return true
}

// Render paints the food cell
func (f *Food) Render(surface types.Surface) {
	surface.FillCell(f.position, f.Color)
	surface.OutlineCell(f.position, types.CellBorder)
}
