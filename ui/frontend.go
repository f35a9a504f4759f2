package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Frontend is what the loop talks to once per frame
type Frontend interface {
	// Poll returns the directions pressed since the last call and whether
	// the player asked to quit
	Poll() (events []types.Direction, quit bool)
	// Draw paints the board; last is the result of the tick run this frame,
	// or the zero TickResult when no tick ran
	Draw(g *game.Game, last game.TickResult)
	Close()
}

// Paint hands every drawable the surface, in order
func Paint(s types.Surface, g *game.Game) {
	for _, d := range g.Drawables() {
		d.Render(s)
	}
}
