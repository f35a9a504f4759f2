package ui

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Headless is a frontend with no display. It replays a fixed input script,
// one entry per frame, and records what it was asked to draw.
type Headless struct {
	script       []types.Direction
	Frames       int
	Terminations int
	Cells        []types.Point // Snake body as of the last Draw
	Food         types.Point
}

// NewHeadless replays script; NoDirection entries are frames without input
func NewHeadless(script []types.Direction) *Headless {
	return &Headless{script: script}
}

func (h *Headless) Poll() ([]types.Direction, bool) {
	if len(h.script) == 0 {
		return nil, false
	}
	d := h.script[0]
	h.script = h.script[1:]
	if d == types.NoDirection {
		return nil, false
	}
	return []types.Direction{d}, false
}

func (h *Headless) Draw(g *game.Game, last game.TickResult) {
	h.Frames++
	if last.Terminated {
		h.Terminations++
	}
	h.Cells = g.GetSnake().Cells()
	h.Food = g.GetFood().Position()
}

func (h *Headless) Close() {}
