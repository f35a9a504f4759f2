// Package desktop is the raylib window frontend.
package desktop

import (
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// keyDirections maps raylib key codes to movement directions
var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// Window is one raylib window the size of the board. It implements ui.Frontend.
type Window struct {
	cellSize int32
	width    int32
	height   int32
}

func NewWindow(cfg game.Config) *Window {
	grid := cfg.Grid()
	w := &Window{
		cellSize: int32(grid.CellSize),
		width:    int32(grid.PixelWidth()),
		height:   int32(grid.PixelHeight()),
	}
	rl.InitWindow(w.width, w.height, "Snake")
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0) // Escape is handled in Poll
	return w
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// FillCell implements types.Surface
func (w *Window) FillCell(p types.Point, c types.Color) {
	rl.DrawRectangle(int32(p.X)*w.cellSize, int32(p.Y)*w.cellSize, w.cellSize, w.cellSize, toRL(c))
}

// OutlineCell implements types.Surface
func (w *Window) OutlineCell(p types.Point, c types.Color) {
	rl.DrawRectangleLines(int32(p.X)*w.cellSize, int32(p.Y)*w.cellSize, w.cellSize, w.cellSize, toRL(c))
}

// Poll drains raylib's key queue
func (w *Window) Poll() ([]types.Direction, bool) {
	if rl.WindowShouldClose() {
		return nil, true
	}
	var events []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeyEscape, rl.KeyQ:
			return events, true
		}
		if d, ok := keyDirections[key]; ok {
			events = append(events, d)
		}
	}
	return events, false
}

// Draw paints the board. The screen is wiped on a run termination anyway
// since every frame starts from the background.
func (w *Window) Draw(g *game.Game, last game.TickResult) {
	rl.BeginDrawing()
	rl.ClearBackground(toRL(types.Background))
	ui.Paint(w, g)
	rl.EndDrawing()
}

func (w *Window) Close() {
	rl.CloseWindow()
}
