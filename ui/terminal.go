package ui

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Each grid cell is two terminal columns wide so the board looks square
const (
	cellColumns = 2
	cellRune    = '█'
	eventBuffer = 100
)

// Terminal is the tcell frontend
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	quit   chan struct{}

	originX, originY int
}

// NewTerminal takes over the controlling terminal
func NewTerminal(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, grid)
}

// NewTerminalWithScreen runs the frontend on an existing screen, which it initialises and owns
func NewTerminalWithScreen(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		// Room for the border
		originX: 1,
		originY: 1,
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			select {
			case t.events <- ev:
			case <-t.quit:
				return
			}
		}
	}()
	return t, nil
}

func (t *Terminal) style(c types.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.NewRGBColor(int32(types.Background.R), int32(types.Background.G), int32(types.Background.B)))
}

// FillCell implements types.Surface
func (t *Terminal) FillCell(p types.Point, c types.Color) {
	x := t.originX + p.X*cellColumns
	y := t.originY + p.Y
	for i := 0; i < cellColumns; i++ {
		t.screen.SetContent(x+i, y, cellRune, nil, t.style(c))
	}
}

// OutlineCell implements types.Surface. A character cell has no room for an
// outline, so it is not drawn.
func (t *Terminal) OutlineCell(types.Point, types.Color) {}

// Poll drains the events gathered by the reader goroutine
func (t *Terminal) Poll() ([]types.Direction, bool) {
	var dirs []types.Direction
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return dirs, true
				}
				if d, ok := keyDirection(ev); ok {
					dirs = append(dirs, d)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return dirs, false
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// keyDirection accepts arrows, WASD and hjkl
func keyDirection(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return types.Up, true
		case 's', 'j':
			return types.Down, true
		case 'a', 'h':
			return types.Left, true
		case 'd', 'l':
			return types.Right, true
		}
	}
	return types.NoDirection, false
}

// Draw repaints the whole board
func (t *Terminal) Draw(g *game.Game, last game.TickResult) {
	t.screen.Clear()
	t.drawBorder()
	Paint(t, g)
	t.screen.Show()
}

func (t *Terminal) drawBorder() {
	style := t.style(types.CellBorder)
	left, top := t.originX-1, t.originY-1
	right := t.originX + t.grid.Width*cellColumns
	bottom := t.originY + t.grid.Height

	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// Close hands the terminal back
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}
