package types

// Grid represents the game grid dimensions
type Grid struct {
	CellSize int // Pixels per cell edge
	Width    int // Columns
	Height   int // Rows
}

// Game constants
const (
	MaxRelocateAttempts = 32 // Random draws before food relocation falls back to a scan
)

// NewGrid builds a grid from pixel bounds, the way the board is laid out on screen.
func NewGrid(pixelWidth, pixelHeight, cellSize int) Grid {
	return Grid{
		CellSize: cellSize,
		Width:    pixelWidth / cellSize,
		Height:   pixelHeight / cellSize,
	}
}

// PixelWidth returns the board width in pixels
func (g Grid) PixelWidth() int {
	return g.Width * g.CellSize
}

// PixelHeight returns the board height in pixels
func (g Grid) PixelHeight() int {
	return g.Height * g.CellSize
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell the snake starts from
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds both axes of p back onto the board independently
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Wrap returns coord modulo extent, always in [0, extent).
func Wrap(coord, extent int) int {
	return ((coord % extent) + extent) % extent
}
