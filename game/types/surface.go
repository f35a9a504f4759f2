package types

// Rand is the source of uniform random integers the game draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Color is an opaque RGB colour
type Color struct {
	R, G, B uint8
}

// Board colours
var (
	Background = Color{R: 0, G: 0, B: 0}
	CellBorder = Color{R: 93, G: 216, B: 228}
	FoodColor  = Color{R: 255, G: 0, B: 0}
	SnakeColor = Color{R: 0, G: 255, B: 0}
)

// Surface is what a frontend offers to paint grid cells onto
type Surface interface {
	FillCell(p Point, c Color)
	OutlineCell(p Point, c Color)
}

// Drawable is anything on the board that knows how to paint itself.
// There is no default implementation.
type Drawable interface {
	Render(s Surface)
}
