package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gridsnake/game/types"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid config")

// SeedEnv overrides a zero seed so a run can be replayed
const SeedEnv = "SNAKE_SEED"

// Board defaults: a 640x480 window cut into 20px cells
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultSpeed        = 10 // Ticks per second
)

// Config is built once at startup and handed to the game and the frontends
type Config struct {
	CellSize int
	Width    int // Columns
	Height   int // Rows
	Speed    int // Ticks per second
	Seed     uint64
}

// DefaultConfig returns the classic 32x24 board
func DefaultConfig() Config {
	grid := types.NewGrid(DefaultScreenWidth, DefaultScreenHeight, DefaultCellSize)
	return Config{
		CellSize: grid.CellSize,
		Width:    grid.Width,
		Height:   grid.Height,
		Speed:    DefaultSpeed,
	}
}

// Validate checks that the board can hold a moving snake
func (c Config) Validate() error {
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 2x2", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Speed < 1 {
		return fmt.Errorf("%w: speed %d", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// Grid returns the board geometry
func (c Config) Grid() types.Grid {
	return types.Grid{CellSize: c.CellSize, Width: c.Width, Height: c.Height}
}

// TickInterval returns the wall-clock time between ticks
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Speed)
}

// ResolveSeed fills a zero seed from SNAKE_SEED, or from the clock
func (c Config) ResolveSeed() (Config, error) {
	if c.Seed != 0 {
		return c, nil
	}
	if s := os.Getenv(SeedEnv); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, SeedEnv, s, err)
		}
		c.Seed = v
		return c, nil
	}
	c.Seed = uint64(time.Now().UnixNano())
	return c, nil
}
