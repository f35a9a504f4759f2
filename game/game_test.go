package game

import (
	"errors"
	"io"
	"log"
	"testing"

	"golang.org/x/exp/rand"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func newTestGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	g, err := New(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// aimAtFood places a single-cell snake one step short of the food
func aimAtFood(g *Game, dir types.Direction) {
	food := g.GetFood().Position()
	start := g.Grid.Wrap(food.Add(dir.Opposite()))
	s := g.GetSnake()
	s.Reset(g.Grid, rand.New(rand.NewSource(1)))
	s.Body = []types.Point{start}
	s.Direction = dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 32 || cfg.Height != 24 || cfg.CellSize != 20 {
		t.Fatalf("unexpected default board %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickInterval().Milliseconds() != 100 {
		t.Fatalf("tick interval = %v", cfg.TickInterval())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *Config)
	}{
		{name: "cell size", edit: func(c *Config) { c.CellSize = 0 }},
		{name: "width", edit: func(c *Config) { c.Width = 1 }},
		{name: "height", edit: func(c *Config) { c.Height = 0 }},
		{name: "speed", edit: func(c *Config) { c.Speed = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.edit(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := New(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("New() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	got, err := cfg.ResolveSeed()
	if err != nil || got.Seed != 99 {
		t.Fatalf("explicit seed: %d, %v", got.Seed, err)
	}

	t.Setenv(SeedEnv, "1234")
	cfg.Seed = 0
	got, err = cfg.ResolveSeed()
	if err != nil || got.Seed != 1234 {
		t.Fatalf("env seed: %d, %v", got.Seed, err)
	}

	t.Setenv(SeedEnv, "not-a-number")
	if _, err := cfg.ResolveSeed(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("bad env seed error = %v", err)
	}
}

func TestNewGameStartsCentred(t *testing.T) {
	g := newTestGame(t, 42)
	s := g.GetSnake()
	if s.Len() != 1 || s.Head() != g.Grid.Center() {
		t.Fatalf("snake starts at %v", s.Body)
	}
	if !s.Direction.Valid() {
		t.Fatalf("initial direction %v", s.Direction)
	}
	if g.GetFood().Position() == s.Head() {
		t.Fatal("food placed under the snake")
	}
}

func TestTickMovesAndWraps(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 31, Y: 12}}
	s.Direction = types.Right
	if g.GetFood().Position() == (types.Point{X: 0, Y: 12}) {
		t.Skip("food sits on the wrap target for this seed")
	}
	res := g.Tick(nil)
	if s.Head() != (types.Point{X: 0, Y: 12}) {
		t.Fatalf("head = %v, want (0,12)", s.Head())
	}
	if res.Tick != 1 || res.Terminated || res.Length != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestTickRejectsReversal(t *testing.T) {
	g := newTestGame(t, 2)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}
	s.Direction = types.Right
	g.Tick([]types.Direction{types.Left})
	if s.Head() != (types.Point{X: 11, Y: 10}) {
		t.Fatalf("head = %v, want (11,10)", s.Head())
	}
}

func TestTickAppliesQueuedInput(t *testing.T) {
	g := newTestGame(t, 3)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 10, Y: 10}}
	s.Direction = types.Right
	if err := g.Input(types.Down); err != nil {
		t.Fatalf("Input: %v", err)
	}
	if err := g.Input(types.Direction(12)); !errors.Is(err, types.ErrInvalidDirection) {
		t.Fatalf("Input(invalid) = %v", err)
	}
	g.Tick(nil)
	if s.Head() != (types.Point{X: 10, Y: 11}) {
		t.Fatalf("head = %v, want (10,11)", s.Head())
	}
}

func TestEatingGrowsOnNextTick(t *testing.T) {
	g := newTestGame(t, 4)
	aimAtFood(g, types.Right)
	food := g.GetFood().Position()

	res := g.Tick(nil)
	if !res.Ate {
		t.Fatalf("expected to eat at %v, head %v", food, g.GetSnake().Head())
	}
	if res.Length != 1 {
		t.Fatalf("growth must be deferred, length = %d", res.Length)
	}
	if g.GetFood().Position() == g.GetSnake().Head() {
		t.Fatal("food relocated under the snake")
	}

	res = g.Tick(nil)
	if res.Length != 2 {
		t.Fatalf("length after next tick = %d, want 2", res.Length)
	}
}

func TestSelfCollisionResetsRun(t *testing.T) {
	g := newTestGame(t, 5)
	s := g.GetSnake()
	s.Body = []types.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 7, Y: 5},
	}
	s.Direction = types.Right
	firstRun := g.GetStateManager().RunID()

	res := g.Tick(nil)
	if !res.Terminated {
		t.Fatalf("expected termination, body %v", s.Body)
	}
	if res.Ate {
		t.Fatal("consumption must not be checked on a terminated tick")
	}
	if s.Len() != 1 || s.Head() != g.Grid.Center() || s.GrowthPending() != 0 || s.Pending() != types.NoDirection {
		t.Fatalf("snake not reset: body %v growth %d pending %v", s.Body, s.GrowthPending(), s.Pending())
	}
	if res.RunID == firstRun || g.GetStateManager().Runs() != 2 {
		t.Fatalf("run not restarted: %v runs %d", res.RunID, g.GetStateManager().Runs())
	}
	if g.GetStateManager().State() != manager.Running {
		t.Fatalf("state = %v, want running", g.GetStateManager().State())
	}
	if g.GetFood().Position() == s.Head() {
		t.Fatal("food left under the reset snake")
	}
}

func TestLongRunInvariants(t *testing.T) {
	g := newTestGame(t, 6)
	rng := rand.New(rand.NewSource(6))
	runs := 0
	for i := 0; i < 5000; i++ {
		var events []types.Direction
		if rng.Intn(3) == 0 {
			events = append(events, types.Directions[rng.Intn(4)])
		}
		// Steer towards the food now and then so the snake grows
		if rng.Intn(2) == 0 {
			head, food := g.GetSnake().Head(), g.GetFood().Position()
			switch {
			case food.X > head.X:
				events = append(events, types.Right)
			case food.X < head.X:
				events = append(events, types.Left)
			case food.Y > head.Y:
				events = append(events, types.Down)
			default:
				events = append(events, types.Up)
			}
		}

		res := g.Tick(events)
		s := g.GetSnake()
		if s.Len() < 1 {
			t.Fatalf("tick %d: empty snake", res.Tick)
		}
		seen := make(map[types.Point]bool, s.Len())
		for _, p := range s.Body {
			if !g.Grid.Contains(p) {
				t.Fatalf("tick %d: cell %v off the board", res.Tick, p)
			}
			if seen[p] {
				t.Fatalf("tick %d: duplicate cell %v survived the tick", res.Tick, p)
			}
			seen[p] = true
		}
		if res.Ate && seen[g.GetFood().Position()] {
			t.Fatalf("tick %d: food relocated onto the snake", res.Tick)
		}
		if res.Terminated {
			runs++
		}
	}
	if g.GetStateManager().Runs() != runs+1 {
		t.Fatalf("runs = %d, terminations = %d", g.GetStateManager().Runs(), runs)
	}
}

func TestDrawablesOrder(t *testing.T) {
	g := newTestGame(t, 7)
	d := g.Drawables()
	if len(d) != 2 || d[0] != types.Drawable(g.GetFood()) || d[1] != types.Drawable(g.GetSnake()) {
		t.Fatalf("unexpected drawables %v", d)
	}
}
