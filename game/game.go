package game

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// TickResult reports what happened during one tick
type TickResult struct {
	Tick       uint64
	Terminated bool // The snake hit itself and the run was restarted
	Ate        bool
	Length     int
	RunID      uuid.UUID // Run in progress after the tick
}

// Game owns the snake and the food and steps them one tick at a time.
// It is not safe for concurrent use; the loop that calls Tick owns it.
type Game struct {
	Config Config
	Grid   types.Grid

	rng          types.Rand
	snake        *entity.Snake
	inputMgr     *manager.InputManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *log.Logger
}

// New validates cfg and builds a game seeded from cfg.Seed
func New(cfg Config, logger *log.Logger) (*Game, error) {
	return NewWithRand(cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
}

// NewWithRand builds a game drawing from rng
func NewWithRand(cfg Config, rng types.Rand, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Config:       cfg,
		Grid:         grid,
		rng:          rng,
		snake:        entity.NewSnake(grid, rng),
		inputMgr:     manager.NewInputManager(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(logger),
		logger:       logger,
	}
	g.foodMgr.Ensure(g.snake)
	return g, nil
}

// Input queues a direction for the next tick
func (g *Game) Input(d types.Direction) error {
	return g.inputMgr.Push(d)
}

// Tick runs one step: input, movement, self-collision, then consumption.
// Events passed here are applied after anything queued through Input.
func (g *Game) Tick(events []types.Direction) TickResult {
	tick := g.stateMgr.NextTick()

	batch := append(g.inputMgr.Drain(), events...)
	g.inputMgr.Apply(g.snake, batch)

	g.snake.Advance(g.Grid)

	result := TickResult{Tick: tick}
	switch g.collisionMgr.CheckCollision(g.snake, g.foodMgr.GetFood()) {
	case manager.SelfCollision:
		g.stateMgr.BeginReset(g.snake.Len())
		g.snake.Reset(g.Grid, g.rng)
		g.foodMgr.Ensure(g.snake)
		g.stateMgr.FinishReset()
		result.Terminated = true
	case manager.FoodCollision:
		g.snake.Grow()
		if !g.foodMgr.Place(g.snake) {
			g.logger.Printf("tick %d: no free cell left for food", tick)
		}
		result.Ate = true
	}

	result.Length = g.snake.Len()
	result.RunID = g.stateMgr.RunID()
	return result
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.GetFood()
}

// GetStateManager exposes the run bookkeeping to frontends
func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

// GetCollisionManager is used by the autopilot to probe the next step
func (g *Game) GetCollisionManager() *manager.CollisionManager {
	return g.collisionMgr
}

// Drawables returns what a frontend should paint, food first
func (g *Game) Drawables() []types.Drawable {
	return []types.Drawable{g.foodMgr.GetFood(), g.snake}
}
