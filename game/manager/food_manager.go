package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	food         *entity.Food
	collisionMgr *CollisionManager
	relocations  int
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		food:         entity.NewFood(grid, rng, nil),
		collisionMgr: collisionMgr,
	}
}

// Place puts the food on a cell the snake does not cover
func (fm *FoodManager) Place(snake *entity.Snake) bool {
	fm.relocations++
	return fm.food.Relocate(fm.grid, fm.rng, types.NewSet(snake.Body))
}

// Ensure moves the food only if the snake currently covers it
func (fm *FoodManager) Ensure(snake *entity.Snake) bool {
	if fm.collisionMgr.ValidateSpawnPosition(fm.food.Position(), snake) {
		return true
	}
	return fm.Place(snake)
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}

// Relocations returns how many times the food has been moved
func (fm *FoodManager) Relocations() int {
	return fm.relocations
}
