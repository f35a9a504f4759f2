package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's position after it has advanced.
// Hitting itself wins over reaching the food.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, food *entity.Food) CollisionType {
	if snake.IsSelfColliding() {
		return SelfCollision
	}
	if cm.IsFoodCollision(snake.Head(), food.Position()) {
		return FoodCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, bodyPart := range snake.Body {
		if pos == bodyPart {
			return false
		}
	}
	return true
}

// IsDanger reports whether moving the snake's head one step in d would land
// on its own body. The tail cell is not counted since it moves away in the
// same step.
func (cm *CollisionManager) IsDanger(snake *entity.Snake, d types.Direction) bool {
	next := cm.grid.Wrap(snake.Head().Add(d))
	body := snake.Body
	if snake.GrowthPending() == 0 && len(body) > 1 {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == next {
			return true
		}
	}
	return false
}
