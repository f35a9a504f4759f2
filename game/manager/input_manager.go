package manager

import (
	"fmt"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Arbitrate returns requested unless it would reverse current, in which case
// current is kept. Values outside the four directions also keep current.
func Arbitrate(current, requested types.Direction) types.Direction {
	if !requested.Valid() || requested == current.Opposite() {
		return current
	}
	return requested
}

// InputManager collects the directional events raised between two ticks
type InputManager struct {
	queue []types.Direction
}

func NewInputManager() *InputManager {
	return &InputManager{
		queue: make([]types.Direction, 0, 4),
	}
}

// Push queues a direction for the next tick
func (im *InputManager) Push(d types.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("queue input: %w: %d", types.ErrInvalidDirection, int(d))
	}
	im.queue = append(im.queue, d)
	return nil
}

// Drain hands over the queued batch and empties the queue
func (im *InputManager) Drain() []types.Direction {
	if len(im.queue) == 0 {
		return nil
	}
	batch := im.queue
	im.queue = make([]types.Direction, 0, 4)
	return batch
}

// Apply resolves a batch against the snake's current direction; the last
// accepted event becomes the pending direction.
func (im *InputManager) Apply(snake *entity.Snake, batch []types.Direction) {
	for _, d := range batch {
		if Arbitrate(snake.Direction, d) == d {
			snake.RequestDirection(d)
		}
	}
}
