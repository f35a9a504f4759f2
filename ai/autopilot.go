package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Autopilot steers the snake with a Q-learning agent. Its choice goes into
// the same per-tick input batch as keyboard events.
type Autopilot struct {
	AI         *QLearning
	LastState  State
	LastAction Action
	hasLast    bool
}

func NewAutopilot(rng Rand) *Autopilot {
	return &Autopilot{AI: NewQLearning(rng)}
}

// Observe builds the learner's view of the board
func (a *Autopilot) Observe(g *game.Game) State {
	snake := g.GetSnake()
	head := snake.Head()
	food := g.GetFood().Position()

	dx := shortestDelta(food.X-head.X, g.Grid.Width)
	dy := shortestDelta(food.Y-head.Y, g.Grid.Height)

	var dangers [4]bool
	for i, d := range types.Directions {
		dangers[i] = g.GetCollisionManager().IsDanger(snake, d)
	}
	return NewState([2]int{sign(dx), sign(dy)}, abs(dx)+abs(dy), dangers, snake.Direction)
}

// Decide picks the direction to request for the coming tick
func (a *Autopilot) Decide(g *game.Game) types.Direction {
	state := a.Observe(g)
	action := a.AI.GetAction(state)
	a.LastState = state
	a.LastAction = action
	a.hasLast = true
	return action.Direction()
}

// Learn feeds the outcome of the tick that followed Decide back to the agent
func (a *Autopilot) Learn(g *game.Game, res game.TickResult) {
	if !a.hasLast {
		return
	}
	next := a.Observe(g)
	a.AI.Update(a.LastState, a.LastAction, next, res.Ate, res.Terminated)
	a.hasLast = false
}

// shortestDelta returns the signed offset of d on an axis that wraps
func shortestDelta(d, extent int) int {
	d = types.Wrap(d, extent)
	if d > extent/2 {
		d -= extent
	}
	return d
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
