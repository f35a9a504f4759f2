package ai

import (
	"fmt"
	"math"

	"gridsnake/game/types"
)

// Rewards for a single transition
const (
	RewardCloser  = 0.5
	RewardFurther = -0.3
	RewardEat     = 1.0
	RewardDie     = -1.0
)

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y), shortest way round the board
	FoodDistance    int     // Manhattan distance to food on the torus
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
	Heading         types.Direction
}

// NewState creates a new state with initialized values
func NewState(foodDir [2]int, foodDist int, dangers [4]bool, heading types.Direction) State {
	return State{
		RelativeFoodDir: foodDir,
		FoodDistance:    foodDist,
		DangerDirs:      dangers,
		Heading:         heading,
	}
}

// Action is an index into types.Directions
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Direction converts the action to the movement direction it requests
func (a Action) Direction() types.Direction {
	return types.Directions[a]
}

type QTable map[string][4]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          Rand
}

// Rand is what the learner draws exploration decisions from
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func NewQLearning(rng Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

func (q *QLearning) getStateKey(s State) string {
	return fmt.Sprintf("%d,%d|%d%d%d%d|%d",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[0]),
		boolToInt(s.DangerDirs[1]),
		boolToInt(s.DangerDirs[2]),
		boolToInt(s.DangerDirs[3]),
		int(s.Heading))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// GetAction picks an action epsilon-greedily. The reverse of the current
// heading is never chosen since the arbiter would drop it anyway.
func (q *QLearning) GetAction(state State) Action {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		for {
			a := Action(q.rng.Intn(4))
			if a.Direction() != state.Heading.Opposite() {
				return a
			}
		}
	}

	// Exploitation: best known action
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) Action {
	values := q.QTable[q.getStateKey(state)]

	bestAction := Action(-1)
	bestValue := math.Inf(-1)
	for a := Up; a <= Left; a++ {
		if a.Direction() == state.Heading.Opposite() {
			continue
		}
		// Prefer a safe move among equals
		value := values[a]
		if state.DangerDirs[a] {
			value += RewardDie
		}
		if value > bestValue {
			bestValue = value
			bestAction = a
		}
	}
	return bestAction
}

// Reward scores the transition from state to nextState
func Reward(state, nextState State, ate, died bool) float64 {
	switch {
	case died:
		return RewardDie
	case ate:
		return RewardEat
	}

	var reward float64
	distanceChange := nextState.FoodDistance - state.FoodDistance
	if distanceChange < 0 {
		// Got closer to food
		reward = RewardCloser
	} else if distanceChange > 0 {
		// Got further from food
		reward = RewardFurther
	}
	return reward
}

// Update applies the Q-learning rule for one transition and returns the reward
func (q *QLearning) Update(state State, action Action, nextState State, ate, died bool) float64 {
	reward := Reward(state, nextState, ate, died)

	stateKey := q.getStateKey(state)
	nextStateKey := q.getStateKey(nextState)

	// Get max Q-value for next state
	maxNextQ := 0.0
	if !died {
		maxNextQ = math.Inf(-1)
		for _, value := range q.QTable[nextStateKey] {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	// Q-learning update formula
	values := q.QTable[stateKey]
	currentQ := values[action]
	values[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.QTable[stateKey] = values

	q.TotalReward += reward
	if died {
		q.GamesPlayed++
	}
	return reward
}
