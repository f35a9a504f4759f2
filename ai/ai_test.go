package ai

import (
	"io"
	"log"
	"testing"

	"golang.org/x/exp/rand"

	"gridsnake/game"
	"gridsnake/game/types"
)

func TestShortestDelta(t *testing.T) {
	tests := []struct {
		d, extent, want int
	}{
		{d: 3, extent: 32, want: 3},
		{d: 20, extent: 32, want: -12},
		{d: -20, extent: 32, want: 12},
		{d: -3, extent: 32, want: -3},
		{d: 16, extent: 32, want: 16},
	}
	for _, tc := range tests {
		if got := shortestDelta(tc.d, tc.extent); got != tc.want {
			t.Errorf("shortestDelta(%d, %d) = %d, want %d", tc.d, tc.extent, got, tc.want)
		}
	}
}

func TestReward(t *testing.T) {
	near := State{FoodDistance: 3}
	far := State{FoodDistance: 5}
	if Reward(far, near, false, false) != RewardCloser {
		t.Error("moving closer should be rewarded")
	}
	if Reward(near, far, false, false) != RewardFurther {
		t.Error("moving away should be penalised")
	}
	if Reward(near, far, true, false) != RewardEat {
		t.Error("eating should dominate distance")
	}
	if Reward(far, near, true, true) != RewardDie {
		t.Error("dying should dominate everything")
	}
}

func TestUpdateMovesQValue(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)))
	s := NewState([2]int{1, 0}, 4, [4]bool{}, types.Right)
	next := NewState([2]int{1, 0}, 3, [4]bool{}, types.Right)

	r := q.Update(s, Right, next, false, false)
	if r != RewardCloser {
		t.Fatalf("reward = %v", r)
	}
	if got := q.QTable[q.getStateKey(s)][Right]; got <= 0 {
		t.Fatalf("Q value = %v, want positive", got)
	}

	q.Update(s, Up, next, false, true)
	if q.GamesPlayed != 1 {
		t.Fatalf("GamesPlayed = %d, want 1", q.GamesPlayed)
	}
	if got := q.QTable[q.getStateKey(s)][Up]; got >= 0 {
		t.Fatalf("Q value after death = %v, want negative", got)
	}
}

func TestGetActionNeverReverses(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(2)))
	q.Epsilon = 0.5
	for _, heading := range types.Directions {
		s := NewState([2]int{0, 0}, 0, [4]bool{}, heading)
		for i := 0; i < 200; i++ {
			if a := q.GetAction(s); a.Direction() == heading.Opposite() {
				t.Fatalf("heading %v: picked reverse %v", heading, a.Direction())
			}
		}
	}
}

func TestGreedyAvoidsDanger(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(3)))
	q.Epsilon = 0
	s := NewState([2]int{0, -1}, 2, [4]bool{true, false, false, false}, types.Right)
	if a := q.GetAction(s); a == Up || a == Left {
		t.Fatalf("picked %v into danger or reverse", a.Direction())
	}
}

func TestObserve(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	g, err := game.New(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := g.GetSnake()
	food := g.GetFood().Position()
	// Head two cells left of the food, neck below the head
	head := g.Grid.Wrap(types.Point{X: food.X - 2, Y: food.Y})
	s.Body = []types.Point{head, g.Grid.Wrap(types.Point{X: head.X, Y: head.Y + 1}), g.Grid.Wrap(types.Point{X: head.X, Y: head.Y + 2})}
	s.Direction = types.Up

	a := NewAutopilot(rand.New(rand.NewSource(4)))
	st := a.Observe(g)
	if st.RelativeFoodDir != [2]int{1, 0} || st.FoodDistance != 2 {
		t.Fatalf("food view = %v dist %d", st.RelativeFoodDir, st.FoodDistance)
	}
	if st.DangerDirs != [4]bool{false, false, true, false} {
		t.Fatalf("dangers = %v", st.DangerDirs)
	}
}

func TestAutopilotDrivesGame(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 21
	g, err := game.New(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := NewAutopilot(rand.New(rand.NewSource(21)))
	for i := 0; i < 2000; i++ {
		d := a.Decide(g)
		if d == g.GetSnake().Direction.Opposite() {
			t.Fatalf("tick %d: autopilot asked to reverse", i)
		}
		res := g.Tick([]types.Direction{d})
		a.Learn(g, res)
	}
	if len(a.AI.QTable) == 0 || a.AI.TotalReward == 0 {
		t.Fatalf("agent did not learn: %d states, reward %v", len(a.AI.QTable), a.AI.TotalReward)
	}
}
