// Package session runs a game against a frontend and keeps per-session statistics.
package session

import (
	"log"
	"time"

	"gridsnake/ai"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
)

// Loop drives one game against one frontend at a fixed tick cadence
type Loop struct {
	Game      *game.Game
	Frontend  ui.Frontend
	Audio     audio.Player
	Autopilot *ai.Autopilot // nil when the player steers
	Stats     *Stats

	Interval   time.Duration // Between ticks; 0 ticks every frame
	FrameDelay time.Duration // Sleep per frame for frontends that do not pace themselves
	MaxTicks   uint64        // 0 runs until the player quits

	Logger *log.Logger
}

// Run blocks until the player quits or MaxTicks ticks have run, and returns
// the number of ticks run
func (l *Loop) Run() uint64 {
	if l.Audio == nil {
		l.Audio = audio.Silent{}
	}
	if l.Stats == nil {
		l.Stats = NewStats()
	}
	if l.Logger == nil {
		l.Logger = log.Default()
	}

	var ticks uint64
	lastUpdate := time.Now()
	for {
		events, quit := l.Frontend.Poll()
		if quit {
			l.Logger.Printf("quit after %d ticks", ticks)
			return ticks
		}
		for _, d := range events {
			if err := l.Game.Input(d); err != nil {
				l.Logger.Printf("dropping input: %v", err)
			}
		}

		var res game.TickResult
		if time.Since(lastUpdate) >= l.Interval {
			res = l.step()
			lastUpdate = time.Now()
			ticks++
		}

		l.Frontend.Draw(l.Game, res)

		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			return ticks
		}
		if l.FrameDelay > 0 {
			time.Sleep(l.FrameDelay)
		}
	}
}

// step runs one tick. The autopilot's choice is queued last so it wins the
// batch over anything typed this frame.
func (l *Loop) step() game.TickResult {
	var extra []types.Direction
	if l.Autopilot != nil {
		extra = append(extra, l.Autopilot.Decide(l.Game))
	}

	res := l.Game.Tick(extra)

	if l.Autopilot != nil {
		l.Autopilot.Learn(l.Game, res)
	}
	switch {
	case res.Terminated:
		l.Audio.Play(audio.CueCrash)
		if run, ok := l.Game.GetStateManager().LastRun(); ok {
			l.Stats.AddRun(run)
		}
	case res.Ate:
		l.Audio.Play(audio.CueEat)
	}
	return res
}
