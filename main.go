package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/ai"
	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/session"
	"gridsnake/ui"
	"gridsnake/ui/desktop"
)

// Frontend names accepted by -frontend
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "term"
	FrontendHeadless = "headless"
)

// Terminal frames are paced by sleeping; raylib paces itself
const terminalFrameDelay = 16 * time.Millisecond

func main() {
	defaults := game.DefaultConfig()
	frontend := flag.String("frontend", FrontendRaylib, "raylib, term or headless")
	width := flag.Int("width", defaults.Width, "Board width in cells")
	height := flag.Int("height", defaults.Height, "Board height in cells")
	cell := flag.Int("cell", defaults.CellSize, "Cell size in pixels (raylib only)")
	speed := flag.Int("speed", defaults.Speed, "Ticks per second")
	seed := flag.Uint64("seed", 0, "Random seed (0 = $"+game.SeedEnv+" or the clock)")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = never)")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent steer")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	cfg := game.Config{
		CellSize: *cell,
		Width:    *width,
		Height:   *height,
		Speed:    *speed,
		Seed:     *seed,
	}
	if err := run(cfg, *frontend, *maxTicks, *autopilot, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg game.Config, frontendName string, maxTicks uint64, autopilot, mute bool) error {
	cfg, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if frontendName == FrontendHeadless && maxTicks == 0 {
		return fmt.Errorf("%w: headless needs -ticks", game.ErrInvalidConfig)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	// Log lines would tear the tcell screen
	if frontendName == FrontendTerminal {
		logger.SetOutput(io.Discard)
	}

	frontend, err := newFrontend(frontendName, cfg)
	if err != nil {
		return err
	}
	defer frontend.Close()

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Printf("seed %d, board %dx%d, %d ticks/s", cfg.Seed, cfg.Width, cfg.Height, cfg.Speed)

	var player audio.Player = audio.Silent{}
	if !mute && frontendName != FrontendHeadless {
		if sp, err := audio.NewSpeaker(); err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			player = sp
		}
	}
	defer player.Close()

	loop := &session.Loop{
		Game:     g,
		Frontend: frontend,
		Audio:    player,
		Stats:    session.NewStats(),
		Interval: cfg.TickInterval(),
		MaxTicks: maxTicks,
		Logger:   logger,
	}
	switch frontendName {
	case FrontendTerminal:
		loop.FrameDelay = terminalFrameDelay
	case FrontendHeadless:
		loop.Interval = 0
	}
	if autopilot {
		loop.Autopilot = ai.NewAutopilot(rand.New(rand.NewSource(cfg.Seed + 1)))
	}

	ticks := loop.Run()
	logger.Printf("%d ticks: %s", ticks, loop.Stats.Summary())
	return nil
}

func newFrontend(name string, cfg game.Config) (ui.Frontend, error) {
	switch name {
	case FrontendRaylib:
		return desktop.NewWindow(cfg), nil
	case FrontendTerminal:
		return ui.NewTerminal(cfg.Grid())
	case FrontendHeadless:
		return ui.NewHeadless(nil), nil
	default:
		return nil, fmt.Errorf("%w: unknown frontend %q", game.ErrInvalidConfig, name)
	}
}
