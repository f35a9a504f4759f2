package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue names a game event that has a sound
type Cue int

const (
	CueEat Cue = iota
	CueCrash
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.4
)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is the player used when sound is off or unavailable
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// Speaker plays cues through the system audio device
type Speaker struct {
	rate   beep.SampleRate
	volume float64
}

// NewSpeaker opens the audio device
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sampleRate, volume: defaultVolume}, nil
}

func (s *Speaker) Play(c Cue) {
	if st := Sound(c, s.rate, s.volume); st != nil {
		speaker.Play(st)
	}
}

func (s *Speaker) Close() {
	speaker.Close()
}

// Sound returns the streamer for a cue, nil for an unknown cue
func Sound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueEat:
		return CreateEatSound(rate, volume)
	case CueCrash:
		return CreateCrashSound(rate, volume)
	default:
		return nil
	}
}
