package manager

import (
	"log"

	"github.com/google/uuid"
)

// State is the tick controller's state machine value
type State int

const (
	Running State = iota
	Resetting
)

func (s State) String() string {
	if s == Resetting {
		return "resetting"
	}
	return "running"
}

// RunStats describes a finished run
type RunStats struct {
	RunID     uuid.UUID
	StartTick uint64
	EndTick   uint64
	Length    int
}

// StateManager tracks the running state, the tick counter and the current run
type StateManager struct {
	state    State
	tick     uint64
	runID    uuid.UUID
	runStart uint64
	runs     int
	logger   *log.Logger
	lastRun  *RunStats
}

func NewStateManager(logger *log.Logger) *StateManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &StateManager{
		state:  Running,
		logger: logger,
	}
	sm.startRun()
	return sm
}

func (sm *StateManager) startRun() {
	sm.runID = uuid.New()
	sm.runStart = sm.tick
	sm.runs++
	sm.logger.Printf("run %s started at tick %d", sm.runID, sm.tick)
}

// NextTick advances the tick counter and returns the new value
func (sm *StateManager) NextTick() uint64 {
	sm.tick++
	return sm.tick
}

// BeginReset marks the current run as terminated
func (sm *StateManager) BeginReset(length int) RunStats {
	sm.state = Resetting
	stats := RunStats{
		RunID:     sm.runID,
		StartTick: sm.runStart,
		EndTick:   sm.tick,
		Length:    length,
	}
	sm.lastRun = &stats
	sm.logger.Printf("run %s ended at tick %d: self-collision at length %d", stats.RunID, stats.EndTick, stats.Length)
	return stats
}

// FinishReset starts a fresh run and returns to Running
func (sm *StateManager) FinishReset() {
	sm.startRun()
	sm.state = Running
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Tick() uint64 {
	return sm.tick
}

func (sm *StateManager) RunID() uuid.UUID {
	return sm.runID
}

// Runs returns how many runs have been started, including the current one
func (sm *StateManager) Runs() int {
	return sm.runs
}

// LastRun returns the most recently finished run, if any
func (sm *StateManager) LastRun() (RunStats, bool) {
	if sm.lastRun == nil {
		return RunStats{}, false
	}
	return *sm.lastRun, true
}
