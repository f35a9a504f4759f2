package session

import (
	"fmt"
	"sort"
	"sync"

	"gridsnake/game/manager"
)

// Stats collects the runs finished during one session and
// summarises them on exit
type Stats struct {
	Runs  []manager.RunStats
	mutex sync.RWMutex
}

// Summary is the aggregate over every recorded run. Durations are in ticks.
type Summary struct {
	Runs            int
	AverageLength   float64
	MedianLength    float64
	MaxLength       int
	MinLength       int
	AverageDuration float64
	MaxDuration     uint64
}

func NewStats() *Stats {
	return &Stats{}
}

// AddRun records a finished run
func (s *Stats) AddRun(run manager.RunStats) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Runs = append(s.Runs, run)
}

func (s *Stats) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sum := Summary{Runs: len(s.Runs)}
	if len(s.Runs) == 0 {
		return sum
	}

	lengths := make([]int, 0, len(s.Runs))
	var totalLength int
	var totalDuration uint64
	sum.MinLength = s.Runs[0].Length
	for _, r := range s.Runs {
		lengths = append(lengths, r.Length)
		totalLength += r.Length
		if r.Length > sum.MaxLength {
			sum.MaxLength = r.Length
		}
		if r.Length < sum.MinLength {
			sum.MinLength = r.Length
		}
		d := r.EndTick - r.StartTick
		totalDuration += d
		if d > sum.MaxDuration {
			sum.MaxDuration = d
		}
	}

	sort.Ints(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		sum.MedianLength = float64(lengths[mid-1]+lengths[mid]) / 2
	} else {
		sum.MedianLength = float64(lengths[mid])
	}
	sum.AverageLength = float64(totalLength) / float64(len(s.Runs))
	sum.AverageDuration = float64(totalDuration) / float64(len(s.Runs))
	return sum
}

func (sum Summary) String() string {
	if sum.Runs == 0 {
		return "no finished runs"
	}
	return fmt.Sprintf("%d runs, length avg %.1f median %.1f min %d max %d, duration avg %.1f max %d ticks",
		sum.Runs, sum.AverageLength, sum.MedianLength, sum.MinLength, sum.MaxLength, sum.AverageDuration, sum.MaxDuration)
}
