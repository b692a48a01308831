package engine

import (
	"sync"
	"time"
)

// PausableClock reports elapsed simulation time, frozen while paused
type PausableClock struct {
	mu sync.RWMutex

	src    TimeProvider
	start  time.Time
	paused bool
	// pausedAt is the wall time the current pause began
	pausedAt    time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a running clock on src; nil uses the wall clock
func NewPausableClock(src TimeProvider) *PausableClock {
	if src == nil {
		src = NewMonotonicTimeProvider()
	}
	return &PausableClock{src: src, start: src.Now()}
}

// Elapsed returns running time since start, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	now := pc.src.Now()
	if pc.paused {
		now = pc.pausedAt
	}
	return now.Sub(pc.start) - pc.totalPaused
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.src.Now()
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.src.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused includes the pause in progress, if any
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.totalPaused
	if pc.paused {
		total += pc.src.Now().Sub(pc.pausedAt)
	}
	return total
}
