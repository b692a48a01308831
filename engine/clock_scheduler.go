package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/parameter"
)

// ClockScheduler advances a World on a fixed tick against a pausable clock
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	world *World
	clock *PausableClock

	// Tick configuration
	interval     time.Duration
	nextDeadline time.Duration // Next tick deadline in clock time, for drift correction
	mu           sync.Mutex

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the renderer that state changed; never blocks the loop
	updateDone chan struct{}

	onStep func(StepResult)
}

// SchedulerOption configures a ClockScheduler
type SchedulerOption func(*ClockScheduler)

// WithStepHook runs fn after every step, outside the world lock
func WithStepHook(fn func(StepResult)) SchedulerOption {
	return func(cs *ClockScheduler) { cs.onStep = fn }
}

// NewClockScheduler creates a scheduler with the given tick interval
// Returns the scheduler and its update-done receive channel
func NewClockScheduler(world *World, clock *PausableClock, interval time.Duration, opts ...SchedulerOption) (*ClockScheduler, <-chan struct{}) {
	if interval <= 0 {
		interval = parameter.GameUpdateInterval
	}
	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		interval:     interval,
		nextDeadline: clock.Elapsed() + interval,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs, cs.updateDone
}

func (cs *ClockScheduler) Interval() time.Duration {
	return cs.interval
}

// TickCount returns the number of steps executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// runDue executes every tick whose deadline has passed, up to MaxTickCatchUp
// Returns the number of ticks run and the time until the next deadline
func (cs *ClockScheduler) runDue() (int, time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.clock.IsPaused() {
		return 0, cs.interval * 2
	}

	now := cs.clock.Elapsed()
	ran := 0
	for now >= cs.nextDeadline && ran < parameter.MaxTickCatchUp {
		res := cs.world.Step(cs.interval)
		cs.tickCount.Add(1)
		ran++
		if cs.onStep != nil {
			cs.onStep(res)
		}
		cs.nextDeadline += cs.interval
	}

	// Too far behind after a stall: drop the backlog instead of spiraling
	if now-cs.nextDeadline > cs.interval*2 {
		cs.nextDeadline = now + cs.interval
	}

	if ran > 0 {
		select {
		case cs.updateDone <- struct{}{}:
		default:
		}
	}

	wait := cs.nextDeadline - cs.clock.Elapsed()
	if wait < 0 {
		wait = 0
	}
	return ran, wait
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	// Clock time is frozen while paused, so deadlines stay aligned across a pause
	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		_, sleep := cs.runDue()
		if sleep <= 0 {
			continue
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}
