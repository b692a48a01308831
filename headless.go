package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/engine"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

// scriptPeriod is the length of one loop of the headless input script
const scriptPeriod = 10 * time.Second

// scriptInput returns the scripted command for the step ending at now
// Loops every scriptPeriod: grip, climb, charge, release, jump off, try to regrip
func scriptInput(now, dt time.Duration) traction.Input {
	t := now % scriptPeriod
	at := func(mark time.Duration) bool { return t >= mark && t < mark+dt }

	var in traction.Input
	switch {
	case at(0):
		in.GripPressed = true
	case at(3 * time.Second):
		in.ChargePressed = true
	case at(4 * time.Second):
		in.ChargeReleased = true
	case at(6 * time.Second):
		in.JumpPressed = true
		in.Move = vmath.Vec3F{X: 1}
	case at(7 * time.Second):
		in.GripPressed = true
	}
	if t >= time.Second && t < 2500*time.Millisecond {
		in.Move = vmath.V3FUp
	}
	return in
}

// eventTally counts observer events by type
type eventTally struct {
	counts map[event.EventType]int
	forced int
}

func newEventTally() *eventTally {
	return &eventTally{counts: make(map[event.EventType]int)}
}

func (t *eventTally) EventTypes() []event.EventType { return event.AllTypes() }

func (t *eventTally) HandleEvent(ev event.GameEvent) {
	t.counts[ev.Type]++
	if p, ok := ev.Payload.(*event.GripEndPayload); ok && p.Reason.Forced() {
		t.forced++
	}
}

// headlessSummary is the result of a scripted run
type headlessSummary struct {
	Frames       int64
	SimTime      time.Duration
	WallTime     time.Duration
	GripStarts   int
	GripFails    int
	Detaches     int
	Forced       int
	Attacks      int
	Shakes       int
	HostHealth   float64
	HostAlive    bool
	FinalStamina float64
	FinalState   traction.State
}

// runHeadless steps the world as fast as possible for duration of sim time
func runHeadless(w *engine.World, h *host.Host, actor core.Entity, duration, interval time.Duration, m *engine.Metrics, log zerolog.Logger) headlessSummary {
	tally := newEventTally()
	w.Register(tally)

	start := time.Now()
	for w.Now()+interval <= duration {
		w.Submit(actor, scriptInput(w.Now(), interval))
		res := w.Step(interval)
		if m != nil {
			m.RecordStep(res)
		}
	}

	a, _ := w.Actor(actor)
	sum := headlessSummary{
		Frames:       w.Frame(),
		SimTime:      w.Now(),
		WallTime:     time.Since(start),
		GripStarts:   tally.counts[event.EventGripStart],
		GripFails:    tally.counts[event.EventGripFailed],
		Detaches:     tally.counts[event.EventGripEnd],
		Forced:       tally.forced,
		Attacks:      tally.counts[event.EventAttackResolved],
		Shakes:       tally.counts[event.EventHostShakeStart],
		HostHealth:   h.Health().Current,
		HostAlive:    h.Alive(),
		FinalStamina: a.Stamina().Current,
		FinalState:   a.State(),
	}

	log.Info().
		Int64("frames", sum.Frames).
		Dur("sim_time", sum.SimTime).
		Dur("wall_time", sum.WallTime).
		Int("grips", sum.GripStarts).
		Int("grip_fails", sum.GripFails).
		Int("detaches", sum.Detaches).
		Int("forced", sum.Forced).
		Int("attacks", sum.Attacks).
		Int("shakes", sum.Shakes).
		Float64("host_health", sum.HostHealth).
		Bool("host_alive", sum.HostAlive).
		Float64("stamina", sum.FinalStamina).
		Str("state", sum.FinalState.String()).
		Msg("headless run complete")
	return sum
}
