package engine

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/status"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

const stepDt = 20 * time.Millisecond

var chestPoint = host.AttachPoint{
	Name:    "chest",
	Offset:  vmath.Vec3F{Z: -5},
	Forward: vmath.Vec3F{Z: -1},
	Radius:  1.5,
}

func calmHost() host.Config {
	cfg := host.DefaultConfig()
	cfg.Shake.Enabled = false
	cfg.Shake.IntervalJitter = 0
	cfg.Movement.Enabled = false
	return cfg
}

// newClimbWorld spawns one host (entity 1) and one actor (entity 2) hanging in front of its chest point
func newClimbWorld(t *testing.T, hc host.Config, opts ...WorldOption) (*World, *host.Host, *traction.Controller) {
	t.Helper()
	w := NewWorld(opts...)
	h := w.SpawnHost(hc, host.WithPoints(chestPoint), host.WithWaypoints(vmath.Vec3F{X: 10}))
	a := w.SpawnActor(traction.DefaultConfig(), traction.WithPosition(vmath.Vec3F{Z: -6}))
	return w, h, a
}

func TestWorldHoldTenSeconds(t *testing.T) {
	w, _, a := newClimbWorld(t, calmHost())

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	res := w.Step(stepDt)
	if !res.Reports[a.ID()].Grip.OK() {
		t.Fatalf("grip failed: %+v", res.Reports[a.ID()].Grip)
	}
	for i := 1; i < 500; i++ {
		w.Step(stepDt)
	}

	if got := a.Stamina().Current; math.Abs(got-50) > 1e-6 {
		t.Errorf("stamina after 10s = %v, want 50", got)
	}
	if !a.Attached() {
		t.Error("actor should still be attached")
	}
	if w.Now() != 10*time.Second {
		t.Errorf("sim time = %v, want 10s", w.Now())
	}
	if w.Frame() != 500 {
		t.Errorf("frame = %d, want 500", w.Frame())
	}
}

func TestWorldActorFollowsHostSameTick(t *testing.T) {
	hc := calmHost()
	hc.Movement.Enabled = true
	hc.Movement.Speed = 2
	w, h, a := newClimbWorld(t, hc)

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	w.Step(stepDt)
	offset := vmath.V3FSub(a.Position(), h.Position())

	for i := 0; i < 50; i++ {
		w.Step(stepDt)
		got := vmath.V3FSub(a.Position(), h.Position())
		if !vmath.V3FApproxEqual(got, offset, 1e-9) {
			t.Fatalf("step %d: actor offset from host = %+v, want %+v", i, got, offset)
		}
	}
	if h.Position().X <= 0 {
		t.Fatalf("host did not move: %+v", h.Position())
	}
}

func TestWorldAggroPullsShakeForward(t *testing.T) {
	hc := calmHost()
	hc.Shake.Enabled = true
	w, h, a := newClimbWorld(t, hc)

	if h.NextShakeAt() != hc.Shake.BaseInterval {
		t.Fatalf("initial next shake = %v, want %v", h.NextShakeAt(), hc.Shake.BaseInterval)
	}

	// Grip lands after hosts updated, so aggro is seen on the following step
	w.Submit(a.ID(), traction.Input{GripPressed: true})
	w.Step(stepDt)
	if h.NextShakeAt() != hc.Shake.BaseInterval {
		t.Fatalf("aggro applied before actors updated: %v", h.NextShakeAt())
	}
	w.Step(stepDt)

	want := 2*stepDt + time.Duration(float64(hc.Shake.BaseInterval)/hc.AggroMultiplier)
	if h.NextShakeAt() != want {
		t.Errorf("next shake = %v, want %v", h.NextShakeAt(), want)
	}
}

func TestWorldAnyGrippingWithin(t *testing.T) {
	w, h, a := newClimbWorld(t, calmHost())

	if w.AnyGrippingWithin(h.Position(), 100) {
		t.Fatal("detached actor counted as gripping")
	}
	w.Submit(a.ID(), traction.Input{GripPressed: true})
	w.Step(stepDt)

	if !w.AnyGrippingWithin(h.Position(), 6) {
		t.Error("attached actor within radius not found")
	}
	if w.AnyGrippingWithin(h.Position(), 4) {
		t.Error("attached actor outside radius reported")
	}
}

func TestWorldObserversRunAfterStep(t *testing.T) {
	w, h, a := newClimbWorld(t, calmHost())

	var seen []event.EventType
	w.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGripStart, event.EventStaminaChanged, event.EventHostDeath},
		Fn: func(ev event.GameEvent) {
			seen = append(seen, ev.Type)
		},
	})

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	res := w.Step(stepDt)
	if len(seen) == 0 || seen[0] != event.EventGripStart {
		t.Fatalf("observed %v, want GripStart first", seen)
	}
	if res.Dispatched < len(seen) {
		t.Errorf("dispatched %d < observed %d", res.Dispatched, len(seen))
	}

	h.TakeDamage(h.Health().Max, nil)
	w.Step(stepDt)
	if seen[len(seen)-1] != event.EventHostDeath {
		t.Errorf("last observed = %v, want HostDeath", seen[len(seen)-1])
	}
	if a.Attached() {
		t.Error("actor still attached to a dead host")
	}
}

func TestWorldSubmitUnknownActor(t *testing.T) {
	w := NewWorld()
	if w.Submit(42, traction.Input{GripPressed: true}) {
		t.Error("submit to unknown actor reported success")
	}
}

func TestWorldSessionID(t *testing.T) {
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	w := NewWorld(WithSessionID(id))
	if w.SessionID() != id {
		t.Errorf("session = %v, want %v", w.SessionID(), id)
	}
	if NewWorld().SessionID() == NewWorld().SessionID() {
		t.Error("generated sessions collide")
	}
}

func TestWorldPublishesStatus(t *testing.T) {
	reg := status.NewRegistry()
	w, h, a := newClimbWorld(t, calmHost(), WithStatus(reg))

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	w.Step(stepDt)

	if got := reg.Ints.Get("world.frame").Load(); got != 1 {
		t.Errorf("world.frame = %d, want 1", got)
	}
	if got := reg.Floats.Get("world.time_s").Get(); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("world.time_s = %v, want 0.02", got)
	}
	if got := reg.Floats.Get("actor.2.stamina").Get(); math.Abs(got-a.Stamina().Current) > 1e-12 {
		t.Errorf("actor.2.stamina = %v, want %v", got, a.Stamina().Current)
	}
	if got := reg.Strings.Get("actor.2.state").Load(); got != a.State().String() {
		t.Errorf("actor.2.state = %q, want %q", got, a.State().String())
	}
	if got := reg.Floats.Get("host.1.health").Get(); got != h.Health().Current {
		t.Errorf("host.1.health = %v, want %v", got, h.Health().Current)
	}
	if !reg.Bools.Get("host.1.alive").Load() {
		t.Error("host.1.alive = false")
	}
}

func TestWorldHighlightsReachablePoint(t *testing.T) {
	w, h, a := newClimbWorld(t, calmHost())
	p, _ := h.Point(0)

	w.Step(stepDt)
	if !p.Highlighted() {
		t.Fatal("point in reach of a detached actor not highlighted")
	}

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	w.Step(stepDt)
	if p.Highlighted() {
		t.Error("highlight kept while the only actor is attached")
	}
}

func TestWorldHighlightMatchesGrip(t *testing.T) {
	tight := host.AttachPoint{Name: "tight", Offset: vmath.Vec3F{Z: -5}, Forward: vmath.Vec3F{Z: -1}, Radius: 0.5}
	wide := host.AttachPoint{Name: "wide", Offset: vmath.Vec3F{Y: 1.5, Z: -5}, Forward: vmath.Vec3F{Z: -1}, Radius: 2}

	w := NewWorld()
	h := w.SpawnHost(calmHost(), host.WithPoints(tight, wide))
	a := w.SpawnActor(traction.DefaultConfig(), traction.WithPosition(vmath.Vec3F{Z: -6}))

	w.Step(stepDt)
	pt, _ := h.Point(0)
	pw, _ := h.Point(1)
	if pt.Highlighted() {
		t.Error("nearest point highlighted although the actor is outside its radius")
	}
	if !pw.Highlighted() {
		t.Fatal("point in range not highlighted")
	}

	w.Submit(a.ID(), traction.Input{GripPressed: true})
	res := w.Step(stepDt)
	if !res.Reports[a.ID()].Grip.OK() {
		t.Fatalf("grip failed: %+v", res.Reports[a.ID()].Grip)
	}
	if a.PointIndex() != 1 {
		t.Errorf("gripped point %d, highlighted point 1", a.PointIndex())
	}
}
