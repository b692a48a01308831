package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/config"
	"github.com/lixenwraith/colossus/engine"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

func TestScriptInput(t *testing.T) {
	dt := 20 * time.Millisecond
	tests := []struct {
		name string
		now  time.Duration
		want traction.Input
	}{
		{"grip at start", 0, traction.Input{GripPressed: true}},
		{"idle", 500 * time.Millisecond, traction.Input{}},
		{"climbing", 1500 * time.Millisecond, traction.Input{Move: vmath.V3FUp}},
		{"charge", 3 * time.Second, traction.Input{ChargePressed: true}},
		{"release", 4*time.Second + 10*time.Millisecond, traction.Input{ChargeReleased: true}},
		{"jump", 6 * time.Second, traction.Input{JumpPressed: true, Move: vmath.Vec3F{X: 1}}},
		{"loops", scriptPeriod + 3*time.Second, traction.Input{ChargePressed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scriptInput(tt.now, dt); got != tt.want {
				t.Errorf("scriptInput(%v) = %+v, want %+v", tt.now, got, tt.want)
			}
		})
	}
}

func TestHeadlessRun(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Seed = 7

	w := engine.NewWorld()
	h, a := buildScene(w, cfg)
	sum := runHeadless(w, h, a.ID(), 12*time.Second, cfg.Sim.TickInterval, nil, zerolog.Nop())

	if sum.Frames != 600 {
		t.Errorf("frames = %d, want 600", sum.Frames)
	}
	if sum.GripStarts < 1 {
		t.Errorf("grip starts = %d, want at least 1", sum.GripStarts)
	}
	if sum.Attacks < 1 {
		t.Errorf("attacks = %d, want at least 1", sum.Attacks)
	}
	if sum.HostHealth >= cfg.Host.MaxHealth {
		t.Errorf("host health = %v, want below %v", sum.HostHealth, cfg.Host.MaxHealth)
	}
	if sum.Shakes < 1 {
		t.Errorf("shakes = %d, want at least 1", sum.Shakes)
	}
	if sum.FinalStamina < 0 || sum.FinalStamina > cfg.Traction.Stamina.Max {
		t.Errorf("stamina %v out of bounds", sum.FinalStamina)
	}
}

func TestBuildScene(t *testing.T) {
	w := engine.NewWorld()
	h, a := buildScene(w, config.Default())

	if h.PointCount() != len(colossusPoints) {
		t.Errorf("points = %d, want %d", h.PointCount(), len(colossusPoints))
	}
	if len(w.Index().Obstacles()) != len(sceneObstacles) {
		t.Errorf("obstacles = %d, want %d", len(w.Index().Obstacles()), len(sceneObstacles))
	}
	if a.Position() != actorStart {
		t.Errorf("actor at %+v, want %+v", a.Position(), actorStart)
	}

	// Belt point is in reach from the start position
	w.Submit(a.ID(), traction.Input{GripPressed: true})
	res := w.Step(20 * time.Millisecond)
	if !res.Reports[a.ID()].Grip.OK() {
		t.Fatalf("grip from start failed: %+v", res.Reports[a.ID()].Grip)
	}
	if a.PointIndex() != 1 {
		t.Errorf("gripped point %d, want belt (1)", a.PointIndex())
	}
}
