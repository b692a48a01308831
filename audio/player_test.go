package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/colossus/event"
)

type recordingOutput struct {
	streams []beep.Streamer
}

func (r *recordingOutput) Play(s beep.Streamer) {
	r.streams = append(r.streams, s)
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
		ok   bool
	}{
		{"shake start", event.GameEvent{Type: event.EventHostShakeStart, Payload: &event.HostShakePayload{}}, CueShake, true},
		{"shake end", event.GameEvent{Type: event.EventHostShakeEnd, Payload: &event.HostShakePayload{}}, CueNone, false},
		{"released", event.GameEvent{Type: event.EventGripEnd, Payload: &event.GripEndPayload{Reason: event.DetachReleased}}, CueNone, false},
		{"jumped", event.GameEvent{Type: event.EventGripEnd, Payload: &event.GripEndPayload{Reason: event.DetachJumpedOff}}, CueNone, false},
		{"stamina out", event.GameEvent{Type: event.EventGripEnd, Payload: &event.GripEndPayload{Reason: event.DetachStaminaDepleted}}, CueSlip, true},
		{"host died", event.GameEvent{Type: event.EventGripEnd, Payload: &event.GripEndPayload{Reason: event.DetachHostDied}}, CueSlip, true},
		{"plain hit", event.GameEvent{Type: event.EventHostDamaged, Payload: &event.HostDamagedPayload{Multiplier: 1}}, CueNone, false},
		{"weak hit", event.GameEvent{Type: event.EventHostDamaged, Payload: &event.HostDamagedPayload{Multiplier: 2.5}}, CueWeakPointHit, true},
		{"death", event.GameEvent{Type: event.EventHostDeath, Payload: &event.HostDeathPayload{}}, CueHostDeath, true},
		{"stamina", event.GameEvent{Type: event.EventStaminaChanged, Payload: &event.PoolChangedPayload{}}, CueNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CueFor = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCuePlayerDisabled(t *testing.T) {
	out := &recordingOutput{}
	p := NewCuePlayer(DefaultConfig(), WithOutput(out))
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p.HandleEvent(event.GameEvent{Type: event.EventHostDeath, Payload: &event.HostDeathPayload{Host: 1}})
	if len(out.streams) != 0 {
		t.Errorf("disabled player produced %d sounds", len(out.streams))
	}
}

func TestCuePlayerGap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	out := &recordingOutput{}
	p := NewCuePlayer(cfg, WithOutput(out))
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer p.Close()

	slipAt := func(at time.Duration) event.GameEvent {
		return event.GameEvent{Type: event.EventGripEnd, Time: at,
			Payload: &event.GripEndPayload{Reason: event.DetachLostContact}}
	}

	p.HandleEvent(slipAt(0))
	p.HandleEvent(slipAt(40 * time.Millisecond))
	p.HandleEvent(slipAt(100 * time.Millisecond))
	p.HandleEvent(event.GameEvent{Type: event.EventHostShakeStart, Time: 100 * time.Millisecond,
		Payload: &event.HostShakePayload{}})

	if got := p.Count(CueSlip); got != 2 {
		t.Errorf("slip cues = %d, want 2", got)
	}
	if got := p.Count(CueShake); got != 1 {
		t.Errorf("shake cues = %d, want 1", got)
	}
	if len(out.streams) != 3 {
		t.Errorf("streams played = %d, want 3", len(out.streams))
	}
}

func TestCuePlayerInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.MasterVolume = 2
	if err := NewCuePlayer(cfg, WithOutput(&recordingOutput{})).Initialize(); err == nil {
		t.Error("volume above 1 accepted")
	}
}
