package audio

import (
	"github.com/lixenwraith/colossus/event"
)

// Cue is a feedback sound triggered by a simulation event
type Cue int

const (
	CueNone         Cue = iota
	CueShake            // Host starts shaking
	CueSlip             // Actor forced off a host
	CueWeakPointHit     // Attack landed on a weak point
	CueHostDeath        // Host killed
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShake:
		return "shake"
	case CueSlip:
		return "slip"
	case CueWeakPointHit:
		return "weak_point_hit"
	case CueHostDeath:
		return "host_death"
	default:
		return "none"
	}
}

// CueFor maps an event to its cue; false when the event has no sound
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch p := ev.Payload.(type) {
	case *event.HostShakePayload:
		if ev.Type == event.EventHostShakeStart {
			return CueShake, true
		}
	case *event.GripEndPayload:
		if p.Reason.Forced() {
			return CueSlip, true
		}
	case *event.HostDamagedPayload:
		if p.Multiplier > 1 {
			return CueWeakPointHit, true
		}
	case *event.HostDeathPayload:
		return CueHostDeath, true
	}
	return CueNone, false
}
