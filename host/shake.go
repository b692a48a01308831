package host

import (
	"time"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/vmath"
)

// ForceShake pulls the next shake forward to the current time and reports whether it did
// The shake begins on the next Update; refused while already shaking, dead or with shaking disabled
func (h *Host) ForceShake() bool {
	if !h.cfg.Shake.Enabled {
		h.log.Debug().Msg("force shake ignored, shaking disabled")
		return false
	}
	if !h.alive || h.shaking {
		return false
	}
	h.nextShakeAt = h.tick.Now
	return true
}

// updateAggro shortens the wait when any actor is gripping within detection radius
func (h *Host) updateAggro(now time.Duration, grippers GripperQuery) {
	if grippers == nil || !h.cfg.Shake.Enabled || h.shaking {
		return
	}
	if !grippers.AnyGrippingWithin(h.position, h.cfg.DetectionRadius) {
		return
	}
	pulled := now + time.Duration(float64(h.cfg.Shake.BaseInterval)/h.cfg.AggroMultiplier)
	if pulled < h.nextShakeAt {
		h.nextShakeAt = pulled
	}
}

// updateShake runs the scheduler: begin when due, count down on subsequent ticks, end and reschedule
func (h *Host) updateShake(tick core.Tick) {
	if !h.cfg.Shake.Enabled {
		return
	}

	if !h.shaking {
		if tick.Now >= h.nextShakeAt {
			h.beginShake()
		}
		return
	}

	h.shakeRemaining -= tick.Dt
	h.shakeElapsed += tick.Dt
	if h.shakeRemaining <= 0 {
		h.endShake(true)
		return
	}
	h.sampleShake()
}

func (h *Host) beginShake() {
	h.shaking = true
	h.shakeRemaining = h.cfg.Shake.Duration
	h.shakeElapsed = 0
	h.noise.Reseed(h.rng)
	h.sampleShake()

	h.log.Debug().Dur("duration", h.cfg.Shake.Duration).Msg("shake start")
	h.emit(event.EventHostShakeStart, &event.HostShakePayload{
		Host:            h.id,
		Intensity:       h.cfg.Shake.Intensity,
		DrainMultiplier: h.cfg.Shake.DrainMultiplier,
	})
}

// endShake clears shake state; reschedule is false when the host died
func (h *Host) endShake(reschedule bool) {
	h.shaking = false
	h.shakeRemaining = 0
	h.shakeElapsed = 0
	h.shakeOffset = vmath.Vec3F{}
	if reschedule {
		h.scheduleNextShake(h.tick.Now)
	}

	h.log.Debug().Msg("shake end")
	h.emit(event.EventHostShakeEnd, &event.HostShakePayload{
		Host:            h.id,
		Intensity:       h.cfg.Shake.Intensity,
		DrainMultiplier: h.cfg.Shake.DrainMultiplier,
	})
}

func (h *Host) sampleShake() {
	h.shakeOffset = vmath.V3FScale(h.noise.Sample(h.shakeElapsed.Seconds()), h.cfg.Shake.Intensity)
}

// scheduleNextShake sets nextShakeAt = now + BaseInterval ± Jitter, never sooner than MinInterval
func (h *Host) scheduleNextShake(now time.Duration) {
	wait := h.cfg.Shake.BaseInterval + time.Duration(h.rng.Range(float64(h.cfg.Shake.IntervalJitter)))
	if wait < h.cfg.Shake.MinInterval {
		wait = h.cfg.Shake.MinInterval
	}
	h.nextShakeAt = now + wait
}
