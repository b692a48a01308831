package host

import (
	"github.com/lixenwraith/colossus/event"
)

// TakeDamage applies amount scaled by the point multiplier and returns the health actually removed
// Dead hosts ignore damage; reaching zero health stops shake and movement permanently
func (h *Host) TakeDamage(amount float64, point *AttachPoint) float64 {
	if !h.alive || amount <= 0 {
		return 0
	}

	multiplier := 1.0
	pointIndex := event.NoPoint
	if point != nil && point.host == h {
		multiplier = point.DamageMultiplier
		pointIndex = point.index
	}

	dealt := h.health.Drain(amount * multiplier)
	h.emit(event.EventHostDamaged, &event.HostDamagedPayload{
		Host:       h.id,
		Amount:     dealt,
		Multiplier: multiplier,
		Point:      pointIndex,
		Remaining:  h.health.Current,
	})

	if h.health.Empty() {
		h.die()
	}
	return dealt
}

func (h *Host) die() {
	h.alive = false
	if h.shaking {
		h.endShake(false)
	}
	h.stopMovement()

	h.log.Info().Msg("host died")
	h.emit(event.EventHostDeath, &event.HostDeathPayload{Host: h.id})
}
