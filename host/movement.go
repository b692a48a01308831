package host

import (
	"math"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/vmath"
)

// updateMovement steps toward the current waypoint and emits the per-tick delta
func (h *Host) updateMovement(tick core.Tick) {
	h.lastDelta = vmath.Vec3F{}
	mv := h.cfg.Movement
	if !mv.Enabled || !h.moving || len(h.waypoints) == 0 {
		return
	}

	target := h.waypoints[h.waypointIndex]
	prev := h.position
	h.position = vmath.V3FMoveTowards(h.position, target, mv.Speed*tick.Seconds())

	if vmath.V3FDistance(h.position, target) <= mv.ArriveTolerance {
		h.advanceWaypoint()
	}

	delta := vmath.V3FSub(h.position, prev)
	if vmath.V3FIsZero(delta) {
		return
	}
	h.lastDelta = delta

	if mv.FaceMovement && (delta.X != 0 || delta.Z != 0) {
		h.yaw = math.Atan2(delta.X, delta.Z)
	}

	h.emit(event.EventHostMoved, &event.HostMovedPayload{
		Host:     h.id,
		Delta:    delta,
		Position: h.position,
	})
}

func (h *Host) advanceWaypoint() {
	h.waypointIndex++
	if h.waypointIndex < len(h.waypoints) {
		return
	}
	if h.cfg.Movement.Loop {
		h.waypointIndex = 0
		return
	}
	h.waypointIndex = len(h.waypoints) - 1
	h.moving = false
	h.log.Debug().Msg("path complete")
}

// stopMovement halts the path permanently
func (h *Host) stopMovement() {
	h.moving = false
	h.lastDelta = vmath.Vec3F{}
}
