package traction

import (
	"math"

	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/vmath"
)

// updateClimbVelocity steers climb velocity toward the plane-projected input
func (c *Controller) updateClimbVelocity() {
	if c.state != StateAttached {
		c.climbing = false
		return
	}
	cfg := c.cfg.Climb
	dt := c.tick.Seconds()

	mag := vmath.V3FMag(c.move)
	c.climbing = mag > cfg.InputDeadzone

	if c.climbing && !c.depleted {
		dir := vmath.V3FNormalize(vmath.V3FProjectOnPlane(c.move, c.normal))
		target := vmath.V3FScale(dir, cfg.Speed*mag)
		c.climbVelocity = vmath.V3FMoveTowards(c.climbVelocity, target, cfg.Acceleration*dt)
		return
	}
	c.climbVelocity = vmath.V3FMoveTowards(c.climbVelocity, vmath.Vec3F{}, 2*cfg.Acceleration*dt)
}

// handOverHand upgrades a raw surface grip to the nearest discrete point while climbing
func (c *Controller) handOverHand() {
	if c.state != StateAttached || !c.climbing || c.point != event.NoPoint {
		return
	}
	h := c.attachedHost()
	if h == nil {
		return
	}
	idx, found := h.NearestPoint(c.position, c.cfg.Grip.MaxPointDistance)
	if !found {
		return
	}
	p, _ := h.Point(idx)

	c.point = idx
	c.normal = p.ForwardDirection()
	c.anchor = p.WorldPosition()
	c.hostYaw = h.Yaw()
	c.contactOffset = vmath.V3FDot(vmath.V3FSub(c.position, vmath.V3FAdd(c.anchor, c.appliedShake)), c.normal)

	c.log.Debug().Int("point", idx).Msg("hand over hand")
	c.emit(event.EventGripPointChanged, &event.GripPointChangedPayload{
		Actor: c.id,
		Host:  c.hostID,
		From:  event.NoPoint,
		To:    idx,
	})
}

// syncPosition applies host delta, shake delta, climb and external motion in that order
// then checks surface contact
func (c *Controller) syncPosition() {
	dt := c.tick.Seconds()

	if c.state != StateAttached {
		// Airborne drift
		c.position = vmath.V3FAdd(c.position, vmath.V3FScale(c.externalVelocity, dt))
		c.externalVelocity = vmath.V3FDampDt(c.externalVelocity, c.cfg.Climb.ExternalVelocityDecay, dt)
		return
	}

	h := c.attachedHost()
	if h == nil || !h.Alive() {
		c.detach(event.DetachHostDied)
		c.syncPosition()
		return
	}

	yawDelta := h.Yaw() - c.hostYaw
	c.hostYaw = h.Yaw()

	// Shake is applied as the change in offset so the actor tracks the jitter without accumulating it
	shake := h.ShakeOffset()
	shakeDelta := vmath.V3FSub(shake, c.appliedShake)

	var hostDelta vmath.Vec3F
	if p := c.attachedPoint(h); p != nil {
		// Rigid carry about the point, turning with the host
		wp := p.WorldPosition()
		rel := vmath.V3FSub(c.position, vmath.V3FAdd(c.anchor, c.appliedShake))
		rel = vmath.V3FRotateY(rel, yawDelta)
		hostDelta = vmath.V3FSub(vmath.V3FAdd(vmath.V3FAdd(wp, c.appliedShake), rel), c.position)
		c.anchor = wp
		c.normal = p.ForwardDirection()
	} else {
		// Raw surface is not carried; contact is measured against where the surface is now
		c.anchor = vmath.V3FAdd(h.Position(), vmath.V3FRotateY(c.localAnchor, c.hostYaw))
		c.normal = vmath.V3FRotateY(c.localNormal, c.hostYaw)
	}
	c.appliedShake = shake

	climb := vmath.V3FScale(c.climbVelocity, dt)
	delta := hostDelta
	delta = vmath.V3FAdd(delta, shakeDelta)
	delta = vmath.V3FAdd(delta, climb)
	delta = vmath.V3FAdd(delta, vmath.V3FScale(c.externalVelocity, dt))
	c.position = vmath.V3FAdd(c.position, delta)
	c.externalVelocity = vmath.V3FDampDt(c.externalVelocity, c.cfg.Climb.ExternalVelocityDecay, dt)
	c.hostDelta = vmath.Vec3F{}

	off := vmath.V3FSub(c.position, vmath.V3FAdd(c.anchor, c.appliedShake))
	lost := math.Abs(vmath.V3FDot(off, c.normal)-c.contactOffset) > c.cfg.Grip.ContactTolerance
	if c.point == event.NoPoint {
		// Climbing slides the raw contact along; anything else separating actor and surface breaks it
		c.localAnchor = vmath.V3FAdd(c.localAnchor, vmath.V3FRotateY(climb, -c.hostYaw))
		c.anchor = vmath.V3FAdd(c.anchor, climb)
		off = vmath.V3FSub(off, climb)
		lost = lost || vmath.V3FMag(vmath.V3FProjectOnPlane(off, c.normal)) > c.cfg.Grip.ContactTolerance
	}
	if lost {
		c.detach(event.DetachLostContact)
	}
}

// onHostEvent is the direct subscription held while attached
func (c *Controller) onHostEvent(ev event.GameEvent) {
	if c.state != StateAttached {
		return
	}
	switch ev.Type {
	case event.EventHostShakeStart:
		p, _ := ev.Payload.(*event.HostShakePayload)
		if p == nil || p.Host != c.hostID {
			return
		}
		if c.stamina.Drain(c.cfg.Stamina.ShakeStartPenalty) > 0 {
			c.lastDrain = ev.Time
			c.emitStamina()
		}

	case event.EventHostMoved:
		p, _ := ev.Payload.(*event.HostMovedPayload)
		if p == nil || p.Host != c.hostID {
			return
		}
		c.hostDelta = p.Delta

	case event.EventHostDeath:
		p, _ := ev.Payload.(*event.HostDeathPayload)
		if p == nil || p.Host != c.hostID {
			return
		}
		c.detach(event.DetachHostDied)
	}
}
