package traction

import (
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/vmath"
)

// applyCommands resolves this tick's edges: release, jump, grip, then charge press and release
func (c *Controller) applyCommands(in Input, r *Report) {
	if in.GripReleased {
		r.Release = c.release()
	}
	if in.JumpPressed {
		r.Jump = c.jumpOff()
	}
	if in.GripPressed {
		r.Grip = c.tryGrip()
	}
	if in.ChargePressed {
		r.Charge = c.startCharge()
	}
	if in.ChargeReleased {
		r.ChargeRelease = c.releaseCharge()
	}
}

// release is idempotent: while detached it reports InvalidTransition and emits nothing
func (c *Controller) release() Result {
	if c.state != StateAttached {
		return deny(ResultInvalidTransition, event.DenyNotAttached)
	}
	c.detach(event.DetachReleased)
	return ok()
}

func (c *Controller) tryGrip() Result {
	if c.state == StateAttached {
		return deny(ResultInvalidTransition, event.DenyAlreadyAttached)
	}
	if c.depleted {
		return c.gripFailed(event.DenyStaminaDepleted)
	}
	if c.tick.Now-c.lastJumpOff < c.cfg.Grip.WallJumpCooldown {
		return c.gripFailed(event.DenyJumpCooldown)
	}

	// Nearest discrete point in reach
	for _, cand := range c.search.PointsWithin(c.position, c.cfg.Grip.ReachDistance) {
		h, found := c.hosts.Host(cand.Ref.Host)
		if !found || !h.Alive() {
			continue
		}
		p, found := h.Point(cand.Ref.Index)
		if !found || !p.IsWithinRange(c.position) || !p.IsValidApproach(c.position) {
			continue
		}
		c.attach(h, p.Index(), p.ForwardDirection(), p.WorldPosition())
		return ok()
	}

	// Surface sweep along aim
	hit, found := c.search.Sweep(c.position, c.aim, c.cfg.Grip.ReachDistance)
	if !found {
		return c.gripFailed(event.DenyNoSurface)
	}
	if !hit.HasHost {
		return c.gripFailed(event.DenySurfaceNotClimbable)
	}
	h, found := c.hosts.Host(hit.Host)
	if !found || !h.Alive() {
		return c.gripFailed(event.DenySurfaceNotClimbable)
	}
	if idx, found := h.NearestPoint(hit.Position, c.cfg.Grip.MaxPointDistance); found {
		p, _ := h.Point(idx)
		c.attach(h, idx, p.ForwardDirection(), p.WorldPosition())
		return ok()
	}
	c.attach(h, event.NoPoint, hit.Normal, hit.Position)
	return ok()
}

func (c *Controller) gripFailed(reason event.DenyReason) Result {
	c.emit(event.EventGripFailed, &event.GripFailedPayload{Actor: c.id, Reason: reason})
	return deny(ResultGripFailed, reason)
}

// attach establishes the single host subscription and captures the contact baseline
func (c *Controller) attach(h *host.Host, point int, normal, anchor vmath.Vec3F) {
	c.state = StateAttached
	c.hostID = h.ID()
	c.point = point
	c.normal = vmath.V3FNormalize(normal)
	c.appliedShake = h.ShakeOffset()
	c.hostYaw = h.Yaw()
	if point == event.NoPoint {
		// Raw contact sits on the hit plane directly under the actor
		lateral := vmath.V3FProjectOnPlane(vmath.V3FSub(c.position, vmath.V3FAdd(anchor, c.appliedShake)), c.normal)
		anchor = vmath.V3FAdd(anchor, lateral)
		c.localAnchor = vmath.V3FRotateY(vmath.V3FSub(anchor, h.Position()), -c.hostYaw)
		c.localNormal = vmath.V3FRotateY(c.normal, -c.hostYaw)
	}
	c.anchor = anchor
	c.contactOffset = vmath.V3FDot(vmath.V3FSub(c.position, vmath.V3FAdd(anchor, c.appliedShake)), c.normal)
	c.hostDelta = vmath.Vec3F{}
	c.climbVelocity = vmath.Vec3F{}
	c.sub = h.Subscribe(c.onHostEvent)
	c.grip.Fill()

	c.log.Debug().Uint64("host", uint64(h.ID())).Int("point", point).Msg("grip start")
	c.emit(event.EventGripStart, &event.GripStartPayload{
		Actor:  c.id,
		Host:   c.hostID,
		Point:  point,
		Normal: c.normal,
	})
}

// detach is the single cleanup path for every transition out of Attached
func (c *Controller) detach(reason event.DetachReason) {
	if c.state != StateAttached {
		return
	}
	hostID := c.hostID
	if h, found := c.hosts.Host(hostID); found {
		h.Unsubscribe(c.sub)
	}

	c.state = StateDetached
	c.hostID = 0
	c.point = event.NoPoint
	c.sub = 0
	c.normal = vmath.Vec3F{}
	c.anchor = vmath.Vec3F{}
	c.localAnchor = vmath.Vec3F{}
	c.localNormal = vmath.Vec3F{}
	c.hostYaw = 0
	c.contactOffset = 0
	c.appliedShake = vmath.Vec3F{}
	c.hostDelta = vmath.Vec3F{}
	c.climbing = false
	c.climbVelocity = vmath.Vec3F{}
	c.charging = false
	c.chargeTime = 0
	c.releasePending = false

	if c.report != nil {
		c.report.Detached = true
		c.report.DetachReason = reason
	}

	ev := c.log.Debug()
	if reason.Forced() {
		ev = c.log.Info()
	}
	ev.Uint64("host", uint64(hostID)).Stringer("reason", reason).Msg("grip end")
	c.emit(event.EventGripEnd, &event.GripEndPayload{
		Actor:  c.id,
		Host:   hostID,
		Reason: reason,
	})
}

// jumpOff pushes away from the surface and detaches
func (c *Controller) jumpOff() Result {
	if c.state != StateAttached {
		return deny(ResultInvalidTransition, event.DenyNotAttached)
	}
	cfg := c.cfg.Jump

	impulse := vmath.V3FScale(c.normal, cfg.OutwardImpulse)
	impulse = vmath.V3FAdd(impulse, vmath.V3FScale(vmath.V3FUp, cfg.UpwardImpulse))
	if vmath.V3FMag(c.move) > c.cfg.Climb.InputDeadzone {
		bias := vmath.V3FProjectOnPlane(c.move, c.normal)
		impulse = vmath.V3FAdd(impulse, vmath.V3FScale(bias, cfg.InputBias))
	}
	if dt := c.tick.Seconds(); cfg.HostMotionCarry && dt > 0 {
		impulse = vmath.V3FAdd(impulse, vmath.V3FScale(c.hostDelta, 1/dt))
	}

	hostID := c.hostID
	c.externalVelocity = vmath.V3FAdd(c.externalVelocity, impulse)
	c.lastJumpOff = c.tick.Now

	c.emit(event.EventJumpOff, &event.JumpOffPayload{
		Actor:   c.id,
		Host:    hostID,
		Impulse: impulse,
	})
	c.detach(event.DetachJumpedOff)
	return ok()
}

func (c *Controller) startCharge() Result {
	if c.state != StateAttached {
		return c.attackDenied(event.DenyNotAttached)
	}
	if c.charging {
		return deny(ResultInvalidTransition, event.DenyAlreadyCharging)
	}
	if c.tick.Now-c.lastAttack < c.cfg.Attack.Cooldown {
		return c.attackDenied(event.DenyAttackCooldown)
	}
	if c.stamina.Current < c.cfg.Attack.StaminaCost {
		return c.attackDenied(event.DenyInsufficientStamina)
	}

	c.charging = true
	c.chargeTime = 0
	c.releasePending = false
	c.emit(event.EventChargeStart, &event.ChargePayload{Actor: c.id, Host: c.hostID})
	return ok()
}

func (c *Controller) attackDenied(reason event.DenyReason) Result {
	c.emit(event.EventAttackDenied, &event.AttackDeniedPayload{Actor: c.id, Reason: reason})
	return deny(ResultAttackDenied, reason)
}

// releaseCharge marks the charge for resolution at the end of this tick
func (c *Controller) releaseCharge() Result {
	if !c.charging {
		return deny(ResultInvalidTransition, event.DenyNotCharging)
	}
	c.releasePending = true
	return ok()
}
