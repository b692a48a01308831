package traction

import (
	"github.com/lixenwraith/colossus/event"
)

// updateStamina drains while attached and regenerates after the idle delay while detached
func (c *Controller) updateStamina() {
	cfg := c.cfg.Stamina
	dt := c.tick.Seconds()
	before := c.stamina.Current
	wasDepleted := c.depleted

	if h := c.attachedHost(); h != nil {
		rate := cfg.GripDrainRate
		if c.climbing {
			rate = cfg.ClimbDrainRate
		}
		if p := c.attachedPoint(h); p != nil {
			rate /= p.GripBonusFactor
		}
		if h.Shaking() {
			rate *= h.ShakeDrainMultiplier()
		}
		if c.stamina.Drain(rate*dt) > 0 {
			c.lastDrain = c.tick.Now
		}
	} else if c.tick.Now-c.lastDrain >= cfg.RegenDelay {
		c.stamina.Restore(cfg.RegenRate * dt)
	}

	if c.state == StateAttached && c.stamina.Current <= cfg.DepletedThreshold {
		c.depleted = true
	}
	if c.depleted && c.state == StateDetached && c.stamina.Current > cfg.RecoveryThreshold {
		c.depleted = false
		c.log.Debug().Msg("stamina recovered")
	}

	if c.stamina.Current != before || c.depleted != wasDepleted {
		c.emitStamina()
	}
	if c.depleted && c.state == StateAttached {
		c.detach(event.DetachStaminaDepleted)
	}
}

// updateGripStrength drains while the attached host shakes and recovers otherwise
// Disabled tracking never depletes
func (c *Controller) updateGripStrength() {
	cfg := c.cfg.Grip
	if !cfg.StrengthEnabled {
		return
	}
	dt := c.tick.Seconds()
	before := c.grip.Current

	if h := c.attachedHost(); h != nil && h.Shaking() {
		c.grip.Drain(cfg.ShakeDrainRate * dt)
	} else {
		c.grip.Restore(cfg.RecoverRate * dt)
	}

	if c.grip.Current != before {
		c.emitGrip()
	}
	if c.state == StateAttached && c.grip.Empty() {
		c.detach(event.DetachGripDepleted)
	}
}

// updateCharge accumulates a held charge, or resolves it when released this tick
func (c *Controller) updateCharge(r *Report) {
	if !c.charging {
		return
	}
	if !c.releasePending {
		c.chargeTime += c.tick.Dt
		if c.chargeTime > c.cfg.Attack.MaxChargeTime {
			c.chargeTime = c.cfg.Attack.MaxChargeTime
		}
		return
	}
	c.resolveAttack(r)
}

func (c *Controller) resolveAttack(r *Report) {
	cfg := c.cfg.Attack
	h := c.attachedHost()
	p := c.attachedPoint(h)
	hostID := c.hostID
	pointIndex := c.point

	pct := float64(c.chargeTime) / float64(cfg.MaxChargeTime)
	damage := cfg.BaseDamage * (1 + pct*(cfg.ChargeMultiplier-1))

	c.charging = false
	c.chargeTime = 0
	c.releasePending = false
	c.lastAttack = c.tick.Now

	cost := c.stamina.Drain(cfg.StaminaCost)
	if cost > 0 {
		c.lastDrain = c.tick.Now
	}

	// Host death fires synchronously through the subscription and detaches this actor
	var dealt float64
	if h != nil {
		dealt = h.TakeDamage(damage, p)
	}

	r.Attack = AttackReport{
		Resolved:      true,
		ChargePercent: pct,
		Damage:        damage,
		Dealt:         dealt,
		StaminaCost:   cost,
	}
	c.log.Debug().Float64("damage", damage).Float64("dealt", dealt).Msg("attack resolved")
	c.emit(event.EventAttackResolved, &event.AttackResolvedPayload{
		Actor:         c.id,
		Host:          hostID,
		Point:         pointIndex,
		ChargePercent: pct,
		Damage:        damage,
		Dealt:         dealt,
		StaminaCost:   cost,
	})
	c.emitStamina()

	if c.state == StateAttached && c.stamina.Current <= c.cfg.Stamina.DepletedThreshold {
		c.depleted = true
		c.detach(event.DetachStaminaDepleted)
	}
}
