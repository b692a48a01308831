package event

import (
	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/vmath"
)

// DetachReason identifies which path ended a grip
type DetachReason uint8

const (
	DetachReleased DetachReason = iota
	DetachStaminaDepleted
	DetachGripDepleted
	DetachLostContact
	DetachHostDied
	DetachJumpedOff
)

func (r DetachReason) String() string {
	switch r {
	case DetachReleased:
		return "released"
	case DetachStaminaDepleted:
		return "stamina_depleted"
	case DetachGripDepleted:
		return "grip_depleted"
	case DetachLostContact:
		return "lost_contact"
	case DetachHostDied:
		return "host_died"
	case DetachJumpedOff:
		return "jumped_off"
	default:
		return "unknown"
	}
}

// Forced reports whether the detach was imposed rather than requested
func (r DetachReason) Forced() bool {
	return r != DetachReleased && r != DetachJumpedOff
}

// DenyReason explains a refused command
type DenyReason uint8

const (
	DenyNone DenyReason = iota
	DenyAlreadyAttached
	DenyNotAttached
	DenyStaminaDepleted
	DenyJumpCooldown
	DenyNoSurface
	DenySurfaceNotClimbable
	DenyAttackCooldown
	DenyInsufficientStamina
	DenyAlreadyCharging
	DenyNotCharging
)

func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "none"
	case DenyAlreadyAttached:
		return "already_attached"
	case DenyNotAttached:
		return "not_attached"
	case DenyStaminaDepleted:
		return "stamina_depleted"
	case DenyJumpCooldown:
		return "jump_cooldown"
	case DenyNoSurface:
		return "no_surface"
	case DenySurfaceNotClimbable:
		return "surface_not_climbable"
	case DenyAttackCooldown:
		return "attack_cooldown"
	case DenyInsufficientStamina:
		return "insufficient_stamina"
	case DenyAlreadyCharging:
		return "already_charging"
	case DenyNotCharging:
		return "not_charging"
	default:
		return "unknown"
	}
}

// NoPoint marks a grip on a raw surface without a discrete attach point
const NoPoint = -1

// HostShakePayload carries shake start/end data
type HostShakePayload struct {
	Host            core.Entity
	Intensity       float64
	DrainMultiplier float64
}

// HostMovedPayload carries the per-tick translation of a host
type HostMovedPayload struct {
	Host     core.Entity
	Delta    vmath.Vec3F
	Position vmath.Vec3F
}

// HostDamagedPayload carries an applied hit
type HostDamagedPayload struct {
	Host       core.Entity
	Amount     float64 // Effective damage after point multiplier
	Multiplier float64
	Point      int // Attach point index or NoPoint
	Remaining  float64
}

// HostDeathPayload identifies a dead host
type HostDeathPayload struct {
	Host core.Entity
}

// GripStartPayload describes a new attachment
type GripStartPayload struct {
	Actor  core.Entity
	Host   core.Entity
	Point  int // NoPoint for raw surface grips
	Normal vmath.Vec3F
}

// GripEndPayload describes a detach
type GripEndPayload struct {
	Actor  core.Entity
	Host   core.Entity
	Reason DetachReason
}

// GripFailedPayload describes a denied grip command
type GripFailedPayload struct {
	Actor  core.Entity
	Reason DenyReason
}

// GripPointChangedPayload describes a hand-over-hand transition
type GripPointChangedPayload struct {
	Actor core.Entity
	Host  core.Entity
	From  int
	To    int
}

// PoolChangedPayload carries a resource pool snapshot
type PoolChangedPayload struct {
	Actor    core.Entity
	Current  float64
	Max      float64
	Depleted bool
}

// JumpOffPayload carries the applied impulse
type JumpOffPayload struct {
	Actor   core.Entity
	Host    core.Entity
	Impulse vmath.Vec3F
}

// ChargePayload identifies a charging actor
type ChargePayload struct {
	Actor core.Entity
	Host  core.Entity
}

// AttackResolvedPayload carries attack resolution results
type AttackResolvedPayload struct {
	Actor         core.Entity
	Host          core.Entity
	Point         int
	ChargePercent float64
	Damage        float64 // Before host point multiplier
	Dealt         float64 // Effective damage reported by host
	StaminaCost   float64
}

// AttackDeniedPayload describes a refused charge
type AttackDeniedPayload struct {
	Actor  core.Entity
	Reason DenyReason
}
