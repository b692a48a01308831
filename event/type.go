package event

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value and is never emitted
	EventNone EventType = iota

	// === Host Event ===

	// EventHostShakeStart signals a host began convulsing
	// Trigger: Host.Update shake scheduler
	// Consumer: attached Controller (penalty), observers | Payload: *HostShakePayload
	EventHostShakeStart

	// EventHostShakeEnd signals a shake finished or was cut short by death
	// Trigger: Host.Update shake scheduler, Host.TakeDamage on death
	// Consumer: attached Controller, observers | Payload: *HostShakePayload
	EventHostShakeEnd

	// EventHostMoved signals the host translated along its waypoint path this tick
	// Trigger: Host.Update movement
	// Consumer: attached Controller (velocity estimate) | Payload: *HostMovedPayload
	EventHostMoved

	// EventHostDamaged signals the host lost health
	// Trigger: Host.TakeDamage
	// Consumer: observers | Payload: *HostDamagedPayload
	EventHostDamaged

	// EventHostDeath signals the host health reached zero; terminal
	// Trigger: Host.TakeDamage
	// Consumer: attached Controller (forced detach), observers | Payload: *HostDeathPayload
	EventHostDeath

	// === Actor Event ===

	// EventGripStart signals an actor attached to a host
	// Trigger: Controller grip command
	// Consumer: observers | Payload: *GripStartPayload
	EventGripStart

	// EventGripEnd signals an actor detached, voluntarily or forced
	// Trigger: Controller detach path
	// Consumer: observers | Payload: *GripEndPayload
	EventGripEnd

	// EventGripFailed signals a denied grip command
	// Trigger: Controller grip command
	// Consumer: observers | Payload: *GripFailedPayload
	EventGripFailed

	// EventGripPointChanged signals a hand-over-hand transition to a discrete point
	// Trigger: Controller climb search
	// Consumer: observers | Payload: *GripPointChangedPayload
	EventGripPointChanged

	// EventStaminaChanged signals the stamina pool moved this tick
	// Trigger: Controller stamina accounting, shake penalty, attack cost
	// Consumer: observers | Payload: *PoolChangedPayload
	EventStaminaChanged

	// EventGripStrengthChanged signals the grip strength pool moved this tick
	// Trigger: Controller grip accounting
	// Consumer: observers | Payload: *PoolChangedPayload
	EventGripStrengthChanged

	// EventJumpOff signals a jump-off impulse was applied
	// Trigger: Controller jump command
	// Consumer: observers | Payload: *JumpOffPayload
	EventJumpOff

	// EventChargeStart signals an attack charge began
	// Trigger: Controller charge press
	// Consumer: observers | Payload: *ChargePayload
	EventChargeStart

	// EventAttackResolved signals a released charge struck the host
	// Trigger: Controller charge release
	// Consumer: observers | Payload: *AttackResolvedPayload
	EventAttackResolved

	// EventAttackDenied signals a charge press was refused
	// Trigger: Controller charge press
	// Consumer: observers | Payload: *AttackDeniedPayload
	EventAttackDenied

	// eventTypeCount is a sentinel for iteration; keep last
	eventTypeCount
)

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any

	// Frame is the tick number the event was produced in
	Frame int64

	// Time is the simulation time the event was produced at
	Time time.Duration
}

// AllTypes returns every emitted event type, for observers that want everything
func AllTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount-1)
	for t := EventNone + 1; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
