package parameter

import (
	"time"
)

// Stamina Pool
const (
	// StaminaMax is the default stamina capacity
	StaminaMax = 100.0

	// StaminaGripDrainRate is stamina drained per second while hanging still
	StaminaGripDrainRate = 5.0

	// StaminaClimbDrainRate is stamina drained per second while actively climbing
	StaminaClimbDrainRate = 10.0

	// StaminaRegenRate is stamina regained per second while detached, after the regen delay
	StaminaRegenRate = 20.0

	// StaminaRegenDelay is the idle period after the last drain before regeneration starts
	StaminaRegenDelay = 1 * time.Second

	// StaminaDepletedThreshold is the level at or below which the actor is forced off
	StaminaDepletedThreshold = 0.0

	// StaminaRecoveryThreshold must be exceeded while regenerating to clear the depleted flag
	StaminaRecoveryThreshold = 25.0

	// StaminaShakeStartPenalty is the one-shot stamina cost when the host starts shaking
	StaminaShakeStartPenalty = 20.0
)

// Grip Strength Pool
const (
	// GripStrengthMax is the default grip strength capacity
	GripStrengthMax = 100.0

	// GripStrengthShakeDrainRate is grip strength lost per second while the host shakes
	GripStrengthShakeDrainRate = 30.0

	// GripStrengthRecoverRate is grip strength regained per second while the host is calm
	GripStrengthRecoverRate = 15.0
)

// Grip Search & Contact
const (
	// GripReachDistance is the primary search radius and sweep length from the actor
	GripReachDistance = 2.0

	// MaxGripPointDistance is the secondary radius for point lookup around a sweep hit
	MaxGripPointDistance = 4.0

	// ContactTolerance is the allowed drift along the surface normal before contact is lost
	ContactTolerance = 0.75

	// WallJumpCooldown blocks regrip after a jump-off
	WallJumpCooldown = 500 * time.Millisecond
)

// Climbing Motion
const (
	// ClimbSpeed is the target climb speed in units/sec at full input
	ClimbSpeed = 3.0

	// ClimbAcceleration is the rate climb velocity approaches its target (units/sec^2)
	// Decay toward zero uses twice this rate
	ClimbAcceleration = 12.0

	// ClimbInputDeadzone is the input magnitude below which the actor is considered still
	ClimbInputDeadzone = 0.1

	// ExternalVelocityDecay is the exponential decay rate of impulse velocity per second
	ExternalVelocityDecay = 3.0
)

// Jump Off Impulse
const (
	// JumpOutwardImpulse is the impulse along the surface normal (units/sec)
	JumpOutwardImpulse = 6.0

	// JumpUpwardImpulse is the impulse along world up (units/sec)
	JumpUpwardImpulse = 4.0

	// JumpInputBias scales the plane-projected move input added to the impulse
	JumpInputBias = 3.0
)
