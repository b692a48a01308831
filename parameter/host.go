package parameter

import (
	"time"
)

// Host Health
const (
	// HostMaxHealth is the default host hit points
	HostMaxHealth = 1000.0
)

// Host Shake Scheduling
const (
	// HostShakeDuration is how long one shake lasts
	HostShakeDuration = 2 * time.Second

	// HostShakeBaseInterval is the average wait between shakes
	HostShakeBaseInterval = 8 * time.Second

	// HostShakeIntervalJitter is the uniform +/- spread applied to each interval
	HostShakeIntervalJitter = 2 * time.Second

	// HostShakeIntensity scales the noise offset (world units)
	HostShakeIntensity = 0.15

	// HostShakeFrequency is the base noise frequency in Hz
	HostShakeFrequency = 6.0

	// HostShakeDrainMultiplier multiplies stamina drain of attached actors while shaking
	HostShakeDrainMultiplier = 3.0

	// HostShakeMinInterval is the floor for a jittered interval
	HostShakeMinInterval = 500 * time.Millisecond
)

// Host Aggro
const (
	// HostDetectionRadius is the range within which gripping actors provoke the host
	HostDetectionRadius = 12.0

	// HostAggroMultiplier divides the base interval when a gripper is detected
	HostAggroMultiplier = 2.0
)

// Host Movement
const (
	// HostMoveSpeed is the waypoint travel speed (units/sec)
	HostMoveSpeed = 1.5

	// HostArriveTolerance is the waypoint arrival radius
	HostArriveTolerance = 0.05

	// HostCollisionRadius is the default sweep sphere radius
	HostCollisionRadius = 5.0
)
