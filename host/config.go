package host

import (
	"fmt"
	"time"

	"github.com/lixenwraith/colossus/parameter"
)

// Config holds tuning for one climbable host
type Config struct {
	MaxHealth       float64        `mapstructure:"max_health"`
	CollisionRadius float64        `mapstructure:"collision_radius"`
	DetectionRadius float64        `mapstructure:"detection_radius"`
	AggroMultiplier float64        `mapstructure:"aggro_multiplier"`
	Shake           ShakeConfig    `mapstructure:"shake"`
	Movement        MovementConfig `mapstructure:"movement"`
}

// ShakeConfig controls the shake scheduler
type ShakeConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Duration        time.Duration `mapstructure:"duration"`
	BaseInterval    time.Duration `mapstructure:"base_interval"`
	IntervalJitter  time.Duration `mapstructure:"interval_jitter"`
	MinInterval     time.Duration `mapstructure:"min_interval"`
	Intensity       float64       `mapstructure:"intensity"`
	Frequency       float64       `mapstructure:"frequency"`
	DrainMultiplier float64       `mapstructure:"drain_multiplier"`
}

// MovementConfig controls waypoint following
type MovementConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	Speed           float64 `mapstructure:"speed"`
	Loop            bool    `mapstructure:"loop"`
	ArriveTolerance float64 `mapstructure:"arrive_tolerance"`
	FaceMovement    bool    `mapstructure:"face_movement"`
}

// DefaultConfig returns the parameter package defaults
func DefaultConfig() Config {
	return Config{
		MaxHealth:       parameter.HostMaxHealth,
		CollisionRadius: parameter.HostCollisionRadius,
		DetectionRadius: parameter.HostDetectionRadius,
		AggroMultiplier: parameter.HostAggroMultiplier,
		Shake: ShakeConfig{
			Enabled:         true,
			Duration:        parameter.HostShakeDuration,
			BaseInterval:    parameter.HostShakeBaseInterval,
			IntervalJitter:  parameter.HostShakeIntervalJitter,
			MinInterval:     parameter.HostShakeMinInterval,
			Intensity:       parameter.HostShakeIntensity,
			Frequency:       parameter.HostShakeFrequency,
			DrainMultiplier: parameter.HostShakeDrainMultiplier,
		},
		Movement: MovementConfig{
			Enabled:         true,
			Speed:           parameter.HostMoveSpeed,
			Loop:            true,
			ArriveTolerance: parameter.HostArriveTolerance,
		},
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case c.MaxHealth <= 0:
		return fmt.Errorf("max_health must be positive, got %v", c.MaxHealth)
	case c.CollisionRadius < 0:
		return fmt.Errorf("collision_radius must not be negative, got %v", c.CollisionRadius)
	case c.DetectionRadius < 0:
		return fmt.Errorf("detection_radius must not be negative, got %v", c.DetectionRadius)
	case c.AggroMultiplier <= 0:
		return fmt.Errorf("aggro_multiplier must be positive, got %v", c.AggroMultiplier)
	}
	if c.Shake.Enabled {
		switch {
		case c.Shake.Duration <= 0:
			return fmt.Errorf("shake.duration must be positive, got %v", c.Shake.Duration)
		case c.Shake.BaseInterval <= 0:
			return fmt.Errorf("shake.base_interval must be positive, got %v", c.Shake.BaseInterval)
		case c.Shake.IntervalJitter < 0:
			return fmt.Errorf("shake.interval_jitter must not be negative, got %v", c.Shake.IntervalJitter)
		case c.Shake.DrainMultiplier < 0:
			return fmt.Errorf("shake.drain_multiplier must not be negative, got %v", c.Shake.DrainMultiplier)
		}
	}
	if c.Movement.Enabled && c.Movement.Speed < 0 {
		return fmt.Errorf("movement.speed must not be negative, got %v", c.Movement.Speed)
	}
	return nil
}
