package traction

import (
	"fmt"
	"time"

	"github.com/lixenwraith/colossus/parameter"
)

// Config holds actor tuning; zero values are not usable, start from DefaultConfig
type Config struct {
	Stamina StaminaConfig `mapstructure:"stamina"`
	Grip    GripConfig    `mapstructure:"grip"`
	Climb   ClimbConfig   `mapstructure:"climb"`
	Jump    JumpConfig    `mapstructure:"jump"`
	Attack  AttackConfig  `mapstructure:"attack"`
}

type StaminaConfig struct {
	Max               float64       `mapstructure:"max"`
	GripDrainRate     float64       `mapstructure:"grip_drain_rate"`
	ClimbDrainRate    float64       `mapstructure:"climb_drain_rate"`
	RegenRate         float64       `mapstructure:"regen_rate"`
	RegenDelay        time.Duration `mapstructure:"regen_delay"`
	DepletedThreshold float64       `mapstructure:"depleted_threshold"`
	RecoveryThreshold float64       `mapstructure:"recovery_threshold"`
	ShakeStartPenalty float64       `mapstructure:"shake_start_penalty"`
}

// GripConfig covers grip strength tracking and the grip search
type GripConfig struct {
	StrengthEnabled  bool          `mapstructure:"strength_enabled"`
	StrengthMax      float64       `mapstructure:"strength_max"`
	ShakeDrainRate   float64       `mapstructure:"shake_drain_rate"`
	RecoverRate      float64       `mapstructure:"recover_rate"`
	ReachDistance    float64       `mapstructure:"reach_distance"`
	MaxPointDistance float64       `mapstructure:"max_point_distance"`
	ContactTolerance float64       `mapstructure:"contact_tolerance"`
	WallJumpCooldown time.Duration `mapstructure:"wall_jump_cooldown"`
}

type ClimbConfig struct {
	Speed                 float64 `mapstructure:"speed"`
	Acceleration          float64 `mapstructure:"acceleration"`
	InputDeadzone         float64 `mapstructure:"input_deadzone"`
	ExternalVelocityDecay float64 `mapstructure:"external_velocity_decay"`
}

type JumpConfig struct {
	OutwardImpulse float64 `mapstructure:"outward_impulse"`
	UpwardImpulse  float64 `mapstructure:"upward_impulse"`
	InputBias      float64 `mapstructure:"input_bias"`
	// HostMotionCarry adds the host's estimated velocity to the impulse
	HostMotionCarry bool `mapstructure:"host_motion_carry"`
}

type AttackConfig struct {
	BaseDamage       float64       `mapstructure:"base_damage"`
	ChargeMultiplier float64       `mapstructure:"charge_multiplier"`
	MaxChargeTime    time.Duration `mapstructure:"max_charge_time"`
	StaminaCost      float64       `mapstructure:"stamina_cost"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
}

// DefaultConfig returns the parameter package defaults with grip strength tracking enabled
func DefaultConfig() Config {
	return Config{
		Stamina: StaminaConfig{
			Max:               parameter.StaminaMax,
			GripDrainRate:     parameter.StaminaGripDrainRate,
			ClimbDrainRate:    parameter.StaminaClimbDrainRate,
			RegenRate:         parameter.StaminaRegenRate,
			RegenDelay:        parameter.StaminaRegenDelay,
			DepletedThreshold: parameter.StaminaDepletedThreshold,
			RecoveryThreshold: parameter.StaminaRecoveryThreshold,
			ShakeStartPenalty: parameter.StaminaShakeStartPenalty,
		},
		Grip: GripConfig{
			StrengthEnabled:  true,
			StrengthMax:      parameter.GripStrengthMax,
			ShakeDrainRate:   parameter.GripStrengthShakeDrainRate,
			RecoverRate:      parameter.GripStrengthRecoverRate,
			ReachDistance:    parameter.GripReachDistance,
			MaxPointDistance: parameter.MaxGripPointDistance,
			ContactTolerance: parameter.ContactTolerance,
			WallJumpCooldown: parameter.WallJumpCooldown,
		},
		Climb: ClimbConfig{
			Speed:                 parameter.ClimbSpeed,
			Acceleration:          parameter.ClimbAcceleration,
			InputDeadzone:         parameter.ClimbInputDeadzone,
			ExternalVelocityDecay: parameter.ExternalVelocityDecay,
		},
		Jump: JumpConfig{
			OutwardImpulse:  parameter.JumpOutwardImpulse,
			UpwardImpulse:   parameter.JumpUpwardImpulse,
			InputBias:       parameter.JumpInputBias,
			HostMotionCarry: true,
		},
		Attack: AttackConfig{
			BaseDamage:       parameter.AttackBaseDamage,
			ChargeMultiplier: parameter.AttackChargeMultiplier,
			MaxChargeTime:    parameter.AttackMaxChargeTime,
			StaminaCost:      parameter.AttackStaminaCost,
			Cooldown:         parameter.AttackCooldown,
		},
	}
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	s := c.Stamina
	switch {
	case s.Max <= 0:
		return fmt.Errorf("stamina.max must be positive, got %v", s.Max)
	case s.GripDrainRate < 0 || s.ClimbDrainRate < 0 || s.RegenRate < 0:
		return fmt.Errorf("stamina rates must not be negative")
	case s.RegenDelay < 0:
		return fmt.Errorf("stamina.regen_delay must not be negative, got %v", s.RegenDelay)
	case s.DepletedThreshold < 0 || s.DepletedThreshold >= s.Max:
		return fmt.Errorf("stamina.depleted_threshold must be in [0, max), got %v", s.DepletedThreshold)
	case s.RecoveryThreshold < s.DepletedThreshold || s.RecoveryThreshold >= s.Max:
		return fmt.Errorf("stamina.recovery_threshold must be in [depleted_threshold, max), got %v", s.RecoveryThreshold)
	case s.ShakeStartPenalty < 0:
		return fmt.Errorf("stamina.shake_start_penalty must not be negative, got %v", s.ShakeStartPenalty)
	}

	g := c.Grip
	switch {
	case g.StrengthEnabled && g.StrengthMax <= 0:
		return fmt.Errorf("grip.strength_max must be positive, got %v", g.StrengthMax)
	case g.ShakeDrainRate < 0 || g.RecoverRate < 0:
		return fmt.Errorf("grip strength rates must not be negative")
	case g.ReachDistance <= 0:
		return fmt.Errorf("grip.reach_distance must be positive, got %v", g.ReachDistance)
	case g.MaxPointDistance < g.ReachDistance:
		return fmt.Errorf("grip.max_point_distance must be at least reach_distance, got %v", g.MaxPointDistance)
	case g.ContactTolerance <= 0:
		return fmt.Errorf("grip.contact_tolerance must be positive, got %v", g.ContactTolerance)
	case g.WallJumpCooldown < 0:
		return fmt.Errorf("grip.wall_jump_cooldown must not be negative, got %v", g.WallJumpCooldown)
	}

	cl := c.Climb
	switch {
	case cl.Speed < 0 || cl.Acceleration < 0:
		return fmt.Errorf("climb speed and acceleration must not be negative")
	case cl.InputDeadzone < 0 || cl.InputDeadzone >= 1:
		return fmt.Errorf("climb.input_deadzone must be in [0, 1), got %v", cl.InputDeadzone)
	case cl.ExternalVelocityDecay < 0:
		return fmt.Errorf("climb.external_velocity_decay must not be negative, got %v", cl.ExternalVelocityDecay)
	}

	a := c.Attack
	switch {
	case a.BaseDamage < 0:
		return fmt.Errorf("attack.base_damage must not be negative, got %v", a.BaseDamage)
	case a.ChargeMultiplier < 1:
		return fmt.Errorf("attack.charge_multiplier must be at least 1, got %v", a.ChargeMultiplier)
	case a.MaxChargeTime <= 0:
		return fmt.Errorf("attack.max_charge_time must be positive, got %v", a.MaxChargeTime)
	case a.StaminaCost < 0:
		return fmt.Errorf("attack.stamina_cost must not be negative, got %v", a.StaminaCost)
	case a.Cooldown < 0:
		return fmt.Errorf("attack.cooldown must not be negative, got %v", a.Cooldown)
	}
	return nil
}
