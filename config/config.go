package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/colossus/audio"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/logging"
	"github.com/lixenwraith/colossus/parameter"
	"github.com/lixenwraith/colossus/traction"
)

// FileName is the config file searched for in the config directory
const FileName = "colossus"

// EnvPrefix prefixes environment overrides, e.g. COLOSSUS_TRACTION_STAMINA_MAX
const EnvPrefix = "COLOSSUS"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// SimConfig drives the demo loop
type SimConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Headless     bool          `mapstructure:"headless"`
	Duration     time.Duration `mapstructure:"duration"` // headless run length
	Seed         uint64        `mapstructure:"seed"`     // 0 derives host seeds from entity IDs
}

// Config is the full application configuration
type Config struct {
	Sim      SimConfig       `mapstructure:"sim"`
	Traction traction.Config `mapstructure:"traction"`
	Host     host.Config     `mapstructure:"host"`
	Logging  logging.Config  `mapstructure:"logging"`
	Audio    audio.Config    `mapstructure:"audio"`
}

// Default returns the built-in configuration without reading any file
func Default() Config {
	return Config{
		Sim: SimConfig{
			TickInterval: parameter.GameUpdateInterval,
			Duration:     30 * time.Second,
		},
		Traction: traction.DefaultConfig(),
		Host:     host.DefaultConfig(),
		Logging:  logging.DefaultConfig(),
		Audio:    audio.DefaultConfig(),
	}
}

// Load reads colossus.toml from configDir over the defaults, then applies environment overrides
// A missing file is not an error; a malformed one is
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and wraps the first failure in ErrInvalid
func (c Config) Validate() error {
	if c.Sim.TickInterval <= 0 {
		return fmt.Errorf("%w: sim.tick_interval must be positive, got %v", ErrInvalid, c.Sim.TickInterval)
	}
	if c.Sim.Headless && c.Sim.Duration <= 0 {
		return fmt.Errorf("%w: sim.duration must be positive in headless mode, got %v", ErrInvalid, c.Sim.Duration)
	}
	if err := c.Traction.Validate(); err != nil {
		return fmt.Errorf("%w: traction: %w", ErrInvalid, err)
	}
	if err := c.Host.Validate(); err != nil {
		return fmt.Errorf("%w: host: %w", ErrInvalid, err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("sim.tick_interval", d.Sim.TickInterval)
	v.SetDefault("sim.headless", d.Sim.Headless)
	v.SetDefault("sim.duration", d.Sim.Duration)
	v.SetDefault("sim.seed", d.Sim.Seed)

	st := d.Traction.Stamina
	v.SetDefault("traction.stamina.max", st.Max)
	v.SetDefault("traction.stamina.grip_drain_rate", st.GripDrainRate)
	v.SetDefault("traction.stamina.climb_drain_rate", st.ClimbDrainRate)
	v.SetDefault("traction.stamina.regen_rate", st.RegenRate)
	v.SetDefault("traction.stamina.regen_delay", st.RegenDelay)
	v.SetDefault("traction.stamina.depleted_threshold", st.DepletedThreshold)
	v.SetDefault("traction.stamina.recovery_threshold", st.RecoveryThreshold)
	v.SetDefault("traction.stamina.shake_start_penalty", st.ShakeStartPenalty)

	gr := d.Traction.Grip
	v.SetDefault("traction.grip.strength_enabled", gr.StrengthEnabled)
	v.SetDefault("traction.grip.strength_max", gr.StrengthMax)
	v.SetDefault("traction.grip.shake_drain_rate", gr.ShakeDrainRate)
	v.SetDefault("traction.grip.recover_rate", gr.RecoverRate)
	v.SetDefault("traction.grip.reach_distance", gr.ReachDistance)
	v.SetDefault("traction.grip.max_point_distance", gr.MaxPointDistance)
	v.SetDefault("traction.grip.contact_tolerance", gr.ContactTolerance)
	v.SetDefault("traction.grip.wall_jump_cooldown", gr.WallJumpCooldown)

	cl := d.Traction.Climb
	v.SetDefault("traction.climb.speed", cl.Speed)
	v.SetDefault("traction.climb.acceleration", cl.Acceleration)
	v.SetDefault("traction.climb.input_deadzone", cl.InputDeadzone)
	v.SetDefault("traction.climb.external_velocity_decay", cl.ExternalVelocityDecay)

	jp := d.Traction.Jump
	v.SetDefault("traction.jump.outward_impulse", jp.OutwardImpulse)
	v.SetDefault("traction.jump.upward_impulse", jp.UpwardImpulse)
	v.SetDefault("traction.jump.input_bias", jp.InputBias)
	v.SetDefault("traction.jump.host_motion_carry", jp.HostMotionCarry)

	at := d.Traction.Attack
	v.SetDefault("traction.attack.base_damage", at.BaseDamage)
	v.SetDefault("traction.attack.charge_multiplier", at.ChargeMultiplier)
	v.SetDefault("traction.attack.max_charge_time", at.MaxChargeTime)
	v.SetDefault("traction.attack.stamina_cost", at.StaminaCost)
	v.SetDefault("traction.attack.cooldown", at.Cooldown)

	h := d.Host
	v.SetDefault("host.max_health", h.MaxHealth)
	v.SetDefault("host.collision_radius", h.CollisionRadius)
	v.SetDefault("host.detection_radius", h.DetectionRadius)
	v.SetDefault("host.aggro_multiplier", h.AggroMultiplier)
	v.SetDefault("host.shake.enabled", h.Shake.Enabled)
	v.SetDefault("host.shake.duration", h.Shake.Duration)
	v.SetDefault("host.shake.base_interval", h.Shake.BaseInterval)
	v.SetDefault("host.shake.interval_jitter", h.Shake.IntervalJitter)
	v.SetDefault("host.shake.min_interval", h.Shake.MinInterval)
	v.SetDefault("host.shake.intensity", h.Shake.Intensity)
	v.SetDefault("host.shake.frequency", h.Shake.Frequency)
	v.SetDefault("host.shake.drain_multiplier", h.Shake.DrainMultiplier)
	v.SetDefault("host.movement.enabled", h.Movement.Enabled)
	v.SetDefault("host.movement.speed", h.Movement.Speed)
	v.SetDefault("host.movement.loop", h.Movement.Loop)
	v.SetDefault("host.movement.arrive_tolerance", h.Movement.ArriveTolerance)
	v.SetDefault("host.movement.face_movement", h.Movement.FaceMovement)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.master_volume", d.Audio.MasterVolume)
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
}
