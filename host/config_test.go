package host

import (
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero health", func(c *Config) { c.MaxHealth = 0 }},
		{"negative radius", func(c *Config) { c.CollisionRadius = -1 }},
		{"negative detection", func(c *Config) { c.DetectionRadius = -1 }},
		{"zero aggro", func(c *Config) { c.AggroMultiplier = 0 }},
		{"zero shake duration", func(c *Config) { c.Shake.Duration = 0 }},
		{"zero interval", func(c *Config) { c.Shake.BaseInterval = 0 }},
		{"negative jitter", func(c *Config) { c.Shake.IntervalJitter = -time.Second }},
		{"negative drain multiplier", func(c *Config) { c.Shake.DrainMultiplier = -1 }},
		{"negative speed", func(c *Config) { c.Movement.Speed = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	calm := DefaultConfig()
	calm.Shake.Enabled = false
	calm.Shake.Duration = 0
	calm.Movement.Enabled = false
	calm.Movement.Speed = -1
	if err := calm.Validate(); err != nil {
		t.Errorf("disabled sections should not be checked: %v", err)
	}
}
