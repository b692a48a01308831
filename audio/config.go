package audio

import (
	"fmt"

	"github.com/lixenwraith/colossus/parameter"
)

// Config controls the cue player
type Config struct {
	Enabled      bool    `mapstructure:"enabled"`
	MasterVolume float64 `mapstructure:"master_volume"`
	SampleRate   int     `mapstructure:"sample_rate"`
}

// DefaultConfig has audio off; the demo enables it explicitly
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MasterVolume < 0 || c.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume must be in [0, 1], got %v", c.MasterVolume)
	case c.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.SampleRate)
	}
	return nil
}
