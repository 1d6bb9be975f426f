package audio

import (
	"os"
	"strconv"
)

// Config holds audio settings resolved once at startup.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0–1.0
	SampleRate   int
}

// DefaultConfig enables audio at half volume.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// LoadConfig reads overrides from environment variables:
// ROBO_EYES_AUDIO_ENABLED (bool), ROBO_EYES_MASTER_VOLUME (0-100),
// ROBO_EYES_SAMPLE_RATE (Hz).
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ROBO_EYES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("ROBO_EYES_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("ROBO_EYES_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
