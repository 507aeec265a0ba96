package audio

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AudioConfig holds volumes and device settings
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
	MusicVolume  float64 `yaml:"music_volume"`  // relative to master
	SampleRate   int     `yaml:"sample_rate"`

	// EffectVolumes is keyed by sound name ("pickup", "win", ...)
	EffectVolumes map[string]float64 `yaml:"effects"`
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.2,
		SampleRate:   44100,
		EffectVolumes: map[string]float64{
			SoundPickup.String(): 0.3,
			SoundWin.String():    0.8,
			SoundLose.String():   0.8,
			SoundIntro.String():  0.6,
		},
	}
}

// Volume returns the effective volume of a sound, master included
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s.String()]
	if !ok {
		v = 1.0
	}
	return clampVolume(v * c.MasterVolume)
}

// MusicLevel returns the effective music volume, master included
func (c *AudioConfig) MusicLevel() float64 {
	return clampVolume(c.MusicVolume * c.MasterVolume)
}

// ApplyEnv overrides fields from environment variables
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("TAKO_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("TAKO_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as an inline map, e.g. {win: 0.5, lose: 1}
	if effectVols := os.Getenv("TAKO_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := yaml.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.EffectVolumes == nil {
				c.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for k, v := range volumes {
				c.EffectVolumes[k] = v
			}
		}
	}

	if sampleRate := os.Getenv("TAKO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// LoadAudioConfig returns defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
