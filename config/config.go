// Package config loads game settings from an optional YAML file and the environment.
// Precedence, lowest first: defaults, file, environment, command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tako/audio"
	"github.com/lixenwraith/tako/game"
	"github.com/lixenwraith/tako/maze"
)

// DefaultPath is read when no file is given; a missing default file is not an error
const DefaultPath = "tako.yaml"

var ErrInvalid = errors.New("config: invalid value")

// GenerateConfig enables procedural levels
type GenerateConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Braiding float64 `yaml:"braiding"`
	Enemies  int     `yaml:"enemies"`
}

// Config is the full game configuration
type Config struct {
	Difficulty    game.Difficulty `yaml:"difficulty"`
	StepInterval  time.Duration   `yaml:"step_interval"`
	WinCountdown  time.Duration   `yaml:"win_countdown"`
	LoseCountdown time.Duration   `yaml:"lose_countdown"`
	FPS           int             `yaml:"fps"`
	Seed          int64           `yaml:"seed"` // 0 = time based

	LevelFile string         `yaml:"level_file"`
	Generate  GenerateConfig `yaml:"generate"`

	Audio *audio.AudioConfig `yaml:"audio"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Difficulty:    game.Playable,
		StepInterval:  game.DefaultStepInterval,
		WinCountdown:  game.DefaultWinCountdown,
		LoseCountdown: game.DefaultLoseCountdown,
		FPS:           60,
		Generate: GenerateConfig{
			Width:    19,
			Height:   15,
			Braiding: 0.3,
			Enemies:  3,
		},
		Audio: audio.DefaultAudioConfig(),
	}
}

// Load reads path (DefaultPath when empty), applies environment overrides and validates
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TAKO_* environment variables
func (c *Config) ApplyEnv() {
	if d := os.Getenv("TAKO_DIFFICULTY"); d != "" {
		if val, err := game.ParseDifficulty(d); err == nil {
			c.Difficulty = val
		}
	}
	if step := os.Getenv("TAKO_STEP_INTERVAL"); step != "" {
		if val, err := time.ParseDuration(step); err == nil {
			c.StepInterval = val
		}
	}
	if seed := os.Getenv("TAKO_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}
	if c.Audio == nil {
		c.Audio = audio.DefaultAudioConfig()
	}
	c.Audio.ApplyEnv()
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.StepInterval <= 0:
		return fmt.Errorf("%w: step_interval must be positive, got %v", ErrInvalid, c.StepInterval)
	case c.WinCountdown < 0 || c.LoseCountdown < 0:
		return fmt.Errorf("%w: countdowns must not be negative", ErrInvalid)
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalid, c.FPS)
	case c.Audio != nil && (c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1):
		return fmt.Errorf("%w: audio.master_volume must be in 0..1", ErrInvalid)
	case c.Audio != nil && (c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1):
		return fmt.Errorf("%w: audio.music_volume must be in 0..1", ErrInvalid)
	case c.Audio != nil && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	return nil
}

// Layout returns the level text: the level file, a generated maze, or the stock level
func (c *Config) Layout() (string, error) {
	switch {
	case c.LevelFile != "":
		data, err := os.ReadFile(c.LevelFile)
		if err != nil {
			return "", fmt.Errorf("read level: %w", err)
		}
		return string(data), nil
	case c.Generate.Enabled:
		return maze.GenerateLayout(maze.GenConfig{
			Width:    c.Generate.Width,
			Height:   c.Generate.Height,
			Braiding: c.Generate.Braiding,
			Enemies:  c.Generate.Enemies,
			Seed:     c.Seed,
		})
	default:
		return maze.DefaultLayout, nil
	}
}

// GameConfig builds the simulation config for difficulty d
func (c *Config) GameConfig(d game.Difficulty, layout string) game.Config {
	return game.Config{
		Layout:        layout,
		Difficulty:    d,
		StepInterval:  c.StepInterval,
		WinCountdown:  c.WinCountdown,
		LoseCountdown: c.LoseCountdown,
	}
}

// FrameInterval returns the render tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
