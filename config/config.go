package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/parameter"
)

// Config holds the startup settings of the game binary
// Values come from the environment first, then command-line flags override them
type Config struct {
	Speed      float64              `env:"PONG_SPEED" envDefault:"1.0"`
	Difficulty parameter.Difficulty `env:"PONG_DIFFICULTY" envDefault:"medium"`
	// MaxScore pre-fills the menu; 0 leaves it empty
	MaxScore   int    `env:"PONG_MAX_SCORE" envDefault:"0"`
	Mute       bool   `env:"PONG_MUTE" envDefault:"false"`
	Volume     int    `env:"PONG_VOLUME" envDefault:"80"`
	SampleRate int    `env:"PONG_SAMPLE_RATE" envDefault:"44100"`
	Debug      bool   `env:"PONG_DEBUG" envDefault:"false"`
	Seed       uint64 `env:"PONG_SEED" envDefault:"0"`
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers one flag per field, defaulting to the current values
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial game speed multiplier (0.5-3.0)")
	fs.TextVar(&c.Difficulty, "difficulty", c.Difficulty, "initial AI difficulty: easy, medium, hard")
	fs.IntVar(&c.MaxScore, "max-score", c.MaxScore, "pre-filled max score (1-50, 0 = unset)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound muted")
	fs.IntVar(&c.Volume, "volume", c.Volume, "master volume (0-100)")
	fs.IntVar(&c.SampleRate, "sample-rate", c.SampleRate, "audio output sample rate")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/pong.log")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	tenths := c.SpeedTenths()
	if math.IsNaN(c.Speed) || tenths < parameter.SpeedTenthsMin || tenths > parameter.SpeedTenthsMax {
		return fmt.Errorf("%w: speed %.2f outside [%.1f, %.1f]", ErrInvalid, c.Speed,
			float64(parameter.SpeedTenthsMin)/10, float64(parameter.SpeedTenthsMax)/10)
	}
	if c.Difficulty >= parameter.DifficultyCount {
		return fmt.Errorf("%w: difficulty %d", ErrInvalid, uint8(c.Difficulty))
	}
	if c.MaxScore != 0 && (c.MaxScore < parameter.MaxScoreMin || c.MaxScore > parameter.MaxScoreMax) {
		return fmt.Errorf("%w: max score %d outside [%d, %d]", ErrInvalid, c.MaxScore,
			parameter.MaxScoreMin, parameter.MaxScoreMax)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("%w: volume %d outside [0, 100]", ErrInvalid, c.Volume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.SampleRate)
	}
	return nil
}

// SpeedTenths rounds the multiplier to the nearest tenth
func (c *Config) SpeedTenths() int {
	return int(math.Round(c.Speed * 10))
}

// Audio derives the sound manager settings
func (c *Config) Audio() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:    !c.Mute,
		Volume:     c.Volume,
		SampleRate: c.SampleRate,
	}
}
