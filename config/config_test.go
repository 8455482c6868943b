package config

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/lixenwraith/pong/parameter"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Speed != 1.0 {
		t.Errorf("Speed = %v, want 1.0", cfg.Speed)
	}
	if cfg.Difficulty != parameter.DifficultyMedium {
		t.Errorf("Difficulty = %s, want medium", cfg.Difficulty)
	}
	if cfg.MaxScore != 0 {
		t.Errorf("MaxScore = %d, want 0", cfg.MaxScore)
	}
	if cfg.Volume != parameter.AudioDefaultVolume {
		t.Errorf("Volume = %d, want %d", cfg.Volume, parameter.AudioDefaultVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, parameter.AudioSampleRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PONG_SPEED", "1.5")
	t.Setenv("PONG_DIFFICULTY", "hard")
	t.Setenv("PONG_MAX_SCORE", "5")
	t.Setenv("PONG_MUTE", "true")
	t.Setenv("PONG_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SpeedTenths() != 15 {
		t.Errorf("SpeedTenths = %d, want 15", cfg.SpeedTenths())
	}
	if cfg.Difficulty != parameter.DifficultyHard {
		t.Errorf("Difficulty = %s, want hard", cfg.Difficulty)
	}
	if cfg.MaxScore != 5 {
		t.Errorf("MaxScore = %d, want 5", cfg.MaxScore)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Audio().Enabled {
		t.Error("PONG_MUTE should disable audio")
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("PONG_VOLUME", "loud")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadUnknownDifficulty(t *testing.T) {
	t.Setenv("PONG_DIFFICULTY", "impossible")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PONG_SPEED", "2.0")
	t.Setenv("PONG_DIFFICULTY", "easy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-difficulty", "hard", "-volume", "30"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if cfg.Speed != 2.0 {
		t.Errorf("Speed = %v, want env value 2.0", cfg.Speed)
	}
	if cfg.Difficulty != parameter.DifficultyHard {
		t.Errorf("Difficulty = %s, want flag value hard", cfg.Difficulty)
	}
	if cfg.Volume != 30 {
		t.Errorf("Volume = %d, want 30", cfg.Volume)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Speed:      1.0,
			Difficulty: parameter.DifficultyMedium,
			Volume:     80,
			SampleRate: 44100,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"min speed", func(c *Config) { c.Speed = 0.5 }, true},
		{"max speed", func(c *Config) { c.Speed = 3.0 }, true},
		{"speed too low", func(c *Config) { c.Speed = 0.4 }, false},
		{"speed too high", func(c *Config) { c.Speed = 3.1 }, false},
		{"max score unset", func(c *Config) { c.MaxScore = 0 }, true},
		{"max score 50", func(c *Config) { c.MaxScore = 50 }, true},
		{"max score 51", func(c *Config) { c.MaxScore = 51 }, false},
		{"negative max score", func(c *Config) { c.MaxScore = -1 }, false},
		{"volume 101", func(c *Config) { c.Volume = 101 }, false},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, false},
		{"bad difficulty", func(c *Config) { c.Difficulty = parameter.DifficultyCount }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("error %v does not wrap ErrInvalid", err)
				}
			}
		})
	}
}
