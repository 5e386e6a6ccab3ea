package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/racesim/internal/race"
)

const (
	DefaultRounds    = 5
	DefaultThreshold = race.DefaultThreshold

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "RACESIM_"
)

type Config struct {
	Names     string `yaml:"names" env:"NAMES"`
	Rounds    int    `yaml:"rounds" env:"ROUNDS"`
	Threshold int    `yaml:"threshold" env:"THRESHOLD"`
	Seed      int64  `yaml:"seed" env:"SEED"`
}

func DefaultConfig() *Config {
	return &Config{
		Rounds:    DefaultRounds,
		Threshold: DefaultThreshold,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the settings present in the file at path onto cfg.
// Keys missing from the file leave cfg untouched.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromEnv overlays any RACESIM_* variables that are set onto cfg.
func FromEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the settings that are not validated by the race itself.
// Names and rounds are left to the race so the CLI can prompt for them.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold >= race.DrawRange {
		return fmt.Errorf("threshold must be in [0, %d], got %d", race.DrawRange-1, c.Threshold)
	}
	return nil
}
