package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hexwar/ai"
	"hexwar/game"
	"hexwar/meta"
)

type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AIConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Player     int    `yaml:"player"`
	Difficulty string `yaml:"difficulty"`
}

// Config is everything needed to start a match.
type Config struct {
	Map             MapConfig `yaml:"map"`
	Seed            int64     `yaml:"seed"`
	StartingBalance int       `yaml:"starting_balance"`
	AI              AIConfig  `yaml:"ai"`
	AnimationSpeed  float64   `yaml:"animation_speed"`
}

func DefaultConfig() Config {
	return Config{
		Map:             MapConfig{Width: meta.MAP_WIDTH, Height: meta.MAP_HEIGHT},
		Seed:            1,
		StartingBalance: meta.STARTING_BALANCE,
		AI:              AIConfig{Enabled: true, Player: 1, Difficulty: string(ai.Normal)},
		AnimationSpeed:  game.DefaultAnimationSpeed,
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Map.Width < 3 || c.Map.Height < 1 {
		return fmt.Errorf("map must be at least 3x1, got %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("negative starting balance %d", c.StartingBalance)
	}
	if c.AnimationSpeed <= 0 {
		return fmt.Errorf("animation speed must be positive, got %v", c.AnimationSpeed)
	}
	if !c.AI.Enabled {
		return nil
	}
	if !game.Player(c.AI.Player).Valid() {
		return fmt.Errorf("ai player must be 0 or 1, got %d", c.AI.Player)
	}
	if _, err := ai.ParseDifficulty(c.AI.Difficulty); err != nil {
		return err
	}
	return nil
}

// aiSeat returns the configured AI seat and its income multiplier.
func (c Config) aiSeat() (*game.Player, float64) {
	if !c.AI.Enabled {
		return nil, 1
	}
	seat := game.Player(c.AI.Player)
	d, err := ai.ParseDifficulty(c.AI.Difficulty)
	if err != nil {
		return &seat, 1
	}
	return &seat, d.Multiplier()
}
