package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// GameConfig is the gameplay tuning read from configs/game.yaml.
// Zero fields fall back to the defaults of the package that consumes them.
type GameConfig struct {
	MiniGames MiniGameConfig `yaml:"minigames"`
	Hidden    HiddenConfig   `yaml:"hidden"`
	Rewards   RewardConfig   `yaml:"rewards"`
	Sessions  SessionConfig  `yaml:"sessions"`
}

// MiniGameConfig tunes the mini-game variants
type MiniGameConfig struct {
	// DailyLimit caps plays per local calendar day. Negative means unlimited.
	DailyLimit       int `yaml:"daily_limit"`
	MaxRetainedGames int `yaml:"max_retained_games" validate:"gte=0"`

	TapRush  TapRushConfig  `yaml:"tap_rush"`
	Sequence SequenceConfig `yaml:"sequence"`
	Reaction ReactionConfig `yaml:"reaction"`
}

type TapRushConfig struct {
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	Target   int           `yaml:"target" validate:"gte=0"`
}

type SequenceConfig struct {
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	Length   int           `yaml:"length" validate:"gte=0,lte=32"`
	Symbols  int           `yaml:"symbols" validate:"gte=0,lte=16"`
}

type ReactionConfig struct {
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	MinDelay time.Duration `yaml:"min_delay" validate:"gte=0"`
	MaxDelay time.Duration `yaml:"max_delay" validate:"gte=0"`
	Window   time.Duration `yaml:"window" validate:"gte=0"`
}

type HiddenConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" validate:"gte=0"`
}

type RewardConfig struct {
	PendingTTL      time.Duration `yaml:"pending_ttl" validate:"gte=0"`
	PendingCapacity int           `yaml:"pending_capacity" validate:"gte=0"`
}

type SessionConfig struct {
	Max int           `yaml:"max" validate:"gte=0"`
	TTL time.Duration `yaml:"ttl" validate:"gte=0"`
}

// LoadGameConfig reads the tuning file. A missing file yields the zero config.
func LoadGameConfig(path string) (GameConfig, error) {
	var cfg GameConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", ErrMsgReadGameConfig, err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig decodes and validates YAML tuning
func ParseGameConfig(data []byte) (GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("%s: %w", ErrMsgParseGameConfig, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return GameConfig{}, fmt.Errorf("%s: %w", ErrMsgInvalidGameConfig, err)
	}
	if cfg.MiniGames.Reaction.MaxDelay > 0 && cfg.MiniGames.Reaction.MaxDelay < cfg.MiniGames.Reaction.MinDelay {
		return GameConfig{}, fmt.Errorf("%s: reaction max_delay is below min_delay", ErrMsgInvalidGameConfig)
	}
	return cfg, nil
}
