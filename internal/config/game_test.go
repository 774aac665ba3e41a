package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGameYAML = `
minigames:
  daily_limit: 5
  max_retained_games: 4
  tap_rush:
    duration: 8s
    target: 25
  sequence:
    duration: 15s
    length: 5
    symbols: 3
  reaction:
    duration: 12s
    min_delay: 1s
    max_delay: 3s
    window: 500ms
hidden:
  poll_interval: 2s
rewards:
  pending_ttl: 10m
  pending_capacity: 500
sessions:
  max: 100
  ttl: 1h
`

func TestParseGameConfig(t *testing.T) {
	cfg, err := ParseGameConfig([]byte(sampleGameYAML))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MiniGames.DailyLimit)
	assert.Equal(t, 4, cfg.MiniGames.MaxRetainedGames)
	assert.Equal(t, 8*time.Second, cfg.MiniGames.TapRush.Duration)
	assert.Equal(t, 25, cfg.MiniGames.TapRush.Target)
	assert.Equal(t, 5, cfg.MiniGames.Sequence.Length)
	assert.Equal(t, 3, cfg.MiniGames.Sequence.Symbols)
	assert.Equal(t, time.Second, cfg.MiniGames.Reaction.MinDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.MiniGames.Reaction.Window)
	assert.Equal(t, 2*time.Second, cfg.Hidden.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.Rewards.PendingTTL)
	assert.Equal(t, 500, cfg.Rewards.PendingCapacity)
	assert.Equal(t, 100, cfg.Sessions.Max)
	assert.Equal(t, time.Hour, cfg.Sessions.TTL)
}

func TestParseGameConfig_Partial(t *testing.T) {
	cfg, err := ParseGameConfig([]byte("minigames:\n  daily_limit: -1\n"))
	require.NoError(t, err)

	assert.Equal(t, -1, cfg.MiniGames.DailyLimit, "negative limit means unlimited")
	assert.Zero(t, cfg.MiniGames.TapRush.Duration, "unset fields stay zero")
	assert.Zero(t, cfg.Hidden.PollInterval)
}

func TestParseGameConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"malformed", "minigames: [", ErrMsgParseGameConfig},
		{"bad duration", "hidden:\n  poll_interval: soon\n", ErrMsgParseGameConfig},
		{"negative target", "minigames:\n  tap_rush:\n    target: -2\n", ErrMsgInvalidGameConfig},
		{"too many symbols", "minigames:\n  sequence:\n    symbols: 40\n", ErrMsgInvalidGameConfig},
		{"inverted reaction delays", "minigames:\n  reaction:\n    min_delay: 3s\n    max_delay: 1s\n", ErrMsgInvalidGameConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, GameConfig{}, cfg)
	})

	t.Run("empty path yields zero config", func(t *testing.T) {
		cfg, err := LoadGameConfig("")
		require.NoError(t, err)
		assert.Equal(t, GameConfig{}, cfg)
	})

	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleGameYAML), 0o600))

		cfg, err := LoadGameConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.MiniGames.TapRush.Target)
	})

	t.Run("unreadable path is an error", func(t *testing.T) {
		_, err := LoadGameConfig(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgReadGameConfig)
	})
}
