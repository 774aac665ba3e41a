package bootstrap

import (
	"github.com/osse101/IconIdle_Go/internal/catalog"
	"github.com/osse101/IconIdle_Go/internal/config"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/game"
	"github.com/osse101/IconIdle_Go/internal/minigame"
	"github.com/osse101/IconIdle_Go/internal/reward"
	"github.com/osse101/IconIdle_Go/internal/savestate"
)

// MiniGameSettings maps the tuning file onto the mini-game settings.
// Zero values are filled by the mini-game package defaults.
func MiniGameSettings(c config.MiniGameConfig) minigame.Settings {
	return minigame.Settings{
		DailyLimit:       c.DailyLimit,
		MaxRetainedGames: c.MaxRetainedGames,
		TapRushDuration:  c.TapRush.Duration,
		TapTarget:        c.TapRush.Target,
		SequenceDuration: c.Sequence.Duration,
		SequenceLength:   c.Sequence.Length,
		SequenceSymbols:  c.Sequence.Symbols,
		ReactionDuration: c.Reaction.Duration,
		ReactionMinDelay: c.Reaction.MinDelay,
		ReactionMaxDelay: c.Reaction.MaxDelay,
		ReactionWindow:   c.Reaction.Window,
	}.WithDefaults()
}

// NewGameManager builds the session manager from configuration
func NewGameManager(cfg *config.Config, cat *catalog.Catalog, kv savestate.KV, bus event.Bus) *game.Manager {
	return game.NewManager(game.Config{
		Catalog:      cat,
		Saves:        savestate.NewManager(kv),
		Bus:          bus,
		Pending:      reward.NewPendingStore(cfg.Game.Rewards.PendingCapacity, cfg.Game.Rewards.PendingTTL),
		MiniGames:    MiniGameSettings(cfg.Game.MiniGames),
		PollInterval: cfg.Game.Hidden.PollInterval,
		MaxSessions:  cfg.Game.Sessions.Max,
		SessionTTL:   cfg.Game.Sessions.TTL,
		Seed:         cfg.Seed,
	})
}

// NewCatalog seeds the default icon catalog
func NewCatalog(seed uint64) (*catalog.Catalog, error) {
	cat := catalog.New(catalog.NewRandSource(seed))
	if err := cat.InitializeDefault(); err != nil {
		return nil, err
	}
	return cat, nil
}
