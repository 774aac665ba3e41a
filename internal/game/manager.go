// Package game assembles per-player sessions from saved state and serializes
// every action a player takes.
package game

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IconIdle_Go/internal/catalog"
	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/concurrency"
	"github.com/osse101/IconIdle_Go/internal/crafting"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/hidden"
	"github.com/osse101/IconIdle_Go/internal/inventory"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/metrics"
	"github.com/osse101/IconIdle_Go/internal/minigame"
	"github.com/osse101/IconIdle_Go/internal/reward"
	"github.com/osse101/IconIdle_Go/internal/savestate"
)

// Config wires the shared collaborators every session uses
type Config struct {
	Catalog      *catalog.Catalog
	Saves        *savestate.Manager
	Bus          event.Bus
	Pending      *reward.PendingStore
	Clock        clock.Clock
	MiniGames    minigame.Settings
	PollInterval time.Duration
	MaxSessions  int
	SessionTTL   time.Duration
	// Seed makes mini-game setup reproducible per player. Zero uses the clock.
	Seed uint64
}

// Manager owns the live sessions
type Manager struct {
	cfg      Config
	locks    *concurrency.LockManager
	sessions *expirable.LRU[string, *Session]
}

// NewManager creates a session manager
func NewManager(cfg Config) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = clock.NewRealClock()
	}
	if cfg.Pending == nil {
		cfg.Pending = reward.NewPendingStore(0, 0)
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	cfg.MiniGames = cfg.MiniGames.WithDefaults()

	return &Manager{
		cfg:      cfg,
		locks:    concurrency.NewLockManager(),
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}

// Catalog returns the shared icon catalog
func (m *Manager) Catalog() *catalog.Catalog {
	return m.cfg.Catalog
}

// Clock returns the manager's time source
func (m *Manager) Clock() clock.Clock {
	return m.cfg.Clock
}

// With runs fn on the player's session while holding the player's lock,
// loading the session from saved state first when needed.
func (m *Manager) With(ctx context.Context, playerID string, fn func(s *Session) error) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	ctx = logger.WithPlayerID(ctx, playerID)

	return m.locks.With(playerID, func() error {
		s, err := m.sessionLocked(ctx, playerID)
		if err != nil {
			return err
		}
		return fn(s)
	})
}

// Sessions returns the live sessions
func (m *Manager) Sessions() []*Session {
	return m.sessions.Values()
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Evict drops a live session. Saved state is kept.
func (m *Manager) Evict(playerID string) bool {
	var removed bool
	_ = m.locks.With(playerID, func() error {
		removed = m.sessions.Remove(playerID)
		return nil
	})
	metrics.ActiveSessions.Set(float64(m.sessions.Len()))
	return removed
}

// Reset deletes a player's saved state, discards their unclaimed rewards and
// drops the live session
func (m *Manager) Reset(ctx context.Context, playerID string) error {
	var dropped int
	err := m.locks.With(playerID, func() error {
		if err := m.cfg.Saves.Reset(ctx, playerID); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
		}
		dropped = m.cfg.Pending.DropPlayer(playerID)
		m.sessions.Remove(playerID)
		return nil
	})
	if err != nil {
		return err
	}
	metrics.ActiveSessions.Set(float64(m.sessions.Len()))
	logger.FromContext(ctx).Info(LogMsgSessionReset, "player_id", playerID, "rewards_discarded", dropped)
	return nil
}

// PollHidden runs the hidden-challenge poller of every live session that has
// reported a device state. It returns the number of challenges completed.
func (m *Manager) PollHidden(ctx context.Context) int {
	now := m.cfg.Clock.Now()
	completed := 0
	for _, s := range m.sessions.Values() {
		if _, _, ok := s.Device(); !ok {
			continue
		}
		completed += m.pollSession(ctx, s, now)
	}
	return completed
}

// pollSession polls s under the player's lock. A session that expired or was
// reloaded since it was listed is skipped.
func (m *Manager) pollSession(ctx context.Context, s *Session, now time.Time) int {
	completed := 0
	_ = m.locks.With(s.PlayerID, func() error {
		if current, ok := m.sessions.Peek(s.PlayerID); !ok || current != s {
			return nil
		}
		state, _, ok := s.Device()
		if !ok {
			return nil
		}
		pctx := logger.WithPlayerID(ctx, s.PlayerID)
		completions, ran := s.Poller.Poll(pctx, now, state)
		if ran && len(completions) > 0 {
			logger.FromContext(pctx).Info(LogMsgPollCompleted, "completed", len(completions))
		}
		completed = len(completions)
		return nil
	})
	return completed
}

func (m *Manager) sessionLocked(ctx context.Context, playerID string) (*Session, error) {
	if s, ok := m.sessions.Get(playerID); ok {
		return s, nil
	}

	s, err := m.load(ctx, playerID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLoadFailed, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}
	m.sessions.Add(playerID, s)
	metrics.ActiveSessions.Set(float64(m.sessions.Len()))
	logger.FromContext(ctx).Info(LogMsgSessionLoaded, "sessions", m.sessions.Len())
	return s, nil
}

func (m *Manager) load(ctx context.Context, playerID string) (*Session, error) {
	saves := m.cfg.Saves

	invBlob, err := saves.LoadInventory(ctx, playerID)
	if err != nil {
		return nil, err
	}
	discovery, err := saves.LoadDiscovery(ctx, playerID)
	if err != nil {
		return nil, err
	}
	completion, err := saves.LoadCompletion(ctx, playerID)
	if err != nil {
		return nil, err
	}
	plays, err := saves.LoadDailyPlays(ctx, playerID)
	if err != nil {
		return nil, err
	}

	inv := inventory.New(playerID, invBlob, saves)

	craft := crafting.NewService(playerID, crafting.NewDefaultRegistry(), m.cfg.Catalog, inv, saves, m.cfg.Bus)
	craft.RestoreDiscovery(ctx, discovery)

	rewards := reward.NewService(playerID, m.cfg.Catalog, inv, m.cfg.Pending, m.cfg.Bus, m.cfg.Clock)

	tracker := hidden.NewTracker(ctx, playerID, completion, inv, saves, m.cfg.Bus)

	limiter := minigame.NewLimiter(m.cfg.MiniGames.DailyLimit, m.cfg.Clock, plays)
	games := minigame.NewService(playerID, m.cfg.MiniGames, limiter, saves, rewards, m.cfg.Bus, m.randFor(playerID), m.cfg.Clock)

	return &Session{
		PlayerID:  playerID,
		Inventory: inv,
		Crafting:  craft,
		Rewards:   rewards,
		Hidden:    tracker,
		Poller:    hidden.NewPoller(tracker, m.cfg.PollInterval),
		MiniGames: games,
	}, nil
}

func (m *Manager) randFor(playerID string) catalog.RandSource {
	if m.cfg.Seed == 0 {
		return catalog.NewRandSource(0)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(playerID))
	return catalog.NewRandSource(m.cfg.Seed ^ h.Sum64())
}
