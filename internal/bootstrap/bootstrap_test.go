package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/config"
	"github.com/osse101/IconIdle_Go/internal/database/memory"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/game"
	"github.com/osse101/IconIdle_Go/internal/minigame"
	"github.com/osse101/IconIdle_Go/internal/scheduler"
	"github.com/osse101/IconIdle_Go/internal/sse"
	"github.com/osse101/IconIdle_Go/internal/worker"
)

func TestOpenStore_Memory(t *testing.T) {
	store, err := OpenStore(context.Background(), &config.Config{StoreDriver: config.StoreDriverMemory})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.IsType(t, &memory.SaveStore{}, store)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStore_Unsupported(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "sqlite"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedStoreType)
}

func TestOpenStore_RedisUnreachable(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{
		StoreDriver: config.StoreDriverRedis,
		RedisURL:    "not a url",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedConnectRedis)
}

func TestMiniGameSettings(t *testing.T) {
	t.Run("zero config uses defaults", func(t *testing.T) {
		assert.Equal(t, minigame.DefaultSettings(), MiniGameSettings(config.MiniGameConfig{}))
	})

	t.Run("maps every field", func(t *testing.T) {
		s := MiniGameSettings(config.MiniGameConfig{
			DailyLimit:       -1,
			MaxRetainedGames: 3,
			TapRush:          config.TapRushConfig{Duration: 5 * time.Second, Target: 12},
			Sequence:         config.SequenceConfig{Duration: 9 * time.Second, Length: 4, Symbols: 3},
			Reaction: config.ReactionConfig{
				Duration: 6 * time.Second,
				MinDelay: time.Second,
				MaxDelay: 2 * time.Second,
				Window:   300 * time.Millisecond,
			},
		})

		assert.Equal(t, -1, s.DailyLimit)
		assert.Equal(t, 3, s.MaxRetainedGames)
		assert.Equal(t, 5*time.Second, s.TapRushDuration)
		assert.Equal(t, 12, s.TapTarget)
		assert.Equal(t, 9*time.Second, s.SequenceDuration)
		assert.Equal(t, 4, s.SequenceLength)
		assert.Equal(t, 3, s.SequenceSymbols)
		assert.Equal(t, 6*time.Second, s.ReactionDuration)
		assert.Equal(t, time.Second, s.ReactionMinDelay)
		assert.Equal(t, 2*time.Second, s.ReactionMaxDelay)
		assert.Equal(t, 300*time.Millisecond, s.ReactionWindow)
	})
}

func TestNewGameManager(t *testing.T) {
	cat, err := NewCatalog(7)
	require.NoError(t, err)
	assert.Positive(t, len(cat.All()))

	cfg := &config.Config{Seed: 7}
	cfg.Game.Sessions.Max = 2

	manager := NewGameManager(cfg, cat, memory.NewSaveStore(), event.NewMemoryBus())
	require.NotNil(t, manager)
	assert.Same(t, cat, manager.Catalog())

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, manager.With(context.Background(), id, func(s *game.Session) error { return nil }))
	}
	assert.Equal(t, 2, manager.Len(), "session cap comes from the tuning file")
}

func TestInitializeEventSystem(t *testing.T) {
	deadLetter := filepath.Join(t.TempDir(), "nested", "dead.jsonl")
	bus, publisher, err := InitializeEventSystem(&config.Config{EventDeadLetterPath: deadLetter})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Dir(deadLetter))
	require.NoError(t, err, "dead-letter directory is created")

	received := make(chan event.Event, 1)
	bus.Subscribe(event.IconUnlocked, func(ctx context.Context, evt event.Event) error {
		received <- evt
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), event.NewIconUnlockedEvent("alice", "wood", "craft")))
	select {
	case evt := <-received:
		assert.Equal(t, "alice", evt.PlayerID())
	case <-time.After(time.Second):
		t.Fatal("event not delivered through the publisher")
	}
	publisher.Wait()
}

func TestRegisterEventHandlers_ForwardsToHub(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	bus := event.NewMemoryBus()
	RegisterEventHandlers(bus, hub)

	client := hub.Register(sse.Filter{})
	t.Cleanup(func() { hub.Unregister(client.ID) })
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), event.NewIconUnlockedEvent("alice", "wood", "craft")))

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.IconUnlocked), evt.Type)
	case <-time.After(time.Second):
		t.Fatal("event not forwarded to the hub")
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < LogFileRetentionLimit+2; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2024-01-01_00-00-00"), "oldest files go first")
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	logFile, err := SetupLogger(&config.Config{
		LogDir:    dir,
		LogLevel:  "debug",
		LogFormat: "json",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = logFile.Close() })

	slog.Info("hello from test")
	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestGracefulShutdown(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(time.Hour, worker.NewHiddenPollJob(noopPoller{}))
	hub := sse.NewHub()
	hub.Start()
	publisher := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NotPanics(t, func() {
		GracefulShutdown(ctx, ShutdownComponents{
			Scheduler:          sched,
			WorkerPool:         pool,
			Hub:                hub,
			ResilientPublisher: publisher,
			Store:              memory.NewSaveStore(),
		})
	})
	assert.NotPanics(t, func() { GracefulShutdown(ctx, ShutdownComponents{}) })
}

type noopPoller struct{}

func (noopPoller) PollHidden(context.Context) int { return 0 }
func (noopPoller) Len() int                       { return 0 }
