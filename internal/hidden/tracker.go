// Package hidden tracks one-time challenges satisfied by the device state the
// client reports (battery, volume, orientation, network). A completed
// challenge grants its reward icon immediately and never triggers again.
package hidden

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// Inventory is the collaborator challenge rewards are committed to
type Inventory interface {
	AddIcon(ctx context.Context, iconID string, quantity int) error
	UnlockIcon(ctx context.Context, iconID string) (bool, error)
}

// CompletionSaver persists the completion set of a player
type CompletionSaver interface {
	SaveCompletion(ctx context.Context, playerID string, blob domain.CompletionBlob) error
}

// Tracker evaluates device snapshots for one player
type Tracker struct {
	mu        sync.Mutex
	playerID  string
	completed *CompletionSet
	inventory Inventory
	saver     CompletionSaver
	bus       event.Bus
}

// NewTracker restores a tracker from a loaded completion blob. Ids that no
// longer name a challenge are dropped.
func NewTracker(ctx context.Context, playerID string, blob domain.CompletionBlob, inventory Inventory, saver CompletionSaver, bus event.Bus) *Tracker {
	known := domain.CompletionBlob{CompletedGameIDs: make([]string, 0, len(blob.CompletedGameIDs))}
	for _, id := range blob.CompletedGameIDs {
		if _, ok := RewardIconID(id); !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownSavedID, "challenge_id", id)
			continue
		}
		known.CompletedGameIDs = append(known.CompletedGameIDs, id)
	}
	return &Tracker{
		playerID:  playerID,
		completed: NewCompletionSet(known),
		inventory: inventory,
		saver:     saver,
		bus:       bus,
	}
}

// Check runs every predicate in table order against state and completes each
// satisfied challenge that is still locked. A challenge whose reward cannot
// be committed stays locked and is retried on the next check.
func (t *Tracker) Check(ctx context.Context, state domain.DeviceState) []domain.ChallengeCompletion {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := logger.FromContext(ctx)
	var completions []domain.ChallengeCompletion

	for _, c := range challenges {
		if t.completed.Contains(c.ID) || !c.Satisfied(state) {
			continue
		}

		if err := t.inventory.AddIcon(ctx, c.RewardIconID, 1); err != nil {
			log.Error(LogMsgRewardAddFailed, "challenge_id", c.ID, "icon_id", c.RewardIconID, "error", err)
			continue
		}
		isNew, err := t.inventory.UnlockIcon(ctx, c.RewardIconID)
		if err != nil {
			log.Error(LogMsgUnlockFailed, "challenge_id", c.ID, "icon_id", c.RewardIconID, "error", err)
		}

		t.completed.Add(c.ID)
		t.persistLocked(ctx)

		log.Info(LogMsgChallengeCompleted, "challenge_id", c.ID, "icon_id", c.RewardIconID)
		t.publish(ctx, event.NewChallengeCompletedEvent(t.playerID, c.ID, c.RewardIconID))
		if isNew {
			t.publish(ctx, event.NewIconUnlockedEvent(t.playerID, c.RewardIconID, EventSource))
		}

		completions = append(completions, domain.ChallengeCompletion{
			ChallengeID:   c.ID,
			RewardIconID:  c.RewardIconID,
			NewlyUnlocked: isNew,
		})
	}
	return completions
}

// IsCompleted reports whether a challenge has been completed
func (t *Tracker) IsCompleted(challengeID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed.Contains(challengeID)
}

// Completed returns completed ids in completion order
func (t *Tracker) Completed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed.IDs()
}

// Status lists every challenge in table order with its completion flag
func (t *Tracker) Status() []domain.ChallengeStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.ChallengeStatus, len(challenges))
	for i, c := range challenges {
		out[i] = domain.ChallengeStatus{
			ChallengeID:  c.ID,
			RewardIconID: c.RewardIconID,
			Completed:    t.completed.Contains(c.ID),
		}
	}
	return out
}

func (t *Tracker) persistLocked(ctx context.Context) {
	if t.saver == nil {
		return
	}
	if err := t.saver.SaveCompletion(ctx, t.playerID, t.completed.Blob()); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
	}
}

func (t *Tracker) publish(ctx context.Context, evt event.Event) {
	if t.bus == nil {
		return
	}
	if err := t.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// Poller runs a tracker no more often than its interval
type Poller struct {
	mu        sync.Mutex
	tracker   *Tracker
	interval  time.Duration
	lastCheck time.Time
}

// NewPoller creates a poller. A non-positive interval uses DefaultPollInterval.
func NewPoller(tracker *Tracker, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{tracker: tracker, interval: interval}
}

// Interval returns the minimum time between checks
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Due reports whether at least one interval has passed since the last check
func (p *Poller) Due(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dueLocked(now)
}

func (p *Poller) dueLocked(now time.Time) bool {
	return p.lastCheck.IsZero() || now.Sub(p.lastCheck) >= p.interval
}

// Poll checks state when due. ran is false when the interval has not elapsed.
func (p *Poller) Poll(ctx context.Context, now time.Time, state domain.DeviceState) (completions []domain.ChallengeCompletion, ran bool) {
	p.mu.Lock()
	if !p.dueLocked(now) {
		p.mu.Unlock()
		return nil, false
	}
	p.lastCheck = now
	p.mu.Unlock()

	return p.tracker.Check(ctx, state), true
}
