// Package reward turns a won mini-game into an inventory change in two steps:
// Draw samples an icon and holds it as pending, Claim commits it. A draw that
// is never claimed is never persisted.
package reward

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/metrics"
)

// Sampler draws one icon from the rarity-weighted distribution
type Sampler interface {
	SampleWeighted() (domain.Icon, bool)
}

// Inventory is the collaborator claimed icons are committed to
type Inventory interface {
	AddIcon(ctx context.Context, iconID string, quantity int) error
	UnlockIcon(ctx context.Context, iconID string) (bool, error)
}

// ClaimResult is the outcome of a successful claim
type ClaimResult struct {
	Reward        domain.PendingReward `json:"reward"`
	NewlyUnlocked bool                 `json:"newly_unlocked"`
}

type pendingEntry struct {
	playerID string
	reward   domain.PendingReward
}

// PendingStore holds unclaimed draws for every player. Entries expire after
// the TTL and the oldest are evicted past capacity.
type PendingStore struct {
	lru *expirable.LRU[string, pendingEntry]
}

// NewPendingStore creates a store. Non-positive arguments use the defaults.
func NewPendingStore(capacity int, ttl time.Duration) *PendingStore {
	if capacity <= 0 {
		capacity = DefaultPendingCapacity
	}
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	return &PendingStore{
		lru: expirable.NewLRU[string, pendingEntry](capacity, nil, ttl),
	}
}

// Len returns the number of unexpired pending rewards
func (s *PendingStore) Len() int {
	return s.lru.Len()
}

// DropPlayer discards every pending reward of a player and returns how many
// were dropped
func (s *PendingStore) DropPlayer(playerID string) int {
	dropped := 0
	for _, id := range s.lru.Keys() {
		entry, ok := s.lru.Peek(id)
		if !ok || entry.playerID != playerID {
			continue
		}
		if s.lru.Remove(id) {
			dropped++
		}
	}
	if dropped > 0 {
		metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonAbandoned).Add(float64(dropped))
	}
	return dropped
}

func (s *PendingStore) take(playerID, rewardID string) (domain.PendingReward, bool) {
	entry, ok := s.lru.Peek(rewardID)
	if !ok || entry.playerID != playerID {
		return domain.PendingReward{}, false
	}
	s.lru.Remove(rewardID)
	return entry.reward, true
}

// Service draws and claims rewards for one player
type Service struct {
	playerID  string
	sampler   Sampler
	inventory Inventory
	store     *PendingStore
	bus       event.Bus
	clock     clock.Clock
}

// NewService creates a reward service. bus may be nil.
func NewService(playerID string, sampler Sampler, inventory Inventory, store *PendingStore, bus event.Bus, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		playerID:  playerID,
		sampler:   sampler,
		inventory: inventory,
		store:     store,
		bus:       bus,
		clock:     clk,
	}
}

// Draw samples one icon and holds it until claimed, abandoned or expired
func (s *Service) Draw(ctx context.Context) (*domain.PendingReward, error) {
	icon, ok := s.sampler.SampleWeighted()
	if !ok {
		return nil, fmt.Errorf("%w: catalog is not initialized", domain.ErrIconNotFound)
	}

	reward := domain.PendingReward{
		ID:      uuid.New().String(),
		Icon:    icon,
		DrawnAt: s.clock.Now(),
	}
	if evicted := s.store.lru.Add(reward.ID, pendingEntry{playerID: s.playerID, reward: reward}); evicted {
		metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonEvicted).Inc()
	}

	logger.FromContext(ctx).Info(LogMsgRewardDrawn, "reward_id", reward.ID, "icon_id", icon.ID, "rarity", icon.Rarity.String())
	s.publish(ctx, event.NewRewardDrawnEvent(s.playerID, reward.ID, icon.ID, icon.Rarity.String()))
	return &reward, nil
}

// Claim commits a pending reward to the inventory. The pending entry is
// consumed even when the inventory fails; that reward is lost.
func (s *Service) Claim(ctx context.Context, rewardID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	reward, ok := s.store.take(s.playerID, rewardID)
	if !ok {
		log.Warn(LogMsgRewardNotFound, "reward_id", rewardID)
		return nil, domain.ErrRewardNotFound
	}

	iconID := reward.Icon.ID
	if err := s.inventory.AddIcon(ctx, iconID, 1); err != nil {
		log.Error(LogMsgRewardLost, "reward_id", rewardID, "icon_id", iconID, "error", err)
		metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonLost).Inc()
		return nil, fmt.Errorf("%w: reward %s lost: %v", domain.ErrStoreFailed, rewardID, err)
	}

	result := &ClaimResult{Reward: reward}
	isNew, err := s.inventory.UnlockIcon(ctx, iconID)
	if err != nil {
		log.Error(LogMsgUnlockFailed, "icon_id", iconID, "error", err)
	}
	result.NewlyUnlocked = isNew

	log.Info(LogMsgRewardClaimed, "reward_id", rewardID, "icon_id", iconID, "newly_unlocked", isNew)
	s.publish(ctx, event.NewRewardClaimedEvent(s.playerID, rewardID, iconID, reward.Icon.Rarity.String()))
	if isNew {
		s.publish(ctx, event.NewIconUnlockedEvent(s.playerID, iconID, EventSource))
	}
	return result, nil
}

// Abandon discards a pending reward without committing it
func (s *Service) Abandon(ctx context.Context, rewardID string) bool {
	if _, ok := s.store.take(s.playerID, rewardID); !ok {
		return false
	}
	metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonAbandoned).Inc()
	logger.FromContext(ctx).Info(LogMsgRewardAbandoned, "reward_id", rewardID)
	return true
}

// Pending lists the player's unclaimed rewards, oldest first
func (s *Service) Pending() []domain.PendingReward {
	var out []domain.PendingReward
	for _, entry := range s.store.lru.Values() {
		if entry.playerID == s.playerID {
			out = append(out, entry.reward)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DrawnAt.Before(out[j].DrawnAt) })
	return out
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
