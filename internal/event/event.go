package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"`
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// PlayerID returns the player the event concerns, or ""
func (e Event) PlayerID() string {
	if e.Metadata == nil {
		return ""
	}
	id, _ := e.Metadata[MetadataKeyPlayerID].(string)
	return id
}

// Game event types
const (
	RecipeDiscovered   Type = "recipe.discovered"
	IconUnlocked       Type = "icon.unlocked"
	ChallengeCompleted Type = "challenge.completed"
	RewardDrawn        Type = "reward.drawn"
	RewardClaimed      Type = "reward.claimed"
	MiniGameFinished   Type = "minigame.finished"
)

// AllTypes lists every event type the game publishes
func AllTypes() []Type {
	return []Type{RecipeDiscovered, IconUnlocked, ChallengeCompleted, RewardDrawn, RewardClaimed, MiniGameFinished}
}

// RecipeDiscoveredPayloadV1 is published the first time a recipe is crafted
type RecipeDiscoveredPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	RecipeID  string `json:"recipe_id"`
	ResultID  string `json:"result_id"`
	Timestamp int64  `json:"timestamp"`
}

// IconUnlockedPayloadV1 is published when an icon is unlocked for the first time
type IconUnlockedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	IconID    string `json:"icon_id"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// ChallengeCompletedPayloadV1 is published when a hidden challenge completes
type ChallengeCompletedPayloadV1 struct {
	PlayerID     string `json:"player_id"`
	ChallengeID  string `json:"challenge_id"`
	RewardIconID string `json:"reward_icon_id"`
	Timestamp    int64  `json:"timestamp"`
}

// RewardPayloadV1 is published for reward draws and claims
type RewardPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	RewardID  string `json:"reward_id"`
	IconID    string `json:"icon_id"`
	Rarity    string `json:"rarity"`
	Timestamp int64  `json:"timestamp"`
}

// MiniGameFinishedPayloadV1 is published when a round reaches Won or Lost
type MiniGameFinishedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	GameID    string `json:"game_id"`
	Kind      string `json:"kind"`
	Outcome   string `json:"outcome"`
	Score     int    `json:"score"`
	Timestamp int64  `json:"timestamp"`
}

func newEvent(t Type, playerID, source string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyPlayerID: playerID,
			MetadataKeySource:   source,
		},
	}
}

// NewRecipeDiscoveredEvent creates a recipe discovered event
func NewRecipeDiscoveredEvent(playerID, recipeID, resultID string) Event {
	return newEvent(RecipeDiscovered, playerID, "crafting", RecipeDiscoveredPayloadV1{
		PlayerID:  playerID,
		RecipeID:  recipeID,
		ResultID:  resultID,
		Timestamp: time.Now().Unix(),
	})
}

// NewIconUnlockedEvent creates an icon unlocked event
func NewIconUnlockedEvent(playerID, iconID, source string) Event {
	return newEvent(IconUnlocked, playerID, source, IconUnlockedPayloadV1{
		PlayerID:  playerID,
		IconID:    iconID,
		Source:    source,
		Timestamp: time.Now().Unix(),
	})
}

// NewChallengeCompletedEvent creates a hidden challenge completion event
func NewChallengeCompletedEvent(playerID, challengeID, rewardIconID string) Event {
	return newEvent(ChallengeCompleted, playerID, "hidden", ChallengeCompletedPayloadV1{
		PlayerID:     playerID,
		ChallengeID:  challengeID,
		RewardIconID: rewardIconID,
		Timestamp:    time.Now().Unix(),
	})
}

// NewRewardDrawnEvent creates a reward drawn event
func NewRewardDrawnEvent(playerID, rewardID, iconID, rarity string) Event {
	return newEvent(RewardDrawn, playerID, "reward", RewardPayloadV1{
		PlayerID:  playerID,
		RewardID:  rewardID,
		IconID:    iconID,
		Rarity:    rarity,
		Timestamp: time.Now().Unix(),
	})
}

// NewRewardClaimedEvent creates a reward claimed event
func NewRewardClaimedEvent(playerID, rewardID, iconID, rarity string) Event {
	return newEvent(RewardClaimed, playerID, "reward", RewardPayloadV1{
		PlayerID:  playerID,
		RewardID:  rewardID,
		IconID:    iconID,
		Rarity:    rarity,
		Timestamp: time.Now().Unix(),
	})
}

// NewMiniGameFinishedEvent creates a mini-game finished event
func NewMiniGameFinishedEvent(playerID, gameID, kind, outcome string, score int) Event {
	return newEvent(MiniGameFinished, playerID, "minigame", MiniGameFinishedPayloadV1{
		PlayerID:  playerID,
		GameID:    gameID,
		Kind:      kind,
		Outcome:   outcome,
		Score:     score,
		Timestamp: time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes handler to every game event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes() {
		bus.Subscribe(t, handler)
	}
}
