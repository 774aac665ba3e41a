package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(RecipeDiscovered, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewRecipeDiscoveredEvent("alice", "combo_x", "result_x"))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, RecipeDiscovered, got[0].Type)
	assert.Equal(t, "alice", got[0].PlayerID())
	payload, ok := got[0].Payload.(RecipeDiscoveredPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "combo_x", payload.RecipeID)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(RewardClaimed, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(RewardClaimed, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewRewardClaimedEvent("bob", "r1", "grain", "common"))
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failing handler must not stop the others")
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]bool{}
	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, NewIconUnlockedEvent("p", "grain", "reward")))
	require.NoError(t, bus.Publish(ctx, NewChallengeCompletedEvent("p", "hidden_wifi", "wifi")))
	require.NoError(t, bus.Publish(ctx, NewMiniGameFinishedEvent("p", "g", "tap_rush", "won", 30)))

	assert.True(t, seen[IconUnlocked])
	assert.True(t, seen[ChallengeCompleted])
	assert.True(t, seen[MiniGameFinished])
	assert.Len(t, seen, 3)
}

func TestEvent_PlayerIDWithoutMetadata(t *testing.T) {
	assert.Empty(t, Event{}.PlayerID())
}
