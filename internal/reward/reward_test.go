package reward

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/metrics"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) AddIcon(ctx context.Context, iconID string, quantity int) error {
	args := m.Called(ctx, iconID, quantity)
	return args.Error(0)
}

func (m *MockInventory) UnlockIcon(ctx context.Context, iconID string) (bool, error) {
	args := m.Called(ctx, iconID)
	return args.Bool(0), args.Error(1)
}

type fixedSampler struct {
	icon domain.Icon
	ok   bool
}

func (s fixedSampler) SampleWeighted() (domain.Icon, bool) {
	return s.icon, s.ok
}

type recordingBus struct {
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, e event.Event) error {
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

var crown = domain.Icon{ID: "crown", DisplayName: "Couronne", Rarity: domain.RarityLegendary}

func newTestService(inv Inventory, bus *recordingBus) (*Service, *clock.SimulatedClock) {
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	store := NewPendingStore(16, time.Hour)
	return NewService("alice", fixedSampler{icon: crown, ok: true}, inv, store, bus, clk), clk
}

func TestDraw_DoesNotCommit(t *testing.T) {
	inv := new(MockInventory)
	bus := &recordingBus{}
	svc, clk := newTestService(inv, bus)

	reward, err := svc.Draw(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, reward.ID)
	assert.Equal(t, crown, reward.Icon)
	assert.Equal(t, clk.Now(), reward.DrawnAt)
	assert.Equal(t, []event.Type{event.RewardDrawn}, bus.types())
	inv.AssertNotCalled(t, "AddIcon", mock.Anything, mock.Anything, mock.Anything)
	inv.AssertNotCalled(t, "UnlockIcon", mock.Anything, mock.Anything)
}

func TestDraw_UninitializedCatalog(t *testing.T) {
	store := NewPendingStore(0, 0)
	svc := NewService("alice", fixedSampler{}, new(MockInventory), store, nil, nil)

	reward, err := svc.Draw(context.Background())
	assert.Nil(t, reward)
	assert.ErrorIs(t, err, domain.ErrIconNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestClaim_Commits(t *testing.T) {
	ctx := context.Background()
	inv := new(MockInventory)
	inv.On("AddIcon", ctx, "crown", 1).Return(nil).Once()
	inv.On("UnlockIcon", ctx, "crown").Return(true, nil).Once()
	bus := &recordingBus{}
	svc, _ := newTestService(inv, bus)

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)

	res, err := svc.Claim(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, *reward, res.Reward)
	assert.True(t, res.NewlyUnlocked)
	assert.Equal(t, []event.Type{event.RewardDrawn, event.RewardClaimed, event.IconUnlocked}, bus.types())
	inv.AssertExpectations(t)

	_, err = svc.Claim(ctx, reward.ID)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound, "a reward is claimed at most once")
}

func TestClaim_AlreadyUnlocked(t *testing.T) {
	ctx := context.Background()
	inv := new(MockInventory)
	inv.On("AddIcon", ctx, "crown", 1).Return(nil)
	inv.On("UnlockIcon", ctx, "crown").Return(false, nil)
	bus := &recordingBus{}
	svc, _ := newTestService(inv, bus)

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)
	res, err := svc.Claim(ctx, reward.ID)
	require.NoError(t, err)

	assert.False(t, res.NewlyUnlocked)
	assert.Equal(t, []event.Type{event.RewardDrawn, event.RewardClaimed}, bus.types())
}

func TestClaim_UnknownID(t *testing.T) {
	svc, _ := newTestService(new(MockInventory), &recordingBus{})

	_, err := svc.Claim(context.Background(), "no-such-reward")
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestClaim_OtherPlayersReward(t *testing.T) {
	ctx := context.Background()
	store := NewPendingStore(16, time.Hour)
	alice := NewService("alice", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)
	bob := NewService("bob", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)

	reward, err := alice.Draw(ctx)
	require.NoError(t, err)

	_, err = bob.Claim(ctx, reward.ID)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	assert.False(t, bob.Abandon(ctx, reward.ID))
	assert.Len(t, alice.Pending(), 1)
	assert.Empty(t, bob.Pending())
}

func TestClaim_InventoryFailureLosesReward(t *testing.T) {
	ctx := context.Background()
	inv := new(MockInventory)
	inv.On("AddIcon", ctx, "crown", 1).Return(errors.New("store offline"))
	bus := &recordingBus{}
	svc, _ := newTestService(inv, bus)

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)

	res, err := svc.Claim(ctx, reward.ID)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrStoreFailed)
	assert.Empty(t, svc.Pending())
	inv.AssertNotCalled(t, "UnlockIcon", mock.Anything, mock.Anything)
	assert.Equal(t, []event.Type{event.RewardDrawn}, bus.types())
}

func TestClaim_UnlockFailureStillClaims(t *testing.T) {
	ctx := context.Background()
	inv := new(MockInventory)
	inv.On("AddIcon", ctx, "crown", 1).Return(nil)
	inv.On("UnlockIcon", ctx, "crown").Return(false, errors.New("store offline"))
	svc, _ := newTestService(inv, &recordingBus{})

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)
	res, err := svc.Claim(ctx, reward.ID)

	require.NoError(t, err)
	assert.False(t, res.NewlyUnlocked)
}

func TestAbandon(t *testing.T) {
	ctx := context.Background()
	inv := new(MockInventory)
	svc, _ := newTestService(inv, &recordingBus{})

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)

	assert.True(t, svc.Abandon(ctx, reward.ID))
	assert.False(t, svc.Abandon(ctx, reward.ID))

	_, err = svc.Claim(ctx, reward.ID)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	inv.AssertNotCalled(t, "AddIcon", mock.Anything, mock.Anything, mock.Anything)
}

func TestPending_OldestFirst(t *testing.T) {
	ctx := context.Background()
	svc, clk := newTestService(new(MockInventory), &recordingBus{})

	first, err := svc.Draw(ctx)
	require.NoError(t, err)
	clk.Advance(time.Second)
	second, err := svc.Draw(ctx)
	require.NoError(t, err)

	pending := svc.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}

func TestPendingStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewPendingStore(16, 10*time.Millisecond)
	svc := NewService("alice", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)

	reward, err := svc.Draw(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = svc.Claim(ctx, reward.ID)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestPendingStore_CapacityEvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := NewPendingStore(2, time.Hour)
	svc := NewService("alice", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)

	first, err := svc.Draw(ctx)
	require.NoError(t, err)
	_, err = svc.Draw(ctx)
	require.NoError(t, err)
	_, err = svc.Draw(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())
	assert.False(t, svc.Abandon(ctx, first.ID))
}

func TestPendingStore_DropPlayer(t *testing.T) {
	ctx := context.Background()
	store := NewPendingStore(16, time.Hour)
	alice := NewService("alice", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)
	bob := NewService("bob", fixedSampler{icon: crown, ok: true}, new(MockInventory), store, nil, nil)

	first, err := alice.Draw(ctx)
	require.NoError(t, err)
	_, err = alice.Draw(ctx)
	require.NoError(t, err)
	_, err = bob.Draw(ctx)
	require.NoError(t, err)

	discarded := testutil.ToFloat64(metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonAbandoned))
	assert.Equal(t, 2, store.DropPlayer("alice"))
	assert.Equal(t, 0, store.DropPlayer("alice"))
	assert.Equal(t, discarded+2, testutil.ToFloat64(metrics.RewardsDiscarded.WithLabelValues(metrics.ReasonAbandoned)))
	assert.Empty(t, alice.Pending())
	assert.Len(t, bob.Pending(), 1)

	_, err = alice.Claim(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}
