package savestate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/database/memory"
	"github.com/osse101/IconIdle_Go/internal/domain"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "player:alice:hidden_games", Key("alice", domain.SaveDomainHidden))
}

func TestCompletion_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.NewSaveStore())

	in := domain.CompletionBlob{CompletedGameIDs: []string{"hidden_battery_low", "hidden_wifi"}}
	require.NoError(t, m.SaveCompletion(ctx, "alice", in))

	out, err := m.LoadCompletion(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCompletion_WireFormat(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewSaveStore()
	m := NewManager(kv)

	require.NoError(t, m.SaveCompletion(ctx, "alice", domain.CompletionBlob{}))
	raw, err := kv.Get(ctx, Key("alice", domain.SaveDomainHidden))
	require.NoError(t, err)
	assert.JSONEq(t, `{"completedGameIds":[]}`, string(raw))

	require.NoError(t, m.SaveDailyPlays(ctx, "alice", domain.DailyPlaysBlob{PlaysToday: 3, LastResetTimestamp: 1700000000}))
	raw, err = kv.Get(ctx, Key("alice", domain.SaveDomainDailyPlays))
	require.NoError(t, err)
	assert.JSONEq(t, `{"playsToday":3,"lastResetTimestamp":1700000000}`, string(raw))
}

func TestLoad_MissingIsEmpty(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.NewSaveStore())

	completion, err := m.LoadCompletion(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, completion.CompletedGameIDs)
	assert.NotNil(t, completion.CompletedGameIDs)

	inv, err := m.LoadInventory(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, inv.Counts)
	assert.NotNil(t, inv.Unlocked)

	plays, err := m.LoadDailyPlays(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyPlaysBlob{}, plays)
}

func TestLoad_BadDataResetsToEmpty(t *testing.T) {
	tests := []struct {
		name       string
		saveDomain string
		raw        string
	}{
		{"corrupt json", domain.SaveDomainHidden, `{"completedGameIds": [`},
		{"wrong type", domain.SaveDomainHidden, `{"completedGameIds": "hidden_wifi"}`},
		{"missing field", domain.SaveDomainHidden, `{}`},
		{"negative plays", domain.SaveDomainDailyPlays, `{"playsToday": -1, "lastResetTimestamp": 0}`},
		{"fractional timestamp", domain.SaveDomainDailyPlays, `{"playsToday": 1, "lastResetTimestamp": 1.5}`},
		{"inventory bad count", domain.SaveDomainInventory, `{"counts": {"grain": "two"}, "unlocked": []}`},
		{"discovery not array", domain.SaveDomainDiscovery, `{"discoveredRecipeIds": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := memory.NewSaveStore()
			require.NoError(t, kv.Set(ctx, Key("alice", tt.saveDomain), []byte(tt.raw)))
			m := NewManager(kv)

			var err error
			switch tt.saveDomain {
			case domain.SaveDomainHidden:
				var blob domain.CompletionBlob
				blob, err = m.LoadCompletion(ctx, "alice")
				assert.Empty(t, blob.CompletedGameIDs)
			case domain.SaveDomainDailyPlays:
				var blob domain.DailyPlaysBlob
				blob, err = m.LoadDailyPlays(ctx, "alice")
				assert.Equal(t, domain.DailyPlaysBlob{}, blob)
			case domain.SaveDomainInventory:
				var blob domain.InventoryBlob
				blob, err = m.LoadInventory(ctx, "alice")
				assert.Empty(t, blob.Counts)
			case domain.SaveDomainDiscovery:
				var blob domain.DiscoveryBlob
				blob, err = m.LoadDiscovery(ctx, "alice")
				assert.Empty(t, blob.DiscoveredRecipeIDs)
			}
			assert.NoError(t, err, "bad data is not a hard failure")
		})
	}
}

func TestDecode_ReportsInvalidInput(t *testing.T) {
	_, err := Decode[domain.CompletionBlob](NewValidator(), domain.SaveDomainHidden, []byte(`not json`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	blob, err := Decode[domain.CompletionBlob](NewValidator(), domain.SaveDomainHidden, []byte(`{"completedGameIds":["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, blob.CompletedGameIDs)
}

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("connection refused")
}
func (failingKV) Delete(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestStoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	m := NewManager(failingKV{})

	_, err := m.LoadCompletion(ctx, "alice")
	assert.Error(t, err)
	assert.Error(t, m.SaveDiscovery(ctx, "alice", domain.DiscoveryBlob{}))
	assert.Error(t, m.Reset(ctx, "alice"))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	m := NewManager(memory.NewSaveStore())
	require.NoError(t, m.SaveCompletion(ctx, "alice", domain.CompletionBlob{CompletedGameIDs: []string{"hidden_wifi"}}))

	require.NoError(t, m.Reset(ctx, "alice"))

	blob, err := m.LoadCompletion(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, blob.CompletedGameIDs)
}
