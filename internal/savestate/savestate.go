// Package savestate serializes per-player save blobs to a key-value store.
// Loads never fail on bad data: corrupt or schema-invalid blobs reset to the
// empty value and a warning is logged.
package savestate

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/validation"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// KV is the storage a save manager writes to. Get returns domain.ErrNotFound
// for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Manager loads and saves every save domain of a player
type Manager struct {
	kv        KV
	validator validation.SchemaValidator
}

// NewManager creates a manager validating against the embedded schemas
func NewManager(kv KV) *Manager {
	return &Manager{
		kv:        kv,
		validator: NewValidator(),
	}
}

// NewValidator returns a schema validator over the embedded save schemas
func NewValidator() validation.SchemaValidator {
	return validation.NewSchemaValidator(schemaFS)
}

// Key returns the store key of one save domain
func Key(playerID, saveDomain string) string {
	return fmt.Sprintf(keyFormat, playerID, saveDomain)
}

// Encode serializes a blob
func Encode[T any](blob T) ([]byte, error) {
	return json.Marshal(blob)
}

// Decode validates data against the schema of saveDomain and decodes it.
// Any failure yields the zero value and a non-nil error describing it.
func Decode[T any](v validation.SchemaValidator, saveDomain string, data []byte) (T, error) {
	var blob T
	if !json.Valid(data) {
		return blob, fmt.Errorf("%w: malformed JSON", domain.ErrInvalidInput)
	}
	if err := v.ValidateBytes(data, schemaPath(saveDomain)); err != nil {
		return blob, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return blob, nil
}

func schemaPath(saveDomain string) string {
	return "schemas/" + saveDomain + schemaSuffix
}

// load reads one blob. Only store failures are returned; a missing key or
// bad data gives the zero value.
func load[T any](ctx context.Context, m *Manager, playerID, saveDomain string) (T, error) {
	var zero T
	data, err := m.kv.Get(ctx, Key(playerID, saveDomain))
	if errors.Is(err, domain.ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", saveDomain, err)
	}

	blob, err := Decode[T](m.validator, saveDomain, data)
	if err != nil {
		msg := LogMsgInvalidSave
		if !json.Valid(data) {
			msg = LogMsgCorruptSave
		}
		logger.FromContext(ctx).Warn(msg, "domain", saveDomain, "player_id", playerID, "error", err)
		return zero, nil
	}
	return blob, nil
}

func save[T any](ctx context.Context, m *Manager, playerID, saveDomain string, blob T) error {
	data, err := Encode(blob)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", saveDomain, err)
	}
	if err := m.kv.Set(ctx, Key(playerID, saveDomain), data); err != nil {
		return fmt.Errorf("failed to save %s: %w", saveDomain, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSaveWritten, "domain", saveDomain, "bytes", len(data))
	return nil
}

// LoadCompletion loads the hidden challenge completion set
func (m *Manager) LoadCompletion(ctx context.Context, playerID string) (domain.CompletionBlob, error) {
	blob, err := load[domain.CompletionBlob](ctx, m, playerID, domain.SaveDomainHidden)
	if blob.CompletedGameIDs == nil {
		blob.CompletedGameIDs = []string{}
	}
	return blob, err
}

// SaveCompletion writes the hidden challenge completion set
func (m *Manager) SaveCompletion(ctx context.Context, playerID string, blob domain.CompletionBlob) error {
	if blob.CompletedGameIDs == nil {
		blob.CompletedGameIDs = []string{}
	}
	return save(ctx, m, playerID, domain.SaveDomainHidden, blob)
}

// LoadDailyPlays loads the mini-game daily counter
func (m *Manager) LoadDailyPlays(ctx context.Context, playerID string) (domain.DailyPlaysBlob, error) {
	return load[domain.DailyPlaysBlob](ctx, m, playerID, domain.SaveDomainDailyPlays)
}

// SaveDailyPlays writes the mini-game daily counter
func (m *Manager) SaveDailyPlays(ctx context.Context, playerID string, blob domain.DailyPlaysBlob) error {
	return save(ctx, m, playerID, domain.SaveDomainDailyPlays, blob)
}

// LoadInventory loads the icon inventory
func (m *Manager) LoadInventory(ctx context.Context, playerID string) (domain.InventoryBlob, error) {
	blob, err := load[domain.InventoryBlob](ctx, m, playerID, domain.SaveDomainInventory)
	if blob.Counts == nil {
		blob.Counts = map[string]int{}
	}
	if blob.Unlocked == nil {
		blob.Unlocked = []string{}
	}
	return blob, err
}

// SaveInventory writes the icon inventory
func (m *Manager) SaveInventory(ctx context.Context, playerID string, blob domain.InventoryBlob) error {
	if blob.Counts == nil {
		blob.Counts = map[string]int{}
	}
	if blob.Unlocked == nil {
		blob.Unlocked = []string{}
	}
	return save(ctx, m, playerID, domain.SaveDomainInventory, blob)
}

// LoadDiscovery loads the discovered recipe ids
func (m *Manager) LoadDiscovery(ctx context.Context, playerID string) (domain.DiscoveryBlob, error) {
	blob, err := load[domain.DiscoveryBlob](ctx, m, playerID, domain.SaveDomainDiscovery)
	if blob.DiscoveredRecipeIDs == nil {
		blob.DiscoveredRecipeIDs = []string{}
	}
	return blob, err
}

// SaveDiscovery writes the discovered recipe ids
func (m *Manager) SaveDiscovery(ctx context.Context, playerID string, blob domain.DiscoveryBlob) error {
	if blob.DiscoveredRecipeIDs == nil {
		blob.DiscoveredRecipeIDs = []string{}
	}
	return save(ctx, m, playerID, domain.SaveDomainDiscovery, blob)
}

// Reset deletes every save domain of a player
func (m *Manager) Reset(ctx context.Context, playerID string) error {
	for _, d := range []string{domain.SaveDomainHidden, domain.SaveDomainDailyPlays, domain.SaveDomainInventory, domain.SaveDomainDiscovery} {
		if err := m.kv.Delete(ctx, Key(playerID, d)); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to reset %s: %w", d, err)
		}
	}
	return nil
}
