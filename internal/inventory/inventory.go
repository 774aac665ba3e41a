// Package inventory holds a player's icon counts and unlocked set.
package inventory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// Saver persists the inventory blob of a player
type Saver interface {
	SaveInventory(ctx context.Context, playerID string, blob domain.InventoryBlob) error
}

// IconLookup resolves ids for snapshots
type IconLookup interface {
	GetByID(id string) (domain.Icon, bool)
}

// Inventory is one player's icon store. Every mutation is written through to
// the saver; a failed write rolls the in-memory change back.
type Inventory struct {
	mu         sync.RWMutex
	playerID   string
	counts     map[string]int
	unlocked   []string
	isUnlocked map[string]struct{}
	saver      Saver
}

// New restores an inventory from a loaded blob. saver may be nil.
func New(playerID string, blob domain.InventoryBlob, saver Saver) *Inventory {
	inv := &Inventory{
		playerID:   playerID,
		counts:     make(map[string]int, len(blob.Counts)),
		isUnlocked: make(map[string]struct{}, len(blob.Unlocked)),
		saver:      saver,
	}
	for id, qty := range blob.Counts {
		if qty > 0 {
			inv.counts[id] = qty
		}
	}
	for _, id := range blob.Unlocked {
		if _, dup := inv.isUnlocked[id]; dup || id == "" {
			continue
		}
		inv.isUnlocked[id] = struct{}{}
		inv.unlocked = append(inv.unlocked, id)
	}
	return inv
}

// AddIcon increases the held quantity of an icon
func (inv *Inventory) AddIcon(ctx context.Context, iconID string, quantity int) error {
	if iconID == "" || quantity <= 0 {
		return fmt.Errorf("%w: icon id and a positive quantity are required", domain.ErrInvalidInput)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	prev, had := inv.counts[iconID]
	inv.counts[iconID] = prev + quantity

	if err := inv.persistLocked(ctx); err != nil {
		if had {
			inv.counts[iconID] = prev
		} else {
			delete(inv.counts, iconID)
		}
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgIconAdded, "icon_id", iconID, "quantity", quantity, "total", prev+quantity)
	return nil
}

// UnlockIcon marks an icon as unlocked and reports whether it was new
func (inv *Inventory) UnlockIcon(ctx context.Context, iconID string) (bool, error) {
	if iconID == "" {
		return false, fmt.Errorf("%w: icon id is required", domain.ErrInvalidInput)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.isUnlocked[iconID]; ok {
		return false, nil
	}
	inv.isUnlocked[iconID] = struct{}{}
	inv.unlocked = append(inv.unlocked, iconID)

	if err := inv.persistLocked(ctx); err != nil {
		delete(inv.isUnlocked, iconID)
		inv.unlocked = inv.unlocked[:len(inv.unlocked)-1]
		return false, err
	}

	logger.FromContext(ctx).Info(LogMsgIconUnlocked, "icon_id", iconID)
	return true, nil
}

// Count returns the held quantity of an icon
func (inv *Inventory) Count(iconID string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.counts[iconID]
}

// IsUnlocked reports whether the icon was ever unlocked
func (inv *Inventory) IsUnlocked(iconID string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	_, ok := inv.isUnlocked[iconID]
	return ok
}

// Unlocked returns unlocked ids in unlock order
func (inv *Inventory) Unlocked() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return slices.Clone(inv.unlocked)
}

// Snapshot lists held icons, rarest first then by id. Ids the catalog no
// longer knows are kept with a bare entry.
func (inv *Inventory) Snapshot(ctx context.Context, icons IconLookup) []domain.InventoryEntry {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	entries := make([]domain.InventoryEntry, 0, len(inv.counts))
	for id, qty := range inv.counts {
		icon, ok := icons.GetByID(id)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownSavedIcon, "icon_id", id)
			icon = domain.Icon{ID: id, DisplayName: id}
		}
		entries = append(entries, domain.InventoryEntry{Icon: icon, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Icon.Rarity != entries[j].Icon.Rarity {
			return entries[i].Icon.Rarity > entries[j].Icon.Rarity
		}
		return entries[i].Icon.ID < entries[j].Icon.ID
	})
	return entries
}

// Blob returns the persisted form
func (inv *Inventory) Blob() domain.InventoryBlob {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.blobLocked()
}

func (inv *Inventory) blobLocked() domain.InventoryBlob {
	counts := make(map[string]int, len(inv.counts))
	for id, qty := range inv.counts {
		counts[id] = qty
	}
	unlocked := make([]string, len(inv.unlocked))
	copy(unlocked, inv.unlocked)
	return domain.InventoryBlob{Counts: counts, Unlocked: unlocked}
}

func (inv *Inventory) persistLocked(ctx context.Context) error {
	if inv.saver == nil {
		return nil
	}
	if err := inv.saver.SaveInventory(ctx, inv.playerID, inv.blobLocked()); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreFailed, err)
	}
	return nil
}
