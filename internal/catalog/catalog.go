package catalog

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// RandSource is the randomness the catalog samples with.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// NewRandSource returns a PCG-backed source. A zero seed uses the clock.
func NewRandSource(seed uint64) RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// rarityThreshold maps the upper bound of a cumulative weight range to a tier
type rarityThreshold struct {
	upper  float64
	rarity domain.Rarity
}

// rarityThresholds is derived once from the rarity table:
// Common [0,60), Uncommon [60,85), Rare [85,97), Legendary [97,100).
var rarityThresholds = buildThresholds()

func buildThresholds() []rarityThreshold {
	thresholds := make([]rarityThreshold, 0, len(domain.AllRarities()))
	cumulative := 0.0
	for _, r := range domain.AllRarities() {
		cumulative += float64(r.Info().Weight)
		thresholds = append(thresholds, rarityThreshold{upper: cumulative, rarity: r})
	}
	return thresholds
}

// Catalog owns the fixed set of collectible icons and the rarity partition.
// byRarity always partitions entries exactly; drawable is the same partition
// without hidden icons and backs rarity sampling.
type Catalog struct {
	mu       sync.RWMutex
	rngMu    sync.Mutex
	rng      RandSource
	entries  []domain.Icon
	byID     map[string]int
	byRarity map[domain.Rarity][]domain.Icon
	drawable map[domain.Rarity][]domain.Icon
}

// New creates an empty catalog sampling with rng
func New(rng RandSource) *Catalog {
	if rng == nil {
		rng = NewRandSource(0)
	}
	return &Catalog{
		rng:      rng,
		byID:     make(map[string]int),
		byRarity: make(map[domain.Rarity][]domain.Icon),
		drawable: make(map[domain.Rarity][]domain.Icon),
	}
}

// InitializeDefault loads the compiled-in seed table
func (c *Catalog) InitializeDefault() error {
	return c.Initialize(DefaultIcons())
}

// Initialize clears and rebuilds both the entry list and the rarity index.
// Duplicate ids and an empty common tier are rejected and leave the catalog unchanged.
func (c *Catalog) Initialize(entries []domain.Icon) error {
	titler := cases.Title(language.French)

	built := make([]domain.Icon, 0, len(entries))
	byID := make(map[string]int, len(entries))
	byRarity := make(map[domain.Rarity][]domain.Icon, len(domain.AllRarities()))
	drawable := make(map[domain.Rarity][]domain.Icon, len(domain.AllRarities()))
	hidden := 0

	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextEmptyID)
		}
		if _, exists := byID[e.ID]; exists {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateIcon, e.ID)
		}
		if !e.Rarity.Valid() {
			return fmt.Errorf("%w: icon %s has rarity %d", domain.ErrInvalidInput, e.ID, e.Rarity)
		}
		if e.DisplayName == "" {
			e.DisplayName = titler.String(strings.ReplaceAll(e.ID, "_", " "))
		}
		byID[e.ID] = len(built)
		built = append(built, e)
		byRarity[e.Rarity] = append(byRarity[e.Rarity], e)
		if e.Hidden {
			hidden++
			continue
		}
		drawable[e.Rarity] = append(drawable[e.Rarity], e)
	}

	if len(drawable[domain.RarityCommon]) == 0 {
		return domain.ErrEmptyCommonTier
	}

	c.mu.Lock()
	c.entries = built
	c.byID = byID
	c.byRarity = byRarity
	c.drawable = drawable
	c.mu.Unlock()

	slog.Default().Info(LogMsgCatalogInitialized,
		"icons", len(built),
		"hidden", hidden,
		"common", len(drawable[domain.RarityCommon]),
		"uncommon", len(drawable[domain.RarityUncommon]),
		"rare", len(drawable[domain.RarityRare]),
		"legendary", len(drawable[domain.RarityLegendary]))
	return nil
}

// GetByID looks up an icon. A missing id is not an error.
func (c *Catalog) GetByID(id string) (domain.Icon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.byID[id]
	if !ok {
		return domain.Icon{}, false
	}
	return c.entries[idx], true
}

// Len returns the number of icons
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// All returns a copy of every icon in catalog order
func (c *Catalog) All() []domain.Icon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Icon, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByRarity returns a copy of one rarity bucket
func (c *Catalog) ByRarity(r domain.Rarity) []domain.Icon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bucket := c.byRarity[r]
	out := make([]domain.Icon, len(bucket))
	copy(out, bucket)
	return out
}

// SampleUniform draws count icons uniformly. Without duplicates the draw is
// made without replacement and capped at the catalog size.
func (c *Catalog) SampleUniform(count int, allowDuplicates bool) []domain.Icon {
	if count <= 0 {
		return []domain.Icon{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.entries) == 0 {
		return []domain.Icon{}
	}

	if allowDuplicates {
		out := make([]domain.Icon, count)
		for i := range out {
			out[i] = c.entries[c.intN(len(c.entries))]
		}
		return out
	}

	pool := make([]domain.Icon, len(c.entries))
	copy(pool, c.entries)
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]domain.Icon, 0, count)
	for len(out) < count {
		idx := c.intN(len(pool))
		out = append(out, pool[idx])
		last := len(pool) - 1
		pool[idx] = pool[last]
		pool = pool[:last]
	}
	return out
}

// SampleByRarity picks uniformly among the drawable icons of one tier. An
// empty tier falls back to Common. ok is false only when the catalog was
// never initialized.
func (c *Catalog) SampleByRarity(r domain.Rarity) (domain.Icon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sampleByRarityLocked(r)
}

// SampleWeighted draws a tier with one uniform roll over [0,100) and then
// samples within it.
func (c *Catalog) SampleWeighted() (domain.Icon, bool) {
	c.rngMu.Lock()
	roll := c.rng.Float64() * weightScale
	c.rngMu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sampleByRarityLocked(RarityForRoll(roll))
}

// RarityForRoll maps a roll in [0,100) onto the tier thresholds.
func RarityForRoll(roll float64) domain.Rarity {
	for _, t := range rarityThresholds {
		if roll < t.upper {
			return t.rarity
		}
	}
	return rarityThresholds[len(rarityThresholds)-1].rarity
}

func (c *Catalog) sampleByRarityLocked(r domain.Rarity) (domain.Icon, bool) {
	bucket := c.drawable[r]
	if len(bucket) == 0 {
		if r != domain.RarityCommon {
			slog.Default().Debug(LogMsgRarityFallback, "rarity", r.String())
		}
		bucket = c.drawable[domain.RarityCommon]
	}
	if len(bucket) == 0 {
		return domain.Icon{}, false
	}
	return bucket[c.intN(len(bucket))], true
}

func (c *Catalog) intN(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.IntN(n)
}
