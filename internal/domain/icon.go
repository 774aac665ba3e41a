package domain

import (
	"fmt"
	"strings"
)

// Rarity is the ordered classification of a collectible icon.
// Common < Uncommon < Rare < Legendary.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

// RarityInfo holds the presentation and sampling data for one rarity tier
type RarityInfo struct {
	Name   string // stable lowercase key used in JSON and query params
	Label  string // French label shown to players
	Color  string // hex color used by the client
	Weight int    // share of SampleWeighted draws, out of 100
}

// rarityTable is the single source of truth for rarity display text and weights.
// Weights must sum to 100.
var rarityTable = map[Rarity]RarityInfo{
	RarityCommon:    {Name: "common", Label: "Commun", Color: "#9E9E9E", Weight: 60},
	RarityUncommon:  {Name: "uncommon", Label: "Peu commun", Color: "#4CAF50", Weight: 25},
	RarityRare:      {Name: "rare", Label: "Rare", Color: "#2196F3", Weight: 12},
	RarityLegendary: {Name: "legendary", Label: "Légendaire", Color: "#FF9800", Weight: 3},
}

// AllRarities returns every rarity from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}
}

// Info returns the table entry for the rarity. Unknown values fall back to Common.
func (r Rarity) Info() RarityInfo {
	if info, ok := rarityTable[r]; ok {
		return info
	}
	return rarityTable[RarityCommon]
}

func (r Rarity) String() string { return r.Info().Name }

// Label returns the player-facing label
func (r Rarity) Label() string { return r.Info().Label }

// Color returns the hex color for the tier
func (r Rarity) Color() string { return r.Info().Color }

// Valid reports whether r is one of the declared tiers
func (r Rarity) Valid() bool {
	_, ok := rarityTable[r]
	return ok
}

// ParseRarity converts a rarity name ("common", "rare", ...) to a Rarity
func ParseRarity(s string) (Rarity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllRarities() {
		if rarityTable[r].Name == name {
			return r, nil
		}
	}
	return RarityCommon, fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

// MarshalText encodes the rarity as its lowercase name
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a lowercase rarity name
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Icon is an immutable collectible entry of the catalog
type Icon struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Rarity      Rarity `json:"rarity"`
	// Hidden icons are only earned through hidden challenges and never drawn
	Hidden bool `json:"hidden,omitempty"`
}
