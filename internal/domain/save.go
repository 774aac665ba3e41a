package domain

// Persisted save domains. Each is a single JSON blob per player.
const (
	SaveDomainHidden     = "hidden_games"
	SaveDomainDailyPlays = "daily_plays"
	SaveDomainInventory  = "inventory"
	SaveDomainDiscovery  = "recipes"
)

// CompletionBlob is the persisted set of completed hidden challenges
type CompletionBlob struct {
	CompletedGameIDs []string `json:"completedGameIds"`
}

// DailyPlaysBlob is the persisted mini-game daily limit counter
type DailyPlaysBlob struct {
	PlaysToday         int   `json:"playsToday"`
	LastResetTimestamp int64 `json:"lastResetTimestamp"`
}

// InventoryBlob is the persisted icon inventory
type InventoryBlob struct {
	Counts   map[string]int `json:"counts"`
	Unlocked []string       `json:"unlocked"`
}

// DiscoveryBlob is the persisted list of discovered recipe ids
type DiscoveryBlob struct {
	DiscoveredRecipeIDs []string `json:"discoveredRecipeIds"`
}

// InventoryEntry is one icon held by a player
type InventoryEntry struct {
	Icon     Icon `json:"icon"`
	Quantity int  `json:"quantity"`
}
