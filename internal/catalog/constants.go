package catalog

// Log messages
const (
	LogMsgCatalogInitialized = "Icon catalog initialized"
	LogMsgRarityFallback     = "Rarity bucket empty, falling back to common"
)

// Error context
const (
	ErrContextDuplicateIcon = "duplicate icon id"
	ErrContextEmptyID       = "icon with empty id"
)

// weightScale is the upper bound of the single uniform draw used by SampleWeighted
const weightScale = 100.0
