package inventory

// Log messages
const (
	LogMsgIconAdded        = "Icon added to inventory"
	LogMsgIconUnlocked     = "Icon unlocked"
	LogMsgSaveFailed       = "Failed to persist inventory, rolling back"
	LogMsgUnknownSavedIcon = "Inventory save references an icon missing from the catalog"
)
