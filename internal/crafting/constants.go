package crafting

// Log messages
const (
	LogMsgCraftCalled         = "Craft called"
	LogMsgNoMatch             = "No recipe matches submission"
	LogMsgRecipeDiscovered    = "Recipe discovered"
	LogMsgDuplicateMultiset   = "Recipe shares its ingredient multiset with an earlier recipe and will never match"
	LogMsgDuplicateRecipeID   = "Recipe id registered more than once"
	LogMsgInventoryAddFailed  = "Failed to add crafted icon, result lost"
	LogMsgInventoryUnlockFail = "Failed to unlock crafted icon"
	LogMsgSaveDiscoveryFailed = "Failed to persist recipe discovery"
	LogMsgPublishFailed       = "Failed to publish crafting event"
	LogMsgUnknownDiscoveredID = "Ignoring unknown recipe id from save"
)

// EventSource tags events and unlocks produced by crafting
const EventSource = "crafting"

// MaxIngredients bounds a single submission
const MaxIngredients = 8
