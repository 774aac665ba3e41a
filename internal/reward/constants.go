package reward

import "time"

// Pending store defaults
const (
	DefaultPendingTTL      = 15 * time.Minute
	DefaultPendingCapacity = 10000
)

// EventSource tags unlocks produced by claimed rewards
const EventSource = "minigame"

// Log messages
const (
	LogMsgRewardDrawn     = "Reward drawn, awaiting claim"
	LogMsgRewardClaimed   = "Reward claimed"
	LogMsgRewardAbandoned = "Reward abandoned"
	LogMsgRewardNotFound  = "Claim for unknown or expired reward"
	LogMsgRewardLost      = "Inventory unavailable, reward lost"
	LogMsgUnlockFailed    = "Failed to unlock claimed icon"
	LogMsgPublishFailed   = "Failed to publish reward event"
)
