package hidden

import "time"

// DefaultPollInterval is how often device snapshots are evaluated
const DefaultPollInterval = 2 * time.Second

// EventSource tags unlocks produced by hidden challenges
const EventSource = "hidden"

// Predicate thresholds
const (
	batteryLowMax  = 0.05
	batteryFullMin = 0.999
	volumeMuteMax  = 0.001
	volumeMaxMin   = 0.999
)

// Log messages
const (
	LogMsgChallengeCompleted = "Hidden challenge completed"
	LogMsgRewardAddFailed    = "Failed to commit hidden challenge reward, will retry on next check"
	LogMsgUnlockFailed       = "Failed to unlock hidden challenge reward"
	LogMsgSaveFailed         = "Failed to persist hidden challenge completions"
	LogMsgPublishFailed      = "Failed to publish hidden challenge event"
	LogMsgUnknownSavedID     = "Ignoring unknown challenge id from save"
)
