package game

import "time"

// Session cache defaults
const (
	DefaultMaxSessions = 5000
	DefaultSessionTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgSessionLoaded  = "Player session loaded"
	LogMsgSessionReset   = "Player save data reset"
	LogMsgLoadFailed     = "Failed to load player save data"
	LogMsgDeviceReported = "Device state reported"
	LogMsgPollCompleted  = "Hidden challenge poll completed"
)
