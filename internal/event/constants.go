package event

import "time"

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Retry defaults for ResilientPublisher
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
	MetadataKeySource   = "source"
)

// Log message constants
const (
	LogMsgPublishFailed       = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded      = "Successfully published event after retry"
	LogMsgRetryFailed         = "Retry failed"
	LogMsgDeadLettered        = "Event written to dead letter queue"
	LogMsgDeadLetterOpenFail  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFail = "Failed to write to dead letter file"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
