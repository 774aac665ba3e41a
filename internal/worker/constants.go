package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Hidden Poll Job
// ============================================================================

// Log messages for the hidden challenge poll job
const (
	LogMsgPollStarted   = "Hidden challenge poll started"
	LogMsgPollCompleted = "Hidden challenge poll completed"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second
