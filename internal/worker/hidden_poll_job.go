package worker

import (
	"context"

	"github.com/osse101/IconIdle_Go/internal/logger"
)

// HiddenPoller checks live sessions for satisfied hidden challenges
type HiddenPoller interface {
	PollHidden(ctx context.Context) int
	Len() int
}

// HiddenPollJob runs one polling pass over every live session
type HiddenPollJob struct {
	poller HiddenPoller
}

// NewHiddenPollJob creates the poll job
func NewHiddenPollJob(poller HiddenPoller) *HiddenPollJob {
	return &HiddenPollJob{poller: poller}
}

// Name identifies the job in logs
func (j *HiddenPollJob) Name() string {
	return "hidden_poll"
}

// Process polls every live session once
func (j *HiddenPollJob) Process(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPollStarted, "sessions", j.poller.Len())

	completed := j.poller.PollHidden(ctx)
	if completed > 0 {
		log.Info(LogMsgPollCompleted, "completed", completed)
	}
	return nil
}
