package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
	block    chan struct{}
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	if j.block != nil {
		<-j.block
	}
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
	pool.Stop()
}

func TestPool_EnqueueFullQueueDoesNotBlock(t *testing.T) {
	var executed int32
	block := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()
	defer close(block)

	job := &testJob{executed: &executed, block: block}
	require.True(t, pool.Enqueue(job))

	// the worker holds one job; the queue holds one more; the third is dropped
	assert.Eventually(t, func() bool {
		return pool.Enqueue(job)
	}, time.Second, time.Millisecond)
	assert.False(t, pool.Enqueue(job))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()

	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		var executed int32
		pool := NewPool(4, 8)
		pool.Start()
		for i := 0; i < 8; i++ {
			pool.Enqueue(&testJob{executed: &executed})
		}
		pool.Stop()
	})
}

type fakePoller struct {
	calls int32
}

func (f *fakePoller) PollHidden(ctx context.Context) int {
	atomic.AddInt32(&f.calls, 1)
	return 2
}

func (f *fakePoller) Len() int { return 1 }

func TestHiddenPollJob(t *testing.T) {
	poller := &fakePoller{}
	job := NewHiddenPollJob(poller)

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&poller.calls))
	assert.Equal(t, "hidden_poll", job.Name())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, job.Process(ctx), context.Canceled)
	assert.Equal(t, int32(1), atomic.LoadInt32(&poller.calls))
}
