package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})

	err := rp.Publish(context.Background(), NewRewardDrawnEvent("p", "r", "grain", "common"))
	require.NoError(t, err)
	rp.Wait()

	assert.Equal(t, 1, bus.CallCount())
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt < 3 }}
	deadLetter := t.TempDir() + "/deadletter.jsonl"
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 5, RetryDelay: time.Millisecond, DeadLetterPath: deadLetter})

	require.NoError(t, rp.Publish(context.Background(), NewRewardDrawnEvent("p", "r", "grain", "common")))
	rp.Wait()

	assert.Equal(t, 3, bus.CallCount())
	_, err := os.Stat(deadLetter)
	assert.True(t, os.IsNotExist(err), "dead letter file must not be written")
}

func TestResilientPublisher_ExhaustedGoesToDeadLetter(t *testing.T) {
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	deadLetter := t.TempDir() + "/deadletter.jsonl"
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetterPath: deadLetter})

	require.NoError(t, rp.Publish(context.Background(), NewChallengeCompletedEvent("p", "hidden_wifi", "wifi")))
	rp.Wait()

	assert.Equal(t, 3, bus.CallCount())

	data, err := os.ReadFile(deadLetter)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, ChallengeCompleted, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
}
