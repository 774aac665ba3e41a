package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) (Event, bool) {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		return e, ok
	case <-time.After(200 * time.Millisecond):
		return Event{}, false
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, time.Millisecond)
}

func TestHub_Filters(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(Filter{})
	alice := hub.Register(Filter{PlayerID: "alice"})
	rewards := hub.Register(Filter{Types: []string{string(event.RewardClaimed)}})
	waitForClients(t, hub, 3)

	hub.Broadcast(string(event.RecipeDiscovered), "bob", nil)
	hub.Broadcast(string(event.RewardClaimed), "alice", map[string]string{"icon_id": "crown"})

	e, ok := receive(t, all)
	require.True(t, ok)
	assert.Equal(t, string(event.RecipeDiscovered), e.Type)
	e, ok = receive(t, all)
	require.True(t, ok)
	assert.Equal(t, string(event.RewardClaimed), e.Type)

	e, ok = receive(t, alice)
	require.True(t, ok)
	assert.Equal(t, "alice", e.PlayerID)
	_, ok = receive(t, alice)
	assert.False(t, ok, "bob's event is filtered out")

	e, ok = receive(t, rewards)
	require.True(t, ok)
	assert.Equal(t, string(event.RewardClaimed), e.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(Filter{})
	waitForClients(t, hub, 1)
	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(Filter{PlayerID: "alice"})
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(), event.NewChallengeCompletedEvent("alice", "hidden_wifi", "wifi")))

	e, ok := receive(t, c)
	require.True(t, ok)
	assert.Equal(t, string(event.ChallengeCompleted), e.Type)
	payload, isPayload := e.Payload.(event.ChallengeCompletedPayloadV1)
	require.True(t, isPayload)
	assert.Equal(t, "wifi", payload.RewardIconID)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "reward.claimed", PlayerID: "alice"})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: reward.claimed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"player_id":"alice"`)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?player=alice", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var eventType string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				eventType = strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
			if line == "\n" {
				return eventType
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEvent())
	waitForClients(t, hub, 1)

	hub.Broadcast(string(event.RewardDrawn), "bob", nil)
	hub.Broadcast(string(event.RewardDrawn), "alice", nil)
	assert.Equal(t, string(event.RewardDrawn), readEvent())
}

func TestHub_StopReleasesGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		for i := 0; i < 5; i++ {
			hub.Register(Filter{})
		}
		waitForClients(t, hub, 5)
		hub.Stop()
	})
}
