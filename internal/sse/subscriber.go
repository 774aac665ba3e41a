package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/IconIdle_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every game event type to the hub
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.forward)

	types := make([]string, 0, len(event.AllTypes()))
	for _, t := range event.AllTypes() {
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.PlayerID(), evt.Payload)
	return nil
}
