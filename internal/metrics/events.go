package metrics

import (
	"context"

	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent updates counters for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.RecipeDiscoveredPayloadV1:
		RecipesDiscovered.WithLabelValues(p.RecipeID).Inc()
	case event.IconUnlockedPayloadV1:
		IconsUnlocked.WithLabelValues(p.Source).Inc()
	case event.ChallengeCompletedPayloadV1:
		ChallengesCompleted.WithLabelValues(p.ChallengeID).Inc()
	case event.RewardPayloadV1:
		if evt.Type == event.RewardDrawn {
			RewardsDrawn.WithLabelValues(p.Rarity).Inc()
		} else {
			RewardsClaimed.WithLabelValues(p.Rarity).Inc()
		}
	case event.MiniGameFinishedPayloadV1:
		MiniGamesFinished.WithLabelValues(p.Kind, p.Outcome).Inc()
	default:
		return nil
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
