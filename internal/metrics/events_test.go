package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/event"
)

func TestEventMetricsCollector_CountsByType(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	before := testutil.ToFloat64(ChallengesCompleted.WithLabelValues("hidden_wifi"))
	drawnBefore := testutil.ToFloat64(RewardsDrawn.WithLabelValues("rare"))
	claimedBefore := testutil.ToFloat64(RewardsClaimed.WithLabelValues("rare"))

	require.NoError(t, bus.Publish(ctx, event.NewChallengeCompletedEvent("p", "hidden_wifi", "wifi")))
	require.NoError(t, bus.Publish(ctx, event.NewRewardDrawnEvent("p", "r1", "house", "rare")))

	assert.Equal(t, before+1, testutil.ToFloat64(ChallengesCompleted.WithLabelValues("hidden_wifi")))
	assert.Equal(t, drawnBefore+1, testutil.ToFloat64(RewardsDrawn.WithLabelValues("rare")))
	assert.Equal(t, claimedBefore, testutil.ToFloat64(RewardsClaimed.WithLabelValues("rare")))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}/inventory", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}/inventory", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/alice/inventory", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}/inventory", "418")))
}
