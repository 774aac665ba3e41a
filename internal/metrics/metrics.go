package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CraftAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftAttempts,
			Help: HelpTextCraftAttempts,
		},
		[]string{LabelOutcome},
	)

	RecipesDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesDiscovered,
			Help: HelpTextRecipesDiscovered,
		},
		[]string{LabelRecipe},
	)

	IconsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIconsUnlocked,
			Help: HelpTextIconsUnlocked,
		},
		[]string{LabelSource},
	)

	RewardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDrawn,
			Help: HelpTextRewardsDrawn,
		},
		[]string{LabelRarity},
	)

	RewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
		[]string{LabelRarity},
	)

	RewardsDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDiscarded,
			Help: HelpTextRewardsDiscarded,
		},
		[]string{LabelReason},
	)

	ChallengesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengesCompleted,
			Help: HelpTextChallengesCompleted,
		},
		[]string{LabelChallenge},
	)

	MiniGamesFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiniGamesFinished,
			Help: HelpTextMiniGamesFinished,
		},
		[]string{LabelKind, LabelOutcome},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
