package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameCraftAttempts       = "craft_attempts_total"
	MetricNameRecipesDiscovered   = "recipes_discovered_total"
	MetricNameIconsUnlocked       = "icons_unlocked_total"
	MetricNameRewardsDrawn        = "rewards_drawn_total"
	MetricNameRewardsClaimed      = "rewards_claimed_total"
	MetricNameRewardsDiscarded    = "rewards_discarded_total"
	MetricNameChallengesCompleted = "hidden_challenges_completed_total"
	MetricNameMiniGamesFinished   = "minigames_finished_total"
	MetricNameActiveSessions      = "active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextCraftAttempts        = "Total number of ingredient submissions by outcome"
	HelpTextRecipesDiscovered    = "Total number of first-time recipe discoveries"
	HelpTextIconsUnlocked        = "Total number of first-time icon unlocks by source"
	HelpTextRewardsDrawn         = "Total number of mini-game rewards drawn by rarity"
	HelpTextRewardsClaimed       = "Total number of mini-game rewards claimed by rarity"
	HelpTextRewardsDiscarded     = "Total number of drawn rewards never committed, by reason"
	HelpTextChallengesCompleted  = "Total number of hidden challenges completed"
	HelpTextMiniGamesFinished    = "Total number of mini-game rounds finished by kind and outcome"
	HelpTextActiveSessions       = "Current number of player sessions held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOutcome   = "outcome"
	LabelRecipe    = "recipe"
	LabelSource    = "source"
	LabelRarity    = "rarity"
	LabelChallenge = "challenge"
	LabelKind      = "kind"
	LabelReason    = "reason"
)

// Craft outcomes
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// Reasons a drawn reward is discarded
const (
	ReasonAbandoned = "abandoned"
	ReasonEvicted   = "evicted"
	ReasonLost      = "lost"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// unmatchedRoute labels requests that did not hit a chi route
const unmatchedRoute = "unmatched"

const LogMsgMetricsRecorded = "Metrics recorded for event"
