package minigame

import "time"

// Timer names
const (
	timerRound  = "round"
	timerSignal = "signal"
)

// Defaults used when settings leave a value unset
const (
	DefaultDailyLimit       = 10
	DefaultMaxRetainedGames = 8

	DefaultTapRushDuration = 10 * time.Second
	DefaultTapTarget       = 30

	DefaultSequenceDuration = 20 * time.Second
	DefaultSequenceLength   = 6
	DefaultSequenceSymbols  = 4

	DefaultReactionDuration = 10 * time.Second
	DefaultReactionMinDelay = 1500 * time.Millisecond
	DefaultReactionMaxDelay = 4 * time.Second
	DefaultReactionWindow   = 600 * time.Millisecond
)

// Outcome labels for finished events
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// Log messages
const (
	LogMsgGameStarted     = "Mini-game started"
	LogMsgGameFinished    = "Mini-game finished"
	LogMsgGameAbandoned   = "Mini-game abandoned"
	LogMsgDailyLimit      = "Daily play limit reached"
	LogMsgSaveFailed      = "Failed to persist daily plays"
	LogMsgDrawFailed      = "Failed to draw mini-game reward"
	LogMsgPublishFailed   = "Failed to publish mini-game event"
	LogMsgDailyPlaysReset = "Daily play counter reset"
)
