package minigame

import (
	"time"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// Settings tunes every variant and the daily limit
type Settings struct {
	DailyLimit       int
	MaxRetainedGames int

	TapRushDuration time.Duration
	TapTarget       int

	SequenceDuration time.Duration
	SequenceLength   int
	SequenceSymbols  int

	ReactionDuration time.Duration
	ReactionMinDelay time.Duration
	ReactionMaxDelay time.Duration
	ReactionWindow   time.Duration
}

// DefaultSettings returns the built-in tuning
func DefaultSettings() Settings {
	return Settings{
		DailyLimit:       DefaultDailyLimit,
		MaxRetainedGames: DefaultMaxRetainedGames,
		TapRushDuration:  DefaultTapRushDuration,
		TapTarget:        DefaultTapTarget,
		SequenceDuration: DefaultSequenceDuration,
		SequenceLength:   DefaultSequenceLength,
		SequenceSymbols:  DefaultSequenceSymbols,
		ReactionDuration: DefaultReactionDuration,
		ReactionMinDelay: DefaultReactionMinDelay,
		ReactionMaxDelay: DefaultReactionMaxDelay,
		ReactionWindow:   DefaultReactionWindow,
	}
}

// WithDefaults fills zero fields from DefaultSettings
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.DailyLimit == 0 {
		s.DailyLimit = d.DailyLimit
	}
	if s.MaxRetainedGames <= 0 {
		s.MaxRetainedGames = d.MaxRetainedGames
	}
	if s.TapRushDuration <= 0 {
		s.TapRushDuration = d.TapRushDuration
	}
	if s.TapTarget <= 0 {
		s.TapTarget = d.TapTarget
	}
	if s.SequenceDuration <= 0 {
		s.SequenceDuration = d.SequenceDuration
	}
	if s.SequenceLength <= 0 {
		s.SequenceLength = d.SequenceLength
	}
	if s.SequenceSymbols <= 1 {
		s.SequenceSymbols = d.SequenceSymbols
	}
	if s.ReactionDuration <= 0 {
		s.ReactionDuration = d.ReactionDuration
	}
	if s.ReactionMinDelay <= 0 {
		s.ReactionMinDelay = d.ReactionMinDelay
	}
	if s.ReactionMaxDelay <= 0 {
		s.ReactionMaxDelay = d.ReactionMaxDelay
	}
	if s.ReactionMaxDelay < s.ReactionMinDelay {
		s.ReactionMaxDelay = s.ReactionMinDelay
	}
	if s.ReactionWindow <= 0 {
		s.ReactionWindow = d.ReactionWindow
	}
	return s
}

// RoundDuration returns the round length of a variant
func (s Settings) RoundDuration(kind domain.GameKind) time.Duration {
	switch kind {
	case domain.GameSequence:
		return s.SequenceDuration
	case domain.GameReaction:
		return s.ReactionDuration
	default:
		return s.TapRushDuration
	}
}
