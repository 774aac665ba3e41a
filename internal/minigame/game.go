// Package minigame runs timed rounds of short games. Every variant plugs
// into one state machine through the Game interface. Round time follows the
// service clock: every call on a round first advances it to now.
package minigame

import (
	"fmt"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/timer"
)

// RandSource is the randomness a game needs for its setup
type RandSource interface {
	IntN(n int) int
}

// Game is one mini-game variant. OnInput, OnTick and OnTimeUp return the
// state the round should move to; GameRunning means keep going.
type Game interface {
	Kind() domain.GameKind
	Start(timers *timer.Timers)
	OnInput(in domain.GameInput) domain.GameState
	OnTick() domain.GameState
	OnTimeUp() domain.GameState
	Score() int
	Target() int
	Prompt() []int
}

// NewGame builds a variant from settings
func NewGame(kind domain.GameKind, s Settings, rng RandSource) (Game, error) {
	switch kind {
	case domain.GameTapRush:
		return NewTapRush(s.TapTarget), nil
	case domain.GameSequence:
		return NewSequence(s.SequenceLength, s.SequenceSymbols, rng), nil
	case domain.GameReaction:
		return NewReaction(s.ReactionMinDelay, s.ReactionMaxDelay, s.ReactionWindow, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGameKind, kind)
	}
}
