package domain

import "time"

// GameKind identifies a mini-game variant
type GameKind string

const (
	GameTapRush  GameKind = "tap_rush"
	GameSequence GameKind = "sequence"
	GameReaction GameKind = "reaction"
)

// AllGameKinds lists the playable variants
func AllGameKinds() []GameKind {
	return []GameKind{GameTapRush, GameSequence, GameReaction}
}

// GameState is the lifecycle of one mini-game round
type GameState string

const (
	GameNotStarted GameState = "not_started"
	GameRunning    GameState = "running"
	GameWon        GameState = "won"
	GameLost       GameState = "lost"
)

// Finished reports whether the state is terminal
func (s GameState) Finished() bool {
	return s == GameWon || s == GameLost
}

// InputKind distinguishes player input events
type InputKind string

const (
	InputTap    InputKind = "tap"
	InputSymbol InputKind = "symbol"
)

// GameInput is one player input forwarded to a running game
type GameInput struct {
	Kind   InputKind `json:"kind" validate:"required,oneof=tap symbol"`
	Symbol int       `json:"symbol"`
}

// PendingReward is a drawn but not yet claimed icon
type PendingReward struct {
	ID      string    `json:"id"`
	Icon    Icon      `json:"icon"`
	DrawnAt time.Time `json:"drawn_at"`
}

// GameView is the client-facing state of a mini-game round
type GameView struct {
	ID        string         `json:"id"`
	Kind      GameKind       `json:"kind"`
	State     GameState      `json:"state"`
	Score     int            `json:"score"`
	Target    int            `json:"target"`
	Remaining time.Duration  `json:"remaining_ns"`
	Prompt    []int          `json:"prompt,omitempty"`
	Reward    *PendingReward `json:"reward,omitempty"`
}
