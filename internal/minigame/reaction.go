package minigame

import (
	"time"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/timer"
)

// Reaction signals after a random delay. Tapping before the signal or
// later than the window after it loses.
type Reaction struct {
	minDelay time.Duration
	maxDelay time.Duration
	window   time.Duration
	rng      RandSource

	timers   *timer.Timers
	signaled bool
	signalAt time.Duration
	reaction time.Duration
}

// NewReaction creates a reaction round
func NewReaction(minDelay, maxDelay, window time.Duration, rng RandSource) *Reaction {
	if minDelay <= 0 {
		minDelay = DefaultReactionMinDelay
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	if window <= 0 {
		window = DefaultReactionWindow
	}
	return &Reaction{minDelay: minDelay, maxDelay: maxDelay, window: window, rng: rng}
}

func (g *Reaction) Kind() domain.GameKind { return domain.GameReaction }

func (g *Reaction) Start(timers *timer.Timers) {
	g.timers = timers
	g.signaled = false
	g.reaction = 0

	delay := g.minDelay
	if spread := int(g.maxDelay - g.minDelay); spread > 0 {
		delay += time.Duration(g.rng.IntN(spread + 1))
	}
	// The signal time is the deadline, not the moment a coarse advance
	// happened to fire it.
	at := timers.Elapsed() + delay
	timers.Set(timerSignal, delay, func() {
		g.signaled = true
		g.signalAt = at
	})
}

// Signaled reports whether the player should tap now
func (g *Reaction) Signaled() bool {
	return g.signaled
}

func (g *Reaction) OnInput(in domain.GameInput) domain.GameState {
	if in.Kind != domain.InputTap {
		return domain.GameRunning
	}
	if !g.signaled {
		return domain.GameLost
	}
	g.reaction = g.timers.Elapsed() - g.signalAt
	if g.reaction <= g.window {
		return domain.GameWon
	}
	return domain.GameLost
}

func (g *Reaction) OnTick() domain.GameState {
	if g.signaled && g.timers.Elapsed()-g.signalAt > g.window {
		return domain.GameLost
	}
	return domain.GameRunning
}

func (g *Reaction) OnTimeUp() domain.GameState { return domain.GameLost }

// Score is the measured reaction time in milliseconds
func (g *Reaction) Score() int { return int(g.reaction.Milliseconds()) }

// Target is the reaction window in milliseconds
func (g *Reaction) Target() int { return int(g.window.Milliseconds()) }

func (g *Reaction) Prompt() []int { return nil }
