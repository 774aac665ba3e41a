package minigame

import (
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/timer"
)

// TapRush is won by tapping target times before the round ends
type TapRush struct {
	target int
	taps   int
}

// NewTapRush creates a tap rush round
func NewTapRush(target int) *TapRush {
	if target <= 0 {
		target = DefaultTapTarget
	}
	return &TapRush{target: target}
}

func (g *TapRush) Kind() domain.GameKind { return domain.GameTapRush }

func (g *TapRush) Start(*timer.Timers) { g.taps = 0 }

func (g *TapRush) OnInput(in domain.GameInput) domain.GameState {
	if in.Kind != domain.InputTap {
		return domain.GameRunning
	}
	g.taps++
	if g.taps >= g.target {
		return domain.GameWon
	}
	return domain.GameRunning
}

func (g *TapRush) OnTick() domain.GameState { return domain.GameRunning }

func (g *TapRush) OnTimeUp() domain.GameState { return domain.GameLost }

func (g *TapRush) Score() int { return g.taps }

func (g *TapRush) Target() int { return g.target }

func (g *TapRush) Prompt() []int { return nil }
