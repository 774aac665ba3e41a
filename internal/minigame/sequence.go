package minigame

import (
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/timer"
)

// Sequence shows a prompt of symbols that must be repeated in order.
// One wrong symbol loses the round.
type Sequence struct {
	length  int
	symbols int
	rng     RandSource
	prompt  []int
	pos     int
}

// NewSequence creates a sequence round over symbols 0..symbols-1
func NewSequence(length, symbols int, rng RandSource) *Sequence {
	if length <= 0 {
		length = DefaultSequenceLength
	}
	if symbols <= 1 {
		symbols = DefaultSequenceSymbols
	}
	return &Sequence{length: length, symbols: symbols, rng: rng}
}

func (g *Sequence) Kind() domain.GameKind { return domain.GameSequence }

func (g *Sequence) Start(*timer.Timers) {
	g.pos = 0
	g.prompt = make([]int, g.length)
	for i := range g.prompt {
		g.prompt[i] = g.rng.IntN(g.symbols)
	}
}

func (g *Sequence) OnInput(in domain.GameInput) domain.GameState {
	if in.Kind != domain.InputSymbol {
		return domain.GameRunning
	}
	if in.Symbol != g.prompt[g.pos] {
		return domain.GameLost
	}
	g.pos++
	if g.pos == len(g.prompt) {
		return domain.GameWon
	}
	return domain.GameRunning
}

func (g *Sequence) OnTick() domain.GameState { return domain.GameRunning }

func (g *Sequence) OnTimeUp() domain.GameState { return domain.GameLost }

func (g *Sequence) Score() int { return g.pos }

func (g *Sequence) Target() int { return g.length }

func (g *Sequence) Prompt() []int {
	out := make([]int, len(g.prompt))
	copy(out, g.prompt)
	return out
}
