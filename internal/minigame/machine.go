package minigame

import (
	"time"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/timer"
)

// Machine drives one game through NotStarted, Running and a terminal
// Won or Lost state. The round deadline lives on the machine's timers.
type Machine struct {
	game     Game
	duration time.Duration
	timers   *timer.Timers
	state    domain.GameState
}

// NewMachine wraps a game with a round of the given duration
func NewMachine(game Game, duration time.Duration) *Machine {
	return &Machine{
		game:     game,
		duration: duration,
		timers:   timer.New(),
		state:    domain.GameNotStarted,
	}
}

// Game returns the wrapped variant
func (m *Machine) Game() Game {
	return m.game
}

// State returns the current state
func (m *Machine) State() domain.GameState {
	return m.state
}

// Start moves NotStarted to Running and arms the round timer
func (m *Machine) Start() error {
	if m.state != domain.GameNotStarted {
		return domain.ErrGameNotRunning
	}
	m.state = domain.GameRunning
	m.game.Start(m.timers)
	m.timers.Set(timerRound, m.duration, func() {
		m.apply(m.game.OnTimeUp())
	})
	return nil
}

// Input forwards one player input
func (m *Machine) Input(in domain.GameInput) (domain.GameState, error) {
	if m.state != domain.GameRunning {
		return m.state, domain.ErrGameNotRunning
	}
	m.apply(m.game.OnInput(in))
	return m.state, nil
}

// Tick advances the round clock by dt
func (m *Machine) Tick(dt time.Duration) (domain.GameState, error) {
	if m.state != domain.GameRunning {
		return m.state, domain.ErrGameNotRunning
	}
	m.timers.Advance(dt)
	if m.state == domain.GameRunning {
		m.apply(m.game.OnTick())
	}
	return m.state, nil
}

// Stop ends a running round as lost. It reports whether the round was running.
func (m *Machine) Stop() bool {
	if m.state != domain.GameRunning {
		return false
	}
	m.apply(domain.GameLost)
	return true
}

// Remaining returns the time left in the round
func (m *Machine) Remaining() time.Duration {
	d, _ := m.timers.Remaining(timerRound)
	return d
}

// apply ignores anything but a move from Running to a terminal state
func (m *Machine) apply(next domain.GameState) {
	if m.state != domain.GameRunning || !next.Finished() {
		return
	}
	m.state = next
	m.timers.CancelAll()
}
