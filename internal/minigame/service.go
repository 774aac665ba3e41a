package minigame

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// RewardDrawer holds a drawn reward until the player claims it
type RewardDrawer interface {
	Draw(ctx context.Context) (*domain.PendingReward, error)
	Abandon(ctx context.Context, rewardID string) bool
}

// DailyPlaysSaver persists the daily counter of a player
type DailyPlaysSaver interface {
	SaveDailyPlays(ctx context.Context, playerID string, blob domain.DailyPlaysBlob) error
}

type round struct {
	id       string
	machine  *Machine
	reward   *domain.PendingReward
	reported bool
	// synced is the wall-clock instant the machine's timers were last
	// advanced to
	synced time.Time
}

func (r *round) view() domain.GameView {
	g := r.machine.Game()
	return domain.GameView{
		ID:        r.id,
		Kind:      g.Kind(),
		State:     r.machine.State(),
		Score:     g.Score(),
		Target:    g.Target(),
		Remaining: r.machine.Remaining(),
		Prompt:    g.Prompt(),
		Reward:    r.reward,
	}
}

// Service runs the mini-game rounds of one player
type Service struct {
	mu       sync.Mutex
	playerID string
	settings Settings
	limiter  *Limiter
	saver    DailyPlaysSaver
	rewards  RewardDrawer
	bus      event.Bus
	rng      RandSource
	clock    clock.Clock

	rounds map[string]*round
	order  []string
}

// NewService creates a mini-game service. saver and bus may be nil; a nil
// clk uses the system clock.
func NewService(playerID string, settings Settings, limiter *Limiter, saver DailyPlaysSaver, rewards RewardDrawer, bus event.Bus, rng RandSource, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		playerID: playerID,
		settings: settings.WithDefaults(),
		limiter:  limiter,
		saver:    saver,
		rewards:  rewards,
		bus:      bus,
		rng:      rng,
		clock:    clk,
		rounds:   make(map[string]*round),
	}
}

// Start consumes a daily play and begins a round of kind
func (s *Service) Start(ctx context.Context, kind domain.GameKind) (*domain.GameView, error) {
	log := logger.FromContext(ctx)

	game, err := NewGame(kind, s.settings, s.rng)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reset, err := s.limiter.Consume()
	if reset {
		log.Info(LogMsgDailyPlaysReset)
	}
	if err != nil {
		log.Info(LogMsgDailyLimit, "limit", s.limiter.Limit())
		s.persistPlaysLocked(ctx)
		return nil, err
	}
	s.persistPlaysLocked(ctx)

	r := &round{
		id:      uuid.New().String(),
		machine: NewMachine(game, s.settings.RoundDuration(kind)),
		synced:  s.clock.Now(),
	}
	if err := r.machine.Start(); err != nil {
		return nil, err
	}
	s.rounds[r.id] = r
	s.order = append(s.order, r.id)
	s.pruneLocked()

	log.Info(LogMsgGameStarted, "game_id", r.id, "kind", kind)
	v := r.view()
	return &v, nil
}

// Input forwards one player input to a running round. A round whose time ran
// out before the input arrived ends without it and its final view is returned.
func (s *Service) Input(ctx context.Context, gameID string, in domain.GameInput) (*domain.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if s.syncLocked(ctx, r) {
		v := r.view()
		return &v, nil
	}
	if _, err := r.machine.Input(in); err != nil {
		return nil, err
	}
	s.settleLocked(ctx, r)
	v := r.view()
	return &v, nil
}

// Tick brings a running round up to the current time
func (s *Service) Tick(ctx context.Context, gameID string) (*domain.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if r.machine.State() != domain.GameRunning {
		return nil, domain.ErrGameNotRunning
	}
	s.syncLocked(ctx, r)
	v := r.view()
	return &v, nil
}

// Stop tears a round down. A running round is lost; an unclaimed reward of
// a won round is discarded.
func (s *Service) Stop(ctx context.Context, gameID string) (*domain.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}

	s.syncLocked(ctx, r)
	if r.machine.Stop() {
		logger.FromContext(ctx).Info(LogMsgGameAbandoned, "game_id", r.id)
		r.reported = true
		s.publishFinished(ctx, r, OutcomeAbandoned)
	}
	if r.reward != nil && s.rewards != nil {
		s.rewards.Abandon(ctx, r.reward.ID)
		r.reward = nil
	}

	v := r.view()
	return &v, nil
}

// Get returns the current view of a round
func (s *Service) Get(ctx context.Context, gameID string) (*domain.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rounds[gameID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	s.syncLocked(ctx, r)
	v := r.view()
	return &v, nil
}

// List returns the retained rounds, oldest first
func (s *Service) List(ctx context.Context) []domain.GameView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.GameView, 0, len(s.order))
	for _, id := range s.order {
		r := s.rounds[id]
		s.syncLocked(ctx, r)
		out = append(out, r.view())
	}
	return out
}

// RemainingPlays returns plays left today, or -1 when unlimited
func (s *Service) RemainingPlays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limiter.Remaining()
}

// syncLocked advances a running round's timers by the wall-clock time since
// the last sync. It reports whether that finished the round.
func (s *Service) syncLocked(ctx context.Context, r *round) bool {
	if r.machine.State() != domain.GameRunning {
		return false
	}
	now := s.clock.Now()
	elapsed := now.Sub(r.synced)
	r.synced = now
	if elapsed <= 0 {
		return false
	}
	if _, err := r.machine.Tick(elapsed); err != nil {
		return false
	}
	s.settleLocked(ctx, r)
	return r.machine.State().Finished()
}

// settleLocked reports a round the first time it reaches a terminal state
// and draws the reward of a win.
func (s *Service) settleLocked(ctx context.Context, r *round) {
	state := r.machine.State()
	if !state.Finished() || r.reported {
		return
	}
	r.reported = true
	log := logger.FromContext(ctx)

	outcome := OutcomeLost
	if state == domain.GameWon {
		outcome = OutcomeWon
		if s.rewards != nil {
			reward, err := s.rewards.Draw(ctx)
			if err != nil {
				log.Error(LogMsgDrawFailed, "game_id", r.id, "error", err)
			}
			r.reward = reward
		}
	}

	log.Info(LogMsgGameFinished, "game_id", r.id, "kind", r.machine.Game().Kind(), "outcome", outcome)
	s.publishFinished(ctx, r, outcome)
}

// pruneLocked drops the oldest finished rounds past the retention cap
func (s *Service) pruneLocked() {
	excess := len(s.order) - s.settings.MaxRetainedGames
	if excess <= 0 {
		return
	}
	kept := s.order[:0]
	for _, id := range s.order {
		if excess > 0 && s.rounds[id].machine.State().Finished() {
			delete(s.rounds, id)
			excess--
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}

func (s *Service) persistPlaysLocked(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.SaveDailyPlays(ctx, s.playerID, s.limiter.Blob()); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
	}
}

func (s *Service) publishFinished(ctx context.Context, r *round, outcome string) {
	if s.bus == nil {
		return
	}
	evt := event.NewMiniGameFinishedEvent(s.playerID, r.id, string(r.machine.Game().Kind()), outcome, r.machine.Game().Score())
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
