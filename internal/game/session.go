package game

import (
	"sync"
	"time"

	"github.com/osse101/IconIdle_Go/internal/crafting"
	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/hidden"
	"github.com/osse101/IconIdle_Go/internal/inventory"
	"github.com/osse101/IconIdle_Go/internal/minigame"
	"github.com/osse101/IconIdle_Go/internal/reward"
)

// Session is the in-memory state of one player. Callers mutate it through
// Manager.With so that one player's actions never interleave.
type Session struct {
	PlayerID  string
	Inventory *inventory.Inventory
	Crafting  *crafting.Service
	Rewards   *reward.Service
	Hidden    *hidden.Tracker
	Poller    *hidden.Poller
	MiniGames *minigame.Service

	mu       sync.Mutex
	device   *domain.DeviceState
	reported time.Time
}

// ReportDevice records the latest device snapshot
func (s *Session) ReportDevice(state domain.DeviceState, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.device = &state
	s.reported = at
}

// Device returns the latest snapshot, if any was reported
func (s *Session) Device() (domain.DeviceState, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device == nil {
		return domain.DeviceState{}, time.Time{}, false
	}
	return *s.device, s.reported, true
}
