package minigame

import (
	"time"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
)

// Limiter caps plays per local calendar day. The counter resets on the
// first use after the day of the last reset has passed. A non-positive
// limit means unlimited.
type Limiter struct {
	limit     int
	clock     clock.Clock
	plays     int
	lastReset int64
}

// NewLimiter restores a limiter from a loaded blob
func NewLimiter(limit int, clk clock.Clock, blob domain.DailyPlaysBlob) *Limiter {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Limiter{
		limit:     limit,
		clock:     clk,
		plays:     blob.PlaysToday,
		lastReset: blob.LastResetTimestamp,
	}
}

// Limit returns the configured daily cap
func (l *Limiter) Limit() int {
	return l.limit
}

// Remaining returns plays left today, or -1 when unlimited
func (l *Limiter) Remaining() int {
	if l.limit <= 0 {
		return -1
	}
	plays := l.plays
	if l.rolledOver(l.clock.Now()) {
		plays = 0
	}
	if plays >= l.limit {
		return 0
	}
	return l.limit - plays
}

// Consume uses one play. It reports whether the counter was reset first.
func (l *Limiter) Consume() (reset bool, err error) {
	now := l.clock.Now()
	if l.rolledOver(now) {
		l.plays = 0
		l.lastReset = now.Unix()
		reset = true
	}
	if l.limit > 0 && l.plays >= l.limit {
		return reset, domain.ErrDailyLimitReached
	}
	l.plays++
	return reset, nil
}

// Blob returns the persisted form
func (l *Limiter) Blob() domain.DailyPlaysBlob {
	return domain.DailyPlaysBlob{PlaysToday: l.plays, LastResetTimestamp: l.lastReset}
}

func (l *Limiter) rolledOver(now time.Time) bool {
	last := time.Unix(l.lastReset, 0).In(now.Location())
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}
