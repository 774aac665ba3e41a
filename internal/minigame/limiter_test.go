package minigame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IconIdle_Go/internal/clock"
	"github.com/osse101/IconIdle_Go/internal/domain"
)

func TestLimiter_CapsPlays(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	l := NewLimiter(2, clk, domain.DailyPlaysBlob{})

	assert.Equal(t, 2, l.Remaining())

	reset, err := l.Consume()
	require.NoError(t, err)
	assert.True(t, reset, "first play after an empty save starts a new day")

	reset, err = l.Consume()
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, 0, l.Remaining())

	_, err = l.Consume()
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)
	assert.Equal(t, domain.DailyPlaysBlob{PlaysToday: 2, LastResetTimestamp: clk.Now().Unix()}, l.Blob())
}

func TestLimiter_ResetsNextDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	clk := clock.NewSimulatedClock(start)
	l := NewLimiter(1, clk, domain.DailyPlaysBlob{PlaysToday: 1, LastResetTimestamp: start.Add(-time.Hour).Unix()})

	_, err := l.Consume()
	assert.ErrorIs(t, err, domain.ErrDailyLimitReached)

	clk.Advance(2 * time.Hour)
	assert.Equal(t, 1, l.Remaining())

	reset, err := l.Consume()
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, 1, l.Blob().PlaysToday)
	assert.Equal(t, clk.Now().Unix(), l.Blob().LastResetTimestamp)
}

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, clock.NewSimulatedClock(time.Now()), domain.DailyPlaysBlob{})
	for i := 0; i < 50; i++ {
		_, err := l.Consume()
		require.NoError(t, err)
	}
	assert.Equal(t, -1, l.Remaining())
}
