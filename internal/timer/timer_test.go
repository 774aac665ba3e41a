package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_FiresInDeadlineOrder(t *testing.T) {
	tm := New()
	var order []string
	record := func(name string) Callback { return func() { order = append(order, name) } }

	tm.Set("late", 3*time.Second, record("late"))
	tm.Set("b", time.Second, record("b"))
	tm.Set("a", time.Second, record("a"))
	tm.Set("never", time.Minute, record("never"))

	fired := tm.Advance(5 * time.Second)

	assert.Equal(t, []string{"a", "b", "late"}, fired)
	assert.Equal(t, []string{"a", "b", "late"}, order)
	assert.Equal(t, []string{"never"}, tm.Active())
}

func TestAdvance_NotYetDue(t *testing.T) {
	tm := New()
	called := false
	tm.Set("round", 2*time.Second, func() { called = true })

	assert.Empty(t, tm.Advance(1999*time.Millisecond))
	assert.False(t, called)

	remaining, ok := tm.Remaining("round")
	require.True(t, ok)
	assert.Equal(t, time.Millisecond, remaining)

	assert.Equal(t, []string{"round"}, tm.Advance(time.Millisecond))
	assert.True(t, called)
	_, ok = tm.Remaining("round")
	assert.False(t, ok, "fired timers are removed")
}

func TestSet_ReplacesExisting(t *testing.T) {
	tm := New()
	count := 0
	tm.Set("x", time.Second, func() { count += 1 })
	tm.Set("x", 3*time.Second, func() { count += 10 })

	tm.Advance(2 * time.Second)
	assert.Equal(t, 0, count)
	tm.Advance(time.Second)
	assert.Equal(t, 10, count)
}

func TestCancel(t *testing.T) {
	tm := New()
	tm.Set("x", time.Second, func() { t.Fatal("cancelled timer fired") })

	assert.True(t, tm.Cancel("x"))
	assert.False(t, tm.Cancel("x"))
	assert.Empty(t, tm.Advance(time.Hour))
}

func TestCallbackCanChainTimers(t *testing.T) {
	tm := New()
	var order []string
	tm.Set("first", time.Second, func() {
		order = append(order, "first")
		tm.Set("second", 0, func() { order = append(order, "second") })
		tm.Set("third", time.Minute, func() { order = append(order, "third") })
	})

	tm.Advance(time.Second)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []string{"third"}, tm.Active())
	assert.Equal(t, time.Second, tm.Elapsed())
}

func TestCancelAll(t *testing.T) {
	tm := New()
	tm.Set("a", time.Second, nil)
	tm.Set("b", time.Second, nil)
	tm.CancelAll()
	assert.Empty(t, tm.Active())
}
