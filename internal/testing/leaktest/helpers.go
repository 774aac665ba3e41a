// Package leaktest checks that tests return the goroutines and heap they use.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long a check waits for goroutines to exit
const settleTimeout = time.Second

// GoroutineChecker helps detect goroutine leaks
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		before: settle(0, 20*time.Millisecond),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines outlive the
// baseline. Stopping goroutines are given settleTimeout to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// Verify registers a goroutine check that runs when the test finishes
func Verify(t testing.TB, tolerance int) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(tolerance) })
}

// settle polls until at most target goroutines remain or the wait elapses,
// and returns the last count seen. A zero target only waits the full duration
// for the count to stop changing.
func settle(target int, wait time.Duration) int {
	deadline := time.Now().Add(wait)
	last := runtime.NumGoroutine()
	for time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(5 * time.Millisecond)
		n := runtime.NumGoroutine()
		if target > 0 && n <= target {
			return n
		}
		if target == 0 && n == last {
			return n
		}
		last = n
	}
	return runtime.NumGoroutine()
}

// MemoryChecker helps detect heap growth
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker records the live heap after a collection
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	beforeMB := float64(m.before) / 1024 / 1024
	afterMB := float64(after) / 1024 / 1024
	if growthMB := afterMB - beforeMB; growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			beforeMB, afterMB, growthMB, maxGrowthMB)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if the live heap grew past maxGrowthMB
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
