// Package timer advances named deadlines from an explicit tick instead of
// wall-clock goroutines. Timers is not safe for concurrent use; its owner
// serializes access.
package timer

import (
	"sort"
	"time"
)

// Callback runs when a timer expires
type Callback func()

type entry struct {
	name     string
	deadline time.Duration
	cb       Callback
}

// Timers is a set of named one-shot deadlines measured on an internal
// elapsed-time axis that only moves through Advance.
type Timers struct {
	elapsed time.Duration
	entries map[string]*entry
}

// New creates an empty timer set
func New() *Timers {
	return &Timers{entries: make(map[string]*entry)}
}

// Set arms name to fire after d. An existing timer with the same name is replaced.
func (t *Timers) Set(name string, d time.Duration, cb Callback) {
	if d < 0 {
		d = 0
	}
	t.entries[name] = &entry{name: name, deadline: t.elapsed + d, cb: cb}
}

// Cancel disarms name and reports whether it was armed
func (t *Timers) Cancel(name string) bool {
	if _, ok := t.entries[name]; !ok {
		return false
	}
	delete(t.entries, name)
	return true
}

// CancelAll disarms every timer
func (t *Timers) CancelAll() {
	t.entries = make(map[string]*entry)
}

// Remaining returns the time left on name
func (t *Timers) Remaining(name string) (time.Duration, bool) {
	e, ok := t.entries[name]
	if !ok {
		return 0, false
	}
	return e.deadline - t.elapsed, true
}

// Active returns the armed timer names in firing order
func (t *Timers) Active() []string {
	ordered := t.ordered()
	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = e.name
	}
	return names
}

// Elapsed returns the total time advanced so far
func (t *Timers) Elapsed() time.Duration {
	return t.elapsed
}

// Advance moves time forward by dt and fires every expired timer in
// deadline order, ties broken by name. Timers armed by a callback fire in
// the same call when already due. It returns the names that fired.
func (t *Timers) Advance(dt time.Duration) []string {
	if dt > 0 {
		t.elapsed += dt
	}

	var fired []string
	for {
		next := t.nextDue()
		if next == nil {
			return fired
		}
		delete(t.entries, next.name)
		fired = append(fired, next.name)
		if next.cb != nil {
			next.cb()
		}
	}
}

func (t *Timers) nextDue() *entry {
	var best *entry
	for _, e := range t.entries {
		if e.deadline > t.elapsed {
			continue
		}
		if best == nil || less(e, best) {
			best = e
		}
	}
	return best
}

func (t *Timers) ordered() []*entry {
	out := make([]*entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less(a, b *entry) bool {
	if a.deadline != b.deadline {
		return a.deadline < b.deadline
	}
	return a.name < b.name
}
