// Package concurrency serializes work per named key.
package concurrency

import "sync"

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager serializes callers that share a key. A key's entry lives only
// while someone holds or waits for it, so arbitrary keys do not accumulate.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates an empty LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// With runs fn while holding the lock for key
func (lm *LockManager) With(key string, fn func() error) error {
	l := lm.acquire(key)
	defer lm.release(key, l)
	return fn()
}

// Len returns the number of keys currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) acquire(key string) *keyLock {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()
	return l
}

func (lm *LockManager) release(key string, l *keyLock) {
	l.mu.Unlock()

	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}
