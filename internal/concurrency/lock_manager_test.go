package concurrency

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWith_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.With("alice", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, lm.Len(), "released keys are dropped")
}

func TestWith_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()
	held := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = lm.With("alice", func() error {
			close(held)
			<-done
			return nil
		})
	}()
	<-held

	finished := make(chan struct{})
	go func() {
		_ = lm.With("bob", func() error { return nil })
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("bob waited on alice's lock")
	}
	assert.Equal(t, 1, lm.Len())
	close(done)
	require.Eventually(t, func() bool { return lm.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestWith_ManyKeysDoNotAccumulate(t *testing.T) {
	lm := NewLockManager()
	for i := 0; i < 1000; i++ {
		require.NoError(t, lm.With(fmt.Sprintf("player-%d", i), func() error { return nil }))
	}
	assert.Equal(t, 0, lm.Len())
}

func TestWith_ReturnsError(t *testing.T) {
	lm := NewLockManager()
	want := errors.New("boom")
	assert.ErrorIs(t, lm.With("alice", func() error { return want }), want)
	assert.Equal(t, 0, lm.Len())
}
