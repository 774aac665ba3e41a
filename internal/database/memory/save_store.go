package memory

import (
	"context"
	"sync"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

// SaveStore keeps save blobs in process memory. Contents are lost on exit.
type SaveStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewSaveStore creates an empty store
func NewSaveStore() *SaveStore {
	return &SaveStore{data: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key
func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value under key
func (s *SaveStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Ping always succeeds
func (s *SaveStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *SaveStore) Close() error {
	return nil
}
