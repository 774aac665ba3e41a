package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

const (
	defaultPoolSize = 10
	pingTimeout     = 5 * time.Second
)

// SaveStore keeps save blobs as plain Redis string values
type SaveStore struct {
	client *redis.Client
}

// Connect parses redisURL, opens a client and pings it
func Connect(ctx context.Context, redisURL string, poolSize int) (*SaveStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	opt.PoolSize = poolSize
	opt.MinIdleConns = 1
	opt.ConnMaxIdleTime = 30 * time.Minute
	opt.ReadTimeout = 5 * time.Second
	opt.WriteTimeout = 5 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	slog.Default().Info("Redis connection established", "addr", opt.Addr, "db", opt.DB, "pool_size", poolSize)
	return &SaveStore{client: client}, nil
}

// NewSaveStore wraps an existing client
func NewSaveStore(client *redis.Client) *SaveStore {
	return &SaveStore{client: client}
}

// Get returns the blob stored under key
func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores the blob under key without expiry
func (s *SaveStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key; a missing key is not an error
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity
func (s *SaveStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client
func (s *SaveStore) Close() error {
	return s.client.Close()
}
