package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IconIdle_Go/internal/domain"
)

const (
	queryGetBlob    = `SELECT value FROM save_blobs WHERE key = $1`
	queryUpsertBlob = `INSERT INTO save_blobs (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	queryDeleteBlob = `DELETE FROM save_blobs WHERE key = $1`
)

// SaveStore keeps save blobs in the save_blobs table
type SaveStore struct {
	pool *pgxpool.Pool
}

// NewSaveStore creates a store over an open pool. Migrations must already be applied.
func NewSaveStore(pool *pgxpool.Pool) *SaveStore {
	return &SaveStore{pool: pool}
}

// Get returns the blob stored under key
func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, queryGetBlob, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the blob under key
func (s *SaveStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.pool.Exec(ctx, queryUpsertBlob, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key; a missing key is not an error
func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteBlob, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity
func (s *SaveStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool
func (s *SaveStore) Close() error {
	s.pool.Close()
	return nil
}
