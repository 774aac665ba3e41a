package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/IconIdle_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", PoolSettings{MaxConns: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgParseConnString)
}

func TestApplySettings(t *testing.T) {
	t.Run("zero settings keep pgx defaults", func(t *testing.T) {
		cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/iconidle")
		require.NoError(t, err)
		defaults := *cfg

		applySettings(cfg, PoolSettings{})
		assert.Equal(t, defaults.MaxConns, cfg.MaxConns)
		assert.Equal(t, defaults.MaxConnIdleTime, cfg.MaxConnIdleTime)
		assert.Equal(t, defaults.MaxConnLifetime, cfg.MaxConnLifetime)
		assert.Equal(t, int32(MinIdleConns), cfg.MinConns)
	})

	t.Run("tiny pool caps idle connections", func(t *testing.T) {
		cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/iconidle")
		require.NoError(t, err)

		applySettings(cfg, PoolSettings{MaxConns: 1, MaxConnIdleTime: time.Minute, MaxConnLifetime: time.Hour})
		assert.Equal(t, int32(1), cfg.MaxConns)
		assert.Equal(t, int32(1), cfg.MinConns)
		assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	})
}

// TestMigrate_CreatesSaveBlobs verifies the embedded migrations run and are idempotent
func TestMigrate_CreatesSaveBlobs(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolSettings{MaxConns: 3, MaxConnIdleTime: time.Minute, MaxConnLifetime: 5 * time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))

	var exists bool
	err = pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'save_blobs')`).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestPool_ConcurrentAccess verifies connections are returned under concurrent use
func TestPool_ConcurrentAccess(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolSettings{MaxConns: 5, MaxConnIdleTime: time.Minute, MaxConnLifetime: 5 * time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "all connections should be released")
	checker.Check(2)
}
