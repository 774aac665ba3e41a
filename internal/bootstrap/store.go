package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/IconIdle_Go/internal/config"
	"github.com/osse101/IconIdle_Go/internal/database"
	"github.com/osse101/IconIdle_Go/internal/database/memory"
	"github.com/osse101/IconIdle_Go/internal/database/postgres"
	"github.com/osse101/IconIdle_Go/internal/database/redis"
	"github.com/osse101/IconIdle_Go/internal/savestate"
)

// Store is a save backend the server can also health-check and close
type Store interface {
	savestate.KV
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore connects the backend selected by cfg.StoreDriver. Postgres
// schemas are migrated before the store is returned.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	ctx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
	defer cancel()

	var store Store
	switch cfg.StoreDriver {
	case config.StoreDriverMemory, "":
		store = memory.NewSaveStore()

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolSettings{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		store = postgres.NewSaveStore(pool)

	case config.StoreDriverRedis:
		rs, err := redis.Connect(ctx, cfg.RedisURL, cfg.RedisPoolSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		store = rs

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedStoreType, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}
