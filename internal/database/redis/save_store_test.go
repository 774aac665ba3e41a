package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/osse101/IconIdle_Go/internal/database/storetest"
)

func testRedisURL() string {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return url
	}
	return "redis://localhost:6379/15"
}

func TestSaveStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store, err := Connect(ctx, testRedisURL(), 2)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer store.Close()

	storetest.Run(t, store, "test:"+uuid.NewString())
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-url://", 1)
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
}
