package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/scheduler"
	"github.com/osse101/IconIdle_Go/internal/server"
	"github.com/osse101/IconIdle_Go/internal/sse"
	"github.com/osse101/IconIdle_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Store              Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (finish the running poll)
// 3. Event stream hub
// 4. Event publisher (wait for background retries)
// 5. Save store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		waitPublisher(ctx, components.ResilientPublisher)
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

// waitPublisher waits for in-flight retries or until ctx is done
func waitPublisher(ctx context.Context, publisher *event.ResilientPublisher) {
	done := make(chan struct{})
	go func() {
		publisher.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn(LogMsgEventPublisherTimedOut, "error", ctx.Err())
	}
}
