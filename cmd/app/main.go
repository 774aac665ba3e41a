package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/IconIdle_Go/internal/bootstrap"
	"github.com/osse101/IconIdle_Go/internal/config"
	"github.com/osse101/IconIdle_Go/internal/hidden"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/scheduler"
	"github.com/osse101/IconIdle_Go/internal/server"
	"github.com/osse101/IconIdle_Go/internal/sse"
	"github.com/osse101/IconIdle_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Stdout logging until the configured logger is installed
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(bus, hub)

	cat, err := bootstrap.NewCatalog(cfg.Seed)
	if err != nil {
		hub.Stop()
		_ = store.Close()
		return err
	}
	manager := bootstrap.NewGameManager(cfg, cat, store, publisher)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	pollInterval := cfg.Game.Hidden.PollInterval
	if pollInterval <= 0 {
		pollInterval = hidden.DefaultPollInterval
	}
	sched := scheduler.New(pool)
	sched.Schedule(pollInterval, worker.NewHiddenPollJob(manager))

	srv := server.NewServer(server.Options{
		Port:                 cfg.Port,
		APIKey:               cfg.APIKey,
		TrustedProxies:       cfg.TrustedProxies,
		MaxRequestsPerWindow: cfg.MaxRequestsPerWindow,
	}, server.Dependencies{
		Sessions: manager,
		Catalog:  cat,
		Store:    store,
		Hub:      hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Store:              store,
	})

	return err
}
