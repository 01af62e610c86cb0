package bootstrap

import (
	"context"
	"log/slog"

	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/server"
	"github.com/minjae-ko/habitquest/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	DailyResetWorker   *worker.DailyResetWorker
	ExpiryWorker       *worker.MissionExpiryWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown shuts down the application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers (cancel pending timers, finish in-flight runs)
// 3. Event publisher (drain retry loops so no event is silently dropped)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DailyResetWorker != nil {
		if err := components.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error("Daily reset worker shutdown failed", "error", err)
		}
	}

	if components.ExpiryWorker != nil {
		if err := components.ExpiryWorker.Shutdown(ctx); err != nil {
			slog.Error("Mission expiry worker shutdown failed", "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Wait(ctx); err != nil {
		slog.Error(LogMsgPublisherDrainFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
