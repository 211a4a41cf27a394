package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/StarSailors_Go/internal/database"
)

// stoppable is satisfied by *server.Server
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stoppable
	DB     database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight requests finish against a live pool,
// then closes the pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
