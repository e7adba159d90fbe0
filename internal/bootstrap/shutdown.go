package bootstrap

import (
	"context"
	"log/slog"

	"github.com/special-brownies/booster-pack/internal/server"
	"github.com/special-brownies/booster-pack/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Events *sse.Hub
	Store  *BinderStore
}

// GracefulShutdown ends open event streams, stops the HTTP server so no
// request is mid-save, then closes the binder store. Errors are logged and
// do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	// Streams never go idle on their own, so end them before Shutdown waits.
	if components.Events != nil {
		components.Events.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, LogFieldError, err)
		}
	}

	if err := components.Store.Close(); err != nil {
		slog.Error(LogMsgStoreCloseFailed, LogFieldError, err)
	}

	slog.Info(LogMsgServerStopped)
}
