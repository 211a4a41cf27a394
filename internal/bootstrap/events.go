package bootstrap

import (
	"log/slog"

	"github.com/osse101/StarSailors_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus.
// Delivery is synchronous and handler errors are returned to the publisher.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
