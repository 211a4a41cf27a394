package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/StarSailors_Go/internal/config"
	"github.com/osse101/StarSailors_Go/internal/discord"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/metrics"
	"github.com/osse101/StarSailors_Go/internal/progression"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus           event.Bus
	ProgressionService progression.Service
	Config             *config.Config
}

// RegisterEventHandlers sets up all event subscribers:
// mission cache invalidation, event metrics and, when configured, Discord announcements.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.ProgressionService.Register(deps.EventBus)
	slog.Info(LogMsgProgressionHandlers)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Config.DiscordWebhookURL == "" {
		slog.Info(LogMsgDiscordNotifierDisabled)
		return nil
	}
	notifier, err := discord.NewNotifier(deps.Config.DiscordWebhookURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	notifier.Register(deps.EventBus)
	slog.Info(LogMsgDiscordNotifierRegistered)

	return nil
}
