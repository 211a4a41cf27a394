package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ClassificationSubmitted,
		event.ClassificationVoted,
		event.CommentAdded,
		event.AnnotationUploaded,
		event.FeatureUnlocked,
		event.MissionCompleted,
		event.MineralDepositDiscovered,
		event.TelescopeDeployed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ClassificationSubmitted:
		p, err := event.DecodePayload[event.ClassificationSubmittedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ClassificationsSubmitted.WithLabelValues(p.ClassificationType).Inc()
		if p.StructureItemID != 0 {
			StructureUsesConsumed.WithLabelValues(strconv.Itoa(p.StructureItemID)).Inc()
		}

	case event.ClassificationVoted:
		VotesCast.Inc()

	case event.CommentAdded:
		CommentsAdded.Inc()

	case event.AnnotationUploaded:
		p, err := event.DecodePayload[event.AnnotationUploadedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		AnnotationUploadBytes.Observe(float64(p.Bytes))

	case event.FeatureUnlocked:
		p, err := event.DecodePayload[event.FeatureUnlockedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		FeaturesUnlocked.WithLabelValues(strconv.Itoa(p.StructureItemID), p.Identifier).Inc()

	case event.MissionCompleted:
		MissionsCompleted.Inc()

	case event.MineralDepositDiscovered:
		p, err := event.DecodePayload[event.MineralDepositDiscoveredPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		MineralDeposits.WithLabelValues(p.MineralType).Inc()

	case event.TelescopeDeployed:
		p, err := event.DecodePayload[event.TelescopeDeployedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		TelescopeDeployments.WithLabelValues(p.DeploymentType).Inc()
		AnomaliesLinked.Add(float64(len(p.AnomalyIDs)))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
