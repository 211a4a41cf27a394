package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types follow the pattern <entity>.<action>
const (
	ClassificationSubmitted  Type = "classification.submitted"
	ClassificationVoted      Type = "classification.voted"
	CommentAdded             Type = "comment.added"
	AnnotationUploaded       Type = "annotation.uploaded"
	FeatureUnlocked          Type = "progression.feature_unlocked"
	MissionCompleted         Type = "progression.mission_completed"
	MineralDepositDiscovered Type = "mineral.deposit_discovered"
	TelescopeDeployed        Type = "deployment.telescope_deployed"
)

// ClassificationSubmittedPayloadV1 is published once per newly created classification.
// Idempotent replays do not publish.
type ClassificationSubmittedPayloadV1 struct {
	ClassificationID   int64  `json:"classification_id"`
	UserID             string `json:"user_id"`
	AnomalyID          int64  `json:"anomaly_id"`
	ClassificationType string `json:"classification_type"`
	StructureItemID    int    `json:"structure_item_id,omitempty"`
	UsesRemaining      *int   `json:"uses_remaining,omitempty"`
	Timestamp          int64  `json:"timestamp"`
}

// ClassificationVotedPayloadV1 is the typed payload for vote events
type ClassificationVotedPayloadV1 struct {
	ClassificationID int64  `json:"classification_id"`
	UserID           string `json:"user_id"`
	Votes            int    `json:"votes"`
}

// CommentAddedPayloadV1 is the typed payload for comment events
type CommentAddedPayloadV1 struct {
	CommentID        int64  `json:"comment_id"`
	ClassificationID int64  `json:"classification_id"`
	UserID           string `json:"user_id"`
}

// AnnotationUploadedPayloadV1 is the typed payload for annotation uploads
type AnnotationUploadedPayloadV1 struct {
	UserID    string `json:"user_id"`
	AnomalyID int64  `json:"anomaly_id"`
	URL       string `json:"url"`
	Bytes     int    `json:"bytes"`
}

// FeatureUnlockedPayloadV1 is published when an identifier is newly appended to a structure
type FeatureUnlockedPayloadV1 struct {
	UserID          string `json:"user_id"`
	InventoryID     int64  `json:"inventory_id"`
	StructureItemID int    `json:"structure_item_id"`
	Identifier      string `json:"identifier"`
}

// MissionCompletedPayloadV1 is published when a mission row is first inserted
type MissionCompletedPayloadV1 struct {
	UserID    string `json:"user_id"`
	MissionID int64  `json:"mission_id"`
}

// MineralDepositDiscoveredPayloadV1 is the typed payload for new deposits
type MineralDepositDiscoveredPayloadV1 struct {
	DepositID        int64  `json:"deposit_id"`
	UserID           string `json:"user_id"`
	AnomalyID        int64  `json:"anomaly_id"`
	ClassificationID int64  `json:"classification_id"`
	MineralType      string `json:"mineral_type"`
	Quantity         string `json:"quantity"`
}

// TelescopeDeployedPayloadV1 is published after a deployment's links are stored
type TelescopeDeployedPayloadV1 struct {
	UserID         string  `json:"user_id"`
	DeploymentType string  `json:"deployment_type"`
	AnomalyIDs     []int64 `json:"anomaly_ids"`
}

// Type-safe event constructors

// NewClassificationSubmittedEvent creates a classification.submitted event
func NewClassificationSubmittedEvent(p ClassificationSubmittedPayloadV1) Event {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    ClassificationSubmitted,
		Payload: p,
		Metadata: map[string]interface{}{
			"classification_type": p.ClassificationType,
		},
	}
}

// NewClassificationVotedEvent creates a classification.voted event
func NewClassificationVotedEvent(classificationID int64, userID string, votes int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ClassificationVoted,
		Payload: ClassificationVotedPayloadV1{
			ClassificationID: classificationID,
			UserID:           userID,
			Votes:            votes,
		},
	}
}

// NewCommentAddedEvent creates a comment.added event
func NewCommentAddedEvent(commentID, classificationID int64, userID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CommentAdded,
		Payload: CommentAddedPayloadV1{
			CommentID:        commentID,
			ClassificationID: classificationID,
			UserID:           userID,
		},
	}
}

// NewAnnotationUploadedEvent creates an annotation.uploaded event
func NewAnnotationUploadedEvent(userID string, anomalyID int64, url string, size int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnnotationUploaded,
		Payload: AnnotationUploadedPayloadV1{
			UserID:    userID,
			AnomalyID: anomalyID,
			URL:       url,
			Bytes:     size,
		},
	}
}

// NewFeatureUnlockedEvent creates a progression.feature_unlocked event
func NewFeatureUnlockedEvent(userID string, inventoryID int64, structureItemID int, identifier string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FeatureUnlocked,
		Payload: FeatureUnlockedPayloadV1{
			UserID:          userID,
			InventoryID:     inventoryID,
			StructureItemID: structureItemID,
			Identifier:      identifier,
		},
	}
}

// NewMissionCompletedEvent creates a progression.mission_completed event
func NewMissionCompletedEvent(userID string, missionID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionCompleted,
		Payload: MissionCompletedPayloadV1{
			UserID:    userID,
			MissionID: missionID,
		},
	}
}

// NewMineralDepositDiscoveredEvent creates a mineral.deposit_discovered event
func NewMineralDepositDiscoveredEvent(p MineralDepositDiscoveredPayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MineralDepositDiscovered,
		Payload: p,
	}
}

// NewTelescopeDeployedEvent creates a deployment.telescope_deployed event
func NewTelescopeDeployedEvent(userID, deploymentType string, anomalyIDs []int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TelescopeDeployed,
		Payload: TelescopeDeployedPayloadV1{
			UserID:         userID,
			DeploymentType: deploymentType,
			AnomalyIDs:     anomalyIDs,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously, in subscription order.
// Every handler runs even when an earlier one fails; the failures are joined so callers can
// still match individual errors with errors.Is.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
