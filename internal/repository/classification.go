package repository

import (
	"context"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Classification defines persistence for classifications and their social data
type Classification interface {
	GetClassification(ctx context.Context, id int64) (*domain.Classification, error)
	ListClassifications(ctx context.Context, filter domain.ClassificationFilter) ([]domain.Classification, error)
	AddComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	ListComments(ctx context.Context, classificationID int64) ([]domain.Comment, error)
	// GetSubmission reads the committed ledger outside any transaction
	GetSubmission(ctx context.Context, author, requestID string) (classificationID int64, found bool, err error)

	BeginTx(ctx context.Context) (ClassificationTx, error)
}

// ClassificationTx holds every write a submission or vote performs, all on one transaction
type ClassificationTx interface {
	Tx

	// Idempotency ledger. ClaimSubmission takes the key for this transaction; a concurrent claim
	// of the same key waits until the holder commits or rolls back. When the key was already
	// recorded it returns the recorded classification with claimed false.
	ClaimSubmission(ctx context.Context, author, requestID string) (existingID int64, claimed bool, err error)
	CompleteSubmission(ctx context.Context, author, requestID string, classificationID int64) error

	// Structure consumption; the row stays locked until commit
	GetStructureForUpdate(ctx context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error)
	UpdateStructureConfiguration(ctx context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error

	// GetLinkedAnomaly returns nil without error when the user has no link for the anomaly
	GetLinkedAnomaly(ctx context.Context, author string, anomalyID int64) (*domain.LinkedAnomaly, error)
	DeleteLinkedAnomalies(ctx context.Context, author string, anomalyID int64) error

	InsertClassification(ctx context.Context, c domain.Classification) (int64, error)
	AddClassificationPoints(ctx context.Context, userID string, points int) error
	InsertMissionIfAbsent(ctx context.Context, userID string, missionID int64) (bool, error)

	// Voting
	// InsertVote reports false when the user already voted on the classification
	InsertVote(ctx context.Context, vote domain.Vote) (bool, error)
	GetClassificationForUpdate(ctx context.Context, id int64) (*domain.Classification, error)
	UpdateClassificationConfiguration(ctx context.Context, id int64, cfg domain.ClassificationConfiguration) error
}
