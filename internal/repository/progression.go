package repository

import (
	"context"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Progression defines persistence for mission completion and structure unlocks
type Progression interface {
	// Mission operations
	HasCompletedMission(ctx context.Context, userID string, missionID int64) (bool, error)
	ListCompletedMissions(ctx context.Context, userID string) ([]int64, error)
	GetMission(ctx context.Context, userID string, missionID int64) (*domain.Mission, error)
	// InsertMissionIfAbsent reports whether a new row was written
	InsertMissionIfAbsent(ctx context.Context, userID string, missionID int64) (bool, error)

	// Structure operations
	// GetStructure returns the lowest-id matching row, or domain.ErrStructureNotFound
	GetStructure(ctx context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error)
	ListStructures(ctx context.Context, userID string, anomalyID int64) ([]domain.InventoryItem, error)
	// UpdateStructureConfiguration writes only when the stored version equals expectedVersion,
	// otherwise it returns domain.ErrConfigConflict
	UpdateStructureConfiguration(ctx context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error
}
