package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// ProgressionRepository implements repository.Progression
type ProgressionRepository struct {
	db *pgxpool.Pool
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{db: db}
}

// HasCompletedMission reports whether a completion row exists
func (r *ProgressionRepository) HasCompletedMission(ctx context.Context, userID string, missionID int64) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.QueryRow(ctx, SQLMissionExists, uid, missionID).Scan(&exists); err != nil {
		return false, fmt.Errorf(ErrMsgMissionLookupFailed, err)
	}
	return exists, nil
}

// ListCompletedMissions returns every completed mission id for the user in ascending order
func (r *ProgressionRepository) ListCompletedMissions(ctx context.Context, userID string) ([]int64, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, SQLListMissions, uid)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMissionLookupFailed, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMissionLookupFailed, err)
	}
	return ids, nil
}

// GetMission returns the completion row or domain.ErrMissionNotFound
func (r *ProgressionRepository) GetMission(ctx context.Context, userID string, missionID int64) (*domain.Mission, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	var (
		m      domain.Mission
		owner  uuid.UUID
		rawCfg []byte
	)
	err = r.db.QueryRow(ctx, SQLSelectMission, uid, missionID).Scan(&m.ID, &owner, &m.MissionID, &rawCfg, &m.TimeOfCompletion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMissionLookupFailed, err)
	}
	m.UserID = owner.String()
	if len(rawCfg) > 0 {
		if err := json.Unmarshal(rawCfg, &m.Configuration); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
		}
	}
	return &m, nil
}

// InsertMissionIfAbsent writes a completion row unless one exists
func (r *ProgressionRepository) InsertMissionIfAbsent(ctx context.Context, userID string, missionID int64) (bool, error) {
	return insertMissionIfAbsent(ctx, r.db, userID, missionID)
}

// GetStructure returns the user's first matching structure; anomalyID 0 matches any planet
func (r *ProgressionRepository) GetStructure(ctx context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error) {
	return getStructure(ctx, r.db, SQLSelectStructure, userID, itemID, anomalyID)
}

// ListStructures returns the user's inventory rows on a planet; anomalyID 0 lists all
func (r *ProgressionRepository) ListStructures(ctx context.Context, userID string, anomalyID int64) ([]domain.InventoryItem, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, SQLListStructures, uid, anomalyID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStructureFailed, err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetStructureFailed, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgGetStructureFailed, err)
	}
	return items, nil
}

// UpdateStructureConfiguration is a version-guarded write
func (r *ProgressionRepository) UpdateStructureConfiguration(ctx context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error {
	return updateStructureConfiguration(ctx, r.db, inventoryID, cfg, expectedVersion)
}
