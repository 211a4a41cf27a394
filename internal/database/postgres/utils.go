package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so read helpers run on either
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ---- Common Helper Functions ----

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user id: %v", domain.ErrInvalidInput, err)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint failure
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---- Inventory helpers ----

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var (
		item    domain.InventoryItem
		owner   uuid.UUID
		anomaly *int64
		raw     []byte
	)
	if err := row.Scan(&item.ID, &owner, &item.ItemID, &anomaly, &item.Quantity, &raw, &item.Version); err != nil {
		return nil, err
	}
	cfg, err := domain.ParseInventoryConfiguration(raw)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
	}
	item.Owner = owner.String()
	if anomaly != nil {
		item.AnomalyID = *anomaly
	}
	item.Configuration = cfg
	return &item, nil
}

func getStructure(ctx context.Context, q querier, query, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	item, err := scanInventoryItem(q.QueryRow(ctx, query, uid, itemID, anomalyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStructureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStructureFailed, err)
	}
	return item, nil
}

// updateStructureConfiguration writes cfg when the row is still at expectedVersion
func updateStructureConfiguration(ctx context.Context, q querier, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	tag, err := q.Exec(ctx, SQLUpdateStructureConfig, inventoryID, raw, expectedVersion)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateStructureFailed, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, SQLInventoryExists, inventoryID).Scan(&exists); err != nil {
		return fmt.Errorf(ErrMsgUpdateStructureFailed, err)
	}
	if !exists {
		return domain.ErrStructureNotFound
	}
	return domain.ErrConfigConflict
}

func insertMissionIfAbsent(ctx context.Context, q querier, userID string, missionID int64) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	tag, err := q.Exec(ctx, SQLInsertMissionIfAbsent, uid, missionID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInsertMissionFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ---- Classification helpers ----

func scanClassification(row pgx.Row) (*domain.Classification, error) {
	var (
		c       domain.Classification
		author  uuid.UUID
		content *string
		media   []byte
		rawCfg  []byte
	)
	if err := row.Scan(&c.ID, &author, &c.AnomalyID, &content, &media, &c.ClassificationType,
		&rawCfg, &c.ClassificationParent, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Author = author.String()
	c.Content = derefString(content)
	if len(media) > 0 {
		if err := json.Unmarshal(media, &c.Media); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
		}
	}
	if len(rawCfg) > 0 {
		if err := json.Unmarshal(rawCfg, &c.Configuration); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
		}
	}
	return &c, nil
}

func getClassification(ctx context.Context, q querier, query string, id int64) (*domain.Classification, error) {
	c, err := scanClassification(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrClassificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetClassificationFailed, err)
	}
	return c, nil
}

// ---- End Common Helper Functions ----
