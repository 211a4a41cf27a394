package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// AnomalyRepository implements repository.Anomaly
type AnomalyRepository struct {
	db *pgxpool.Pool
}

// NewAnomalyRepository creates a new AnomalyRepository
func NewAnomalyRepository(db *pgxpool.Pool) *AnomalyRepository {
	return &AnomalyRepository{db: db}
}

// GetAnomaly loads a single anomaly by id
func (r *AnomalyRepository) GetAnomaly(ctx context.Context, id int64) (*domain.Anomaly, error) {
	a, err := scanAnomaly(r.db.QueryRow(ctx, SQLSelectAnomaly, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAnomalyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAnomalyFailed, err)
	}
	return a, nil
}

func scanAnomaly(row pgx.Row) (*domain.Anomaly, error) {
	var (
		a                             domain.Anomaly
		content, anomalyType, setName *string
		rawCfg                        []byte
	)
	if err := row.Scan(&a.ID, &content, &anomalyType, &setName, &rawCfg, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.Content = derefString(content)
	a.AnomalyType = derefString(anomalyType)
	a.AnomalySet = derefString(setName)
	if len(rawCfg) > 0 {
		if err := json.Unmarshal(rawCfg, &a.Configuration); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeConfigFailed, err)
		}
	}
	return &a, nil
}
