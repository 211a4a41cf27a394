package repository

import (
	"context"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Anomaly defines read access to the anomaly catalogue
type Anomaly interface {
	// GetAnomaly returns domain.ErrAnomalyNotFound when no row matches
	GetAnomaly(ctx context.Context, id int64) (*domain.Anomaly, error)
}
