package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/database/postgres"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Anomaly        repository.Anomaly
	Classification repository.Classification
	Deployment     repository.Deployment
	Mineral        repository.Mineral
	Progression    repository.Progression
}

// InitializeRepositories creates the Postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Anomaly:        postgres.NewAnomalyRepository(dbPool),
		Classification: postgres.NewClassificationRepository(dbPool),
		Deployment:     postgres.NewDeploymentRepository(dbPool),
		Mineral:        postgres.NewMineralRepository(dbPool),
		Progression:    postgres.NewProgressionRepository(dbPool),
	}
}
