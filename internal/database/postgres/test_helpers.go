package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/StarSailors_Go/internal/database"
)

// setupTestDB starts a throwaway Postgres, applies the embedded migrations and returns a pool.
// The test is skipped in -short mode or when Docker is unavailable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil || pgContainer == nil {
		t.Skipf("Skipping integration test: postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.RunMigrations(ctx, connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// seedAnomaly inserts an anomaly row for tests
func seedAnomaly(t *testing.T, pool *pgxpool.Pool, id int64, anomalyType, set string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO anomalies (id, content, anomalytype, anomaly_set) VALUES ($1, $2, $3, $4)`,
		id, "Anomaly "+set, anomalyType, set)
	if err != nil {
		t.Fatalf("failed to seed anomaly: %v", err)
	}
}

// seedStructure inserts an inventory row and returns its id
func seedStructure(t *testing.T, pool *pgxpool.Pool, owner string, item int, anomaly int64, configJSON string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inventory (owner, item, anomaly, quantity, configuration) VALUES ($1, $2, $3, 1, $4) RETURNING id`,
		uuid.MustParse(owner), item, anomaly, []byte(configJSON)).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed structure: %v", err)
	}
	return id
}
