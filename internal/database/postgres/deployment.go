package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// DeploymentRepository implements repository.Deployment
type DeploymentRepository struct {
	db *pgxpool.Pool
}

// NewDeploymentRepository creates a new DeploymentRepository
func NewDeploymentRepository(db *pgxpool.Pool) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// ListAnomaliesInSets returns every anomaly whose set is one of sets, by id
func (r *DeploymentRepository) ListAnomaliesInSets(ctx context.Context, sets []string) ([]domain.Anomaly, error) {
	rows, err := r.db.Query(ctx, SQLListAnomaliesInSets, sets)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAnomaliesFailed, err)
	}
	defer rows.Close()

	var anomalies []domain.Anomaly
	for rows.Next() {
		a, err := scanAnomaly(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListAnomaliesFailed, err)
		}
		anomalies = append(anomalies, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListAnomaliesFailed, err)
	}
	return anomalies, nil
}

// CountClassifications counts the author's classifications of the given types since the cutoff
func (r *DeploymentRepository) CountClassifications(ctx context.Context, author string, types []string, since time.Time) (int, error) {
	uid, err := parseUserUUID(author)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, SQLCountClassificationsOfTypes, uid, types, since).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgCountFailed, "classifications", err)
	}
	return n, nil
}

// HasResearched reports whether the user has unlocked the tech
func (r *DeploymentRepository) HasResearched(ctx context.Context, userID, techType string) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	var ok bool
	if err := r.db.QueryRow(ctx, SQLResearchExists, uid, techType).Scan(&ok); err != nil {
		return false, fmt.Errorf(ErrMsgResearchFailed, err)
	}
	return ok, nil
}

// RecordResearch inserts the research row unless it already exists
func (r *DeploymentRepository) RecordResearch(ctx context.Context, userID, techType string) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, SQLInsertResearch, uid, techType)
	if err != nil {
		return false, fmt.Errorf(ErrMsgResearchFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

// CountDeployments counts distinct deployment batches by the author's automaton since the cutoff
func (r *DeploymentRepository) CountDeployments(ctx context.Context, author, automaton string, since time.Time) (int, error) {
	uid, err := parseUserUUID(author)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, SQLCountDeployments, uid, automaton, since).Scan(&n); err != nil {
		return 0, fmt.Errorf(ErrMsgCountFailed, "deployments", err)
	}
	return n, nil
}

// CountCommunityActions counts comments and upvotes the user left on other people's classifications
func (r *DeploymentRepository) CountCommunityActions(ctx context.Context, userID string, since time.Time) (int, int, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return 0, 0, err
	}
	var comments, upvotes int
	if err := r.db.QueryRow(ctx, SQLCountCommunityActions, uid, since).Scan(&comments, &upvotes); err != nil {
		return 0, 0, fmt.Errorf(ErrMsgCountFailed, "community actions", err)
	}
	return comments, upvotes, nil
}

// InsertLinkedAnomalies writes the links as one batch inside a transaction.
// NOW() is fixed per transaction, so the rows share one created_at.
func (r *DeploymentRepository) InsertLinkedAnomalies(ctx context.Context, links []domain.LinkedAnomaly) error {
	if len(links) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, l := range links {
		uid, err := parseUserUUID(l.Author)
		if err != nil {
			return err
		}
		batch.Queue(SQLInsertLinkedAnomaly, uid, l.AnomalyID, l.ClassificationID, l.Automaton)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf(ErrMsgLinkedAnomalyFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return nil
}
