package repository

import (
	"context"
	"time"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Deployment defines persistence for telescope deployments and the counts that gate them
type Deployment interface {
	ListAnomaliesInSets(ctx context.Context, sets []string) ([]domain.Anomaly, error)

	// CountClassifications counts the author's classifications of any of the given types since the cutoff
	CountClassifications(ctx context.Context, author string, types []string, since time.Time) (int, error)

	HasResearched(ctx context.Context, userID, techType string) (bool, error)
	// RecordResearch reports false when the tech was already researched
	RecordResearch(ctx context.Context, userID, techType string) (bool, error)

	// CountDeployments counts distinct deployments, not links: every link written by one
	// InsertLinkedAnomalies call shares its created_at
	CountDeployments(ctx context.Context, author, automaton string, since time.Time) (int, error)
	// CountCommunityActions counts the user's comments and upvotes on classifications authored by someone else
	CountCommunityActions(ctx context.Context, userID string, since time.Time) (comments, upvotes int, err error)

	// InsertLinkedAnomalies writes all links in one transaction
	InsertLinkedAnomalies(ctx context.Context, links []domain.LinkedAnomaly) error
}
