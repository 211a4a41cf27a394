// Package classification collects users' answers about anomalies and applies the reward side effects
// of a submission in one transaction.
package classification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/StarSailors_Go/internal/catalog"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// SubmitRequest is one classification as sent by the client.
// RequestID is generated by the client per submit attempt and makes retries safe.
type SubmitRequest struct {
	RequestID   string `json:"request_id" validate:"required,uuid"`
	AnomalyID   int64  `json:"anomaly_id" validate:"required,gt=0"`
	AnomalyType string `json:"anomaly_type" validate:"required,anomalytype,max=100"`
	Content     string `json:"content" validate:"max=5000"`
	// Media holds uploaded asset URLs, in order
	Media []string `json:"media" validate:"max=10,dive,url"`
	// SelectedOptions maps option group index to option id to toggled state
	SelectedOptions  map[string]map[string]bool `json:"selected_options,omitempty"`
	AdditionalFields map[string]string          `json:"additional_fields,omitempty"`
	// MissionID is marked complete; zero falls back to the tutorial mission of the anomaly type's data source
	MissionID int64 `json:"mission_id" validate:"gte=0"`
	// StructureItemID is the structure the classification was made with; zero means none
	StructureItemID      int      `json:"structure_item_id" validate:"gte=0"`
	ParentPlanet         *int64   `json:"parent_planet,omitempty"`
	ClassificationParent *int64   `json:"classification_parent,omitempty"`
	AnnotationOptions    []string `json:"annotation_options,omitempty"`
}

// SubmitResult is returned for both new and replayed submissions
type SubmitResult struct {
	Classification  *domain.Classification `json:"classification"`
	Replayed        bool                   `json:"replayed"`
	UsesRemaining   *int                   `json:"uses_remaining,omitempty"`
	MissionID       int64                  `json:"mission_id,omitempty"`
	MissionInserted bool                   `json:"mission_inserted"`
	// FollowUpAfter is how long the client waits before showing the onboarding panel
	FollowUpAfter time.Duration `json:"follow_up_after"`
}

// VoteResult reports the vote count after a vote
type VoteResult struct {
	ClassificationID int64 `json:"classification_id"`
	Votes            int   `json:"votes"`
}

// Service defines classification operations
type Service interface {
	Form(anomalyType string) Form
	Submit(ctx context.Context, session domain.Session, loc domain.Location, req SubmitRequest) (*SubmitResult, error)
	Recorded(ctx context.Context, session domain.Session, requestID string) (*SubmitResult, bool, error)
	Get(ctx context.Context, id int64) (*domain.Classification, error)
	List(ctx context.Context, filter domain.ClassificationFilter) ([]domain.Classification, error)
	Vote(ctx context.Context, session domain.Session, classificationID int64) (*VoteResult, error)
	AddComment(ctx context.Context, session domain.Session, classificationID int64, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, classificationID int64) ([]domain.Comment, error)
}

type service struct {
	repo    repository.Classification
	forms   *Forms
	catalog *catalog.Catalog
	bus     event.Bus
}

// NewService creates a new classification service
func NewService(repo repository.Classification, forms *Forms, cat *catalog.Catalog, bus event.Bus) Service {
	return &service{
		repo:    repo,
		forms:   forms,
		catalog: cat,
		bus:     bus,
	}
}

func (s *service) Form(anomalyType string) Form {
	return s.forms.For(anomalyType)
}

// Get loads one classification
func (s *service) Get(ctx context.Context, id int64) (*domain.Classification, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: classification id must be positive", domain.ErrInvalidInput)
	}
	return s.repo.GetClassification(ctx, id)
}

// List returns classifications newest first. The limit defaults to DefaultListLimit and is capped at MaxListLimit.
func (s *service) List(ctx context.Context, filter domain.ClassificationFilter) ([]domain.Classification, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}
	out, err := s.repo.ListClassifications(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Classification{}
	}
	return out, nil
}

// Vote adds the user's single upvote and bumps the stored count
func (s *service) Vote(ctx context.Context, session domain.Session, classificationID int64) (*VoteResult, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return nil, domain.ErrNoSession
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgBeginTxFailed, "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetClassificationForUpdate(ctx, classificationID)
	if err != nil {
		return nil, err
	}

	inserted, err := tx.InsertVote(ctx, domain.Vote{
		UserID:           session.UserID,
		ClassificationID: c.ID,
		AnomalyID:        c.AnomalyID,
		VoteType:         domain.VoteTypeUp,
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, domain.ErrAlreadyVoted
	}

	cfg := c.Configuration
	cfg.Votes++
	if err := tx.UpdateClassificationConfiguration(ctx, c.ID, cfg); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgVoted, "classification_id", c.ID, "votes", cfg.Votes)
	s.publish(ctx, event.NewClassificationVotedEvent(c.ID, session.UserID, cfg.Votes))
	return &VoteResult{ClassificationID: c.ID, Votes: cfg.Votes}, nil
}

// AddComment attaches a free-text reply to an existing classification
func (s *service) AddComment(ctx context.Context, session domain.Session, classificationID int64, content string) (*domain.Comment, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	content = strings.TrimSpace(content)
	if content == "" || len(content) > MaxCommentLength {
		return nil, fmt.Errorf("%w: comment must be 1-%d characters", domain.ErrInvalidInput, MaxCommentLength)
	}
	if _, err := s.repo.GetClassification(ctx, classificationID); err != nil {
		return nil, err
	}

	comment, err := s.repo.AddComment(ctx, domain.Comment{
		Author:           session.UserID,
		ClassificationID: classificationID,
		Content:          content,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCommented, "classification_id", classificationID, "comment_id", comment.ID)
	s.publish(ctx, event.NewCommentAddedEvent(comment.ID, classificationID, session.UserID))
	return comment, nil
}

// ListComments returns a classification's comments, oldest first
func (s *service) ListComments(ctx context.Context, classificationID int64) ([]domain.Comment, error) {
	out, err := s.repo.ListComments(ctx, classificationID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Comment{}
	}
	return out, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
