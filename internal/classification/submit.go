package classification

import (
	"context"
	"fmt"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/metrics"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// txOutcome is what a committed submission produced
type txOutcome struct {
	classificationID int64
	replayed         bool
	usesRemaining    *int
	missionInserted  bool
}

// Submit stores a classification and its rewards as one idempotent operation keyed by
// (author, request id). Inside a single transaction it
//   - claims the key first, so a duplicate waits for the first submit and then replays it
//   - returns the recorded classification when the key was already used
//   - takes one use from the backing structure, failing with domain.ErrStructureDepleted at zero
//   - resolves the parent planet from the user's linked anomaly
//   - inserts the classification, adds the author's point and completes the mission if absent
//   - clears the linked anomaly and completes the key
//
// Nothing is written unless every step succeeds. Events go out after commit.
func (s *service) Submit(ctx context.Context, session domain.Session, loc domain.Location, req SubmitRequest) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	if req.StructureItemID != 0 && !loc.Valid() {
		return nil, domain.ErrNoActiveLocation
	}
	if err := s.forms.For(req.AnomalyType).Validate(req.Content, req.SelectedOptions, req.AdditionalFields); err != nil {
		return nil, err
	}

	missionID := s.missionFor(req)

	out, err := s.submitTx(ctx, session, loc, req, missionID)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetClassification(ctx, out.classificationID)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Classification: c,
		Replayed:       out.replayed,
		FollowUpAfter:  domain.FollowUpPanelDelay,
	}
	if out.replayed {
		metrics.SubmissionReplays.Inc()
		log.Info(LogMsgSubmissionReplayed, "request_id", req.RequestID, "classification_id", c.ID)
		return result, nil
	}

	result.UsesRemaining = out.usesRemaining
	result.MissionID = missionID
	result.MissionInserted = out.missionInserted

	log.Info(LogMsgSubmitted, "classification_id", c.ID, "type", c.ClassificationType, "anomaly", c.AnomalyID)
	s.publish(ctx, event.NewClassificationSubmittedEvent(event.ClassificationSubmittedPayloadV1{
		ClassificationID:   c.ID,
		UserID:             session.UserID,
		AnomalyID:          c.AnomalyID,
		ClassificationType: c.ClassificationType,
		StructureItemID:    req.StructureItemID,
		UsesRemaining:      out.usesRemaining,
	}))
	if out.missionInserted {
		s.publish(ctx, event.NewMissionCompletedEvent(session.UserID, missionID))
	}
	return result, nil
}

// Recorded returns the submission already stored under the caller's request id, if any.
// It lets callers with expensive side effects skip them on a replay.
func (s *service) Recorded(ctx context.Context, session domain.Session, requestID string) (*SubmitResult, bool, error) {
	if !session.Valid() {
		return nil, false, domain.ErrNoSession
	}
	id, found, err := s.repo.GetSubmission(ctx, session.UserID, requestID)
	if err != nil || !found {
		return nil, false, err
	}
	c, err := s.repo.GetClassification(ctx, id)
	if err != nil {
		return nil, false, err
	}
	metrics.SubmissionReplays.Inc()
	logger.FromContext(ctx).Info(LogMsgSubmissionReplayed, "request_id", requestID, "classification_id", c.ID)
	return &SubmitResult{Classification: c, Replayed: true, FollowUpAfter: domain.FollowUpPanelDelay}, true, nil
}

// missionFor picks the mission a submission completes
func (s *service) missionFor(req SubmitRequest) int64 {
	if req.MissionID > 0 {
		return req.MissionID
	}
	if entry, ok := s.catalog.ForAnomalyType(req.AnomalyType); ok {
		return entry.TutorialMission
	}
	return 0
}

func (s *service) submitTx(ctx context.Context, session domain.Session, loc domain.Location, req SubmitRequest, missionID int64) (*txOutcome, error) {
	log := logger.FromContext(ctx)
	userID := session.UserID

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error(LogMsgBeginTxFailed, "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	existing, claimed, err := tx.ClaimSubmission(ctx, userID, req.RequestID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLedgerFailed, err)
	}
	if !claimed {
		return &txOutcome{classificationID: existing, replayed: true}, nil
	}

	out := &txOutcome{}
	cfg := domain.ClassificationConfiguration{
		ClassificationOptions: req.SelectedOptions,
		AdditionalFields:      req.AdditionalFields,
		ClassificationParent:  req.ClassificationParent,
		AnnotationOptions:     req.AnnotationOptions,
	}
	if cfg.ClassificationOptions == nil {
		cfg.ClassificationOptions = map[string]map[string]bool{}
	}
	if loc.Valid() {
		active := loc.AnomalyID
		cfg.ActivePlanet = &active
	}

	if req.StructureItemID != 0 {
		item, err := tx.GetStructureForUpdate(ctx, userID, req.StructureItemID, loc.AnomalyID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgStructureFmt, req.StructureItemID, err)
		}
		next, err := item.Configuration.ConsumeUse()
		if err != nil {
			log.Warn(LogMsgStructureDepleted, "inventory_id", item.ID)
			return nil, err
		}
		if err := tx.UpdateStructureConfiguration(ctx, item.ID, next, item.Version); err != nil {
			return nil, fmt.Errorf(ErrMsgStructureFmt, req.StructureItemID, err)
		}
		log.Debug(LogMsgStructureConsumed, "inventory_id", item.ID, "uses", next.Uses)
		uses := next.Uses
		out.usesRemaining = &uses
		createdBy := item.ID
		cfg.CreatedBy = &createdBy
	}

	link, err := tx.GetLinkedAnomaly(ctx, userID, req.AnomalyID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLinkFailed, err)
	}
	cfg.ParentPlanet = req.ParentPlanet
	if link != nil && link.ClassificationID != nil {
		cfg.ParentPlanet = link.ClassificationID
	}

	media := req.Media
	if media == nil {
		media = []string{}
	}
	id, err := tx.InsertClassification(ctx, domain.Classification{
		Author:               userID,
		AnomalyID:            req.AnomalyID,
		Content:              req.Content,
		Media:                media,
		ClassificationType:   req.AnomalyType,
		Configuration:        cfg,
		ClassificationParent: req.ClassificationParent,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertFailed, err)
	}
	out.classificationID = id

	if err := tx.AddClassificationPoints(ctx, userID, domain.ClassificationPointsPerSubmission); err != nil {
		return nil, fmt.Errorf(ErrMsgPointsFailed, err)
	}

	if missionID > 0 {
		inserted, err := tx.InsertMissionIfAbsent(ctx, userID, missionID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgMissionFailed, err)
		}
		out.missionInserted = inserted
	}

	if link != nil {
		if err := tx.DeleteLinkedAnomalies(ctx, userID, req.AnomalyID); err != nil {
			return nil, fmt.Errorf(ErrMsgLinkFailed, err)
		}
	}

	if err := tx.CompleteSubmission(ctx, userID, req.RequestID, id); err != nil {
		return nil, fmt.Errorf(ErrMsgLedgerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}
	return out, nil
}
