package annotation

import (
	"context"
	"slices"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/mineral"
)

// SaveAndSubmit uploads the annotation, adds its URL to the classification's media and submits it
// with the drawn categories as annotation options. Rover annotations on a mineral waypoint also
// record a deposit computed from the drawn terrain; a failed deposit write is logged and skipped.
// A request id that was already recorded is answered from the ledger without rendering or uploading.
func (s *service) SaveAndSubmit(ctx context.Context, session domain.Session, loc domain.Location, req SubmitRequest) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	prior, found, err := s.classifications.Recorded(ctx, session, req.Classification.RequestID)
	if err != nil {
		return nil, err
	}
	if found {
		return &SubmitResult{Upload: uploadOf(prior.Classification), Submission: prior}, nil
	}

	upload, err := s.Save(ctx, session, req.SaveRequest)
	if err != nil {
		return nil, err
	}

	sub := req.Classification
	sub.AnomalyID = req.AnomalyID
	sub.Media = append(slices.Clone(sub.Media), upload.URL)
	sub.AnnotationOptions = append(slices.Clone(sub.AnnotationOptions), upload.Categories...)

	submission, err := s.classifications.Submit(ctx, session, loc, sub)
	if err != nil {
		return nil, err
	}
	result := &SubmitResult{Upload: upload, Submission: submission}

	if submission.Replayed || req.MineralWaypoint == nil || sub.AnomalyType != domain.ClassificationTypeAIForMars {
		return result, nil
	}

	cfg := mineral.Analyze(upload.Categories)
	coords := *req.MineralWaypoint
	cfg.Coordinates = &coords
	rover := req.RoverName
	if rover == "" {
		rover = DefaultRoverName
	}
	deposit := domain.MineralDeposit{
		Owner:         session.UserID,
		AnomalyID:     req.AnomalyID,
		Discovery:     submission.Classification.ID,
		Configuration: cfg,
		Location:      DefaultDepositLocation,
		RoverName:     rover,
		CreatedAt:     s.now(),
	}
	id, err := s.minerals.InsertMineralDeposit(ctx, deposit)
	if err != nil {
		log.Error(LogMsgDepositFailed, "classification_id", deposit.Discovery, "error", err)
		return result, nil
	}
	deposit.ID = id
	result.Deposit = &deposit

	log.Info(LogMsgDepositRecorded, "deposit_id", id, "mineral", cfg.Type, "quantity", cfg.Quantity)
	if err := s.bus.Publish(ctx, event.NewMineralDepositDiscoveredEvent(event.MineralDepositDiscoveredPayloadV1{
		DepositID:        id,
		UserID:           session.UserID,
		AnomalyID:        req.AnomalyID,
		ClassificationID: deposit.Discovery,
		MineralType:      cfg.Type,
		Quantity:         cfg.Quantity,
	})); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}
	return result, nil
}

// uploadOf describes the annotation stored with an earlier submission: the last media entry
func uploadOf(c *domain.Classification) *SaveResult {
	if c == nil || len(c.Media) == 0 {
		return nil
	}
	url := c.Media[len(c.Media)-1]
	return &SaveResult{URL: url, Categories: c.Configuration.AnnotationOptions}
}
