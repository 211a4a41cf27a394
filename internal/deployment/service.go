package deployment

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// Type selects which family of anomaly sets a telescope searches
type Type string

const (
	Stellar   Type = "stellar"
	Planetary Type = "planetary"
)

// Valid reports whether t is a known deployment type
func (t Type) Valid() bool {
	return t == Stellar || t == Planetary
}

// Status is the caller's weekly deployment allowance
type Status struct {
	AlreadyDeployed bool   `json:"already_deployed"`
	Message         string `json:"deployment_message,omitempty"`
	Deployments     int    `json:"deployments"`
	Allowed         int    `json:"allowed"`
	EarnedDeploys   int    `json:"earned_deploys"`
}

// SkillProgress counts the classifications that level each skill
type SkillProgress struct {
	Telescope int `json:"telescope"`
	Weather   int `json:"weather"`
}

// DeployRequest picks anomalies for a telescope deployment
type DeployRequest struct {
	DeploymentType Type    `json:"deployment_type" validate:"required,oneof=stellar planetary"`
	AnomalyIDs     []int64 `json:"anomaly_ids" validate:"required,min=1,max=50,dive,gt=0"`
}

// DeployResult lists the anomalies that were linked
type DeployResult struct {
	Inserted   int     `json:"inserted"`
	AnomalyIDs []int64 `json:"anomaly_ids"`
}

// Service routes anomalies to a user through telescope deployments
type Service interface {
	// Anomalies lists what a deployment of the given type could target for the caller
	Anomalies(ctx context.Context, session domain.Session, dtype Type) ([]domain.Anomaly, error)
	Status(ctx context.Context, session domain.Session) (*Status, error)
	SkillProgress(ctx context.Context, session domain.Session) (*SkillProgress, error)
	// Deploy links the selected anomalies to the caller; domain.ErrAlreadyDeployed when the week's allowance is used
	Deploy(ctx context.Context, session domain.Session, req DeployRequest) (*DeployResult, error)
	// Research records an unlocked tech; false when it was already recorded
	Research(ctx context.Context, session domain.Session, techType string) (bool, error)
}

type service struct {
	repo repository.Deployment
	bus  event.Bus
	now  func() time.Time
}

// NewService creates a new deployment service
func NewService(repo repository.Deployment, bus event.Bus) Service {
	return &service{repo: repo, bus: bus, now: time.Now}
}

var (
	telescopeSkillTypes = []string{domain.ClassificationTypePlanet, domain.ClassificationTypeMinorPlanet}
	weatherSkillTypes   = []string{domain.ClassificationTypeCloud, domain.ClassificationTypeJovianVortex}
	techTypePattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// deployableSets resolves the sets a deployment may target. Planetary sets grow with
// minor planet classifications and NGTS research.
func (s *service) deployableSets(ctx context.Context, userID string, dtype Type) ([]string, error) {
	if dtype == Stellar {
		return []string{SetDiskDetective, SetSuperWASPVariable, SetTelescopeSuperWASP}, nil
	}

	var (
		minorPlanets int
		ngts         bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		minorPlanets, err = s.repo.CountClassifications(gctx, userID, []string{domain.ClassificationTypeMinorPlanet}, time.Time{})
		return err
	})
	g.Go(func() error {
		var err error
		ngts, err = s.repo.HasResearched(gctx, userID, TechNGTSAccess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve planetary unlocks: %w", err)
	}

	sets := []string{SetTelescopeTESS, SetTelescopeMinorPlanet}
	if minorPlanets >= MinorPlanetsForActiveAsteroids {
		sets = append(sets, SetActiveAsteroids)
	}
	if ngts {
		sets = append(sets, SetTelescopeNGTS)
	}
	return sets, nil
}

func (s *service) Anomalies(ctx context.Context, session domain.Session, dtype Type) ([]domain.Anomaly, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownDeploymentType, domain.ErrInvalidInput, dtype)
	}
	sets, err := s.deployableSets(ctx, session.UserID, dtype)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAnomaliesInSets(ctx, sets)
}

func (s *service) Status(ctx context.Context, session domain.Session) (*Status, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	since := s.now().Add(-DeploymentWindow)

	var (
		deployments       int
		comments, upvotes int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deployments, err = s.repo.CountDeployments(gctx, session.UserID, domain.AutomatonTelescope, since)
		return err
	})
	g.Go(func() error {
		var err error
		comments, upvotes, err = s.repo.CountCommunityActions(gctx, session.UserID, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load deployment status: %w", err)
	}

	earned := upvotes/UpvotesPerCredit + comments
	st := &Status{
		Deployments:   deployments,
		Allowed:       BaseDeploymentsPerWindow + earned,
		EarnedDeploys: earned,
	}
	switch {
	case deployments == 0:
	case deployments < st.Allowed:
		st.Message = MsgEarnedDeploys
	default:
		st.AlreadyDeployed = true
		st.Message = MsgAlreadyDeployed
	}
	return st, nil
}

func (s *service) SkillProgress(ctx context.Context, session domain.Session) (*SkillProgress, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	var p SkillProgress
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p.Telescope, err = s.repo.CountClassifications(gctx, session.UserID, telescopeSkillTypes, time.Time{})
		return err
	})
	g.Go(func() error {
		var err error
		p.Weather, err = s.repo.CountClassifications(gctx, session.UserID, weatherSkillTypes, time.Time{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load skill progress: %w", err)
	}
	return &p, nil
}

func (s *service) Deploy(ctx context.Context, session domain.Session, req DeployRequest) (*DeployResult, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	if !req.DeploymentType.Valid() {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownDeploymentType, domain.ErrInvalidInput, req.DeploymentType)
	}
	if len(req.AnomalyIDs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoAnomaliesSelected)
	}

	var (
		status   *Status
		upgraded bool
		sets     []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = s.Status(gctx, session)
		return err
	})
	g.Go(func() error {
		var err error
		upgraded, err = s.repo.HasResearched(gctx, session.UserID, TechProbeReceptors)
		return err
	})
	g.Go(func() error {
		var err error
		sets, err = s.deployableSets(gctx, session.UserID, req.DeploymentType)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if status.AlreadyDeployed {
		return nil, domain.ErrAlreadyDeployed
	}

	limit := DefaultMaxAnomalies
	if upgraded {
		limit = UpgradedMaxAnomalies
	}
	ids := uniqueIDs(req.AnomalyIDs)
	if len(ids) > limit {
		log.Debug(LogMsgIDsTruncated, "requested", len(ids), "limit", limit)
		ids = ids[:limit]
	}

	deployable, err := s.repo.ListAnomaliesInSets(ctx, sets)
	if err != nil {
		return nil, err
	}
	allowed := make(map[int64]struct{}, len(deployable))
	for _, a := range deployable {
		allowed[a.ID] = struct{}{}
	}
	links := make([]domain.LinkedAnomaly, 0, len(ids))
	for _, id := range ids {
		if _, ok := allowed[id]; !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgNotDeployable, domain.ErrInvalidInput, id)
		}
		links = append(links, domain.LinkedAnomaly{
			Author:    session.UserID,
			AnomalyID: id,
			Automaton: domain.AutomatonTelescope,
		})
	}

	if err := s.repo.InsertLinkedAnomalies(ctx, links); err != nil {
		return nil, err
	}

	log.Info(LogMsgDeployed, "user_id", session.UserID, "deployment_type", req.DeploymentType, "count", len(ids))
	if err := s.bus.Publish(ctx, event.NewTelescopeDeployedEvent(session.UserID, string(req.DeploymentType), ids)); err != nil {
		log.Warn(LogMsgPublishFailed, "type", event.TelescopeDeployed, "error", err)
	}
	return &DeployResult{Inserted: len(ids), AnomalyIDs: ids}, nil
}

func (s *service) Research(ctx context.Context, session domain.Session, techType string) (bool, error) {
	if !session.Valid() {
		return false, domain.ErrNoSession
	}
	if len(techType) > MaxTechTypeLength || !techTypePattern.MatchString(techType) {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidTechType)
	}
	inserted, err := s.repo.RecordResearch(ctx, session.UserID, techType)
	if err != nil {
		return false, err
	}
	if inserted {
		logger.FromContext(ctx).Info(LogMsgResearched, "user_id", session.UserID, "tech_type", techType)
	}
	return inserted, nil
}

// uniqueIDs keeps the first occurrence of each id, in request order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
