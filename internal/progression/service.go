package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/StarSailors_Go/internal/catalog"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

// Service decides which workflows a user sees as Tutorial or Live and manages structure unlocks.
// Session and location are always passed in by the caller.
type Service interface {
	// Predicates
	HasCompletedMission(ctx context.Context, session domain.Session, missionID int64) (bool, error)
	IsUnlocked(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (bool, error)
	OwnsStructure(ctx context.Context, session domain.Session, loc domain.Location, itemID int) (bool, error)

	// State machine
	WorkflowState(ctx context.Context, session domain.Session, identifier string) (State, error)
	WorkflowStates(ctx context.Context, session domain.Session, loc domain.Location) ([]WorkflowStatus, error)

	// Writes
	UnlockFeature(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (*UnlockResult, error)
	CompleteMission(ctx context.Context, session domain.Session, missionID int64) (bool, error)
	GetMission(ctx context.Context, session domain.Session, missionID int64) (*domain.Mission, error)

	// Catalog
	CompatibleCatalog(loc domain.Location) ([]catalog.Entry, error)
	ResolveLocation(ctx context.Context, anomalyID int64) (domain.Location, error)

	// Register subscribes cache invalidation to mission events from other services
	Register(bus event.Bus)
}

// Config tunes caching and unlock retries
type Config struct {
	CacheSize     int
	CacheTTL      time.Duration
	UnlockRetries int
}

type service struct {
	repo      repository.Progression
	anomalies repository.Anomaly
	catalog   *catalog.Catalog
	bus       event.Bus
	missions  *missionCache
	retries   int
}

// NewService creates a new progression service
func NewService(repo repository.Progression, anomalies repository.Anomaly, cat *catalog.Catalog, bus event.Bus, cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1000
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.UnlockRetries <= 0 {
		cfg.UnlockRetries = DefaultUnlockRetries
	}
	return &service{
		repo:      repo,
		anomalies: anomalies,
		catalog:   cat,
		bus:       bus,
		missions:  newMissionCache(cfg.CacheSize, cfg.CacheTTL),
		retries:   cfg.UnlockRetries,
	}
}

func (s *service) Register(bus event.Bus) {
	bus.Subscribe(event.MissionCompleted, s.handleMissionCompleted)
	bus.Subscribe(event.ClassificationSubmitted, s.handleClassificationSubmitted)
}

func (s *service) handleMissionCompleted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.MissionCompletedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode %s: %w", evt.Type, err)
	}
	s.missions.Invalidate(p.UserID)
	logger.FromContext(ctx).Debug(LogMsgMissionCacheCleared, "user_id", p.UserID)
	return nil
}

func (s *service) handleClassificationSubmitted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ClassificationSubmittedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode %s: %w", evt.Type, err)
	}
	s.missions.Invalidate(p.UserID)
	return nil
}

func (s *service) completedMissions(ctx context.Context, userID string) (map[int64]struct{}, error) {
	if set, ok := s.missions.Get(userID); ok {
		return set, nil
	}
	gen := s.missions.Begin(userID)
	ids, err := s.repo.ListCompletedMissions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completed missions: %w", err)
	}
	return s.missions.Set(userID, gen, ids), nil
}

// HasCompletedMission is true when a mission row exists for the user
func (s *service) HasCompletedMission(ctx context.Context, session domain.Session, missionID int64) (bool, error) {
	if !session.Valid() {
		return false, domain.ErrNoSession
	}
	set, err := s.completedMissions(ctx, session.UserID)
	if err != nil {
		return false, err
	}
	_, ok := set[missionID]
	return ok, nil
}

// IsUnlocked is true when identifier is in the unlocked list of the user's structure on the active planet
func (s *service) IsUnlocked(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (bool, error) {
	if !session.Valid() {
		return false, domain.ErrNoSession
	}
	if !loc.Valid() {
		return false, domain.ErrNoActiveLocation
	}
	item, err := s.repo.GetStructure(ctx, session.UserID, structureItemID, loc.AnomalyID)
	if errors.Is(err, domain.ErrStructureNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return item.Configuration.HasUnlocked(identifier), nil
}

// OwnsStructure is true when an inventory row exists for (user, active planet, item)
func (s *service) OwnsStructure(ctx context.Context, session domain.Session, loc domain.Location, itemID int) (bool, error) {
	if !session.Valid() {
		return false, domain.ErrNoSession
	}
	if !loc.Valid() {
		return false, domain.ErrNoActiveLocation
	}
	_, err := s.repo.GetStructure(ctx, session.UserID, itemID, loc.AnomalyID)
	if errors.Is(err, domain.ErrStructureNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// WorkflowState evaluates one catalog entry's state
func (s *service) WorkflowState(ctx context.Context, session domain.Session, identifier string) (State, error) {
	entry, ok := s.catalog.Get(identifier)
	if !ok {
		return "", fmt.Errorf("%w: unknown workflow %q", domain.ErrInvalidInput, identifier)
	}
	done, err := s.HasCompletedMission(ctx, session, entry.TutorialMission)
	if err != nil {
		return "", err
	}
	return StateFor(done), nil
}

// WorkflowStates evaluates every workflow for the user. With a location, entries are limited to
// those compatible with its planet type and ownership/unlock flags are filled in.
// Missions and structures are loaded concurrently.
func (s *service) WorkflowStates(ctx context.Context, session domain.Session, loc domain.Location) ([]WorkflowStatus, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}

	var (
		completed  map[int64]struct{}
		structures []domain.InventoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		completed, err = s.completedMissions(gctx, session.UserID)
		return err
	})
	if loc.Valid() {
		g.Go(func() error {
			var err error
			structures, err = s.repo.ListStructures(gctx, session.UserID, loc.AnomalyID)
			if err != nil {
				return fmt.Errorf("list structures: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Lowest id wins when a user holds several of the same structure
	byItem := make(map[int]domain.InventoryItem, len(structures))
	for _, st := range structures {
		if prev, ok := byItem[st.ItemID]; !ok || st.ID < prev.ID {
			byItem[st.ItemID] = st
		}
	}

	entries := s.catalog.Entries()
	if loc.PlanetType != "" {
		entries = s.catalog.Compatible(loc.PlanetType)
	}

	out := make([]WorkflowStatus, 0, len(entries))
	for _, e := range entries {
		_, done := completed[e.TutorialMission]
		st, owned := byItem[e.ActiveStructure]
		out = append(out, WorkflowStatus{
			Entry:    e,
			State:    StateFor(done),
			Owned:    owned,
			Unlocked: owned && st.Configuration.HasUnlocked(e.Identifier),
		})
	}
	return out, nil
}

// CompatibleCatalog filters the catalog by the active planet's type
func (s *service) CompatibleCatalog(loc domain.Location) ([]catalog.Entry, error) {
	if !loc.Valid() {
		return nil, domain.ErrNoActiveLocation
	}
	return s.catalog.Compatible(loc.PlanetType), nil
}

// ResolveLocation loads the anomaly a user is deployed to and reads its planet type
func (s *service) ResolveLocation(ctx context.Context, anomalyID int64) (domain.Location, error) {
	if anomalyID <= 0 {
		return domain.Location{}, domain.ErrNoActiveLocation
	}
	a, err := s.anomalies.GetAnomaly(ctx, anomalyID)
	if err != nil {
		return domain.Location{}, err
	}
	loc := domain.Location{AnomalyID: a.ID}
	for _, key := range []string{AnomalyConfigPlanetType, AnomalyConfigType} {
		if v, ok := a.Configuration[key].(string); ok && v != "" {
			loc.PlanetType = v
			break
		}
	}
	return loc, nil
}

// CompleteMission inserts the mission row if absent and reports whether it was new
func (s *service) CompleteMission(ctx context.Context, session domain.Session, missionID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return false, domain.ErrNoSession
	}
	if missionID <= 0 {
		return false, fmt.Errorf("%w: mission id must be positive", domain.ErrInvalidInput)
	}

	inserted, err := s.repo.InsertMissionIfAbsent(ctx, session.UserID, missionID)
	if err != nil {
		return false, err
	}
	s.missions.Invalidate(session.UserID)

	if inserted {
		log.Info(LogMsgMissionCompleted, "mission", missionID)
		if err := s.bus.Publish(ctx, event.NewMissionCompletedEvent(session.UserID, missionID)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return inserted, nil
}

// GetMission returns the completion row or domain.ErrMissionNotFound
func (s *service) GetMission(ctx context.Context, session domain.Session, missionID int64) (*domain.Mission, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	return s.repo.GetMission(ctx, session.UserID, missionID)
}
