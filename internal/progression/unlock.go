package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/metrics"
)

// UnlockFeature appends identifier to the unlocked list of the user's structure on the active planet.
// The write is a compare-and-swap on the row version; a lost race re-reads and tries again, up to
// the configured number of retries. Appending is idempotent, so a retry that finds the identifier
// already present stops there.
func (s *service) UnlockFeature(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (*UnlockResult, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	if !loc.Valid() {
		return nil, domain.ErrNoActiveLocation
	}
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", domain.ErrInvalidInput)
	}
	if entry, ok := s.catalog.Get(identifier); ok && entry.ActiveStructure != structureItemID {
		return nil, fmt.Errorf("%w: %s is not driven by structure %d", domain.ErrInvalidInput, identifier, structureItemID)
	}

	for attempt := 1; attempt <= s.retries+1; attempt++ {
		item, err := s.repo.GetStructure(ctx, session.UserID, structureItemID, loc.AnomalyID)
		if err != nil {
			return nil, err
		}
		if item.Configuration.Kind != domain.ConfigKindStructure {
			return nil, fmt.Errorf("%w: inventory %d is not a structure", domain.ErrInvalidConfig, item.ID)
		}

		next, changed := item.Configuration.WithUnlocked(identifier)
		result := &UnlockResult{
			InventoryID:      item.ID,
			Identifier:       identifier,
			MissionsUnlocked: next.MissionsUnlocked,
			Attempts:         attempt,
		}
		if !changed {
			log.Debug(LogMsgAlreadyUnlocked, "inventory_id", item.ID, "identifier", identifier)
			result.AlreadyUnlocked = true
			return result, nil
		}

		err = s.repo.UpdateStructureConfiguration(ctx, item.ID, next, item.Version)
		if errors.Is(err, domain.ErrConfigConflict) {
			metrics.UnlockConflicts.Inc()
			log.Warn(LogMsgUnlockConflict, "inventory_id", item.ID, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Info(LogMsgFeatureUnlocked, "inventory_id", item.ID, "identifier", identifier)
		if err := s.bus.Publish(ctx, event.NewFeatureUnlockedEvent(session.UserID, item.ID, structureItemID, identifier)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
		return result, nil
	}

	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrConfigConflict, s.retries+1)
}
