package progression

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// MockRepository is an in-memory progression store with version checks
type MockRepository struct {
	mu        sync.Mutex
	missions  map[string]map[int64]time.Time
	inventory map[int64]*domain.InventoryItem
	nextID    int64

	listCalls int
	// interleave runs before a compare-and-swap, simulating another writer
	interleave func(item *domain.InventoryItem)
	// afterList runs once a mission list has been read, before it is returned
	afterList func()
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		missions:  make(map[string]map[int64]time.Time),
		inventory: make(map[int64]*domain.InventoryItem),
		nextID:    1,
	}
}

func (m *MockRepository) addStructure(owner string, itemID int, anomalyID int64, cfg domain.InventoryConfiguration) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.inventory[id] = &domain.InventoryItem{ID: id, Owner: owner, ItemID: itemID, AnomalyID: anomalyID, Quantity: 1, Configuration: cfg}
	return id
}

func (m *MockRepository) structure(id int64) domain.InventoryItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.inventory[id]
}

func (m *MockRepository) HasCompletedMission(_ context.Context, userID string, missionID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.missions[userID][missionID]
	return ok, nil
}

func (m *MockRepository) ListCompletedMissions(_ context.Context, userID string) ([]int64, error) {
	m.mu.Lock()
	m.listCalls++
	out := []int64{}
	for id := range m.missions[userID] {
		out = append(out, id)
	}
	hook := m.afterList
	m.afterList = nil
	m.mu.Unlock()

	slices.Sort(out)
	if hook != nil {
		hook()
	}
	return out, nil
}

func (m *MockRepository) GetMission(_ context.Context, userID string, missionID int64) (*domain.Mission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.missions[userID][missionID]
	if !ok {
		return nil, domain.ErrMissionNotFound
	}
	return &domain.Mission{UserID: userID, MissionID: missionID, TimeOfCompletion: at}, nil
}

func (m *MockRepository) InsertMissionIfAbsent(_ context.Context, userID string, missionID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.missions[userID] == nil {
		m.missions[userID] = make(map[int64]time.Time)
	}
	if _, ok := m.missions[userID][missionID]; ok {
		return false, nil
	}
	m.missions[userID][missionID] = time.Now()
	return true, nil
}

func (m *MockRepository) GetStructure(_ context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.InventoryItem
	for _, it := range m.inventory {
		if it.Owner != userID || it.ItemID != itemID {
			continue
		}
		if anomalyID != 0 && it.AnomalyID != anomalyID {
			continue
		}
		if found == nil || it.ID < found.ID {
			found = it
		}
	}
	if found == nil {
		return nil, domain.ErrStructureNotFound
	}
	cp := *found
	cp.Configuration.MissionsUnlocked = slices.Clone(found.Configuration.MissionsUnlocked)
	return &cp, nil
}

func (m *MockRepository) ListStructures(_ context.Context, userID string, anomalyID int64) ([]domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.InventoryItem{}
	for _, it := range m.inventory {
		if it.Owner == userID && it.AnomalyID == anomalyID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *MockRepository) UpdateStructureConfiguration(_ context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.inventory[inventoryID]
	if !ok {
		return domain.ErrStructureNotFound
	}
	if m.interleave != nil {
		m.interleave(it)
	}
	if it.Version != expectedVersion {
		return domain.ErrConfigConflict
	}
	it.Configuration = cfg
	it.Version++
	return nil
}

// MockAnomalyRepository serves anomalies from a map
type MockAnomalyRepository struct {
	anomalies map[int64]*domain.Anomaly
}

func (m *MockAnomalyRepository) GetAnomaly(_ context.Context, id int64) (*domain.Anomaly, error) {
	if a, ok := m.anomalies[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAnomalyNotFound
}
