package classification

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/repository"
)

var errInjected = errors.New("injected failure")

// store is the whole fake database; a transaction works on a clone and swaps it in on commit
type store struct {
	classifications map[int64]domain.Classification
	inventory       map[int64]domain.InventoryItem
	points          map[string]int
	missions        map[string]map[int64]bool
	links           map[string]map[int64]domain.LinkedAnomaly
	submissions     map[string]int64
	votes           map[string]bool
	nextID          int64
}

func newStore() *store {
	return &store{
		classifications: map[int64]domain.Classification{},
		inventory:       map[int64]domain.InventoryItem{},
		points:          map[string]int{},
		missions:        map[string]map[int64]bool{},
		links:           map[string]map[int64]domain.LinkedAnomaly{},
		submissions:     map[string]int64{},
		votes:           map[string]bool{},
		nextID:          1,
	}
}

func (s *store) clone() *store {
	c := &store{
		classifications: maps.Clone(s.classifications),
		inventory:       maps.Clone(s.inventory),
		points:          maps.Clone(s.points),
		missions:        map[string]map[int64]bool{},
		links:           map[string]map[int64]domain.LinkedAnomaly{},
		submissions:     maps.Clone(s.submissions),
		votes:           maps.Clone(s.votes),
		nextID:          s.nextID,
	}
	for k, v := range s.missions {
		c.missions[k] = maps.Clone(v)
	}
	for k, v := range s.links {
		c.links[k] = maps.Clone(v)
	}
	return c
}

func (s *store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// MockRepository implements repository.Classification in memory
type MockRepository struct {
	mu       sync.Mutex
	data     *store
	comments []domain.Comment

	// failOn names a transaction step that returns errInjected
	failOn string
	// claims holds request keys taken by open transactions, closed when the holder finishes
	claims map[string]chan struct{}
	// afterClaim runs once, right after a transaction takes a key
	afterClaim func()
	// onClaimWait runs once, when a claim starts waiting behind another transaction
	onClaimWait func()

	commits    int
	lastFilter domain.ClassificationFilter
}

func NewMockRepository() *MockRepository {
	return &MockRepository{data: newStore(), claims: map[string]chan struct{}{}}
}

func (m *MockRepository) addStructure(owner string, itemID int, anomalyID int64, uses int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.data.id()
	m.data.inventory[id] = domain.InventoryItem{
		ID: id, Owner: owner, ItemID: itemID, AnomalyID: anomalyID, Quantity: 1,
		Configuration: domain.InventoryConfiguration{Kind: domain.ConfigKindStructure, Uses: uses},
	}
	return id
}

func (m *MockRepository) addLink(author string, anomalyID int64, parent *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data.links[author] == nil {
		m.data.links[author] = map[int64]domain.LinkedAnomaly{}
	}
	m.data.links[author][anomalyID] = domain.LinkedAnomaly{ID: m.data.id(), Author: author, AnomalyID: anomalyID, ClassificationID: parent}
}

func (m *MockRepository) addClassification(c domain.Classification) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.data.id()
	m.data.classifications[c.ID] = c
	return c.ID
}

func (m *MockRepository) snapshot() *store {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.clone()
}

func (m *MockRepository) GetClassification(_ context.Context, id int64) (*domain.Classification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.data.classifications[id]
	if !ok {
		return nil, domain.ErrClassificationNotFound
	}
	return &c, nil
}

func (m *MockRepository) ListClassifications(_ context.Context, f domain.ClassificationFilter) ([]domain.Classification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = f
	var out []domain.Classification
	for id := m.data.nextID; id > 0 && len(out) < f.Limit; id-- {
		c, ok := m.data.classifications[id]
		if !ok {
			continue
		}
		if f.Author != "" && c.Author != f.Author {
			continue
		}
		if f.ClassificationType != "" && c.ClassificationType != f.ClassificationType {
			continue
		}
		if f.AnomalyID != 0 && c.AnomalyID != f.AnomalyID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MockRepository) AddComment(_ context.Context, c domain.Comment) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = int64(len(m.comments) + 1)
	c.CreatedAt = time.Now()
	m.comments = append(m.comments, c)
	return &c, nil
}

func (m *MockRepository) ListComments(_ context.Context, classificationID int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, c := range m.comments {
		if c.ClassificationID == classificationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockRepository) BeginTx(_ context.Context) (repository.ClassificationTx, error) {
	if m.failOn == "begin" {
		return nil, errInjected
	}
	return &mockTx{repo: m, data: m.snapshot()}, nil
}

type mockTx struct {
	repo *MockRepository
	data *store
	done bool
	held []string
}

// release frees the keys this transaction claimed; callers hold repo.mu
func (t *mockTx) release() {
	for _, k := range t.held {
		close(t.repo.claims[k])
		delete(t.repo.claims, k)
	}
	t.held = nil
}

func (t *mockTx) fail(step string) error {
	if t.repo.failOn == step {
		return errInjected
	}
	return nil
}

func (t *mockTx) Commit(_ context.Context) error {
	if err := t.fail("commit"); err != nil {
		return err
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.data = t.data
	t.repo.commits++
	t.done = true
	t.release()
	return nil
}

func (t *mockTx) Rollback(_ context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.done = true
	t.release()
	return nil
}

func submissionKey(author, requestID string) string { return author + "/" + requestID }

func (m *MockRepository) GetSubmission(_ context.Context, author, requestID string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.data.submissions[submissionKey(author, requestID)]
	return id, ok, nil
}

// ClaimSubmission behaves like an insert against a unique index: a key held by an open
// transaction blocks until that transaction commits or rolls back.
func (t *mockTx) ClaimSubmission(_ context.Context, author, requestID string) (int64, bool, error) {
	if err := t.fail("ledger"); err != nil {
		return 0, false, err
	}
	k := submissionKey(author, requestID)
	for {
		t.repo.mu.Lock()
		if id, ok := t.repo.data.submissions[k]; ok {
			t.repo.mu.Unlock()
			return id, false, nil
		}
		if wait, held := t.repo.claims[k]; held {
			hook := t.repo.onClaimWait
			t.repo.onClaimWait = nil
			t.repo.mu.Unlock()
			if hook != nil {
				hook()
			}
			<-wait
			continue
		}
		t.repo.claims[k] = make(chan struct{})
		t.held = append(t.held, k)
		hook := t.repo.afterClaim
		t.repo.afterClaim = nil
		t.repo.mu.Unlock()

		if hook != nil {
			hook()
		}
		return 0, true, nil
	}
}

func (t *mockTx) CompleteSubmission(_ context.Context, author, requestID string, classificationID int64) error {
	t.data.submissions[submissionKey(author, requestID)] = classificationID
	return nil
}

func (t *mockTx) GetStructureForUpdate(_ context.Context, userID string, itemID int, anomalyID int64) (*domain.InventoryItem, error) {
	var found *domain.InventoryItem
	for _, it := range t.data.inventory {
		if it.Owner == userID && it.ItemID == itemID && it.AnomalyID == anomalyID {
			if found == nil || it.ID < found.ID {
				cp := it
				found = &cp
			}
		}
	}
	if found == nil {
		return nil, domain.ErrStructureNotFound
	}
	return found, nil
}

func (t *mockTx) UpdateStructureConfiguration(_ context.Context, inventoryID int64, cfg domain.InventoryConfiguration, expectedVersion int) error {
	it, ok := t.data.inventory[inventoryID]
	if !ok {
		return domain.ErrStructureNotFound
	}
	if it.Version != expectedVersion {
		return domain.ErrConfigConflict
	}
	it.Configuration = cfg
	it.Version++
	t.data.inventory[inventoryID] = it
	return nil
}

func (t *mockTx) GetLinkedAnomaly(_ context.Context, author string, anomalyID int64) (*domain.LinkedAnomaly, error) {
	link, ok := t.data.links[author][anomalyID]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (t *mockTx) DeleteLinkedAnomalies(_ context.Context, author string, anomalyID int64) error {
	delete(t.data.links[author], anomalyID)
	return nil
}

func (t *mockTx) InsertClassification(_ context.Context, c domain.Classification) (int64, error) {
	if err := t.fail("insert"); err != nil {
		return 0, err
	}
	c.ID = t.data.id()
	c.CreatedAt = time.Now()
	t.data.classifications[c.ID] = c
	return c.ID, nil
}

func (t *mockTx) AddClassificationPoints(_ context.Context, userID string, points int) error {
	if err := t.fail("points"); err != nil {
		return err
	}
	t.data.points[userID] += points
	return nil
}

func (t *mockTx) InsertMissionIfAbsent(_ context.Context, userID string, missionID int64) (bool, error) {
	if err := t.fail("mission"); err != nil {
		return false, err
	}
	if t.data.missions[userID] == nil {
		t.data.missions[userID] = map[int64]bool{}
	}
	if t.data.missions[userID][missionID] {
		return false, nil
	}
	t.data.missions[userID][missionID] = true
	return true, nil
}

func voteKey(userID string, classificationID int64) string {
	return fmt.Sprintf("%s/%d", userID, classificationID)
}

func (t *mockTx) InsertVote(_ context.Context, v domain.Vote) (bool, error) {
	k := voteKey(v.UserID, v.ClassificationID)
	if t.data.votes[k] {
		return false, nil
	}
	t.data.votes[k] = true
	return true, nil
}

func (t *mockTx) GetClassificationForUpdate(_ context.Context, id int64) (*domain.Classification, error) {
	c, ok := t.data.classifications[id]
	if !ok {
		return nil, domain.ErrClassificationNotFound
	}
	return &c, nil
}

func (t *mockTx) UpdateClassificationConfiguration(_ context.Context, id int64, cfg domain.ClassificationConfiguration) error {
	c := t.data.classifications[id]
	c.Configuration = cfg
	t.data.classifications[id] = c
	return nil
}
