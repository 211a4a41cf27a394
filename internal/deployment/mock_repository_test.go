package deployment

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

type classificationRow struct {
	author string
	ctype  string
	at     time.Time
}

type communityAction struct {
	userID  string
	comment bool
	at      time.Time
}

// MockRepository is an in-memory deployment store
type MockRepository struct {
	mu              sync.Mutex
	anomalies       []domain.Anomaly
	classifications []classificationRow
	research        map[string]map[string]bool
	links           []domain.LinkedAnomaly
	actions         []communityAction

	insertErr error
	clock     func() time.Time
}

func NewMockRepository(clock func() time.Time) *MockRepository {
	return &MockRepository{research: make(map[string]map[string]bool), clock: clock}
}

func (m *MockRepository) addAnomaly(id int64, set string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anomalies = append(m.anomalies, domain.Anomaly{ID: id, AnomalySet: set})
}

func (m *MockRepository) addClassification(author, ctype string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classifications = append(m.classifications, classificationRow{author: author, ctype: ctype, at: at})
}

func (m *MockRepository) addDeployment(author string, at time.Time, anomalyIDs ...int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range anomalyIDs {
		m.links = append(m.links, domain.LinkedAnomaly{Author: author, AnomalyID: id, Automaton: domain.AutomatonTelescope, CreatedAt: at})
	}
}

// addAction records a comment or upvote on someone else's classification
func (m *MockRepository) addAction(userID string, comment bool, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, communityAction{userID: userID, comment: comment, at: at})
}

func (m *MockRepository) linksFor(author string) []domain.LinkedAnomaly {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.LinkedAnomaly
	for _, l := range m.links {
		if l.Author == author {
			out = append(out, l)
		}
	}
	return out
}

func (m *MockRepository) ListAnomaliesInSets(_ context.Context, sets []string) ([]domain.Anomaly, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Anomaly
	for _, a := range m.anomalies {
		if slices.Contains(sets, a.AnomalySet) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockRepository) CountClassifications(_ context.Context, author string, types []string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.classifications {
		if c.author == author && slices.Contains(types, c.ctype) && !c.at.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *MockRepository) HasResearched(_ context.Context, userID, techType string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.research[userID][techType], nil
}

func (m *MockRepository) RecordResearch(_ context.Context, userID, techType string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.research[userID] == nil {
		m.research[userID] = make(map[string]bool)
	}
	if m.research[userID][techType] {
		return false, nil
	}
	m.research[userID][techType] = true
	return true, nil
}

func (m *MockRepository) CountDeployments(_ context.Context, author, automaton string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	batches := make(map[time.Time]struct{})
	for _, l := range m.links {
		if l.Author == author && l.Automaton == automaton && !l.CreatedAt.Before(since) {
			batches[l.CreatedAt] = struct{}{}
		}
	}
	return len(batches), nil
}

func (m *MockRepository) CountCommunityActions(_ context.Context, userID string, since time.Time) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var comments, upvotes int
	for _, a := range m.actions {
		if a.userID != userID || a.at.Before(since) {
			continue
		}
		if a.comment {
			comments++
		} else {
			upvotes++
		}
	}
	return comments, upvotes, nil
}

func (m *MockRepository) InsertLinkedAnomalies(_ context.Context, links []domain.LinkedAnomaly) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	at := m.clock()
	for _, l := range links {
		l.CreatedAt = at
		m.links = append(m.links, l)
	}
	return nil
}
