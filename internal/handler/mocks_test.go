package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/StarSailors_Go/internal/annotation"
	"github.com/osse101/StarSailors_Go/internal/catalog"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/deployment"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/progression"
)

// MockProgressionService mocks progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) HasCompletedMission(ctx context.Context, session domain.Session, missionID int64) (bool, error) {
	args := m.Called(ctx, session, missionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressionService) IsUnlocked(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (bool, error) {
	args := m.Called(ctx, session, loc, structureItemID, identifier)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressionService) OwnsStructure(ctx context.Context, session domain.Session, loc domain.Location, itemID int) (bool, error) {
	args := m.Called(ctx, session, loc, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressionService) WorkflowState(ctx context.Context, session domain.Session, identifier string) (progression.State, error) {
	args := m.Called(ctx, session, identifier)
	return args.Get(0).(progression.State), args.Error(1)
}

func (m *MockProgressionService) WorkflowStates(ctx context.Context, session domain.Session, loc domain.Location) ([]progression.WorkflowStatus, error) {
	args := m.Called(ctx, session, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]progression.WorkflowStatus), args.Error(1)
}

func (m *MockProgressionService) UnlockFeature(ctx context.Context, session domain.Session, loc domain.Location, structureItemID int, identifier string) (*progression.UnlockResult, error) {
	args := m.Called(ctx, session, loc, structureItemID, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.UnlockResult), args.Error(1)
}

func (m *MockProgressionService) CompleteMission(ctx context.Context, session domain.Session, missionID int64) (bool, error) {
	args := m.Called(ctx, session, missionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressionService) GetMission(ctx context.Context, session domain.Session, missionID int64) (*domain.Mission, error) {
	args := m.Called(ctx, session, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockProgressionService) CompatibleCatalog(loc domain.Location) ([]catalog.Entry, error) {
	args := m.Called(loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Entry), args.Error(1)
}

func (m *MockProgressionService) ResolveLocation(ctx context.Context, anomalyID int64) (domain.Location, error) {
	args := m.Called(ctx, anomalyID)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockProgressionService) Register(bus event.Bus) {
	m.Called(bus)
}

// MockClassificationService mocks classification.Service
type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) Form(anomalyType string) classification.Form {
	return m.Called(anomalyType).Get(0).(classification.Form)
}

func (m *MockClassificationService) Submit(ctx context.Context, session domain.Session, loc domain.Location, req classification.SubmitRequest) (*classification.SubmitResult, error) {
	args := m.Called(ctx, session, loc, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.SubmitResult), args.Error(1)
}

func (m *MockClassificationService) Recorded(ctx context.Context, session domain.Session, requestID string) (*classification.SubmitResult, bool, error) {
	args := m.Called(ctx, session, requestID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*classification.SubmitResult), args.Bool(1), args.Error(2)
}

func (m *MockClassificationService) Get(ctx context.Context, id int64) (*domain.Classification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Classification), args.Error(1)
}

func (m *MockClassificationService) List(ctx context.Context, filter domain.ClassificationFilter) ([]domain.Classification, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Classification), args.Error(1)
}

func (m *MockClassificationService) Vote(ctx context.Context, session domain.Session, classificationID int64) (*classification.VoteResult, error) {
	args := m.Called(ctx, session, classificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.VoteResult), args.Error(1)
}

func (m *MockClassificationService) AddComment(ctx context.Context, session domain.Session, classificationID int64, content string) (*domain.Comment, error) {
	args := m.Called(ctx, session, classificationID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockClassificationService) ListComments(ctx context.Context, classificationID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, classificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// MockAnnotationService mocks annotation.Service
type MockAnnotationService struct {
	mock.Mock
}

func (m *MockAnnotationService) Preview(ctx context.Context, req annotation.SaveRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAnnotationService) Save(ctx context.Context, session domain.Session, req annotation.SaveRequest) (*annotation.SaveResult, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*annotation.SaveResult), args.Error(1)
}

func (m *MockAnnotationService) SaveAndSubmit(ctx context.Context, session domain.Session, loc domain.Location, req annotation.SubmitRequest) (*annotation.SubmitResult, error) {
	args := m.Called(ctx, session, loc, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*annotation.SubmitResult), args.Error(1)
}

func (m *MockAnnotationService) Deposits(ctx context.Context, session domain.Session) ([]domain.MineralDeposit, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MineralDeposit), args.Error(1)
}

// MockAnomalyRepo mocks repository.Anomaly
type MockAnomalyRepo struct {
	mock.Mock
}

func (m *MockAnomalyRepo) GetAnomaly(ctx context.Context, id int64) (*domain.Anomaly, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Anomaly), args.Error(1)
}

// MockDeploymentService mocks deployment.Service
type MockDeploymentService struct {
	mock.Mock
}

func (m *MockDeploymentService) Anomalies(ctx context.Context, session domain.Session, dtype deployment.Type) ([]domain.Anomaly, error) {
	args := m.Called(ctx, session, dtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Anomaly), args.Error(1)
}

func (m *MockDeploymentService) Status(ctx context.Context, session domain.Session) (*deployment.Status, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deployment.Status), args.Error(1)
}

func (m *MockDeploymentService) SkillProgress(ctx context.Context, session domain.Session) (*deployment.SkillProgress, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deployment.SkillProgress), args.Error(1)
}

func (m *MockDeploymentService) Deploy(ctx context.Context, session domain.Session, req deployment.DeployRequest) (*deployment.DeployResult, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deployment.DeployResult), args.Error(1)
}

func (m *MockDeploymentService) Research(ctx context.Context, session domain.Session, techType string) (bool, error) {
	args := m.Called(ctx, session, techType)
	return args.Bool(0), args.Error(1)
}
