package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/usecase/dto"
)

// fakeTxManager runs the transactional function directly; the transaction
// boundary itself is exercised by the postgres package tests.
type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockProjectRepository is a mock of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) InsertProject(ctx context.Context, data dto.PostProjectData) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, projectID int64, data dto.PutProjectData) error {
	args := m.Called(ctx, projectID, data)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProjectFocus(ctx context.Context, projectID int64, data dto.PostFocusData) error {
	args := m.Called(ctx, projectID, data)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProjectRestPlan(ctx context.Context, projectID int64, data dto.PostRestPlanData) error {
	args := m.Called(ctx, projectID, data)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateStateCode(ctx context.Context, projectID int64, stateCode int) error {
	args := m.Called(ctx, projectID, stateCode)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) InsertContact(ctx context.Context, projectID int64, contact dto.PostContactItem) (int64, error) {
	args := m.Called(ctx, projectID, contact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteContacts(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetContacts(ctx context.Context, projectID int64) ([]domain.Contact, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockProjectRepository) InsertFundingSource(ctx context.Context, projectID int64, source dto.PostFundingSource) (int64, error) {
	args := m.Called(ctx, projectID, source)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteFundingSources(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteFundingSourceByID(ctx context.Context, projectID, fundingSourceID int64) error {
	args := m.Called(ctx, projectID, fundingSourceID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetFundingSources(ctx context.Context, projectID int64) ([]domain.FundingSource, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundingSource), args.Error(1)
}

func (m *MockProjectRepository) InsertClassificationDetail(ctx context.Context, projectID int64, detail dto.IUCNItem) (int64, error) {
	args := m.Called(ctx, projectID, detail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteClassificationDetails(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetClassificationDetails(ctx context.Context, projectID int64) ([]domain.IUCNClassification, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IUCNClassification), args.Error(1)
}

func (m *MockProjectRepository) InsertPartnership(ctx context.Context, projectID int64, partnership string) (int64, error) {
	args := m.Called(ctx, projectID, partnership)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeletePartnerships(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetPartnerships(ctx context.Context, projectID int64) ([]domain.Partnership, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partnership), args.Error(1)
}

func (m *MockProjectRepository) InsertObjective(ctx context.Context, projectID int64, objective string) (int64, error) {
	args := m.Called(ctx, projectID, objective)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteObjectives(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetObjectives(ctx context.Context, projectID int64) ([]domain.Objective, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Objective), args.Error(1)
}

func (m *MockProjectRepository) InsertProjectLocation(ctx context.Context, projectID int64, data dto.PostLocationData) (int64, error) {
	args := m.Called(ctx, projectID, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteProjectLocation(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectLocation(ctx context.Context, projectID int64) (*domain.Location, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockProjectRepository) InsertProjectRegion(ctx context.Context, projectID, objectID int64) (int64, error) {
	args := m.Called(ctx, projectID, objectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteProjectRegion(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectRegion(ctx context.Context, projectID int64) (*domain.Region, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockProjectRepository) InsertProjectSpecies(ctx context.Context, projectID, tsn int64) (int64, error) {
	args := m.Called(ctx, projectID, tsn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeleteProjectSpecies(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetProjectSpecies(ctx context.Context, projectID int64) ([]domain.Species, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Species), args.Error(1)
}

func (m *MockProjectRepository) InsertPermit(ctx context.Context, projectID int64, permit dto.AuthorizationItem) (int64, error) {
	args := m.Called(ctx, projectID, permit)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) DeletePermits(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetPermits(ctx context.Context, projectID int64) ([]domain.Permit, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permit), args.Error(1)
}

// MockParticipationRepository is a mock of ParticipationRepository
type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) GetProjectParticipants(ctx context.Context, projectID int64) ([]*domain.Participant, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Participant), args.Error(1)
}

func (m *MockParticipationRepository) GetParticipant(ctx context.Context, projectID, systemUserID int64) (*domain.Participant, error) {
	args := m.Called(ctx, projectID, systemUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockParticipationRepository) GetParticipantByID(ctx context.Context, participationID int64) (*domain.Participant, error) {
	args := m.Called(ctx, participationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockParticipationRepository) InsertParticipant(ctx context.Context, projectID, systemUserID, projectRoleID int64) (int64, error) {
	args := m.Called(ctx, projectID, systemUserID, projectRoleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParticipationRepository) DeleteParticipant(ctx context.Context, participationID int64) error {
	args := m.Called(ctx, participationID)
	return args.Error(0)
}

func (m *MockParticipationRepository) DeleteProjectParticipants(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockParticipationRepository) CountProjectLeads(ctx context.Context, projectID, excludeParticipationID int64) (int, error) {
	args := m.Called(ctx, projectID, excludeParticipationID)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetPublicProject(ctx context.Context, projectID int64) ([]byte, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetPublicProject(ctx context.Context, projectID int64, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, projectID, payload, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateProject(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSpeciesLabels(ctx context.Context, ids []int64) (map[int64]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *MockCacheRepository) SetSpeciesLabels(ctx context.Context, labels map[int64]string, ttl time.Duration) error {
	args := m.Called(ctx, labels, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishProjectEvent(ctx context.Context, event domain.ProjectEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockTaxonomyRepository is a mock of TaxonomyRepository
type MockTaxonomyRepository struct {
	mock.Mock
}

func (m *MockTaxonomyRepository) ResolveSpecies(ctx context.Context, ids []int64) ([]domain.TaxonomyCode, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxonomyCode), args.Error(1)
}
