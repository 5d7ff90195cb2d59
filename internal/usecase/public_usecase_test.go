package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/restoration-tracker/internal/config"
	"github.com/restoration-tracker/internal/usecase"
	"github.com/restoration-tracker/internal/usecase/dto"
)

// mockProjectReader stands in for the aggregate assembly.
type mockProjectReader struct {
	mock.Mock
}

func (m *mockProjectReader) GetProjectByID(ctx context.Context, projectID int64) (*dto.GetProjectResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetProjectResponse), args.Error(1)
}

func (m *mockProjectReader) ListProjects(ctx context.Context, req dto.ListProjectsRequest) ([]dto.GetProjectData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.GetProjectData), args.Error(1)
}

func publicCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		PublicProjectTTL: 5 * time.Minute,
		SpeciesLabelTTL:  24 * time.Hour,
	}
}

func TestPublicUseCase_GetPublicProject(t *testing.T) {
	ctx := context.Background()

	t.Run("strips non-public contacts and funding sources", func(t *testing.T) {
		reader := &mockProjectReader{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewPublicUseCase(reader, cacheRepo, publicCacheConfig(), zap.NewNop())

		full := &dto.GetProjectResponse{
			Project: dto.GetProjectData{ID: 1, Name: "Estuary"},
			Contact: dto.GetContactData{Contacts: []dto.GetContactItem{
				{FirstName: "Pat", IsPublic: "true"},
				{FirstName: "Sam", IsPublic: "false"},
			}},
			Funding: dto.GetFundingData{FundingSources: []dto.GetFundingSource{
				{ID: 1, OrganizationName: "Open Fund", IsPublic: "true"},
				{ID: 2, OrganizationName: "Quiet Fund", IsPublic: "false"},
			}},
		}

		cacheRepo.On("GetPublicProject", mock.Anything, int64(1)).Return(nil, nil)
		reader.On("GetProjectByID", mock.Anything, int64(1)).Return(full, nil)
		cacheRepo.On("SetPublicProject", mock.Anything, int64(1), mock.Anything, 5*time.Minute).Return(nil)

		resp, err := uc.GetPublicProject(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, resp.Contact.Contacts, 1)
		assert.Equal(t, "Pat", resp.Contact.Contacts[0].FirstName)
		assert.Len(t, resp.Funding.FundingSources, 1)
		assert.Equal(t, "Open Fund", resp.Funding.FundingSources[0].OrganizationName)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("serves a cached payload without hitting the database", func(t *testing.T) {
		reader := &mockProjectReader{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewPublicUseCase(reader, cacheRepo, publicCacheConfig(), zap.NewNop())

		cached := dto.GetProjectResponse{
			Project: dto.GetProjectData{ID: 2, Name: "Cached"},
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		cacheRepo.On("GetPublicProject", mock.Anything, int64(2)).Return(payload, nil)

		resp, err := uc.GetPublicProject(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Cached", resp.Project.Name)
		reader.AssertNotCalled(t, "GetProjectByID", mock.Anything, mock.Anything)
	})

	t.Run("cache write failure degrades to a direct read", func(t *testing.T) {
		reader := &mockProjectReader{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewPublicUseCase(reader, cacheRepo, publicCacheConfig(), zap.NewNop())

		cacheRepo.On("GetPublicProject", mock.Anything, int64(3)).Return(nil, assert.AnError)
		reader.On("GetProjectByID", mock.Anything, int64(3)).
			Return(&dto.GetProjectResponse{Project: dto.GetProjectData{ID: 3}}, nil)
		cacheRepo.On("SetPublicProject", mock.Anything, int64(3), mock.Anything, mock.Anything).
			Return(assert.AnError)

		resp, err := uc.GetPublicProject(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Project.ID)
	})
}

func TestPublicUseCase_ListPlans(t *testing.T) {
	ctx := context.Background()

	reader := &mockProjectReader{}
	uc := usecase.NewPublicUseCase(reader, &MockCacheRepository{}, publicCacheConfig(), zap.NewNop())

	reader.On("ListProjects", mock.Anything, mock.MatchedBy(func(req dto.ListProjectsRequest) bool {
		return req.IsProject != nil && *req.IsProject == false
	})).Return([]dto.GetProjectData{{ID: 4, Name: "Watershed Plan", IsProject: false}}, nil)

	plans, err := uc.ListPlans(ctx)

	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Watershed Plan", plans[0].Name)
}
