package usecase

import (
	"context"
	"encoding/json"

	"github.com/restoration-tracker/internal/config"
	"github.com/restoration-tracker/internal/domain/repository"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
)

// projectReader is the slice of ProjectUseCase the public surface needs.
type projectReader interface {
	GetProjectByID(ctx context.Context, projectID int64) (*dto.GetProjectResponse, error)
	ListProjects(ctx context.Context, req dto.ListProjectsRequest) ([]dto.GetProjectData, error)
}

// PublicUseCase serves the unauthenticated read surface. Project payloads are
// cached whole; contacts and funding sources flagged non-public are stripped
// before the payload ever reaches the cache.
type PublicUseCase struct {
	projects  projectReader
	cacheRepo repository.CacheRepository
	cacheCfg  config.CacheConfig
	logger    *zap.Logger
}

func NewPublicUseCase(
	projects projectReader,
	cacheRepo repository.CacheRepository,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) *PublicUseCase {
	return &PublicUseCase{
		projects:  projects,
		cacheRepo: cacheRepo,
		cacheCfg:  cacheCfg,
		logger:    logger,
	}
}

// GetPublicProject returns the public view of a project, cache-aside. Cache
// failures degrade to a direct read.
func (uc *PublicUseCase) GetPublicProject(ctx context.Context, projectID int64) (*dto.GetProjectResponse, error) {
	if cached, err := uc.cacheRepo.GetPublicProject(ctx, projectID); err == nil && cached != nil {
		var resp dto.GetProjectResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		uc.logger.Warn("Discarding unreadable cached public project", zap.Int64("project_id", projectID))
	}

	resp, err := uc.projects.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	filterPublicSections(resp)

	if payload, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.SetPublicProject(ctx, projectID, payload, uc.cacheCfg.PublicProjectTTL); err != nil {
			uc.logger.Warn("Failed to cache public project", zap.Int64("project_id", projectID), zap.Error(err))
		}
	}

	return resp, nil
}

// ListPlans returns published plans (is_project = false) for the public site.
func (uc *PublicUseCase) ListPlans(ctx context.Context) ([]dto.GetProjectData, error) {
	isProject := false
	return uc.projects.ListProjects(ctx, dto.ListProjectsRequest{IsProject: &isProject})
}

// filterPublicSections drops contacts and funding sources not marked public.
// The read path carries the flags as the strings "true"/"false".
func filterPublicSections(resp *dto.GetProjectResponse) {
	contacts := make([]dto.GetContactItem, 0, len(resp.Contact.Contacts))
	for _, c := range resp.Contact.Contacts {
		if c.IsPublic == "true" {
			contacts = append(contacts, c)
		}
	}
	resp.Contact.Contacts = contacts

	sources := make([]dto.GetFundingSource, 0, len(resp.Funding.FundingSources))
	for _, s := range resp.Funding.FundingSources {
		if s.IsPublic == "true" {
			sources = append(sources, s)
		}
	}
	resp.Funding.FundingSources = sources
}

var _ projectReader = (*ProjectUseCase)(nil)
