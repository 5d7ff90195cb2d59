package repository

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/usecase/dto"
)

// TransactionManager opens a database transaction scoped to fn. The handle
// is carried in the context fn receives; repository methods resolve it there
// and fall back to the pool outside a transaction. Commit on nil error,
// rollback on any error, released either way.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProjectRepository issues exactly one parameterized statement per method.
// Singleton lookups return a not-found error distinguishable from a driver
// error when zero rows come back.
type ProjectRepository interface {
	InsertProject(ctx context.Context, data dto.PostProjectData) (int64, error)
	UpdateProject(ctx context.Context, projectID int64, data dto.PutProjectData) error
	UpdateProjectFocus(ctx context.Context, projectID int64, data dto.PostFocusData) error
	UpdateProjectRestPlan(ctx context.Context, projectID int64, data dto.PostRestPlanData) error
	UpdateStateCode(ctx context.Context, projectID int64, stateCode int) error
	DeleteProject(ctx context.Context, projectID int64) error
	GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error)

	InsertContact(ctx context.Context, projectID int64, contact dto.PostContactItem) (int64, error)
	DeleteContacts(ctx context.Context, projectID int64) error
	GetContacts(ctx context.Context, projectID int64) ([]domain.Contact, error)

	InsertFundingSource(ctx context.Context, projectID int64, source dto.PostFundingSource) (int64, error)
	DeleteFundingSources(ctx context.Context, projectID int64) error
	DeleteFundingSourceByID(ctx context.Context, projectID, fundingSourceID int64) error
	GetFundingSources(ctx context.Context, projectID int64) ([]domain.FundingSource, error)

	InsertClassificationDetail(ctx context.Context, projectID int64, detail dto.IUCNItem) (int64, error)
	DeleteClassificationDetails(ctx context.Context, projectID int64) error
	GetClassificationDetails(ctx context.Context, projectID int64) ([]domain.IUCNClassification, error)

	InsertPartnership(ctx context.Context, projectID int64, partnership string) (int64, error)
	DeletePartnerships(ctx context.Context, projectID int64) error
	GetPartnerships(ctx context.Context, projectID int64) ([]domain.Partnership, error)

	InsertObjective(ctx context.Context, projectID int64, objective string) (int64, error)
	DeleteObjectives(ctx context.Context, projectID int64) error
	GetObjectives(ctx context.Context, projectID int64) ([]domain.Objective, error)

	InsertProjectLocation(ctx context.Context, projectID int64, data dto.PostLocationData) (int64, error)
	DeleteProjectLocation(ctx context.Context, projectID int64) error
	GetProjectLocation(ctx context.Context, projectID int64) (*domain.Location, error)

	InsertProjectRegion(ctx context.Context, projectID, objectID int64) (int64, error)
	DeleteProjectRegion(ctx context.Context, projectID int64) error
	GetProjectRegion(ctx context.Context, projectID int64) (*domain.Region, error)

	InsertProjectSpecies(ctx context.Context, projectID, tsn int64) (int64, error)
	DeleteProjectSpecies(ctx context.Context, projectID int64) error
	GetProjectSpecies(ctx context.Context, projectID int64) ([]domain.Species, error)

	InsertPermit(ctx context.Context, projectID int64, permit dto.AuthorizationItem) (int64, error)
	DeletePermits(ctx context.Context, projectID int64) error
	GetPermits(ctx context.Context, projectID int64) ([]domain.Permit, error)
}
