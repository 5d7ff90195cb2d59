package usecase

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProjectUseCase orchestrates the multi-table create/update/delete of the
// project-or-plan aggregate. Child collections are replaced wholesale
// (delete-then-reinsert) inside one transaction; there is no per-row diffing.
type ProjectUseCase struct {
	tx            repository.TransactionManager
	projectRepo   repository.ProjectRepository
	participation repository.ParticipationRepository
	taxonomyRepo  repository.TaxonomyRepository
	cacheRepo     repository.CacheRepository
	streamRepo    repository.StreamRepository
	logger        *zap.Logger
}

func NewProjectUseCase(
	tx repository.TransactionManager,
	projectRepo repository.ProjectRepository,
	participation repository.ParticipationRepository,
	taxonomyRepo repository.TaxonomyRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		tx:            tx,
		projectRepo:   projectRepo,
		participation: participation,
		taxonomyRepo:  taxonomyRepo,
		cacheRepo:     cacheRepo,
		streamRepo:    streamRepo,
		logger:        logger,
	}
}

// CreateProject inserts the root row, fans out the child inserts, and makes
// the creating user the Project Lead. Any branch failure rolls the whole
// transaction back; ordering across branches is not guaranteed.
func (uc *ProjectUseCase) CreateProject(ctx context.Context, req dto.PostProjectRequest, systemUserID int64) (int64, error) {
	var projectID int64

	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		projectData := dto.NewPostProjectData(req.Project)

		id, err := uc.projectRepo.InsertProject(txCtx, projectData)
		if err != nil {
			return err
		}
		projectID = id

		g, gCtx := errgroup.WithContext(txCtx)

		contactData := dto.NewPostContactData(req.Contact)
		for _, contact := range contactData.Contacts {
			contact := contact
			g.Go(func() error {
				_, err := uc.projectRepo.InsertContact(gCtx, id, contact)
				return err
			})
		}

		fundingData := dto.NewPostFundingData(req.Funding)
		for _, source := range fundingData.FundingSources {
			source := source
			g.Go(func() error {
				_, err := uc.projectRepo.InsertFundingSource(gCtx, id, source)
				return err
			})
		}

		// Only fully-populated triples are persisted; partial ones are
		// silently skipped.
		iucnData := dto.NewPostIUCNData(req.IUCN)
		for _, detail := range iucnData.ClassificationDetails {
			if !detail.Complete() {
				continue
			}
			detail := detail
			g.Go(func() error {
				_, err := uc.projectRepo.InsertClassificationDetail(gCtx, id, detail)
				return err
			})
		}

		partnershipData := dto.NewPostPartnershipsData(req.Partnership)
		for _, partnership := range partnershipData.Partnerships {
			partnership := partnership
			g.Go(func() error {
				_, err := uc.projectRepo.InsertPartnership(gCtx, id, partnership)
				return err
			})
		}

		objectiveData := dto.NewPostObjectivesData(req.Objective)
		for _, objective := range objectiveData.Objectives {
			objective := objective
			g.Go(func() error {
				_, err := uc.projectRepo.InsertObjective(gCtx, id, objective)
				return err
			})
		}

		locationData := dto.NewPostLocationData(req.Location)
		if locationData.HasGeometry() {
			g.Go(func() error {
				_, err := uc.projectRepo.InsertProjectLocation(gCtx, id, locationData)
				return err
			})
		}
		if locationData.Region != nil {
			objectID := *locationData.Region
			g.Go(func() error {
				_, err := uc.projectRepo.InsertProjectRegion(gCtx, id, objectID)
				return err
			})
		}

		speciesData := dto.NewPostSpeciesData(req.Species)
		for _, tsn := range speciesData.FocalSpecies {
			tsn := tsn
			g.Go(func() error {
				_, err := uc.projectRepo.InsertProjectSpecies(gCtx, id, tsn)
				return err
			})
		}

		authData := dto.NewPostAuthorizationData(req.Authorization)
		for _, permit := range authData.Authorizations {
			permit := permit
			g.Go(func() error {
				_, err := uc.projectRepo.InsertPermit(gCtx, id, permit)
				return err
			})
		}

		if req.Focus != nil {
			focusData := dto.NewPostFocusData(req.Focus)
			g.Go(func() error {
				return uc.projectRepo.UpdateProjectFocus(gCtx, id, focusData)
			})
		}

		if req.RestorationPlan != nil {
			restPlanData := dto.NewPostRestPlanData(req.RestorationPlan)
			g.Go(func() error {
				return uc.projectRepo.UpdateProjectRestPlan(gCtx, id, restPlanData)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		// The creator becomes Project Lead only after every child write
		// has landed.
		_, err = uc.participation.InsertParticipant(txCtx, id, systemUserID, domain.ProjectRoleLeadID)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to create project", zap.Error(err))
		return 0, err
	}

	uc.publishEvent(ctx, domain.EventProjectCreated, projectID)

	return projectID, nil
}

// UpdateProject applies a sparse update: each present section is replaced
// wholesale, an absent section is left untouched. Sending an empty
// collection for a section clears it.
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, projectID int64, req dto.PutProjectRequest) error {
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		g, gCtx := errgroup.WithContext(txCtx)

		if req.Project != nil {
			g.Go(func() error {
				return uc.projectRepo.UpdateProject(gCtx, projectID, dto.NewPutProjectData(req.Project))
			})
		}
		if req.Contact != nil {
			g.Go(func() error { return uc.updateContactData(gCtx, projectID, req.Contact) })
		}
		if req.Partnership != nil {
			g.Go(func() error { return uc.updatePartnershipData(gCtx, projectID, req.Partnership) })
		}
		if req.Objective != nil {
			g.Go(func() error { return uc.updateObjectiveData(gCtx, projectID, req.Objective) })
		}
		if req.IUCN != nil {
			g.Go(func() error { return uc.updateIUCNData(gCtx, projectID, req.IUCN) })
		}
		if req.Funding != nil {
			g.Go(func() error { return uc.updateFundingData(gCtx, projectID, req.Funding) })
		}
		if req.Authorization != nil {
			g.Go(func() error { return uc.updateAuthorizationData(gCtx, projectID, req.Authorization) })
		}
		if req.Species != nil {
			g.Go(func() error { return uc.updateSpeciesData(gCtx, projectID, req.Species) })
		}
		if req.Location != nil {
			// The location key gates both the spatial and the region
			// routines; neither runs when the key is absent.
			g.Go(func() error { return uc.updateSpatialData(gCtx, projectID, req.Location) })
			g.Go(func() error { return uc.updateRegionData(gCtx, projectID, req.Location) })
		}
		if req.Focus != nil {
			g.Go(func() error {
				return uc.projectRepo.UpdateProjectFocus(gCtx, projectID, dto.NewPostFocusData(req.Focus))
			})
		}
		if req.RestorationPlan != nil {
			g.Go(func() error {
				return uc.projectRepo.UpdateProjectRestPlan(gCtx, projectID, dto.NewPostRestPlanData(req.RestorationPlan))
			})
		}

		return g.Wait()
	})
	if err != nil {
		uc.logger.Error("Failed to update project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	uc.invalidate(ctx, projectID)
	uc.publishEvent(ctx, domain.EventProjectUpdated, projectID)

	return nil
}

func (uc *ProjectUseCase) updateContactData(ctx context.Context, projectID int64, section *dto.ContactSection) error {
	data := dto.NewPostContactData(section)

	if err := uc.projectRepo.DeleteContacts(ctx, projectID); err != nil {
		return err
	}
	for _, contact := range data.Contacts {
		if _, err := uc.projectRepo.InsertContact(ctx, projectID, contact); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updatePartnershipData(ctx context.Context, projectID int64, section *dto.PartnershipSection) error {
	data := dto.NewPostPartnershipsData(section)

	if err := uc.projectRepo.DeletePartnerships(ctx, projectID); err != nil {
		return err
	}
	for _, partnership := range data.Partnerships {
		if _, err := uc.projectRepo.InsertPartnership(ctx, projectID, partnership); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateObjectiveData(ctx context.Context, projectID int64, section *dto.ObjectiveSection) error {
	data := dto.NewPostObjectivesData(section)

	if err := uc.projectRepo.DeleteObjectives(ctx, projectID); err != nil {
		return err
	}
	for _, objective := range data.Objectives {
		if _, err := uc.projectRepo.InsertObjective(ctx, projectID, objective); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateIUCNData(ctx context.Context, projectID int64, section *dto.IUCNSection) error {
	data := dto.NewPostIUCNData(section)

	if err := uc.projectRepo.DeleteClassificationDetails(ctx, projectID); err != nil {
		return err
	}
	for _, detail := range data.ClassificationDetails {
		if !detail.Complete() {
			continue
		}
		if _, err := uc.projectRepo.InsertClassificationDetail(ctx, projectID, detail); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateFundingData(ctx context.Context, projectID int64, section *dto.FundingSection) error {
	data := dto.NewPostFundingData(section)

	if err := uc.projectRepo.DeleteFundingSources(ctx, projectID); err != nil {
		return err
	}
	for _, source := range data.FundingSources {
		if _, err := uc.projectRepo.InsertFundingSource(ctx, projectID, source); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateAuthorizationData(ctx context.Context, projectID int64, section *dto.AuthorizationSection) error {
	data := dto.NewPostAuthorizationData(section)

	if err := uc.projectRepo.DeletePermits(ctx, projectID); err != nil {
		return err
	}
	for _, permit := range data.Authorizations {
		if _, err := uc.projectRepo.InsertPermit(ctx, projectID, permit); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateSpeciesData(ctx context.Context, projectID int64, section *dto.SpeciesSection) error {
	data := dto.NewPostSpeciesData(section)

	if err := uc.projectRepo.DeleteProjectSpecies(ctx, projectID); err != nil {
		return err
	}
	for _, tsn := range data.FocalSpecies {
		if _, err := uc.projectRepo.InsertProjectSpecies(ctx, projectID, tsn); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) updateSpatialData(ctx context.Context, projectID int64, section *dto.LocationSection) error {
	data := dto.NewPostLocationData(section)

	if err := uc.projectRepo.DeleteProjectLocation(ctx, projectID); err != nil {
		return err
	}
	if !data.HasGeometry() {
		return nil
	}
	_, err := uc.projectRepo.InsertProjectLocation(ctx, projectID, data)
	return err
}

func (uc *ProjectUseCase) updateRegionData(ctx context.Context, projectID int64, section *dto.LocationSection) error {
	data := dto.NewPostLocationData(section)

	if err := uc.projectRepo.DeleteProjectRegion(ctx, projectID); err != nil {
		return err
	}
	if data.Region == nil {
		return nil
	}
	_, err := uc.projectRepo.InsertProjectRegion(ctx, projectID, *data.Region)
	return err
}

// GetProjectByID assembles the whole aggregate. Child reads run
// concurrently; species labels come from the label cache with a taxonomy
// service fallback.
func (uc *ProjectUseCase) GetProjectByID(ctx context.Context, projectID int64) (*dto.GetProjectResponse, error) {
	var (
		project      *domain.Project
		contacts     []domain.Contact
		funding      []domain.FundingSource
		iucn         []domain.IUCNClassification
		partnerships []domain.Partnership
		objectives   []domain.Objective
		location     *domain.Location
		region       *domain.Region
		species      []domain.Species
		permits      []domain.Permit
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		project, err = uc.projectRepo.GetProjectByID(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		contacts, err = uc.projectRepo.GetContacts(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		funding, err = uc.projectRepo.GetFundingSources(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		iucn, err = uc.projectRepo.GetClassificationDetails(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		partnerships, err = uc.projectRepo.GetPartnerships(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		objectives, err = uc.projectRepo.GetObjectives(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		location, err = uc.projectRepo.GetProjectLocation(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		region, err = uc.projectRepo.GetProjectRegion(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		species, err = uc.projectRepo.GetProjectSpecies(gCtx, projectID)
		return err
	})
	g.Go(func() (err error) {
		permits, err = uc.projectRepo.GetPermits(gCtx, projectID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := uc.resolveSpeciesLabels(ctx, species)

	return &dto.GetProjectResponse{
		Project:       dto.NewGetProjectData(project),
		Focus:         dto.NewGetFocusData(project),
		Contact:       dto.NewGetContactData(contacts),
		Species:       dto.NewGetSpeciesData(species, codes),
		IUCN:          dto.NewGetIUCNData(iucn),
		Funding:       dto.NewGetFundingData(funding),
		Partnership:   dto.NewGetPartnershipData(partnerships),
		Objective:     dto.NewGetObjectiveData(objectives),
		Location:      dto.NewGetLocationData(location, region),
		Authorization: dto.NewGetAuthorizationData(permits),
	}, nil
}

// resolveSpeciesLabels is best effort: a cache or taxonomy failure degrades
// to ids without labels rather than failing the read.
func (uc *ProjectUseCase) resolveSpeciesLabels(ctx context.Context, species []domain.Species) []domain.TaxonomyCode {
	if len(species) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(species))
	for _, s := range species {
		ids = append(ids, s.TSN)
	}

	cached, err := uc.cacheRepo.GetSpeciesLabels(ctx, ids)
	if err != nil {
		cached = map[int64]string{}
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		resolved, err := uc.taxonomyRepo.ResolveSpecies(ctx, missing)
		if err != nil {
			uc.logger.Warn("Failed to resolve species labels", zap.Error(err))
		} else {
			for _, code := range resolved {
				cached[code.ID] = code.Label
			}
		}
	}

	codes := make([]domain.TaxonomyCode, 0, len(cached))
	for id, label := range cached {
		codes = append(codes, domain.TaxonomyCode{ID: id, Label: label})
	}
	return codes
}

// ListProjects returns root rows matching the filter.
func (uc *ProjectUseCase) ListProjects(ctx context.Context, req dto.ListProjectsRequest) ([]dto.GetProjectData, error) {
	filter := domain.ProjectFilter{
		Keyword:        req.Keyword,
		RegionObjectID: req.Region,
		StateCodes:     req.StateCodes,
		IsProject:      req.IsProject,
	}

	rows, err := uc.projectRepo.ListProjects(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}

	projects := make([]dto.GetProjectData, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, dto.NewGetProjectData(row))
	}
	return projects, nil
}

// DeleteProject removes the aggregate: children first, then the root row,
// all inside one transaction.
func (uc *ProjectUseCase) DeleteProject(ctx context.Context, projectID int64) error {
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		// Existence check so a bogus id surfaces as a 400, not a silent no-op.
		if _, err := uc.projectRepo.GetProjectByID(txCtx, projectID); err != nil {
			return err
		}

		g, gCtx := errgroup.WithContext(txCtx)
		g.Go(func() error { return uc.projectRepo.DeleteContacts(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteFundingSources(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteClassificationDetails(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeletePartnerships(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteObjectives(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteProjectLocation(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteProjectRegion(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeleteProjectSpecies(gCtx, projectID) })
		g.Go(func() error { return uc.projectRepo.DeletePermits(gCtx, projectID) })
		g.Go(func() error { return uc.participation.DeleteProjectParticipants(gCtx, projectID) })
		if err := g.Wait(); err != nil {
			return err
		}

		return uc.projectRepo.DeleteProject(txCtx, projectID)
	})
	if err != nil {
		uc.logger.Error("Failed to delete project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	uc.invalidate(ctx, projectID)
	uc.publishEvent(ctx, domain.EventProjectDeleted, projectID)

	return nil
}

// UpdateStateCode moves the project between workflow states. Only Planning
// and Archived are permitted targets.
func (uc *ProjectUseCase) UpdateStateCode(ctx context.Context, projectID int64, stateCode int) error {
	if !domain.AllowedStateTransition(stateCode) {
		return apperrors.ErrInvalidStateCode
	}

	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.UpdateStateCode(txCtx, projectID, stateCode)
	})
	if err != nil {
		uc.logger.Error("Failed to update project state",
			zap.Int64("project_id", projectID),
			zap.Int("state_code", stateCode),
			zap.Error(err),
		)
		return err
	}

	uc.invalidate(ctx, projectID)
	uc.publishEvent(ctx, domain.EventProjectUpdated, projectID)

	return nil
}

// InsertFundingSource adds a single funding source outside the full-update
// path.
func (uc *ProjectUseCase) InsertFundingSource(ctx context.Context, projectID int64, item *dto.FundingSourceItem) (int64, error) {
	source := dto.NewPostFundingSource(item)

	var id int64
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		id, err = uc.projectRepo.InsertFundingSource(txCtx, projectID, source)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to insert funding source", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	uc.invalidate(ctx, projectID)

	return id, nil
}

// DeleteFundingSourceByID removes a single funding source row.
func (uc *ProjectUseCase) DeleteFundingSourceByID(ctx context.Context, projectID, fundingSourceID int64) error {
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return uc.projectRepo.DeleteFundingSourceByID(txCtx, projectID, fundingSourceID)
	})
	if err != nil {
		uc.logger.Error("Failed to delete funding source",
			zap.Int64("project_id", projectID),
			zap.Int64("funding_source_id", fundingSourceID),
			zap.Error(err),
		)
		return err
	}

	uc.invalidate(ctx, projectID)

	return nil
}

func (uc *ProjectUseCase) invalidate(ctx context.Context, projectID int64) {
	if err := uc.cacheRepo.InvalidateProject(ctx, projectID); err != nil {
		uc.logger.Warn("Failed to invalidate project cache", zap.Int64("project_id", projectID), zap.Error(err))
	}
}

func (uc *ProjectUseCase) publishEvent(ctx context.Context, eventType string, projectID int64) {
	event := domain.ProjectEvent{Type: eventType, ProjectID: projectID}
	if err := uc.streamRepo.PublishProjectEvent(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish project event",
			zap.String("type", eventType),
			zap.Int64("project_id", projectID),
			zap.Error(err),
		)
	}
}
