package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	"github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
)

type projectRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewProjectRepository(db *DB) repository.ProjectRepository {
	return &projectRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *projectRepository) InsertProject(ctx context.Context, data dto.PostProjectData) (int64, error) {
	query := `
		INSERT INTO project (
			name, is_project, state_code, start_date, end_date,
			actual_start_date, actual_end_date, people_involved,
			is_project_part_public_plan, revision_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
		RETURNING project_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		data.Name, data.IsProject, data.StateCode,
		data.StartDate, data.EndDate,
		data.ActualStartDate, data.ActualEndDate,
		data.PeopleInvolved, data.IsPartOfPublicPlan,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project")
	}
	if err != nil {
		r.logger.Error("Failed to insert project", zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, projectID int64, data dto.PutProjectData) error {
	query := `
		UPDATE project
		SET
			name = $1,
			is_project = $2,
			start_date = $3,
			end_date = $4,
			actual_start_date = $5,
			actual_end_date = $6,
			people_involved = $7,
			is_project_part_public_plan = $8,
			revision_count = revision_count + 1
		WHERE project_id = $9
		  AND revision_count = $10
		RETURNING project_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		data.Name, data.IsProject,
		data.StartDate, data.EndDate,
		data.ActualStartDate, data.ActualEndDate,
		data.PeopleInvolved, data.IsPartOfPublicPlan,
		projectID, data.RevisionCount,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("update project")
	}
	if err != nil {
		r.logger.Error("Failed to update project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) UpdateProjectFocus(ctx context.Context, projectID int64, data dto.PostFocusData) error {
	query := `
		UPDATE project
		SET
			is_healing_land = $1,
			is_healing_people = $2,
			is_land_initiative = $3,
			is_cultural_initiative = $4,
			people_involved = $5
		WHERE project_id = $6
		RETURNING project_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		data.IsHealingLand, data.IsHealingPeople,
		data.IsLandInitiative, data.IsCulturalInitiative,
		data.PeopleInvolved, projectID,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("update project focus data")
	}
	if err != nil {
		r.logger.Error("Failed to update project focus data", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) UpdateProjectRestPlan(ctx context.Context, projectID int64, data dto.PostRestPlanData) error {
	query := `
		UPDATE project
		SET is_project_part_public_plan = $1
		WHERE project_id = $2
		RETURNING project_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		data.IsProjectPartPublicPlan, projectID,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("update project restoration plan data")
	}
	if err != nil {
		r.logger.Error("Failed to update project restoration plan data", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) UpdateStateCode(ctx context.Context, projectID int64, stateCode int) error {
	query := `
		UPDATE project
		SET state_code = $1
		WHERE project_id = $2
		RETURNING project_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, stateCode, projectID).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("update project state")
	}
	if err != nil {
		r.logger.Error("Failed to update project state",
			zap.Int64("project_id", projectID),
			zap.Int("state_code", stateCode),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	query := `
		SELECT
			project_id, name, is_project, state_code,
			to_char(start_date, 'YYYY-MM-DD') AS start_date,
			to_char(end_date, 'YYYY-MM-DD') AS end_date,
			to_char(actual_start_date, 'YYYY-MM-DD') AS actual_start_date,
			to_char(actual_end_date, 'YYYY-MM-DD') AS actual_end_date,
			is_healing_land, is_healing_people, is_land_initiative, is_cultural_initiative,
			people_involved, is_project_part_public_plan,
			to_char(publish_timestamp, 'YYYY-MM-DD"T"HH24:MI:SS') AS publish_timestamp,
			revision_count
		FROM project
		WHERE project_id = $1
	`

	var project domain.Project
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &project, query, projectID)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("get project")
	}
	if err != nil {
		r.logger.Error("Failed to get project", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	query := `
		SELECT DISTINCT
			p.project_id, p.name, p.is_project, p.state_code,
			to_char(p.start_date, 'YYYY-MM-DD') AS start_date,
			to_char(p.end_date, 'YYYY-MM-DD') AS end_date,
			to_char(p.actual_start_date, 'YYYY-MM-DD') AS actual_start_date,
			to_char(p.actual_end_date, 'YYYY-MM-DD') AS actual_end_date,
			p.is_healing_land, p.is_healing_people, p.is_land_initiative, p.is_cultural_initiative,
			p.people_involved, p.is_project_part_public_plan,
			to_char(p.publish_timestamp, 'YYYY-MM-DD"T"HH24:MI:SS') AS publish_timestamp,
			p.revision_count
		FROM project p
		LEFT JOIN nrm_region r ON r.project_id = p.project_id
		WHERE 1 = 1
	`

	args := []interface{}{}
	argIdx := 1

	if filter.Keyword != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Keyword+"%")
		argIdx++
	}
	if filter.RegionObjectID != 0 {
		query += fmt.Sprintf(" AND r.objectid = $%d", argIdx)
		args = append(args, filter.RegionObjectID)
		argIdx++
	}
	if len(filter.StateCodes) > 0 {
		query += fmt.Sprintf(" AND p.state_code = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.StateCodes))
		argIdx++
	}
	if filter.IsProject != nil {
		query += fmt.Sprintf(" AND p.is_project = $%d", argIdx)
		args = append(args, *filter.IsProject)
		argIdx++
	}

	query += " ORDER BY p.project_id"

	var projects []*domain.Project
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &projects, query, args...); err != nil {
		r.logger.Error("Failed to list projects", zap.Error(err))
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) InsertContact(ctx context.Context, projectID int64, contact dto.PostContactItem) (int64, error) {
	query := `
		INSERT INTO project_contact (
			project_id, first_name, last_name, email_address, organization,
			is_public, is_primary, is_first_nation, phone_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING project_contact_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		projectID, contact.FirstName, contact.LastName,
		contact.EmailAddress, contact.Organization,
		dto.BoolToYN(contact.IsPublic), dto.BoolToYN(contact.IsPrimary),
		contact.IsFirstNation, contact.PhoneNumber,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project contact")
	}
	if err != nil {
		r.logger.Error("Failed to insert project contact", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteContacts(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_contact WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project contacts", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetContacts(ctx context.Context, projectID int64) ([]domain.Contact, error) {
	query := `
		SELECT
			project_contact_id, project_id, first_name, last_name,
			email_address, organization, is_public, is_primary,
			is_first_nation, phone_number
		FROM project_contact
		WHERE project_id = $1
		ORDER BY project_contact_id
	`

	var contacts []domain.Contact
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &contacts, query, projectID); err != nil {
		r.logger.Error("Failed to get project contacts", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return contacts, nil
}

func (r *projectRepository) InsertFundingSource(ctx context.Context, projectID int64, source dto.PostFundingSource) (int64, error) {
	query := `
		INSERT INTO project_funding_source (
			project_id, organization_name, funding_project_id, funding_amount,
			funding_start_date, funding_end_date, is_public, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING project_funding_source_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		projectID, source.OrganizationName, source.FundingProjectID,
		source.FundingAmount, source.StartDate, source.EndDate,
		dto.BoolToYN(source.IsPublic), source.Description,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project funding source")
	}
	if err != nil {
		r.logger.Error("Failed to insert project funding source", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteFundingSources(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_funding_source WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project funding sources", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) DeleteFundingSourceByID(ctx context.Context, projectID, fundingSourceID int64) error {
	query := `
		DELETE FROM project_funding_source
		WHERE project_id = $1
		  AND project_funding_source_id = $2
		RETURNING project_funding_source_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, fundingSourceID).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("delete project funding source")
	}
	if err != nil {
		r.logger.Error("Failed to delete project funding source",
			zap.Int64("project_id", projectID),
			zap.Int64("funding_source_id", fundingSourceID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *projectRepository) GetFundingSources(ctx context.Context, projectID int64) ([]domain.FundingSource, error) {
	query := `
		SELECT
			project_funding_source_id, project_id, organization_name,
			funding_project_id, funding_amount,
			to_char(funding_start_date, 'YYYY-MM-DD') AS funding_start_date,
			to_char(funding_end_date, 'YYYY-MM-DD') AS funding_end_date,
			is_public, description
		FROM project_funding_source
		WHERE project_id = $1
		ORDER BY project_funding_source_id
	`

	var sources []domain.FundingSource
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &sources, query, projectID); err != nil {
		r.logger.Error("Failed to get project funding sources", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return sources, nil
}

func (r *projectRepository) InsertClassificationDetail(ctx context.Context, projectID int64, detail dto.IUCNItem) (int64, error) {
	query := `
		INSERT INTO project_iucn_action_classification (
			project_id,
			iucn_conservation_action_level_1_classification_id,
			iucn_conservation_action_level_2_subclassification_id,
			iucn_conservation_action_level_3_subclassification_id
		)
		VALUES ($1, $2, $3, $4)
		RETURNING project_iucn_action_classification_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		projectID, detail.Classification, detail.SubClassification1, detail.SubClassification2,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project IUCN classification")
	}
	if err != nil {
		r.logger.Error("Failed to insert project IUCN classification", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteClassificationDetails(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_iucn_action_classification WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project IUCN classifications", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetClassificationDetails(ctx context.Context, projectID int64) ([]domain.IUCNClassification, error) {
	query := `
		SELECT
			project_iucn_action_classification_id, project_id,
			iucn_conservation_action_level_1_classification_id,
			iucn_conservation_action_level_2_subclassification_id,
			iucn_conservation_action_level_3_subclassification_id
		FROM project_iucn_action_classification
		WHERE project_id = $1
		ORDER BY project_iucn_action_classification_id
	`

	var details []domain.IUCNClassification
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &details, query, projectID); err != nil {
		r.logger.Error("Failed to get project IUCN classifications", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return details, nil
}

func (r *projectRepository) InsertPartnership(ctx context.Context, projectID int64, partnership string) (int64, error) {
	query := `
		INSERT INTO project_partnership (project_id, partnership)
		VALUES ($1, $2)
		RETURNING project_partnership_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, partnership).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project partnership")
	}
	if err != nil {
		r.logger.Error("Failed to insert project partnership", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeletePartnerships(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_partnership WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project partnerships", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetPartnerships(ctx context.Context, projectID int64) ([]domain.Partnership, error) {
	query := `
		SELECT project_partnership_id, project_id, partnership
		FROM project_partnership
		WHERE project_id = $1
		ORDER BY project_partnership_id
	`

	var partnerships []domain.Partnership
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &partnerships, query, projectID); err != nil {
		r.logger.Error("Failed to get project partnerships", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return partnerships, nil
}

func (r *projectRepository) InsertObjective(ctx context.Context, projectID int64, objective string) (int64, error) {
	query := `
		INSERT INTO project_objective (project_id, objective)
		VALUES ($1, $2)
		RETURNING project_objective_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, objective).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project objective")
	}
	if err != nil {
		r.logger.Error("Failed to insert project objective", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteObjectives(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_objective WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project objectives", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetObjectives(ctx context.Context, projectID int64) ([]domain.Objective, error) {
	query := `
		SELECT project_objective_id, project_id, objective
		FROM project_objective
		WHERE project_id = $1
		ORDER BY project_objective_id
	`

	var objectives []domain.Objective
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &objectives, query, projectID); err != nil {
		r.logger.Error("Failed to get project objectives", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return objectives, nil
}

func (r *projectRepository) InsertProjectLocation(ctx context.Context, projectID int64, data dto.PostLocationData) (int64, error) {
	query := `
		INSERT INTO project_location (
			project_id, geojson, number_sites, size_ha,
			is_within_overlapping, conservation_areas
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING project_location_id
	`

	areas, err := json.Marshal(data.ConservationAreas)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal conservation areas: %w", err)
	}

	var id int64
	err = r.db.Querier(ctx).QueryRowxContext(ctx, query,
		projectID, []byte(data.Geometry), data.NumberSites,
		data.SizeHa, data.IsWithinOverlapping, areas,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project boundary data")
	}
	if err != nil {
		r.logger.Error("Failed to insert project boundary data", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteProjectLocation(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_location WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project boundary data", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetProjectLocation(ctx context.Context, projectID int64) (*domain.Location, error) {
	query := `
		SELECT
			project_location_id, project_id, geojson, number_sites,
			size_ha, is_within_overlapping, conservation_areas
		FROM project_location
		WHERE project_id = $1
	`

	var location domain.Location
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &location, query, projectID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get project boundary data", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return &location, nil
}

func (r *projectRepository) InsertProjectRegion(ctx context.Context, projectID, objectID int64) (int64, error) {
	query := `
		INSERT INTO nrm_region (project_id, objectid)
		VALUES ($1, $2)
		RETURNING nrm_region_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, objectID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project region")
	}
	if err != nil {
		r.logger.Error("Failed to insert project region", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteProjectRegion(ctx context.Context, projectID int64) error {
	query := `DELETE FROM nrm_region WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project region", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetProjectRegion(ctx context.Context, projectID int64) (*domain.Region, error) {
	query := `
		SELECT nrm_region_id, project_id, objectid
		FROM nrm_region
		WHERE project_id = $1
	`

	var region domain.Region
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &region, query, projectID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get project region", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return &region, nil
}

func (r *projectRepository) InsertProjectSpecies(ctx context.Context, projectID, tsn int64) (int64, error) {
	query := `
		INSERT INTO project_species (project_id, itis_tsn)
		VALUES ($1, $2)
		RETURNING project_species_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, tsn).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project species")
	}
	if err != nil {
		r.logger.Error("Failed to insert project species", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeleteProjectSpecies(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_species WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project species", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetProjectSpecies(ctx context.Context, projectID int64) ([]domain.Species, error) {
	query := `
		SELECT project_species_id, project_id, itis_tsn
		FROM project_species
		WHERE project_id = $1
		ORDER BY project_species_id
	`

	var species []domain.Species
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &species, query, projectID); err != nil {
		r.logger.Error("Failed to get project species", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return species, nil
}

func (r *projectRepository) InsertPermit(ctx context.Context, projectID int64, permit dto.AuthorizationItem) (int64, error) {
	query := `
		INSERT INTO permit (project_id, number, type)
		VALUES ($1, $2, $3)
		RETURNING permit_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query,
		projectID, permit.AuthorizationRef, permit.AuthorizationType,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project permit")
	}
	if err != nil {
		r.logger.Error("Failed to insert project permit", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) DeletePermits(ctx context.Context, projectID int64) error {
	query := `DELETE FROM permit WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project permits", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *projectRepository) GetPermits(ctx context.Context, projectID int64) ([]domain.Permit, error) {
	query := `
		SELECT permit_id, project_id, number, type
		FROM permit
		WHERE project_id = $1
		ORDER BY permit_id
	`

	var permits []domain.Permit
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &permits, query, projectID); err != nil {
		r.logger.Error("Failed to get project permits", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return permits, nil
}
