package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	"github.com/restoration-tracker/internal/pkg/errors"
	"go.uber.org/zap"
)

type participationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewParticipationRepository(db *DB) repository.ParticipationRepository {
	return &participationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *participationRepository) GetProjectParticipants(ctx context.Context, projectID int64) ([]*domain.Participant, error) {
	query := `
		SELECT
			pp.project_participation_id, pp.project_id, pp.system_user_id,
			pp.project_role_id, pr.name AS project_role_name,
			su.user_identifier
		FROM project_participation pp
		JOIN project_role pr ON pr.project_role_id = pp.project_role_id
		JOIN system_user su ON su.system_user_id = pp.system_user_id
		WHERE pp.project_id = $1
		ORDER BY pp.project_participation_id
	`

	var participants []*domain.Participant
	if err := sqlx.SelectContext(ctx, r.db.Querier(ctx), &participants, query, projectID); err != nil {
		r.logger.Error("Failed to get project participants", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return participants, nil
}

func (r *participationRepository) GetParticipant(ctx context.Context, projectID, systemUserID int64) (*domain.Participant, error) {
	query := `
		SELECT
			pp.project_participation_id, pp.project_id, pp.system_user_id,
			pp.project_role_id, pr.name AS project_role_name,
			su.user_identifier
		FROM project_participation pp
		JOIN project_role pr ON pr.project_role_id = pp.project_role_id
		JOIN system_user su ON su.system_user_id = pp.system_user_id
		WHERE pp.project_id = $1
		  AND pp.system_user_id = $2
	`

	var participant domain.Participant
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &participant, query, projectID, systemUserID)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("get project participant")
	}
	if err != nil {
		r.logger.Error("Failed to get project participant",
			zap.Int64("project_id", projectID),
			zap.Int64("system_user_id", systemUserID),
			zap.Error(err),
		)
		return nil, err
	}

	return &participant, nil
}

func (r *participationRepository) GetParticipantByID(ctx context.Context, participationID int64) (*domain.Participant, error) {
	query := `
		SELECT
			pp.project_participation_id, pp.project_id, pp.system_user_id,
			pp.project_role_id, pr.name AS project_role_name,
			su.user_identifier
		FROM project_participation pp
		JOIN project_role pr ON pr.project_role_id = pp.project_role_id
		JOIN system_user su ON su.system_user_id = pp.system_user_id
		WHERE pp.project_participation_id = $1
	`

	var participant domain.Participant
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &participant, query, participationID)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("get project participant")
	}
	if err != nil {
		r.logger.Error("Failed to get project participant", zap.Int64("participation_id", participationID), zap.Error(err))
		return nil, err
	}

	return &participant, nil
}

func (r *participationRepository) InsertParticipant(ctx context.Context, projectID, systemUserID, projectRoleID int64) (int64, error) {
	query := `
		INSERT INTO project_participation (project_id, system_user_id, project_role_id)
		VALUES ($1, $2, $3)
		RETURNING project_participation_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, projectID, systemUserID, projectRoleID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, errors.NotFound("insert project participant")
	}
	if err != nil {
		r.logger.Error("Failed to insert project participant",
			zap.Int64("project_id", projectID),
			zap.Int64("system_user_id", systemUserID),
			zap.Error(err),
		)
		return 0, err
	}

	return id, nil
}

func (r *participationRepository) DeleteParticipant(ctx context.Context, participationID int64) error {
	query := `
		DELETE FROM project_participation
		WHERE project_participation_id = $1
		RETURNING project_participation_id
	`

	var id int64
	err := r.db.Querier(ctx).QueryRowxContext(ctx, query, participationID).Scan(&id)

	if err == sql.ErrNoRows {
		return errors.NotFound("delete project participant")
	}
	if err != nil {
		r.logger.Error("Failed to delete project participant", zap.Int64("participation_id", participationID), zap.Error(err))
		return err
	}

	return nil
}

func (r *participationRepository) DeleteProjectParticipants(ctx context.Context, projectID int64) error {
	query := `DELETE FROM project_participation WHERE project_id = $1`

	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, projectID); err != nil {
		r.logger.Error("Failed to delete project participants", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

func (r *participationRepository) CountProjectLeads(ctx context.Context, projectID, excludeParticipationID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM project_participation pp
		JOIN project_role pr ON pr.project_role_id = pp.project_role_id
		WHERE pp.project_id = $1
		  AND pr.name = $2
		  AND pp.project_participation_id <> $3
	`

	var count int
	err := sqlx.GetContext(ctx, r.db.Querier(ctx), &count, query, projectID, domain.ProjectRoleLead, excludeParticipationID)
	if err != nil {
		r.logger.Error("Failed to count project leads", zap.Int64("project_id", projectID), zap.Error(err))
		return 0, err
	}

	return count, nil
}
