package usecase

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
)

// ParticipantUseCase manages the team roster of a project. The one invariant
// it enforces is that a project can never be left without a Project Lead.
type ParticipantUseCase struct {
	tx            repository.TransactionManager
	participation repository.ParticipationRepository
	logger        *zap.Logger
}

func NewParticipantUseCase(
	tx repository.TransactionManager,
	participation repository.ParticipationRepository,
	logger *zap.Logger,
) *ParticipantUseCase {
	return &ParticipantUseCase{
		tx:            tx,
		participation: participation,
		logger:        logger,
	}
}

func (uc *ParticipantUseCase) GetProjectParticipants(ctx context.Context, projectID int64) ([]dto.GetParticipantData, error) {
	rows, err := uc.participation.GetProjectParticipants(ctx, projectID)
	if err != nil {
		uc.logger.Error("Failed to get project participants", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}

	participants := make([]dto.GetParticipantData, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, dto.GetParticipantData{
			ProjectParticipationID: row.ID,
			ProjectID:              row.ProjectID,
			SystemUserID:           row.SystemUserID,
			ProjectRoleID:          row.ProjectRoleID,
			ProjectRoleName:        row.ProjectRoleName,
			UserIdentifier:         row.UserIdentifier,
		})
	}
	return participants, nil
}

// GetParticipant returns the membership row for a user on a project, for
// role checks. Non-members surface as not found.
func (uc *ParticipantUseCase) GetParticipant(ctx context.Context, projectID, systemUserID int64) (*domain.Participant, error) {
	return uc.participation.GetParticipant(ctx, projectID, systemUserID)
}

// AddProjectParticipant adds a system user to the project team with the
// given role.
func (uc *ParticipantUseCase) AddProjectParticipant(ctx context.Context, projectID int64, req dto.AddParticipantRequest) (int64, error) {
	var participationID int64
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		participationID, err = uc.participation.InsertParticipant(txCtx, projectID, req.SystemUserID, req.ProjectRoleID)
		return err
	})
	if err != nil {
		uc.logger.Error("Failed to add project participant",
			zap.Int64("project_id", projectID),
			zap.Int64("system_user_id", req.SystemUserID),
			zap.Error(err),
		)
		return 0, err
	}
	return participationID, nil
}

// DeleteProjectParticipant removes a team member. Removing the only Project
// Lead is refused; another lead must exist first.
func (uc *ParticipantUseCase) DeleteProjectParticipant(ctx context.Context, projectID, participationID int64) error {
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		participant, err := uc.participation.GetParticipantByID(txCtx, participationID)
		if err != nil {
			return err
		}
		if participant.ProjectID != projectID {
			return apperrors.NotFound("delete project participant")
		}

		if participant.ProjectRoleID == domain.ProjectRoleLeadID {
			leads, err := uc.participation.CountProjectLeads(txCtx, projectID, participationID)
			if err != nil {
				return err
			}
			if leads == 0 {
				return apperrors.ErrLastProjectLead
			}
		}

		return uc.participation.DeleteParticipant(txCtx, participationID)
	})
	if err != nil {
		if err != apperrors.ErrLastProjectLead {
			uc.logger.Error("Failed to delete project participant",
				zap.Int64("project_id", projectID),
				zap.Int64("participation_id", participationID),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}
