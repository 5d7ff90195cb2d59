package repository

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
)

// ParticipationRepository manages the user-to-project role links.
type ParticipationRepository interface {
	GetProjectParticipants(ctx context.Context, projectID int64) ([]*domain.Participant, error)
	GetParticipant(ctx context.Context, projectID, systemUserID int64) (*domain.Participant, error)
	GetParticipantByID(ctx context.Context, participationID int64) (*domain.Participant, error)
	InsertParticipant(ctx context.Context, projectID, systemUserID, projectRoleID int64) (int64, error)
	DeleteParticipant(ctx context.Context, participationID int64) error
	DeleteProjectParticipants(ctx context.Context, projectID int64) error
	CountProjectLeads(ctx context.Context, projectID, excludeParticipationID int64) (int, error)
}
