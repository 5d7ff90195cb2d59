package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/pkg/utils"
	"github.com/restoration-tracker/internal/pkg/validator"
	"github.com/restoration-tracker/internal/usecase"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
)

// ParticipantHandler serves the project team roster endpoints.
type ParticipantHandler struct {
	participantUC *usecase.ParticipantUseCase
	logger        *zap.Logger
}

func NewParticipantHandler(participantUC *usecase.ParticipantUseCase, logger *zap.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		participantUC: participantUC,
		logger:        logger,
	}
}

// GetParticipants godoc
// @Summary List project participants
// @Tags Participant
// @Produce json
// @Param projectId path int true "Project id"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.GetParticipantData}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/participants [get]
func (h *ParticipantHandler) GetParticipants(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	participants, err := h.participantUC.GetProjectParticipants(c.Context(), projectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, participants, &utils.Meta{Total: len(participants)})
}

// AddParticipant godoc
// @Summary Add a project participant
// @Description Adds a system user to the project team with the given project role.
// @Tags Participant
// @Accept json
// @Produce json
// @Param projectId path int true "Project id"
// @Param request body dto.AddParticipantRequest true "Participant"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectIDResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/participants [post]
func (h *ParticipantHandler) AddParticipant(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrMissingRequestBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.participantUC.AddProjectParticipant(c.Context(), projectID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ProjectIDResponse{ID: id}, nil)
}

// DeleteParticipant godoc
// @Summary Remove a project participant
// @Description Removes a team member. The only remaining Project Lead cannot be removed.
// @Tags Participant
// @Produce json
// @Param projectId path int true "Project id"
// @Param projectParticipationId path int true "Participation id"
// @Success 200 {object} utils.SuccessResponse{data=bool}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/participants/{projectParticipationId} [delete]
func (h *ParticipantHandler) DeleteParticipant(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	participationID, err := strconv.ParseInt(c.Params("projectParticipationId"), 10, 64)
	if err != nil || participationID <= 0 {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := h.participantUC.DeleteProjectParticipant(c.Context(), projectID, participationID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, true, nil)
}
