package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restoration-tracker/internal/pkg/utils"
	"github.com/restoration-tracker/internal/usecase"
	"go.uber.org/zap"
)

// PublicHandler serves the unauthenticated read endpoints.
type PublicHandler struct {
	publicUC *usecase.PublicUseCase
	logger   *zap.Logger
}

func NewPublicHandler(publicUC *usecase.PublicUseCase, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		publicUC: publicUC,
		logger:   logger,
	}
}

// GetPublicProject godoc
// @Summary Get the public view of a project
// @Description Returns the project aggregate with non-public contacts and funding sources removed. Served from cache when warm.
// @Tags Public
// @Produce json
// @Param projectId path int true "Project id"
// @Success 200 {object} utils.SuccessResponse{data=dto.GetProjectResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/public/project/{projectId} [get]
func (h *PublicHandler) GetPublicProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.publicUC.GetPublicProject(c.Context(), projectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// ListPlans godoc
// @Summary List published restoration plans
// @Tags Public
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.GetProjectData}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/public/plans [get]
func (h *PublicHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.publicUC.ListPlans(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plans, &utils.Meta{Total: len(plans)})
}
