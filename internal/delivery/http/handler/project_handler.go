package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/restoration-tracker/internal/delivery/http/middleware"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/pkg/utils"
	"github.com/restoration-tracker/internal/pkg/validator"
	"github.com/restoration-tracker/internal/usecase"
	"github.com/restoration-tracker/internal/usecase/dto"
	"go.uber.org/zap"
)

// ProjectHandler serves the authenticated project CRUD surface.
type ProjectHandler struct {
	projectUC *usecase.ProjectUseCase
	logger    *zap.Logger
}

func NewProjectHandler(projectUC *usecase.ProjectUseCase, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUC: projectUC,
		logger:    logger,
	}
}

func parseProjectID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("projectId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrMissingProjectID
	}
	return id, nil
}

// CreateProject godoc
// @Summary Create a restoration project or plan
// @Description Creates the project root row plus every submitted section and makes the caller the Project Lead.
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.PostProjectRequest true "Project sections"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectIDResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req dto.PostProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrMissingRequestBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.projectUC.CreateProject(c.Context(), req, middleware.SystemUserIDFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ProjectIDResponse{ID: id}, nil)
}

// ListProjects godoc
// @Summary List projects and plans
// @Description Lists project root rows, optionally filtered by keyword, region and state.
// @Tags Project
// @Produce json
// @Param keyword query string false "Keyword match on project name"
// @Param region query int false "Region object id"
// @Param state query string false "Comma separated state codes"
// @Param is_project query bool false "true for projects, false for plans"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.GetProjectData}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	req := dto.ListProjectsRequest{
		Keyword: c.Query("keyword"),
		Region:  int64(c.QueryInt("region")),
	}

	if raw := c.Query("state"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			code, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return utils.SendError(c, apperrors.ErrInvalidRequest)
			}
			req.StateCodes = append(req.StateCodes, code)
		}
	}
	if raw := c.Query("is_project"); raw != "" {
		isProject, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, apperrors.ErrInvalidRequest)
		}
		req.IsProject = &isProject
	}

	projects, err := h.projectUC.ListProjects(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, projects, &utils.Meta{Total: len(projects)})
}

// GetProject godoc
// @Summary Get a project aggregate
// @Description Returns the project root row plus every child section.
// @Tags Project
// @Produce json
// @Param projectId path int true "Project id"
// @Success 200 {object} utils.SuccessResponse{data=dto.GetProjectResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.projectUC.GetProjectByID(c.Context(), projectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// UpdateProject godoc
// @Summary Update a project aggregate
// @Description Replaces every submitted section wholesale; absent sections are untouched.
// @Tags Project
// @Accept json
// @Produce json
// @Param projectId path int true "Project id"
// @Param request body dto.PutProjectRequest true "Project sections"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectIDResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PutProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrMissingRequestBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.projectUC.UpdateProject(c.Context(), projectID, req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ProjectIDResponse{ID: projectID}, nil)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Removes the project and all of its child rows.
// @Tags Project
// @Produce json
// @Param projectId path int true "Project id"
// @Success 200 {object} utils.SuccessResponse{data=bool}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.projectUC.DeleteProject(c.Context(), projectID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, true, nil)
}

// UpdateStateCode godoc
// @Summary Change the project workflow state
// @Description Moves the project to Planning or Archived. Other target states are rejected.
// @Tags Project
// @Produce json
// @Param projectId path int true "Project id"
// @Param stateCode path int true "Target state code"
// @Success 200 {object} utils.SuccessResponse{data=bool}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/state/{stateCode} [put]
func (h *ProjectHandler) UpdateStateCode(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	stateCode, err := strconv.Atoi(c.Params("stateCode"))
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidStateCode)
	}

	if err := h.projectUC.UpdateStateCode(c.Context(), projectID, stateCode); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, true, nil)
}

// InsertFundingSource godoc
// @Summary Add a funding source
// @Description Adds one funding source row to the project without touching the rest of the aggregate.
// @Tags Funding
// @Accept json
// @Produce json
// @Param projectId path int true "Project id"
// @Param request body dto.FundingSourceItem true "Funding source"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectIDResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/funding-sources [post]
func (h *ProjectHandler) InsertFundingSource(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var item dto.FundingSourceItem
	if err := c.BodyParser(&item); err != nil {
		return utils.SendError(c, apperrors.ErrMissingRequestBody)
	}

	id, err := h.projectUC.InsertFundingSource(c.Context(), projectID, &item)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ProjectIDResponse{ID: id}, nil)
}

// DeleteFundingSource godoc
// @Summary Remove a funding source
// @Tags Funding
// @Produce json
// @Param projectId path int true "Project id"
// @Param pfsId path int true "Funding source id"
// @Success 200 {object} utils.SuccessResponse{data=bool}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/project/{projectId}/funding-sources/{pfsId} [delete]
func (h *ProjectHandler) DeleteFundingSource(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	pfsID, err := strconv.ParseInt(c.Params("pfsId"), 10, 64)
	if err != nil || pfsID <= 0 {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := h.projectUC.DeleteFundingSourceByID(c.Context(), projectID, pfsID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, true, nil)
}
