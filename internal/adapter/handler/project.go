package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/project"
)

// Project handles project HTTP requests
type Project struct {
	projectService *project.Service
	logger         *zap.Logger
}

// NewProject creates a new project handler
func NewProject(projectService *project.Service, logger *zap.Logger) *Project {
	return &Project{
		projectService: projectService,
		logger:         logger,
	}
}

// Create handles POST /projects
// @Summary      Create a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProjectRequest true "Project payload"
// @Success      201 {object} entities.Project
// @Router       /projects [post]
func (h *Project) Create(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	created, err := h.projectService.Create(c.Request().Context(), userID, project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /projects
// @Summary      List projects
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Project
// @Router       /projects [get]
func (h *Project) List(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	projects, err := h.projectService.List(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, projects)
}

// Update handles PATCH /projects/:id
// @Summary      Update a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body dto.UpdateProjectRequest true "Fields to update"
// @Success      200 {object} entities.Project
// @Failure      404 {object} map[string]interface{}
// @Router       /projects/{id} [patch]
func (h *Project) Update(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	updated, err := h.projectService.Update(c.Request().Context(), projectID, userID, project.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /projects/:id
// @Summary      Delete a project
// @Tags         Projects
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Router       /projects/{id} [delete]
func (h *Project) Delete(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	projectID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.projectService.Delete(c.Request().Context(), projectID, userID); err != nil {
		return handleError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
