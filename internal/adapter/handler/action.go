package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/action"
)

// Action handles action item workflow HTTP requests
type Action struct {
	actionService *action.Service
	logger        *zap.Logger
}

// NewAction creates a new action handler
func NewAction(actionService *action.Service, logger *zap.Logger) *Action {
	return &Action{
		actionService: actionService,
		logger:        logger,
	}
}

// ListByMeeting handles GET /meetings/:id/actions
// @Summary      List action items for a meeting
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {array} entities.ActionItem
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id}/actions [get]
func (h *Action) ListByMeeting(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	items, err := h.actionService.ListByMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PATCH /actions/:id
// @Summary      Edit an action item
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Action item ID"
// @Param        request body dto.UpdateActionRequest true "Fields to update"
// @Success      200 {object} entities.ActionItem
// @Failure      404 {object} map[string]interface{}
// @Router       /actions/{id} [patch]
func (h *Action) Update(c echo.Context) error {
	if _, err := authedUser(c); err != nil {
		return handleError(c, h.logger, err)
	}
	actionID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.UpdateActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	input := action.UpdateInput{
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return handleError(c, h.logger, apperrors.ErrInvalidArgument("due_date must be YYYY-MM-DD"))
		}
		input.DueDate = &d
	}
	if req.ActionType != nil {
		at := entities.ActionType(*req.ActionType)
		input.ActionType = &at
	}

	updated, err := h.actionService.Update(c.Request().Context(), actionID, input)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Approve handles POST /actions/:id/approve
// @Summary      Approve a pending action item
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Action item ID"
// @Success      200 {object} entities.ActionItem
// @Failure      400 {object} map[string]interface{}
// @Router       /actions/{id}/approve [post]
func (h *Action) Approve(c echo.Context) error {
	return h.workflow(c, h.actionService.Approve)
}

// Reject handles POST /actions/:id/reject
// @Summary      Reject an action item
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Action item ID"
// @Success      200 {object} entities.ActionItem
// @Router       /actions/{id}/reject [post]
func (h *Action) Reject(c echo.Context) error {
	return h.workflow(c, h.actionService.Reject)
}

// Complete handles POST /actions/:id/complete
// @Summary      Complete an action item
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Action item ID"
// @Success      200 {object} entities.ActionItem
// @Router       /actions/{id}/complete [post]
func (h *Action) Complete(c echo.Context) error {
	return h.workflow(c, h.actionService.Complete)
}

func (h *Action) workflow(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)) error {
	if _, err := authedUser(c); err != nil {
		return handleError(c, h.logger, err)
	}
	actionID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	item, err := fn(c.Request().Context(), actionID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, item)
}
