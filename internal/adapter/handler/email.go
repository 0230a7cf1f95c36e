package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/email"
)

// Email handles email draft HTTP requests
type Email struct {
	emailService *email.Service
	logger       *zap.Logger
}

// NewEmail creates a new email handler
func NewEmail(emailService *email.Service, logger *zap.Logger) *Email {
	return &Email{
		emailService: emailService,
		logger:       logger,
	}
}

// Create handles POST /emails
// @Summary      Compose an email draft
// @Tags         Emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateDraftRequest true "Draft payload"
// @Success      201 {object} entities.EmailDraft
// @Failure      404 {object} map[string]interface{}
// @Router       /emails [post]
func (h *Email) Create(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.CreateDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	draft, err := h.emailService.Create(c.Request().Context(), userID, email.CreateInput{
		MeetingID:    req.MeetingID,
		ActionItemID: req.ActionItemID,
		Subject:      req.Subject,
		Body:         req.Body,
		Recipients:   req.Recipients,
		CC:           req.CC,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, draft)
}

// ListByMeeting handles GET /meetings/:id/emails
// @Summary      List email drafts for a meeting
// @Tags         Emails
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {array} entities.EmailDraft
// @Router       /meetings/{id}/emails [get]
func (h *Email) ListByMeeting(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	drafts, err := h.emailService.ListByMeeting(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, drafts)
}

// Update handles PATCH /emails/:id
// @Summary      Edit an unsent draft
// @Tags         Emails
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Draft ID"
// @Param        request body dto.UpdateDraftRequest true "Fields to update"
// @Success      200 {object} entities.EmailDraft
// @Failure      400 {object} map[string]interface{}
// @Router       /emails/{id} [patch]
func (h *Email) Update(c echo.Context) error {
	if _, err := authedUser(c); err != nil {
		return handleError(c, h.logger, err)
	}
	draftID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.UpdateDraftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	updated, err := h.emailService.Update(c.Request().Context(), draftID, email.UpdateInput{
		Subject:    req.Subject,
		Body:       req.Body,
		Recipients: req.Recipients,
		CC:         req.CC,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Send handles POST /emails/:id/send
// @Summary      Send a draft
// @Tags         Emails
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Draft ID"
// @Success      200 {object} entities.EmailDraft
// @Failure      400 {object} map[string]interface{}
// @Router       /emails/{id}/send [post]
func (h *Email) Send(c echo.Context) error {
	if _, err := authedUser(c); err != nil {
		return handleError(c, h.logger, err)
	}
	draftID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	sent, err := h.emailService.Send(c.Request().Context(), draftID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, sent)
}

// Delete handles DELETE /emails/:id
// @Summary      Delete an unsent draft
// @Tags         Emails
// @Security     BearerAuth
// @Param        id path string true "Draft ID"
// @Success      204
// @Router       /emails/{id} [delete]
func (h *Email) Delete(c echo.Context) error {
	if _, err := authedUser(c); err != nil {
		return handleError(c, h.logger, err)
	}
	draftID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.emailService.Delete(c.Request().Context(), draftID); err != nil {
		return handleError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
