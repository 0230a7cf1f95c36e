package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/dto"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/pipeline"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	meetingService  *meeting.Service
	pipelineService *pipeline.Service
	logger          *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service, pipelineService *pipeline.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService:  meetingService,
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// Create handles POST /meetings
// @Summary      Create a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateMeetingRequest true "Meeting payload"
// @Success      201 {object} entities.Meeting
// @Failure      400 {object} map[string]interface{}
// @Router       /meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	meetingDate, err := time.Parse("2006-01-02", req.MeetingDate)
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrInvalidArgument("meeting_date must be YYYY-MM-DD"))
	}

	created, err := h.meetingService.Create(c.Request().Context(), userID, meeting.CreateInput{
		Title:       req.Title,
		ProjectID:   req.ProjectID,
		MeetingDate: meetingDate,
		MeetingTime: req.MeetingTime,
		MeetingType: entities.MeetingType(req.MeetingType),
		Attendees:   req.Attendees,
		Source:      req.Source,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /meetings
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Meeting
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	meetings, err := h.meetingService.List(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, meetings)
}

// Get handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} entities.Meeting
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	found, err := h.meetingService.Get(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Detail handles GET /meetings/:id/detail
// @Summary      Get a meeting with transcript and extracted intelligence
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} meeting.Detail
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id}/detail [get]
func (h *Meeting) Detail(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	detail, err := h.meetingService.GetDetail(c.Request().Context(), meetingID, userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update handles PATCH /meetings/:id
// @Summary      Update a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        request body dto.UpdateMeetingRequest true "Fields to update"
// @Success      200 {object} entities.Meeting
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id} [patch]
func (h *Meeting) Update(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req dto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	input := meeting.UpdateInput{
		Title:       req.Title,
		MeetingTime: req.MeetingTime,
		Attendees:   req.Attendees,
		Summary:     req.Summary,
	}
	if req.MeetingDate != nil {
		d, err := time.Parse("2006-01-02", *req.MeetingDate)
		if err != nil {
			return handleError(c, h.logger, apperrors.ErrInvalidArgument("meeting_date must be YYYY-MM-DD"))
		}
		input.MeetingDate = &d
	}
	if req.MeetingType != nil {
		mt := entities.MeetingType(*req.MeetingType)
		input.MeetingType = &mt
	}

	updated, err := h.meetingService.Update(c.Request().Context(), meetingID, userID, input)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Tags         Meetings
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      204
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), meetingID, userID); err != nil {
		return handleError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadAudio handles POST /meetings/:id/audio
// @Summary      Upload meeting audio
// @Description  Accepts a .wav or .mp3 recording up to 100MB
// @Tags         Meetings
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Param        file formData file true "Audio file"
// @Success      200 {object} dto.UploadAudioResponse
// @Failure      400 {object} map[string]interface{}
// @Router       /meetings/{id}/audio [post]
func (h *Meeting) UploadAudio(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrInvalidArgument("file is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return handleError(c, h.logger, apperrors.ErrInternal(err))
	}
	defer src.Close()

	updated, err := h.meetingService.UploadAudio(
		c.Request().Context(), meetingID, userID, fileHeader.Filename, fileHeader.Size, src,
	)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.UploadAudioResponse{
		Message:       "Audio uploaded successfully",
		AudioFilePath: updated.AudioFilePath,
		AudioFileURL:  updated.AudioFileURL,
	})
}

// Process handles POST /meetings/:id/process
// @Summary      Process meeting audio
// @Description  Transcribes the uploaded audio and extracts decisions, action items, follow-ups, and problem statements
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Meeting ID"
// @Success      200 {object} dto.ProcessMeetingResponse
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /meetings/{id}/process [post]
func (h *Meeting) Process(c echo.Context) error {
	userID, err := authedUser(c)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	// Ownership check before touching the pipeline
	if _, err := h.meetingService.Get(c.Request().Context(), meetingID, userID); err != nil {
		return handleError(c, h.logger, err)
	}

	transcriptID, err := h.pipelineService.ProcessMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	h.meetingService.InvalidateDetail(c.Request().Context(), meetingID)

	return c.JSON(http.StatusOK, dto.ProcessMeetingResponse{
		Message:      "Meeting processed successfully",
		MeetingID:    meetingID,
		TranscriptID: transcriptID,
	})
}
