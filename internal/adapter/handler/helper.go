package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/errors"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/http/middleware"
)

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// handleError centralizes error responses. AppErrors carry their own HTTP
// status; domain sentinels are mapped here so usecases stay transport-free.
func handleError(c echo.Context, logger *zap.Logger, err error) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = mapDomainError(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	})
}

func mapDomainError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, entities.ErrProjectNotFound):
		return errors.ErrNotFound("Project")
	case stdErrors.Is(err, entities.ErrActionNotFound):
		return errors.ErrNotFound("Action item")
	case stdErrors.Is(err, entities.ErrDraftNotFound):
		return errors.ErrNotFound("Email draft")
	case stdErrors.Is(err, entities.ErrDraftAlreadySent):
		return errors.ErrInvalidArgument("Draft has already been sent")
	case stdErrors.Is(err, entities.ErrUserAlreadyExists):
		return errors.ErrUserAlreadyExists("")
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrInvalidCredentials()
	default:
		return errors.ErrInternal(err)
	}
}

// bindAndValidate binds the request body and runs struct validation
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(v); err != nil {
		return errors.ErrInvalidPayload().WithDetail("validation", err.Error())
	}
	return nil
}

// pathUUID parses a UUID path parameter
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}

// authedUser extracts the authenticated user ID set by the auth middleware
func authedUser(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}
