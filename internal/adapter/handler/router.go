package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authMiddleware *middleware.AuthMiddleware
	authHandler    *Auth
	meetingHandler *Meeting
	projectHandler *Project
	actionHandler  *Action
	emailHandler   *Email
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *Auth,
	meetingHandler *Meeting,
	projectHandler *Project,
	actionHandler *Action,
	emailHandler *Email,
) *Router {
	return &Router{
		cfg:            cfg,
		authMiddleware: authMiddleware,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		projectHandler: projectHandler,
		actionHandler:  actionHandler,
		emailHandler:   emailHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupProjectRoutes(v1)
	rt.setupActionRoutes(v1)
	rt.setupEmailRoutes(v1)
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMiddleware.Authenticate)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", rt.authMiddleware.Authenticate)
	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.GET("/:id/detail", rt.meetingHandler.Detail)
	meetingGroup.PATCH("/:id", rt.meetingHandler.Update)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
	meetingGroup.POST("/:id/audio", rt.meetingHandler.UploadAudio)
	meetingGroup.POST("/:id/process", rt.meetingHandler.Process)
	meetingGroup.GET("/:id/actions", rt.actionHandler.ListByMeeting)
	meetingGroup.GET("/:id/emails", rt.emailHandler.ListByMeeting)
}

func (rt *Router) setupProjectRoutes(g *echo.Group) {
	projectGroup := g.Group("/projects", rt.authMiddleware.Authenticate)
	projectGroup.POST("", rt.projectHandler.Create)
	projectGroup.GET("", rt.projectHandler.List)
	projectGroup.PATCH("/:id", rt.projectHandler.Update)
	projectGroup.DELETE("/:id", rt.projectHandler.Delete)
}

func (rt *Router) setupActionRoutes(g *echo.Group) {
	actionGroup := g.Group("/actions", rt.authMiddleware.Authenticate)
	actionGroup.PATCH("/:id", rt.actionHandler.Update)
	actionGroup.POST("/:id/approve", rt.actionHandler.Approve)
	actionGroup.POST("/:id/reject", rt.actionHandler.Reject)
	actionGroup.POST("/:id/complete", rt.actionHandler.Complete)
}

func (rt *Router) setupEmailRoutes(g *echo.Group) {
	emailGroup := g.Group("/emails", rt.authMiddleware.Authenticate)
	emailGroup.POST("", rt.emailHandler.Create)
	emailGroup.PATCH("/:id", rt.emailHandler.Update)
	emailGroup.POST("/:id/send", rt.emailHandler.Send)
	emailGroup.DELETE("/:id", rt.emailHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
