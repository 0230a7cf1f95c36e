package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-intelligence/pkg/validator"

	_ "github.com/johnquangdev/meeting-intelligence/docs"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/handler"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/repository"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/email"
	httpmw "github.com/johnquangdev/meeting-intelligence/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/action"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/auth"
	emailuse "github.com/johnquangdev/meeting-intelligence/internal/usecase/email"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/pipeline"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/project"
	"github.com/johnquangdev/meeting-intelligence/internal/usecase/transcription"
	pkgai "github.com/johnquangdev/meeting-intelligence/pkg/ai"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
	"github.com/johnquangdev/meeting-intelligence/pkg/jwt"
)

// @title           Meeting Intelligence API
// @version         1.0
// @description     API for the meeting intelligence pipeline: audio upload, transcription, structured extraction, and action workflows

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if cfg.Server.Environment != "production" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should run cmd/migrate in CI/CD instead.
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate for schema changes")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	cacheStore := cache.NewStore(redisClient)

	// Initialize MinIO storage
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	extractionRepo := repository.NewExtractionRepository(db)
	emailRepo := repository.NewEmailDraftRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI clients...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq, cfg.Transcribe.Timeout)
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)

	// Select the transcription backend
	var backend transcription.Backend
	switch cfg.Transcribe.Backend {
	case "assemblyai":
		backend = transcription.NewAssemblyAIBackend(asmClient)
	default:
		backend = transcription.NewGroqBackend(groqClient)
	}
	log.Printf("🎙️  Transcription backend: %s", backend.Name())

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize services
	log.Println("✨ Initializing services...")
	transcriptionService := transcription.NewService(
		transcriptRepo,
		minioClient,
		backend,
		cfg.Transcribe.Language,
		cfg.Transcribe.Timeout,
		logger,
	)
	extractionService := extraction.NewService(groqClient, extractionRepo, logger)
	pipelineService := pipeline.NewService(
		meetingRepo,
		transcriptRepo,
		transcriptionService,
		extractionService,
		logger,
	)
	authService := auth.NewService(userRepo, jwtManager)
	meetingService := meeting.NewService(
		meetingRepo,
		transcriptRepo,
		extractionRepo,
		minioClient,
		cacheStore,
		logger,
	)
	projectService := project.NewService(projectRepo)
	actionService := action.NewService(extractionRepo, meetingRepo)
	smtpSender := email.NewSMTPSender(&cfg.SMTP)
	if !smtpSender.Configured() {
		log.Println("⚠️  SMTP not configured; email drafts can be saved but not sent")
	}
	emailService := emailuse.NewService(emailRepo, meetingRepo, smtpSender, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	meetingHandler := handler.NewMeeting(meetingService, pipelineService, logger)
	projectHandler := handler.NewProject(projectService, logger)
	actionHandler := handler.NewAction(actionService, logger)
	emailHandler := handler.NewEmail(emailService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authMW := httpmw.NewAuthMiddleware(jwtManager)
	router := handler.NewRouter(cfg, authMW, authHandler, meetingHandler, projectHandler, actionHandler, emailHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
