package di

import (
	"github.com/maydeploy/event-feedback-app/internal/handler"
	"github.com/maydeploy/event-feedback-app/internal/repository"
	"github.com/maydeploy/event-feedback-app/internal/service"
	"github.com/maydeploy/event-feedback-app/internal/session"
	"github.com/maydeploy/event-feedback-app/pkg/database"
	"github.com/maydeploy/event-feedback-app/pkg/logger"
)

// Container holds all dependencies for the feedback service
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Sessions session.Store

	// Repositories
	SubmissionRepo    repository.SubmissionRepository
	CollaborationRepo repository.CollaborationRepository
	EventRepo         repository.EventRepository
	RateLimitRepo     repository.RateLimitRepository

	// Services
	SubmissionService    service.SubmissionService
	CollaborationService service.CollaborationService
	EventService         service.EventService
	RateLimitService     service.RateLimitService
	AuthService          service.AuthService

	// Handlers
	HealthHandler        *handler.HealthHandler
	SubmissionHandler    *handler.SubmissionHandler
	CollaborationHandler *handler.CollaborationHandler
	EventHandler         *handler.EventHandler
	AdminHandler         *handler.AdminHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB                *database.PostgresDB
	Sessions          session.Store
	SubmissionRepo    repository.SubmissionRepository
	CollaborationRepo repository.CollaborationRepository
	EventRepo         repository.EventRepository
	RateLimitRepo     repository.RateLimitRepository
	Logger            *logger.Logger

	AdminPasswordHash string
	SessionSecret     string
	CookieSecure      bool
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:                cfg.DB,
		Sessions:          cfg.Sessions,
		SubmissionRepo:    cfg.SubmissionRepo,
		CollaborationRepo: cfg.CollaborationRepo,
		EventRepo:         cfg.EventRepo,
		RateLimitRepo:     cfg.RateLimitRepo,
	}

	// Initialize services
	c.SubmissionService = service.NewSubmissionService(c.SubmissionRepo)
	c.CollaborationService = service.NewCollaborationService(c.CollaborationRepo)
	c.EventService = service.NewEventService(c.EventRepo)
	c.RateLimitService = service.NewRateLimitService(c.RateLimitRepo, cfg.Logger)
	c.AuthService = service.NewAuthService(cfg.AdminPasswordHash, cfg.SessionSecret, c.Sessions)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.SubmissionHandler = handler.NewSubmissionHandler(c.SubmissionService, c.RateLimitService)
	c.CollaborationHandler = handler.NewCollaborationHandler(c.CollaborationService, c.RateLimitService)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.AdminHandler = handler.NewAdminHandler(
		c.AuthService,
		c.SubmissionService,
		c.CollaborationService,
		c.EventService,
		cfg.CookieSecure,
	)

	return c
}
