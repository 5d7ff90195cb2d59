package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/restoration-tracker/internal/config"
	"github.com/restoration-tracker/internal/delivery/http/handler"
	"github.com/restoration-tracker/internal/delivery/http/middleware"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	participation repository.ParticipationRepository

	projectHandler     *handler.ProjectHandler
	participantHandler *handler.ParticipantHandler
	publicHandler      *handler.PublicHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	participation repository.ParticipationRepository,
	projectHandler *handler.ProjectHandler,
	participantHandler *handler.ParticipantHandler,
	publicHandler *handler.PublicHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Restoration Tracker API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		participation:      participation,
		projectHandler:     projectHandler,
		participantHandler: participantHandler,
		publicHandler:      publicHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public routes carry no identity requirements.
	public := api.Group("/public")
	public.Get("/project/:projectId", s.publicHandler.GetPublicProject)
	public.Get("/plans", s.publicHandler.ListPlans)

	auth := api.Group("", middleware.Authenticate())

	auth.Post("/project",
		middleware.RequireSystemRoles(domain.RoleSystemAdmin, domain.RoleProjectCreator),
		s.projectHandler.CreateProject)
	auth.Get("/project", s.projectHandler.ListProjects)
	auth.Get("/project/:projectId", s.projectHandler.GetProject)
	auth.Put("/project/:projectId",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead, domain.ProjectRoleEditor),
		s.projectHandler.UpdateProject)
	auth.Delete("/project/:projectId",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead),
		s.projectHandler.DeleteProject)
	auth.Put("/project/:projectId/state/:stateCode",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead, domain.ProjectRoleEditor),
		s.projectHandler.UpdateStateCode)

	auth.Post("/project/:projectId/funding-sources",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead, domain.ProjectRoleEditor),
		s.projectHandler.InsertFundingSource)
	auth.Delete("/project/:projectId/funding-sources/:pfsId",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead, domain.ProjectRoleEditor),
		s.projectHandler.DeleteFundingSource)

	auth.Get("/project/:projectId/participants", s.participantHandler.GetParticipants)
	auth.Post("/project/:projectId/participants",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead),
		s.participantHandler.AddParticipant)
	auth.Delete("/project/:projectId/participants/:projectParticipationId",
		middleware.RequireProjectRoles(s.participation, domain.ProjectRoleLead),
		s.participantHandler.DeleteParticipant)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
