package http

import (
	"context"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/config"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/delivery/http/handler"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/delivery/http/middleware"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
)

// Server is the Fiber HTTP surface the display and map collaborators
// consume.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	itineraryHandler *handler.ItineraryHandler
	waypointHandler  *handler.WaypointHandler
	mapHandler       *handler.MapHandler
	positionHandler  *handler.PositionHandler

	collector *metrics.Collector
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	itineraryHandler *handler.ItineraryHandler,
	waypointHandler *handler.WaypointHandler,
	mapHandler *handler.MapHandler,
	positionHandler *handler.PositionHandler,
	collector *metrics.Collector,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Shore Excursion Companion",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		itineraryHandler: itineraryHandler,
		waypointHandler:  waypointHandler,
		mapHandler:       mapHandler,
		positionHandler:  positionHandler,
		collector:        collector,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/metrics", adaptor.HTTPHandler(s.collector.Handler()))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Itinerary routes
	api.Get("/itinerary", s.itineraryHandler.GetTimeline)
	api.Post("/itinerary/:id/toggle", s.itineraryHandler.ToggleCompletion)
	api.Get("/countdown", s.itineraryHandler.GetCountdown)
	api.Get("/budget", s.itineraryHandler.GetBudget)

	// Waypoint routes
	api.Get("/waypoints", s.waypointHandler.List)
	api.Post("/waypoints", s.waypointHandler.Create)
	api.Delete("/waypoints/:id", s.waypointHandler.Delete)

	// Map collaborator feed
	api.Get("/map/features", s.mapHandler.GetFeatures)

	// Location feed ingestion + snapshot
	api.Post("/position", s.positionHandler.Update)
	api.Get("/position", s.positionHandler.Current)
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
