package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/config"
	httpDelivery "github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/delivery/http"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/delivery/http/handler"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/clock"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/logger"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	redisRepo "github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/repository/redis"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/repository/sqlite"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/repository/static"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/worker"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Shore Excursion Companion")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("boarding_deadline", cfg.Boarding.Deadline),
	)

	// 3. Load static reference data
	activities, err := static.LoadItinerary(cfg.Data.ItineraryPath)
	if err != nil {
		log.Fatal("Failed to load itinerary", zap.Error(err))
	}
	reference, err := static.LoadReference(cfg.Data.ReferencePath)
	if err != nil {
		log.Fatal("Failed to load reference data", zap.Error(err))
	}
	log.Info("Static data loaded",
		zap.Int("activities", len(activities)),
		zap.Int("static_waypoints", len(reference.Waypoints)),
		zap.Int("track_points", len(reference.Track.Points)),
	)

	// 4. Open the local waypoint store
	store, err := sqlite.Open(cfg.Storage.SQLitePath, log)
	if err != nil {
		log.Fatal("Failed to open local store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close local store", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.InitSchema(ctx); err != nil {
		cancel()
		log.Fatal("Failed to init local store schema", zap.Error(err))
	}
	if err := store.Health(ctx); err != nil {
		cancel()
		log.Fatal("Local store health check failed", zap.Error(err))
	}
	cancel()
	log.Info("Local store ready", zap.String("path", cfg.Storage.SQLitePath))

	// 5. Metrics
	collector := metrics.NewCollector()

	// 6. Initialize use cases
	clk := clock.System()

	positionUC := usecase.NewPositionUseCase(clk, collector, log)

	itineraryUC, err := usecase.NewItineraryUseCase(
		activities, cfg.Boarding.Deadline, clk, positionUC, collector, log,
	)
	if err != nil {
		log.Fatal("Failed to initialize itinerary", zap.Error(err))
	}

	waypointRepo := sqlite.NewWaypointRepository(store)
	waypointUC, err := usecase.NewWaypointUseCase(
		context.Background(), waypointRepo, clk, collector, log,
	)
	if err != nil {
		log.Fatal("Failed to initialize waypoint store", zap.Error(err))
	}

	mapUC := usecase.NewMapUseCase(itineraryUC, waypointUC, positionUC, reference, log)

	log.Info("Use cases initialized")

	// 7. Workers: the clock tick, plus the stream feed when enabled
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	manager := worker.NewManager(log)
	manager.Register(worker.NewCountdownWorker(itineraryUC, collector, log))

	if cfg.Feed.Enabled {
		redisClient, err := redisRepo.NewClient(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to position feed", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		streamRepo := redisRepo.NewPositionStreamRepository(redisClient, log)
		manager.Register(worker.NewPositionFeedWorker(
			streamRepo, positionUC, cfg.Feed.Stream, cfg.Feed.ConsumerGroup, log,
		))
	}

	if err := manager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewItineraryHandler(itineraryUC, log),
		handler.NewWaypointHandler(waypointUC, log),
		handler.NewMapHandler(mapUC, log),
		handler.NewPositionHandler(positionUC, log),
		collector,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// 9. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("HTTP server failed", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	// 10. Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	workerCancel()
	if err := manager.Stop(); err != nil {
		log.Error("Failed to stop workers", zap.Error(err))
	}

	log.Info("Shutdown complete")
}
