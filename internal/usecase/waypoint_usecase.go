package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/clock"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase/dto"
)

// WaypointUseCase is the durable store of user waypoints. Every mutation
// is fully persisted before the call returns; on a save failure the
// in-memory list is rolled back so no phantom entity survives.
type WaypointUseCase struct {
	mu        sync.Mutex
	waypoints []domain.Waypoint

	repo      repository.WaypointRepository
	clk       clock.Clock
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewWaypointUseCase loads the persisted store. Corrupt data is recovered
// to an empty store with a single warning; only an unreachable database
// is a startup failure.
func NewWaypointUseCase(
	ctx context.Context,
	repo repository.WaypointRepository,
	clk clock.Clock,
	collector *metrics.Collector,
	logger *zap.Logger,
) (*WaypointUseCase, error) {
	uc := &WaypointUseCase{
		repo:      repo,
		clk:       clk,
		collector: collector,
		logger:    logger,
	}

	waypoints, err := repo.Load(ctx)
	if err == errors.ErrPersistenceCorrupt {
		logger.Warn("Corrupt waypoint store, resetting to empty")
		collector.PersistenceRecoveries.Inc()

		waypoints = []domain.Waypoint{}
		if err := repo.Save(ctx, waypoints); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	uc.waypoints = waypoints
	collector.WaypointCount.Set(float64(len(waypoints)))

	logger.Info("Waypoint store loaded", zap.Int("count", len(waypoints)))
	return uc, nil
}

// Create validates, assigns id and creation time, appends and persists.
func (uc *WaypointUseCase) Create(ctx context.Context, req dto.CreateWaypointRequest) (*domain.Waypoint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.ErrEmptyWaypointName
	}
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	waypoint := domain.Waypoint{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Coords:      domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		CreatedAt:   uc.clk.Now(),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.waypoints = append(uc.waypoints, waypoint)
	if err := uc.repo.Save(ctx, uc.waypoints); err != nil {
		uc.waypoints = uc.waypoints[:len(uc.waypoints)-1]
		uc.logger.Error("Failed to persist waypoint", zap.Error(err))
		return nil, errors.ErrStorageError
	}

	uc.collector.WaypointsCreated.Inc()
	uc.collector.WaypointCount.Set(float64(len(uc.waypoints)))
	uc.logger.Info("Waypoint created",
		zap.String("id", waypoint.ID),
		zap.String("name", waypoint.Name))

	return &waypoint, nil
}

// Delete removes the matching waypoint and persists. An unknown id is a
// silent no-op: a stale delete from the UI must not fail.
func (uc *WaypointUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	index := -1
	for i := range uc.waypoints {
		if uc.waypoints[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	removed := uc.waypoints[index]
	remaining := make([]domain.Waypoint, 0, len(uc.waypoints)-1)
	remaining = append(remaining, uc.waypoints[:index]...)
	remaining = append(remaining, uc.waypoints[index+1:]...)

	if err := uc.repo.Save(ctx, remaining); err != nil {
		uc.logger.Error("Failed to persist waypoint deletion", zap.Error(err))
		return errors.ErrStorageError
	}

	uc.waypoints = remaining
	uc.collector.WaypointsDeleted.Inc()
	uc.collector.WaypointCount.Set(float64(len(uc.waypoints)))
	uc.logger.Info("Waypoint deleted",
		zap.String("id", removed.ID),
		zap.String("name", removed.Name))

	return nil
}

// List returns a snapshot in insertion order. Static reference waypoints
// are not merged here; that is the map projection's job.
func (uc *WaypointUseCase) List() []domain.Waypoint {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot := make([]domain.Waypoint, len(uc.waypoints))
	copy(snapshot, uc.waypoints)
	return snapshot
}
