package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/clock"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
)

// PositionUseCase holds the last known GPS fix. It starts in the unknown
// state and stays there until the first update; readers always get a
// snapshot and never block on the feed.
type PositionUseCase struct {
	mu      sync.RWMutex
	current domain.Position

	clk       clock.Clock
	collector *metrics.Collector
	logger    *zap.Logger
}

func NewPositionUseCase(clk clock.Clock, collector *metrics.Collector, logger *zap.Logger) *PositionUseCase {
	return &PositionUseCase{
		current:   domain.UnknownPosition(),
		clk:       clk,
		collector: collector,
		logger:    logger,
	}
}

// Update ingests one fix from any feed (HTTP push or stream consumer).
func (uc *PositionUseCase) Update(coords domain.Coordinates) error {
	if !utils.ValidateCoordinates(coords.Lat, coords.Lng) {
		return errors.ErrInvalidCoordinates
	}

	uc.mu.Lock()
	uc.current = domain.Position{
		Coords:     coords,
		Known:      true,
		ReceivedAt: uc.clk.Now(),
	}
	uc.mu.Unlock()

	uc.collector.PositionUpdates.Inc()
	uc.logger.Debug("Position updated",
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng))

	return nil
}

// Current returns a snapshot of the last fix, or the unknown state.
func (uc *PositionUseCase) Current() domain.Position {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}
