package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/metrics"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
)

// CountdownWorker is the 1-second clock trigger: it recomputes the
// boarding countdown every tick, keeps the metrics gauge current and
// logs the flip into the terminal elapsed state exactly once.
type CountdownWorker struct {
	*BaseWorker
	itineraryUC *usecase.ItineraryUseCase
	collector   *metrics.Collector

	announced bool
}

func NewCountdownWorker(
	itineraryUC *usecase.ItineraryUseCase,
	collector *metrics.Collector,
	logger *zap.Logger,
) *CountdownWorker {
	return &CountdownWorker{
		BaseWorker:  NewBaseWorker("boarding-countdown", logger),
		itineraryUC: itineraryUC,
		collector:   collector,
	}
}

func (w *CountdownWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting countdown ticker")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	w.tick()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Countdown ticker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *CountdownWorker) tick() {
	remaining, elapsed := w.itineraryUC.CountdownSeconds()
	w.collector.CountdownSeconds.Set(float64(remaining))

	if elapsed && !w.announced {
		w.announced = true
		w.Logger().Warn("Boarding deadline reached")
	}
}
