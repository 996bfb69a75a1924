package worker

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/usecase"
)

// PositionFeedWorker consumes GPS fixes from the external stream feed
// and forwards them into the position snapshot. It is the asynchronous
// location trigger; the engine itself never polls.
type PositionFeedWorker struct {
	*BaseWorker
	streamRepo   repository.PositionStreamRepository
	positionUC   *usecase.PositionUseCase
	stream       string
	group        string
	consumerName string
}

func NewPositionFeedWorker(
	streamRepo repository.PositionStreamRepository,
	positionUC *usecase.PositionUseCase,
	stream, group string,
	logger *zap.Logger,
) *PositionFeedWorker {
	hostname, _ := os.Hostname()

	return &PositionFeedWorker{
		BaseWorker:   NewBaseWorker("position-feed", logger),
		streamRepo:   streamRepo,
		positionUC:   positionUC,
		stream:       stream,
		group:        group,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}
}

func (w *PositionFeedWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting position feed worker",
		zap.String("stream", w.stream),
		zap.String("group", w.group),
		zap.String("consumer", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.group); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	updates, err := w.streamRepo.ConsumeStream(ctx, w.stream, w.group, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Position feed worker stopped")
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case update, ok := <-updates:
			if !ok {
				logger.Info("Position stream closed")
				return nil
			}
			if err := w.positionUC.Update(update.Coords); err != nil {
				// The repo already filtered ranges; anything left is
				// worth a log line but never stops the feed.
				logger.Warn("Dropped position update", zap.Error(err))
			}
		}
	}
}
