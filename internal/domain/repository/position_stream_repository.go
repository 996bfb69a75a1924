package repository

import (
	"context"
	"time"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
)

// PositionUpdate is one fix pushed by an external location feed.
type PositionUpdate struct {
	Coords     domain.Coordinates
	RecordedAt time.Time
}

// PositionStreamRepository consumes an asynchronous stream of GPS fixes.
// The engine never polls; updates arrive whenever the feed produces them.
type PositionStreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan PositionUpdate, error)
}
