package repository

import (
	"context"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
)

// WaypointRepository persists the full custom waypoint list as one
// durable record. Save must complete before a mutation is considered
// done; Load must round-trip exactly what Save wrote.
//
// Load returns errors.ErrPersistenceCorrupt when the stored blob exists
// but cannot be decoded; recovery policy (reset to empty) belongs to the
// caller.
type WaypointRepository interface {
	Load(ctx context.Context) ([]domain.Waypoint, error)
	Save(ctx context.Context, waypoints []domain.Waypoint) error
}
