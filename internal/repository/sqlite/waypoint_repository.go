package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain/repository"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
)

// waypointKey is the fixed key the serialized waypoint list lives under.
const waypointKey = "custom_waypoints"

type waypointRepository struct {
	store *Store
}

// NewWaypointRepository returns the durable waypoint list backed by the
// local key-value table.
func NewWaypointRepository(store *Store) repository.WaypointRepository {
	return &waypointRepository{store: store}
}

// Load reads the full waypoint list. A missing record is an empty store.
// An undecodable record is reported as ErrPersistenceCorrupt so the
// caller can apply its recovery policy.
func (r *waypointRepository) Load(ctx context.Context) ([]domain.Waypoint, error) {
	var value string
	err := r.store.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, waypointKey,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return []domain.Waypoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load waypoints: %w", err)
	}

	var waypoints []domain.Waypoint
	if err := json.Unmarshal([]byte(value), &waypoints); err != nil {
		r.store.logger.Warn("Persisted waypoint data is unreadable",
			zap.String("key", waypointKey),
			zap.Error(err))
		return nil, errors.ErrPersistenceCorrupt
	}

	return waypoints, nil
}

// Save serializes and writes the full list under the fixed key before
// returning, upholding the synchronous persistence contract.
func (r *waypointRepository) Save(ctx context.Context, waypoints []domain.Waypoint) error {
	value, err := json.Marshal(waypoints)
	if err != nil {
		return fmt.Errorf("encode waypoints: %w", err)
	}

	_, err = r.store.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at)
		 VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		waypointKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("save waypoints: %w", err)
	}

	return nil
}
