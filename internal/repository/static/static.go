// Package static loads the read-only configuration artifacts: the day's
// itinerary and the reference waypoints/track. A file that fails
// validation is a broken deploy artifact, so loading errors are fatal to
// startup, unlike runtime validation which is returned to callers.
package static

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/utils"
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/validator"
)

// LoadItinerary reads and validates the ordered activity list. The file
// order is the visitation order; it is preserved as-is.
func LoadItinerary(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read itinerary: %w", err)
	}

	var activities []domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, fmt.Errorf("parse itinerary: %w", err)
	}

	if err := validateItinerary(activities); err != nil {
		return nil, fmt.Errorf("invalid itinerary: %w", err)
	}

	return activities, nil
}

func validateItinerary(activities []domain.Activity) error {
	seen := make(map[string]struct{}, len(activities))

	for i, act := range activities {
		if err := validator.Validate(&act); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[act.ID]; dup {
			return fmt.Errorf("entry %d: duplicate id %q", i, act.ID)
		}
		seen[act.ID] = struct{}{}

		if !act.Type.Valid() {
			return fmt.Errorf("entry %q: unknown type %q", act.ID, act.Type)
		}

		start, _ := utils.ParseClock(act.StartTime)
		end, _ := utils.ParseClock(act.EndTime)
		// start == end cannot distinguish a zero-length entry from a
		// full-day one, so it is rejected outright.
		if start == end {
			return fmt.Errorf("entry %q: start and end are both %q", act.ID, act.StartTime)
		}

		if act.Coords != nil && !utils.ValidateCoordinates(act.Coords.Lat, act.Coords.Lng) {
			return fmt.Errorf("entry %q: coordinates out of range", act.ID)
		}
	}

	return nil
}

// LoadReference reads the static waypoints and track polyline.
func LoadReference(path string) (*domain.Reference, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}

	var ref domain.Reference
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	for _, wpt := range ref.Waypoints {
		if wpt.Name == "" {
			return nil, fmt.Errorf("invalid reference data: unnamed waypoint")
		}
		if !utils.ValidateCoordinates(wpt.Coords.Lat, wpt.Coords.Lng) {
			return nil, fmt.Errorf("invalid reference data: waypoint %q out of range", wpt.Name)
		}
	}
	for i, pt := range ref.Track.Points {
		if !utils.ValidateCoordinates(pt.Lat, pt.Lng) {
			return nil, fmt.Errorf("invalid reference data: track point %d out of range", i)
		}
	}

	return &ref, nil
}
