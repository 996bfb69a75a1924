package domain

import "time"

// Waypoint is a user-created point of interest. Coordinates are captured
// at creation and never change; CreatedAt exists for ordering and
// debugging only.
type Waypoint struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Coords      Coordinates `json:"coords"`
	CreatedAt   time.Time   `json:"created_at"`
}

// StaticWaypoint is a read-only reference point supplied by
// configuration.
type StaticWaypoint struct {
	Name   string      `json:"name"`
	Coords Coordinates `json:"coords"`
}

// Track is the read-only reference polyline for the day's walking route.
type Track struct {
	Points []Coordinates `json:"points"`
}
