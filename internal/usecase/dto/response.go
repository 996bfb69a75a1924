package dto

import (
	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/domain"
)

// TimelineEntry is one activity plus its derived display facts. Distance
// fields are nil when there is no GPS fix or the activity has no
// coordinates; the display simply omits them.
type TimelineEntry struct {
	Activity domain.Activity `json:"activity"`

	DurationText string  `json:"duration_text"`
	Progress     float64 `json:"progress"`

	// Gap to the previous entry. Absent on the first entry and when the
	// gap is exactly zero.
	GapMinutes *int   `json:"gap_minutes,omitempty"`
	GapText    string `json:"gap_text,omitempty"`

	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	DistanceText   string   `json:"distance_text,omitempty"`
	BearingDegrees *float64 `json:"bearing_degrees,omitempty"`
}

type TimelineResponse struct {
	Entries []TimelineEntry `json:"entries"`
}

type CountdownResponse struct {
	Deadline string `json:"deadline"`
	Display  string `json:"display"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Seconds  int    `json:"seconds"`
	Elapsed  bool   `json:"elapsed"`
}

type BudgetItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	PriceEUR float64 `json:"price_eur"`
}

type BudgetResponse struct {
	TotalEUR float64      `json:"total_eur"`
	Items    []BudgetItem `json:"items"`
}

// MapFeatures is the merged point set handed to the map collaborator:
// everything it needs to draw in a single read.
type MapFeatures struct {
	Activities      []domain.Activity       `json:"activities"`
	StaticWaypoints []domain.StaticWaypoint `json:"static_waypoints"`
	CustomWaypoints []domain.Waypoint       `json:"custom_waypoints"`
	Track           domain.Track            `json:"track"`
	Position        *domain.Coordinates     `json:"position,omitempty"`
}
