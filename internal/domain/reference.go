package domain

// Reference bundles the read-only map data shipped with the app: named
// points and the suggested walking track. The engine never mutates it.
type Reference struct {
	Waypoints []StaticWaypoint `json:"waypoints"`
	Track     Track            `json:"track"`
}
