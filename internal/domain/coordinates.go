package domain

// Coordinates is an immutable WGS84 position value.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
