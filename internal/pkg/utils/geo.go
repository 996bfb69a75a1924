package utils

import (
	"fmt"
	"math"
)

// earthRadiusM is the mean Earth radius used by the haversine formula.
// Accuracy target is pedestrian wayfinding, not geodesy.
const earthRadiusM = 6371000.0

// HaversineDistance computes the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// InitialBearing computes the forward azimuth from the first point to the
// second, normalized into [0, 360). Identical points yield 0, the defined
// no-movement tie-break.
func InitialBearing(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	y := math.Sin(dLng) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLng)
	theta := math.Atan2(y, x)

	return math.Mod(theta*180.0/math.Pi+360.0, 360.0)
}

// DistanceAndBearing returns both haversine distance in meters and the
// initial bearing in degrees for a single pair of points.
func DistanceAndBearing(lat1, lng1, lat2, lng2 float64) (float64, float64) {
	return HaversineDistance(lat1, lng1, lat2, lng2),
		InitialBearing(lat1, lng1, lat2, lng2)
}

// FormatDistance renders meters for display: whole meters below 1 km,
// kilometers to one decimal above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// ValidateCoordinates reports whether lat/lng are inside WGS84 bounds.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
