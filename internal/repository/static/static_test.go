package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validItinerary = `[
  {
    "id": "act-1",
    "title": "Vieux Port",
    "start_time": "09:15",
    "end_time": "10:30",
    "location_name": "Quai des Belges",
    "coords": { "lat": 43.2951, "lng": 5.3756 },
    "price_eur": 0,
    "type": "walking"
  },
  {
    "id": "act-2",
    "title": "Keep phone charged",
    "start_time": "10:30",
    "end_time": "11:00",
    "location_name": "",
    "price_eur": 0,
    "type": "limit",
    "critical": true
  }
]`

func TestLoadItinerary(t *testing.T) {
	activities, err := LoadItinerary(writeTemp(t, validItinerary))
	require.NoError(t, err)
	require.Len(t, activities, 2)

	// Declared order is preserved verbatim.
	assert.Equal(t, "act-1", activities[0].ID)
	assert.Equal(t, "act-2", activities[1].ID)
	assert.True(t, activities[0].HasCoords())
	assert.False(t, activities[1].HasCoords())
	assert.True(t, activities[1].Critical)
}

func TestLoadItinerary_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: `{broken`,
		},
		{
			name: "missing id",
			content: `[{"title": "x", "start_time": "09:00", "end_time": "10:00", "type": "visit"}]`,
		},
		{
			name: "duplicate ids",
			content: `[
			  {"id": "a", "title": "x", "start_time": "09:00", "end_time": "10:00", "type": "visit"},
			  {"id": "a", "title": "y", "start_time": "10:00", "end_time": "11:00", "type": "visit"}
			]`,
		},
		{
			name: "malformed time",
			content: `[{"id": "a", "title": "x", "start_time": "9am", "end_time": "10:00", "type": "visit"}]`,
		},
		{
			name: "start equals end",
			content: `[{"id": "a", "title": "x", "start_time": "10:00", "end_time": "10:00", "type": "visit"}]`,
		},
		{
			name: "unknown type",
			content: `[{"id": "a", "title": "x", "start_time": "09:00", "end_time": "10:00", "type": "siesta"}]`,
		},
		{
			name: "coords out of range",
			content: `[{"id": "a", "title": "x", "start_time": "09:00", "end_time": "10:00", "type": "visit",
			  "coords": {"lat": 99, "lng": 5}}]`,
		},
		{
			name: "negative price",
			content: `[{"id": "a", "title": "x", "start_time": "09:00", "end_time": "10:00", "type": "visit",
			  "price_eur": -5}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadItinerary(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadItinerary_MissingFile(t *testing.T) {
	_, err := LoadItinerary(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadReference(t *testing.T) {
	content := `{
	  "waypoints": [
	    {"name": "Fort Saint-Jean", "coords": {"lat": 43.2954, "lng": 5.3622}}
	  ],
	  "track": {"points": [
	    {"lat": 43.2951, "lng": 5.3756},
	    {"lat": 43.2954, "lng": 5.3622}
	  ]}
	}`

	ref, err := LoadReference(writeTemp(t, content))
	require.NoError(t, err)
	assert.Len(t, ref.Waypoints, 1)
	assert.Len(t, ref.Track.Points, 2)
}

func TestLoadReference_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unnamed waypoint",
			content: `{"waypoints": [{"name": "", "coords": {"lat": 1, "lng": 2}}], "track": {"points": []}}`,
		},
		{
			name:    "waypoint out of range",
			content: `{"waypoints": [{"name": "x", "coords": {"lat": 91, "lng": 2}}], "track": {"points": []}}`,
		},
		{
			name:    "track point out of range",
			content: `{"waypoints": [], "track": {"points": [{"lat": 0, "lng": 181}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadReference(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}
