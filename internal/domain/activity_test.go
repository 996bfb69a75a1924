package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityType_Valid(t *testing.T) {
	tests := []struct {
		name     string
		typ      ActivityType
		expected bool
	}{
		{"arrival", ActivityArrival, true},
		{"transport", ActivityTransport, true},
		{"visit", ActivityVisit, true},
		{"walking", ActivityWalking, true},
		{"shopping", ActivityShopping, true},
		{"limit", ActivityLimit, true},
		{"departure", ActivityDeparture, true},
		{"free-form string", ActivityType("siesta"), false},
		{"empty", ActivityType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.Valid())
		})
	}
}

func TestActivity_HasCoords(t *testing.T) {
	withCoords := Activity{Coords: &Coordinates{Lat: 43.29, Lng: 5.37}}
	assert.True(t, withCoords.HasCoords())

	reminder := Activity{}
	assert.False(t, reminder.HasCoords())
}

func TestUnknownPosition(t *testing.T) {
	position := UnknownPosition()
	assert.False(t, position.Known)
	assert.True(t, position.ReceivedAt.IsZero())
}
