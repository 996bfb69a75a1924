package domain

import "time"

// Position is the last known GPS fix, or the unknown state before the
// first fix arrives. Unknown is a normal value, never an error.
type Position struct {
	Coords     Coordinates `json:"coords"`
	Known      bool        `json:"known"`
	ReceivedAt time.Time   `json:"received_at,omitempty"`
}

// UnknownPosition is the default until the location feed delivers a fix.
func UnknownPosition() Position {
	return Position{}
}
