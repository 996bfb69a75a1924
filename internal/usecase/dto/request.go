package dto

// CreateWaypointRequest is a user's "save this spot" action. The name is
// additionally trim-checked in the use case; validator tags only catch
// the structurally invalid cases.
type CreateWaypointRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lng         float64 `json:"lng" validate:"min=-180,max=180"`
}

// UpdatePositionRequest is one GPS fix pushed by the device.
type UpdatePositionRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}
