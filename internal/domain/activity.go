package domain

// ActivityType is the closed set of itinerary entry kinds. The original
// data has no other values, so free-form strings are deliberately not
// accepted.
type ActivityType string

const (
	ActivityArrival   ActivityType = "arrival"
	ActivityTransport ActivityType = "transport"
	ActivityVisit     ActivityType = "visit"
	ActivityWalking   ActivityType = "walking"
	ActivityShopping  ActivityType = "shopping"
	ActivityLimit     ActivityType = "limit"
	ActivityDeparture ActivityType = "departure"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityArrival, ActivityTransport, ActivityVisit,
		ActivityWalking, ActivityShopping, ActivityLimit, ActivityDeparture:
		return true
	}
	return false
}

// Activity is one scheduled entry of the day's itinerary. The slice order
// activities arrive in is the visitation order and is never re-sorted:
// entries without coordinates or with overlapping times are legitimate,
// and sorting by time would corrupt the intended narrative.
type Activity struct {
	ID           string       `json:"id" validate:"required"`
	Title        string       `json:"title" validate:"required"`
	StartTime    string       `json:"start_time" validate:"required,hhmm"`
	EndTime      string       `json:"end_time" validate:"required,hhmm"`
	LocationName string       `json:"location_name"`
	Coords       *Coordinates `json:"coords,omitempty"`
	Description  string       `json:"description,omitempty"`
	KeyDetails   string       `json:"key_details,omitempty"`
	PriceEUR     float64      `json:"price_eur" validate:"min=0"`
	Type         ActivityType `json:"type"`
	Critical     bool         `json:"critical"`
	Completed    bool         `json:"completed"`
}

// HasCoords reports whether the activity can be geolocated.
func (a *Activity) HasCoords() bool {
	return a.Coords != nil
}
