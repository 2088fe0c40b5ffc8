package gtfsrt

// VehicleEntity is one fully-populated vehicle record decoded from the
// feed. It exists only within one poll cycle and is never persisted.
type VehicleEntity struct {
	ID           int
	TripID       string
	StartDate    string
	RouteID      string
	Latitude     float64
	Longitude    float64
	Bearing      float64
	Speed        float64
	StopSequence uint32
	StopStatus   string
	Timestamp    int64
	StopID       string
	VehicleID    string
}
