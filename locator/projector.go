package locator

import "github.com/transit-tools/buslocator/gtfsrt"

// ProjectedRow is one matched vehicle flattened onto the stable output
// schema. Field names and order are fixed regardless of how the decoder
// lays out its source fields; every value is assigned by key, never by
// position.
type ProjectedRow struct {
	BusID        int     `json:"bus_id"`
	TripID       string  `json:"trip_id"`
	StartDate    string  `json:"start_date"`
	RouteID      string  `json:"route_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Bearing      float64 `json:"bearing"`
	Speed        float64 `json:"speed"`
	StopSequence uint32  `json:"stop_sequence"`
	StopStatus   string  `json:"stop_status"`
	Timestamp    int64   `json:"timestamp"`
	StopID       string  `json:"stop_id"`
	VehicleID    string  `json:"vehicle_id"`
}

// Project filters entities to the requested identifier set and maps each
// survivor onto a ProjectedRow, preserving wire order. Non-matching
// entities are silently dropped. An empty result is a valid outcome (the
// buses are simply not in revenue service), not an error.
func Project(entities []gtfsrt.VehicleEntity, ids []int) []ProjectedRow {
	requested := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	rows := make([]ProjectedRow, 0, len(ids))
	for _, e := range entities {
		if _, ok := requested[e.ID]; !ok {
			continue
		}
		rows = append(rows, ProjectedRow{
			BusID:        e.ID,
			TripID:       e.TripID,
			StartDate:    e.StartDate,
			RouteID:      e.RouteID,
			Latitude:     e.Latitude,
			Longitude:    e.Longitude,
			Bearing:      e.Bearing,
			Speed:        e.Speed,
			StopSequence: e.StopSequence,
			StopStatus:   e.StopStatus,
			Timestamp:    e.Timestamp,
			StopID:       e.StopID,
			VehicleID:    e.VehicleID,
		})
	}
	return rows
}
