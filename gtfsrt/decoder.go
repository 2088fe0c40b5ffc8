package gtfsrt

import (
	"strconv"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"
)

// Decode parses raw feed bytes and flattens every vehicle entity into a
// VehicleEntity. Output order is wire order; it is not identifier-sorted.
// Malformed bytes return a *DecodeError. Entities lacking any required
// sub-field are dropped with a debug log and never emitted half-populated.
func Decode(raw []byte) ([]VehicleEntity, error) {
	feed := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(raw, feed); err != nil {
		return nil, &DecodeError{Err: err}
	}

	entities := make([]VehicleEntity, 0, len(feed.Entity))
	for _, e := range feed.Entity {
		ve, err := flattenEntity(e)
		if err != nil {
			log.Debug().Err(err).Msg("Dropping feed entity")
			continue
		}
		entities = append(entities, ve)
	}
	return entities, nil
}

// flattenEntity extracts the full field tuple from one feed entity.
// Extraction is by explicit field access, never positional, so a schema
// reordering upstream cannot silently shift values between columns.
func flattenEntity(e *gtfs.FeedEntity) (VehicleEntity, error) {
	entityID := e.GetId()

	id, err := strconv.Atoi(entityID)
	if err != nil {
		return VehicleEntity{}, &MissingFieldError{EntityID: entityID, Field: "id"}
	}

	v := e.Vehicle
	if v == nil {
		return VehicleEntity{}, &MissingFieldError{EntityID: entityID, Field: "vehicle"}
	}
	trip := v.Trip
	if trip == nil {
		return VehicleEntity{}, &MissingFieldError{EntityID: entityID, Field: "vehicle.trip"}
	}
	pos := v.Position
	if pos == nil {
		return VehicleEntity{}, &MissingFieldError{EntityID: entityID, Field: "vehicle.position"}
	}

	required := []struct {
		field   string
		present bool
	}{
		{"trip.trip_id", trip.TripId != nil},
		{"trip.start_date", trip.StartDate != nil},
		{"trip.route_id", trip.RouteId != nil},
		{"position.latitude", pos.Latitude != nil},
		{"position.longitude", pos.Longitude != nil},
		{"position.bearing", pos.Bearing != nil},
		{"position.speed", pos.Speed != nil},
		{"current_stop_sequence", v.CurrentStopSequence != nil},
		{"current_status", v.CurrentStatus != nil},
		{"timestamp", v.Timestamp != nil},
		{"stop_id", v.StopId != nil},
		{"vehicle.id", v.Vehicle != nil && v.Vehicle.Id != nil},
	}
	for _, r := range required {
		if !r.present {
			return VehicleEntity{}, &MissingFieldError{EntityID: entityID, Field: r.field}
		}
	}

	return VehicleEntity{
		ID:           id,
		TripID:       trip.GetTripId(),
		StartDate:    trip.GetStartDate(),
		RouteID:      trip.GetRouteId(),
		Latitude:     float64(pos.GetLatitude()),
		Longitude:    float64(pos.GetLongitude()),
		Bearing:      float64(pos.GetBearing()),
		Speed:        float64(pos.GetSpeed()),
		StopSequence: v.GetCurrentStopSequence(),
		StopStatus:   v.GetCurrentStatus().String(),
		Timestamp:    int64(v.GetTimestamp()),
		StopID:       v.GetStopId(),
		VehicleID:    v.Vehicle.GetId(),
	}, nil
}
