// Package feedtest builds GTFS-RT feed fixtures in code for tests.
package feedtest

import (
	"testing"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Entity returns a fully-populated vehicle-position feed entity whose
// sub-fields are derived from the given id.
func Entity(id string, lat, lon float64, ts int64) *gtfs.FeedEntity {
	return &gtfs.FeedEntity{
		Id: proto.String(id),
		Vehicle: &gtfs.VehiclePosition{
			Trip: &gtfs.TripDescriptor{
				TripId:    proto.String("trip-" + id),
				StartDate: proto.String("20260823"),
				RouteId:   proto.String("route-" + id),
			},
			Vehicle: &gtfs.VehicleDescriptor{Id: proto.String("veh-" + id)},
			Position: &gtfs.Position{
				Latitude:  proto.Float32(float32(lat)),
				Longitude: proto.Float32(float32(lon)),
				Bearing:   proto.Float32(90),
				Speed:     proto.Float32(12.5),
			},
			CurrentStopSequence: proto.Uint32(5),
			CurrentStatus:       gtfs.VehiclePosition_IN_TRANSIT_TO.Enum(),
			Timestamp:           proto.Uint64(uint64(ts)),
			StopId:              proto.String("stop-" + id),
		},
	}
}

// Marshal encodes entities into a feed message payload.
func Marshal(t *testing.T, entities ...*gtfs.FeedEntity) []byte {
	t.Helper()
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: entities,
	}
	raw, err := proto.Marshal(feed)
	if err != nil {
		t.Fatalf("failed to marshal feed fixture: %v", err)
	}
	return raw
}
