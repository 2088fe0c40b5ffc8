package gtfsrt_test

import (
	"errors"
	"testing"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/transit-tools/buslocator/gtfsrt"
	"github.com/transit-tools/buslocator/internal/feedtest"
)

func TestDecodePreservesWireOrder(t *testing.T) {
	raw := feedtest.Marshal(t,
		feedtest.Entity("300", 38.5, -77.25, 1700000100),
		feedtest.Entity("100", 39.0, -77.5, 1700000200),
		feedtest.Entity("200", 38.75, -77.0, 1700000300),
	)

	entities, err := gtfsrt.Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	wantOrder := []int{300, 100, 200}
	if len(entities) != len(wantOrder) {
		t.Fatalf("expected %d entities, got %d", len(wantOrder), len(entities))
	}
	for i, want := range wantOrder {
		if entities[i].ID != want {
			t.Errorf("entity %d: expected id %d, got %d", i, want, entities[i].ID)
		}
	}
}

func TestDecodeFlattensAllFields(t *testing.T) {
	raw := feedtest.Marshal(t, feedtest.Entity("4766", 38.5, -77.25, 1700000100))

	entities, err := gtfsrt.Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}

	e := entities[0]
	want := gtfsrt.VehicleEntity{
		ID:           4766,
		TripID:       "trip-4766",
		StartDate:    "20260823",
		RouteID:      "route-4766",
		Latitude:     38.5,
		Longitude:    -77.25,
		Bearing:      90,
		Speed:        12.5,
		StopSequence: 5,
		StopStatus:   "IN_TRANSIT_TO",
		Timestamp:    1700000100,
		StopID:       "stop-4766",
		VehicleID:    "veh-4766",
	}
	if e != want {
		t.Errorf("expected %+v, got %+v", want, e)
	}
}

func TestDecodeMalformedBytes(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "garbage", raw: []byte{0xff, 0xff, 0xff, 0xff}},
		{name: "missing required header", raw: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gtfsrt.Decode(tt.raw)
			if err == nil {
				t.Fatal("expected a decode error, got nil")
			}
			var decodeErr *gtfsrt.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("expected *DecodeError, got %T: %v", err, err)
			}
		})
	}
}

func TestDecodeDropsIncompleteEntities(t *testing.T) {
	noBearing := feedtest.Entity("101", 38.5, -77.25, 1700000100)
	noBearing.Vehicle.Position.Bearing = nil

	noTrip := feedtest.Entity("102", 38.5, -77.25, 1700000100)
	noTrip.Vehicle.Trip = nil

	noVehicleDescriptor := feedtest.Entity("103", 38.5, -77.25, 1700000100)
	noVehicleDescriptor.Vehicle.Vehicle = nil

	nonIntegerID := feedtest.Entity("bus-104", 38.5, -77.25, 1700000100)

	tripUpdateOnly := &gtfs.FeedEntity{
		Id: proto.String("105"),
		TripUpdate: &gtfs.TripUpdate{
			Trip: &gtfs.TripDescriptor{TripId: proto.String("trip-105")},
		},
	}

	raw := feedtest.Marshal(t,
		noBearing,
		feedtest.Entity("200", 38.75, -77.0, 1700000300),
		noTrip,
		noVehicleDescriptor,
		nonIntegerID,
		tripUpdateOnly,
	)

	entities, err := gtfsrt.Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 surviving entity, got %d", len(entities))
	}
	if entities[0].ID != 200 {
		t.Errorf("expected surviving entity 200, got %d", entities[0].ID)
	}
}

func TestDecodeEmptyFeed(t *testing.T) {
	raw := feedtest.Marshal(t)

	entities, err := gtfsrt.Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("expected no entities, got %d", len(entities))
	}
}
