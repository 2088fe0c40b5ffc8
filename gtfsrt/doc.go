// Package gtfsrt handles fetching and decoding a GTFS-Realtime
// vehicle-positions protobuf feed.
//
// The Client issues one authenticated HTTP GET per poll cycle and returns
// raw protobuf bytes. Decode parses those bytes and flattens each feed
// entity into a VehicleEntity. Entities that cannot be fully populated are
// dropped at decode time so downstream stages never see partial records.
package gtfsrt
