package locator

import "time"

// Point is a point geometry in x/y axis order: x is longitude, y is
// latitude. Constructing it the other way round is the classic swapped-axis
// bug, so the fields are named rather than indexed.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// LatLng is a latitude/longitude pair in map-display order, used for
// marker locations and the re-center hint.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EnrichedRow is a ProjectedRow plus derived point geometry and the
// localized observation time.
type EnrichedRow struct {
	ProjectedRow
	Geometry Point     `json:"geometry"`
	T        time.Time `json:"t"`
}

// Enrich attaches a point geometry built from (longitude, latitude) and
// converts the raw epoch-seconds timestamp to the target timezone. The
// localized time round-trips exactly: T.Unix() equals the raw Timestamp.
// Enrichment cannot be applied twice; the input type admits only
// un-enriched rows.
func Enrich(rows []ProjectedRow, loc *time.Location) []EnrichedRow {
	enriched := make([]EnrichedRow, 0, len(rows))
	for _, row := range rows {
		enriched = append(enriched, EnrichedRow{
			ProjectedRow: row,
			Geometry:     Point{Lon: row.Longitude, Lat: row.Latitude},
			T:            time.Unix(row.Timestamp, 0).In(loc),
		})
	}
	return enriched
}

// Centroid computes the unweighted geometric centroid of the row
// geometries, for use as a map re-center hint. The centroid of an empty
// row set is undefined: ok is false and the caller must check it.
func Centroid(rows []EnrichedRow) (LatLng, bool) {
	if len(rows) == 0 {
		return LatLng{}, false
	}
	var sumLat, sumLon float64
	for _, row := range rows {
		sumLat += row.Geometry.Lat
		sumLon += row.Geometry.Lon
	}
	n := float64(len(rows))
	return LatLng{Lat: sumLat / n, Lng: sumLon / n}, true
}
