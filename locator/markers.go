package locator

import "fmt"

// Marker display hints for the external map renderer.
const (
	MarkerColor = "blue"
	MarkerIcon  = "bus"
)

// Marker is one map marker handed to the renderer collaborator.
type Marker struct {
	Location LatLng `json:"location"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	Popup    string `json:"popup"`
	Tooltip  string `json:"tooltip"`
}

// TableRow is the reduced column set shown in the renderer's table view.
type TableRow struct {
	BusID     int     `json:"bus_id"`
	T         string  `json:"t"`
	TripID    string  `json:"trip_id"`
	RouteID   string  `json:"route_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Markers builds one marker per row, with popup and tooltip text derived
// from the bus, route and last-update time.
func Markers(s Snapshot) []Marker {
	markers := make([]Marker, 0, len(s.Rows))
	for _, row := range s.Rows {
		label := fmt.Sprintf("bus: %d<br>route: %s<br>last update: %s",
			row.BusID, row.RouteID, row.T.Format("2006-01-02 15:04:05 MST"))
		markers = append(markers, Marker{
			Location: LatLng{Lat: row.Latitude, Lng: row.Longitude},
			Color:    MarkerColor,
			Icon:     MarkerIcon,
			Popup:    label,
			Tooltip:  label,
		})
	}
	return markers
}

// Table builds the reduced table view of a Snapshot.
func Table(s Snapshot) []TableRow {
	rows := make([]TableRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, TableRow{
			BusID:     row.BusID,
			T:         row.T.Format("2006-01-02 15:04:05 MST"),
			TripID:    row.TripID,
			RouteID:   row.RouteID,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}
	return rows
}
