package buslocator

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/transit-tools/buslocator/locator"
)

// vehiclesResponse is the payload handed to the map/table renderer: the
// reduced table, one marker per vehicle, and the centroid re-center hint.
// Empty is the "no buses in service" state, distinct from an error.
type vehiclesResponse struct {
	ResponseTimestamp string             `json:"responseTimestamp"`
	Empty             bool               `json:"empty"`
	Center            *locator.LatLng    `json:"center,omitempty"`
	Vehicles          []locator.TableRow `json:"vehicles"`
	Markers           []locator.Marker   `json:"markers"`
}

func handleVehiclesJSON(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		snap, ok := store.Latest()
		if !ok {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(vehiclesResponse{
				ResponseTimestamp: time.Now().UTC().Format(time.RFC3339),
				Empty:             true,
				Vehicles:          []locator.TableRow{},
				Markers:           []locator.Marker{},
			})
			return
		}

		resp := vehiclesResponse{
			ResponseTimestamp: snap.At.Format(time.RFC3339),
			Empty:             snap.Empty(),
			Vehicles:          locator.Table(snap),
			Markers:           locator.Markers(snap),
		}
		if snap.HasCenter {
			center := snap.Center
			resp.Center = &center
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
