package buslocator

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status              string `json:"status"`
	LatestSnapshotEpoch int64  `json:"latest_snapshot_epoch"`
}

func handleHealth(store *SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := healthResponse{Status: "ok"}
		if snap, ok := store.Latest(); ok {
			resp.LatestSnapshotEpoch = snap.At.Unix()
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
