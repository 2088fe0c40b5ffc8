package locator

import "time"

// Snapshot is the ordered enriched row set for one poll cycle plus its
// capture time and centroid. Each cycle produces a fresh Snapshot that
// supersedes the previous one wholesale; nothing is merged across cycles.
type Snapshot struct {
	At        time.Time     `json:"at"`
	Rows      []EnrichedRow `json:"rows"`
	Center    LatLng        `json:"center"`
	HasCenter bool          `json:"hasCenter"`
}

// NewSnapshot builds a Snapshot for one cycle, computing the centroid when
// any rows are present.
func NewSnapshot(at time.Time, rows []EnrichedRow) Snapshot {
	center, ok := Centroid(rows)
	return Snapshot{
		At:        at,
		Rows:      rows,
		Center:    center,
		HasCenter: ok,
	}
}

// Empty reports whether no requested vehicle was present in the feed this
// cycle. An empty Snapshot is the expected outcome when the buses are not
// in revenue service; it is distinct from a cycle error.
func (s Snapshot) Empty() bool { return len(s.Rows) == 0 }
