package buslocator

import (
	"sync/atomic"

	"github.com/transit-tools/buslocator/locator"
)

// SnapshotStore holds the most recent Snapshot for the HTTP handlers.
// Each cycle's Snapshot fully replaces the previous one.
type SnapshotStore struct {
	current atomic.Pointer[locator.Snapshot]
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Set replaces the stored Snapshot.
func (s *SnapshotStore) Set(snap locator.Snapshot) {
	s.current.Store(&snap)
}

// Latest returns the most recent Snapshot, or ok=false before the first
// cycle completes.
func (s *SnapshotStore) Latest() (locator.Snapshot, bool) {
	p := s.current.Load()
	if p == nil {
		return locator.Snapshot{}, false
	}
	return *p, true
}
