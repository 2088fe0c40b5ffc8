package poller_test

import (
	"context"
	"sync"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/transit-tools/buslocator/internal/feedtest"
	"github.com/transit-tools/buslocator/locator"
	"github.com/transit-tools/buslocator/poller"
)

type response struct {
	raw []byte
	err error
}

// scriptedFetcher replays a fixed sequence of fetch results, repeating the
// last one once the script runs out.
type scriptedFetcher struct {
	mu        sync.Mutex
	responses []response
	calls     int
}

func (f *scriptedFetcher) Fetch(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	f.calls++
	r := f.responses[i]
	return r.raw, r.err
}

type failedFetch struct{ msg string }

func (e *failedFetch) Error() string { return e.msg }

func locationET(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func TestCycleEndToEnd(t *testing.T) {
	raw := feedtest.Marshal(t,
		feedtest.Entity("100", 39.0, -77.5, 1700000100),
		feedtest.Entity("200", 38.5, -77.25, 1700000200),
		feedtest.Entity("300", 38.75, -77.0, 1700000300),
	)
	fetcher := &scriptedFetcher{responses: []response{{raw: raw}}}

	p := poller.New(fetcher, []int{200, 999}, time.Minute, locationET(t))
	snap := p.Cycle(context.Background())

	if snap.Empty() {
		t.Fatal("expected a non-empty snapshot")
	}
	if len(snap.Rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(snap.Rows))
	}

	row := snap.Rows[0]
	if row.BusID != 200 {
		t.Errorf("expected bus_id 200, got %d", row.BusID)
	}
	if row.T.Unix() != 1700000200 {
		t.Errorf("expected localized timestamp to round-trip to 1700000200, got %d", row.T.Unix())
	}

	if !snap.HasCenter {
		t.Fatal("expected a centroid")
	}
	if snap.Center.Lat != row.Geometry.Lat || snap.Center.Lng != row.Geometry.Lon {
		t.Errorf("single-row centroid %+v does not equal the row's point (%v, %v)",
			snap.Center, row.Geometry.Lat, row.Geometry.Lon)
	}
}

func TestCycleTransportErrorYieldsEmptySnapshot(t *testing.T) {
	fetcher := &scriptedFetcher{responses: []response{{err: &failedFetch{msg: "connection refused"}}}}

	p := poller.New(fetcher, []int{200}, time.Minute, locationET(t))
	snap := p.Cycle(context.Background())

	if !snap.Empty() {
		t.Error("expected an empty snapshot after a transport failure")
	}
	if snap.HasCenter {
		t.Error("expected no centroid after a transport failure")
	}
}

func TestRunRecoversAfterDecodeFailure(t *testing.T) {
	good := feedtest.Marshal(t, feedtest.Entity("200", 38.5, -77.25, 1700000200))
	fetcher := &scriptedFetcher{responses: []response{
		{raw: []byte{0xff, 0xff, 0xff, 0xff}},
		{raw: good},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := poller.New(fetcher, []int{200}, 10*time.Millisecond, locationET(t))
	go p.Run(ctx)

	var snapshots []locator.Snapshot
	timeout := time.After(5 * time.Second)
	for len(snapshots) < 2 {
		select {
		case snap, ok := <-p.Snapshots():
			if !ok {
				t.Fatal("snapshot channel closed early")
			}
			snapshots = append(snapshots, snap)
		case <-timeout:
			t.Fatalf("timed out waiting for snapshots, got %d", len(snapshots))
		}
	}

	if !snapshots[0].Empty() {
		t.Error("expected the decode-failure cycle to yield an empty snapshot")
	}
	if snapshots[1].Empty() {
		t.Error("expected the following cycle to recover and yield rows")
	}
	if len(snapshots[1].Rows) != 1 || snapshots[1].Rows[0].BusID != 200 {
		t.Errorf("unexpected recovered snapshot rows: %+v", snapshots[1].Rows)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	raw := feedtest.Marshal(t, feedtest.Entity("200", 38.5, -77.25, 1700000200))
	fetcher := &scriptedFetcher{responses: []response{{raw: raw}}}

	ctx, cancel := context.WithCancel(context.Background())
	p := poller.New(fetcher, []int{200}, 10*time.Millisecond, locationET(t))

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// Drain until cancellation so Run is never blocked on emit.
	go func() {
		for range p.Snapshots() {
		}
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poll loop did not stop after cancellation")
	}
}
