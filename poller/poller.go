package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/transit-tools/buslocator/gtfsrt"
	"github.com/transit-tools/buslocator/locator"
)

// Fetcher fetches one raw feed payload per cycle.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Poller repeatedly runs the pipeline for a fixed vehicle identifier set
// and emits each cycle's Snapshot.
type Poller struct {
	fetcher  Fetcher
	ids      []int
	interval time.Duration
	loc      *time.Location
	out      chan locator.Snapshot
}

// New creates a Poller. The identifier set must already be validated with
// locator.ParseVehicleIDs.
func New(fetcher Fetcher, ids []int, interval time.Duration, loc *time.Location) *Poller {
	return &Poller{
		fetcher:  fetcher,
		ids:      ids,
		interval: interval,
		loc:      loc,
		out:      make(chan locator.Snapshot, 1),
	}
}

// Snapshots returns the channel on which cycle results are emitted. The
// channel is closed when Run returns. A slow consumer only ever sees the
// most recent Snapshot; stale ones are dropped, never queued up.
func (p *Poller) Snapshots() <-chan locator.Snapshot {
	return p.out
}

// Run executes poll cycles until ctx is cancelled. Cancellation is checked
// between cycles, not mid-cycle; a cycle is short and not worth
// interrupting.
func (p *Poller) Run(ctx context.Context) {
	defer close(p.out)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.emit(p.Cycle(ctx))

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Poll loop stopped")
			return
		case <-ticker.C:
			p.emit(p.Cycle(ctx))
		}
	}
}

// Cycle runs one fetch-decode-project-enrich pass. Transport and decode
// failures are logged and yield an empty Snapshot; the caller retries on
// the next interval.
func (p *Poller) Cycle(ctx context.Context) locator.Snapshot {
	now := time.Now().In(p.loc)

	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Feed fetch failed, treating cycle as empty")
		return locator.NewSnapshot(now, nil)
	}

	entities, err := gtfsrt.Decode(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Feed decode failed, treating cycle as empty")
		return locator.NewSnapshot(now, nil)
	}

	rows := locator.Project(entities, p.ids)
	enriched := locator.Enrich(rows, p.loc)
	snap := locator.NewSnapshot(now, enriched)

	log.Debug().
		Int("entities", len(entities)).
		Int("matched", len(enriched)).
		Bool("empty", snap.Empty()).
		Msg("Poll cycle complete")

	return snap
}

// emit replaces any undelivered Snapshot with the fresh one.
func (p *Poller) emit(snap locator.Snapshot) {
	for {
		select {
		case p.out <- snap:
			return
		default:
			select {
			case <-p.out:
			default:
			}
		}
	}
}
