// Package poller runs the repeated fetch-decode-project-enrich cycle.
//
// The loop is a cancellable scheduled task: one cycle runs to completion,
// its Snapshot is emitted on a channel, then the loop waits a fixed
// interval before the next cycle. At most one cycle is ever in flight.
// Transport and decode failures are recovered locally as empty Snapshots;
// a bad cycle never stops the loop.
package poller
