// Package publish pushes poll-cycle Snapshots to external consumers.
//
// The only implementation is a Redis publisher that keeps the latest
// Snapshot under a single key with a TTL slightly longer than the poll
// interval, so a stalled poller naturally expires from view.
package publish
