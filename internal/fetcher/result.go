package fetcher

import "cnv/internal/rates"

// Result represents the outcome of a fetch operation.
// It's sent through channels from worker goroutines to the coordinator.
type Result struct {
	// Key identifies the source that produced this result
	Key string

	// Snapshot is the fetched document
	Snapshot *rates.Snapshot

	// Error contains any error that occurred during the fetch operation.
	// If Error is not nil, Snapshot is nil.
	Error error
}
