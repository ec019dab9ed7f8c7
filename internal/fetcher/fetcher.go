package fetcher

import (
	"context"

	"cnv/internal/rates"
)

// Fetcher is the core interface that all exchange-rate sources must implement.
// Each fetcher knows how to retrieve one complete rates snapshot and names
// itself with a stable key for logging and reporting.
type Fetcher interface {
	// Fetch retrieves and validates a snapshot.
	Fetch(ctx context.Context) (*rates.Snapshot, error)

	// Key returns a hierarchical identifier for this source.
	// Format: fetcher:{source}
	// Examples:
	//   - fetcher:rates
	//   - fetcher:currencyapi
	Key() string
}
