package fetcher

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"cnv/internal/rates"
	"cnv/internal/ratelimit"
)

// DefaultRatesURL is where the daily rates document is published
const DefaultRatesURL = "https://api.neerrrajj.me/currency_rates.json"

// SnapshotFetcher downloads the published rates document
type SnapshotFetcher struct {
	url    string
	client *resty.Client
}

// NewSnapshotFetcher creates a fetcher for the document at url
func NewSnapshotFetcher(url string, opts ...Option) *SnapshotFetcher {
	if url == "" {
		url = DefaultRatesURL
	}
	return &SnapshotFetcher{
		url:    url,
		client: NewHTTPClient("", opts...),
	}
}

// Fetch retrieves and validates the published snapshot
func (f *SnapshotFetcher) Fetch(ctx context.Context) (*rates.Snapshot, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APIRates); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)

	return decodeSnapshot(f.Key(), resp, err)
}

// Key returns the identifier for this source
func (f *SnapshotFetcher) Key() string {
	return "fetcher:rates"
}

// decodeSnapshot turns a resty outcome into a validated snapshot or a FetchError
func decodeSnapshot(source string, resp *resty.Response, err error) (*rates.Snapshot, error) {
	if err != nil {
		return nil, ClassifyTransportError(source, err)
	}

	if !resp.IsSuccess() {
		return nil, ClassifyHTTPError(source, resp.StatusCode())
	}

	snap, err := rates.Parse([]byte(resp.String()))
	if err != nil {
		return nil, NewValidationError(source, err)
	}

	return snap, nil
}
