package fetcher

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"cnv/internal/rates"
	"cnv/internal/ratelimit"
)

// DefaultCurrencyAPIBaseURL is the currencyapi.com v3 endpoint
const DefaultCurrencyAPIBaseURL = "https://api.currencyapi.com/v3"

// CurrencyAPIFetcher pulls the latest rates from currencyapi.com. Its
// response has the same shape as the published document.
type CurrencyAPIFetcher struct {
	apiKey string
	client *resty.Client
}

// NewCurrencyAPIFetcher creates a new upstream fetcher
func NewCurrencyAPIFetcher(apiKey, baseURL string, opts ...Option) *CurrencyAPIFetcher {
	if baseURL == "" {
		baseURL = DefaultCurrencyAPIBaseURL
	}
	return &CurrencyAPIFetcher{
		apiKey: apiKey,
		client: NewHTTPClient(baseURL, opts...),
	}
}

// Fetch retrieves the latest rates
func (f *CurrencyAPIFetcher) Fetch(ctx context.Context) (*rates.Snapshot, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.APICurrencyAPI); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("apikey", f.apiKey).
		Get("/latest")

	return decodeSnapshot(f.Key(), resp, err)
}

// Key returns the identifier for this source
func (f *CurrencyAPIFetcher) Key() string {
	return "fetcher:currencyapi"
}
