package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cnv/internal/cache"
	"cnv/internal/fetcher"
	"cnv/internal/rates"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context) (*rates.Snapshot, error)
	KeyFunc   func() string

	calls atomic.Int32
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (*rates.Snapshot, error) {
	m.calls.Add(1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// Key implements the Fetcher interface
func (m *MockFetcher) Key() string {
	if m.KeyFunc != nil {
		return m.KeyFunc()
	}
	return "fetcher:mock"
}

// Calls returns how many times Fetch ran
func (m *MockFetcher) Calls() int {
	return int(m.calls.Load())
}

// NewMockFetcher creates a mock fetcher returning the given snapshot and error
func NewMockFetcher(key string, snap *rates.Snapshot, err error) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (*rates.Snapshot, error) {
			if err != nil {
				return nil, err
			}
			return snap.Clone(), nil
		},
		KeyFunc: func() string {
			return key
		},
	}
}

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// Clock is a settable cache.Clock
type Clock struct {
	now atomic.Pointer[time.Time]
}

// NewClock returns a clock fixed at t
func NewClock(t time.Time) *Clock {
	c := &Clock{}
	c.Set(t)
	return c
}

// Now implements cache.Clock
func (c *Clock) Now() time.Time {
	return *c.now.Load()
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.now.Store(&t)
}

var _ cache.Clock = (*Clock)(nil)

// Snapshot builds a snapshot published at ts with USD=1 and EUR=0.9
func Snapshot(ts time.Time) *rates.Snapshot {
	return rates.New(ts, map[string]float64{"USD": 1, "EUR": 0.9})
}

// RatesServer serves body as the rates document and counts requests
type RatesServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits returns the number of requests served
func (s *RatesServer) Hits() int {
	return int(s.hits.Load())
}

// NewRatesServer starts a server returning status and body for every request.
// It is closed when the test ends.
func NewRatesServer(t *testing.T, status int, body string) *RatesServer {
	t.Helper()
	rs := &RatesServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}
