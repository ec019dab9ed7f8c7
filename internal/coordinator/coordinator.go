package coordinator

import (
	"context"
	"fmt"
	"sync"

	"cnv/internal/fetcher"
)

// Coordinator queries several rate sources concurrently
type Coordinator struct {
	fetchers []fetcher.Fetcher
}

// New creates a new Coordinator with the given fetchers
func New(fetchers []fetcher.Fetcher) *Coordinator {
	return &Coordinator{
		fetchers: fetchers,
	}
}

// Run executes all fetchers concurrently and returns one Result per fetcher
// in the order the fetchers were given. Individual failures are reported in
// the Result, not as the returned error.
func (c *Coordinator) Run(ctx context.Context) ([]fetcher.Result, error) {
	if len(c.fetchers) == 0 {
		return nil, fmt.Errorf("no fetchers configured")
	}

	type indexed struct {
		i int
		r fetcher.Result
	}

	resultChan := make(chan indexed, len(c.fetchers))

	var wg sync.WaitGroup
	for i, f := range c.fetchers {
		wg.Add(1)
		go func(i int, ft fetcher.Fetcher) {
			defer wg.Done()

			snap, err := ft.Fetch(ctx)
			resultChan <- indexed{i, fetcher.Result{
				Key:      ft.Key(),
				Snapshot: snap,
				Error:    err,
			}}
		}(i, f)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]fetcher.Result, len(c.fetchers))
	for res := range resultChan {
		results[res.i] = res.r
	}

	return results, nil
}
