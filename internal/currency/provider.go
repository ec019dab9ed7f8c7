package currency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"cnv/internal/cache"
	"cnv/internal/fetcher"
	"cnv/internal/rates"
)

// State is the freshness of the cached snapshot.
type State int

const (
	StaleOrMissing State = iota
	Fresh
)

func (s State) String() string {
	if s == Fresh {
		return "fresh"
	}
	return "stale or missing"
}

// Status describes the cache without touching the network.
type Status struct {
	State    State
	Snapshot *rates.Snapshot
	// LoadErr is set when the cache could not be read.
	LoadErr error
}

// Provider serves snapshots from a store, refetching once per UTC day.
type Provider struct {
	store   cache.Store
	fetcher fetcher.Fetcher
	clock   cache.Clock
	logger  *slog.Logger
	group   singleflight.Group
}

// NewProvider wires a provider. A nil clock means the wall clock and a nil
// logger means slog.Default().
func NewProvider(store cache.Store, f fetcher.Fetcher, clock cache.Clock, logger *slog.Logger) *Provider {
	if clock == nil {
		clock = cache.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		store:   store,
		fetcher: f,
		clock:   clock,
		logger:  logger,
	}
}

// Snapshot returns today's snapshot, from the store when it is fresh and
// otherwise from the fetcher. A failed fetch is returned even when an older
// snapshot is stored.
func (p *Provider) Snapshot(ctx context.Context) (*rates.Snapshot, error) {
	v, err, _ := p.group.Do("snapshot", func() (any, error) {
		st := p.Status(ctx)
		if st.State == Fresh {
			p.logger.Debug("using cached exchange rates", "last_updated_at", st.Snapshot.Meta.LastUpdatedAt)
			return st.Snapshot, nil
		}
		if st.LoadErr != nil && !errors.Is(st.LoadErr, cache.ErrNotFound) {
			p.logger.Debug("discarding unreadable cache", "error", st.LoadErr)
		}
		return p.fetchAndSave(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*rates.Snapshot).Clone(), nil
}

// Refresh fetches and stores a new snapshot regardless of freshness.
func (p *Provider) Refresh(ctx context.Context) (*rates.Snapshot, error) {
	v, err, _ := p.group.Do("refresh", func() (any, error) {
		return p.fetchAndSave(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*rates.Snapshot).Clone(), nil
}

// Status loads the stored snapshot and classifies it against the clock.
func (p *Provider) Status(ctx context.Context) Status {
	snap, err := p.store.Load(ctx)
	if err != nil {
		return Status{State: StaleOrMissing, LoadErr: err}
	}
	if snap.IsCurrent(p.clock.Now()) {
		return Status{State: Fresh, Snapshot: snap}
	}
	return Status{State: StaleOrMissing, Snapshot: snap}
}

func (p *Provider) fetchAndSave(ctx context.Context) (*rates.Snapshot, error) {
	p.logger.Debug("fetching exchange rates", "source", p.fetcher.Key())

	snap, err := p.fetcher.Fetch(ctx)
	if err != nil {
		if fetcher.IsValidation(err) {
			return nil, &Error{Kind: KindRemoteFormat, Message: "exchange rates response is malformed", Cause: err}
		}
		return nil, &Error{Kind: KindNetwork, Message: "failed to fetch exchange rates", Cause: err}
	}
	if snap == nil {
		return nil, &Error{Kind: KindRemoteFormat, Message: fmt.Sprintf("%s returned no exchange rates", p.fetcher.Key())}
	}

	if err := p.store.Save(ctx, snap); err != nil {
		return nil, &Error{Kind: KindCacheWrite, Message: "failed to save exchange rates", Cause: err}
	}

	p.logger.Debug("stored exchange rates", "last_updated_at", snap.Meta.LastUpdatedAt, "currencies", len(snap.Data))
	return snap, nil
}

// LoadErrKind maps a store load failure onto the error taxonomy. Such
// failures are recovered by refetching and only surface through Status.
func LoadErrKind(err error) Kind {
	switch {
	case err == nil, errors.Is(err, cache.ErrNotFound):
		return ""
	case errors.Is(err, cache.ErrCorrupt):
		return KindCacheFormat
	default:
		return KindCacheRead
	}
}
