package cache

import (
	"context"
	"errors"
	"time"

	"cnv/internal/rates"
)

var (
	// ErrNotFound is returned by Load when no snapshot has been saved.
	ErrNotFound = errors.New("no cached exchange rates")
	// ErrCorrupt is returned by Load when the stored snapshot cannot be decoded.
	ErrCorrupt = errors.New("cached exchange rates are corrupt")
)

// Store holds at most one exchange-rate snapshot. Save replaces it.
type Store interface {
	Load(ctx context.Context) (*rates.Snapshot, error)
	Save(ctx context.Context, snap *rates.Snapshot) error
}

// Clock supplies the current time so freshness can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
