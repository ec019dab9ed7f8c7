package cache

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"cnv/internal/rates"
)

const memoryKey = "exchange_rates"

// MemoryStore keeps the snapshot in process memory only.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: gocache.New(gocache.NoExpiration, 0)}
}

// Load returns a copy of the stored snapshot.
func (s *MemoryStore) Load(ctx context.Context) (*rates.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := s.c.Get(memoryKey)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*rates.Snapshot).Clone(), nil
}

// Save stores a copy of snap, replacing any previous one.
func (s *MemoryStore) Save(ctx context.Context, snap *rates.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.c.Set(memoryKey, snap.Clone(), gocache.NoExpiration)
	return nil
}
