package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cnv/internal/rates"
)

// FileName is the cache file inside the cache directory.
const FileName = "exchange_rates.json"

// FileStore keeps the snapshot as a JSON file.
type FileStore struct {
	dir string
}

// NewFileStore returns a store writing to dir/exchange_rates.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir is the per-user cache directory for cnv.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	return filepath.Join(base, "cnv"), nil
}

// Path returns the cache file location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load reads and validates the cached snapshot.
func (s *FileStore) Load(ctx context.Context) (*rates.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(), err)
	}

	snap, err := rates.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return snap, nil
}

// Save writes the snapshot through a temporary file renamed over the old one.
func (s *FileStore) Save(ctx context.Context, snap *rates.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := snap.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}
