package snapshot

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/emberfall/ascent/internal/errors"
)

var cleanKeyRe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// FileRepository stores snapshots as pretty-printed JSON files under
// a data directory, one file per snapshot id.
type FileRepository struct {
	mu           sync.Mutex
	dir          string
	timeProvider TimeProvider
}

// FileRepoConfig configures the file-backed repository.
type FileRepoConfig struct {
	Dir          string
	TimeProvider TimeProvider
}

// NewFileRepository creates a new file-backed snapshot repository
func NewFileRepository(cfg *FileRepoConfig) *FileRepository {
	dir := "data"
	var tp TimeProvider = &RealTimeProvider{}
	if cfg != nil {
		if cfg.Dir != "" {
			dir = cfg.Dir
		}
		if cfg.TimeProvider != nil {
			tp = cfg.TimeProvider
		}
	}
	return &FileRepository{dir: dir, timeProvider: tp}
}

func (r *FileRepository) path(id string) string {
	return filepath.Join(r.dir, cleanKeyRe.ReplaceAllString(id, "")+".json")
}

// Load returns the stored snapshot, or nil when the file is missing
// or no longer parses.
func (r *FileRepository) Load(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read snapshot '%s'", id)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Discarding corrupt snapshot '%s': %v", id, err)
		return nil, nil
	}
	return &snap, nil
}

// Save writes the snapshot, stamping SavedAt. Pretty-printed so the
// save files stay hand-inspectable.
func (r *FileRepository) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot cannot be nil")
	}
	if snap.ID == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create snapshot directory")
	}

	snap.SavedAt = r.timeProvider.Now()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := os.WriteFile(r.path(snap.ID), data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot '%s'", snap.ID)
	}
	return nil
}

// Clear removes the snapshot file if present
func (r *FileRepository) Clear(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to clear snapshot '%s'", id)
	}
	return nil
}
