package snapshot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/emberfall/ascent/internal/errors"
)

// InMemoryRepository stores snapshots in memory. Useful for testing
// and for throwaway runs.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		snapshots: make(map[string][]byte),
	}
}

// Load returns the stored snapshot, or nil when absent or corrupt
func (r *InMemoryRepository) Load(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.snapshots[id]
	if !exists {
		return nil, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

// Save stores a copy of the snapshot
func (r *InMemoryRepository) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot cannot be nil")
	}
	if snap.ID == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snap.ID] = data
	return nil
}

// Clear removes the stored snapshot if present
func (r *InMemoryRepository) Clear(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, id)
	return nil
}
