// Package snapshot persists the full play state so a run survives
// restarts. A snapshot is one JSON document per hero.
package snapshot

import (
	"context"
	"time"

	"github.com/emberfall/ascent/internal/domain/gamelog"
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/story"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksnapshot -source=interface.go

// Snapshot is the serialized form of one run: the hero sheet plus
// every piece of session state needed to resume play.
type Snapshot struct {
	ID             string                   `json:"id"`
	Hero           *hero.State              `json:"hero"`
	CurrentSceneID string                   `json:"currentSceneId,omitempty"`
	LastSceneID    string                   `json:"lastSceneId,omitempty"`
	VisitedScenes  map[string]int           `json:"visitedScenes,omitempty"`
	Beats          []story.Beat             `json:"beats,omitempty"`
	Conversations  []story.ConversationTurn `json:"conversations,omitempty"`
	Log            []gamelog.Entry          `json:"log,omitempty"`
	SavedAt        time.Time                `json:"savedAt"`
}

// Repository stores snapshots keyed by id. Load returns nil with no
// error when nothing usable is stored; a missing or corrupt snapshot
// just means a fresh start.
type Repository interface {
	Load(ctx context.Context, id string) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Clear(ctx context.Context, id string) error
}

// TimeProvider abstracts the clock for deterministic tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock.
type RealTimeProvider struct{}

// Now returns the current UTC time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
