// Package narrator talks to the remote narration service that turns a
// player action into the next story beat.
package narrator

import (
	"context"

	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/story"
)

//go:generate mockgen -destination=mock/mock_client.go -package=mocknarrator -source=client.go

// AdvanceInput carries one player action plus the context the service
// needs: the current hero sheet and a trailing window of beats.
type AdvanceInput struct {
	Action string       `json:"action"`
	Hero   *hero.State  `json:"hero"`
	Beats  []story.Beat `json:"beats"`
}

// Client produces the next story beat for a player action.
type Client interface {
	Advance(ctx context.Context, input *AdvanceInput) (*story.Beat, error)
}
