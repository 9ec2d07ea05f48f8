// Package story holds the freeform narration mode's domain types: the
// beats produced as the player trades actions with the narrator, and
// the deltas those beats fold back into the hero.
package story

import (
	"time"

	"github.com/emberfall/ascent/internal/domain/hero"
)

// MaxBeats caps the retained beat history. Older beats fall off the
// front once the cap is reached.
const MaxBeats = 25

// NarratorWindow is how many trailing beats accompany each narrator
// request for context.
const NarratorWindow = 6

// Reply is one NPC voice line within a beat.
type Reply struct {
	NPCID string `json:"npcId"`
	Text  string `json:"text"`
}

// Delta is the mechanical consequence of a beat. Unlike a scene
// outcome it never grants items or features; the narrator only moves
// the softer dials.
type Delta struct {
	StatusAdjust map[string]int               `json:"statusAdjust,omitempty"`
	Flags        map[string]bool              `json:"flags,omitempty"`
	Allies       map[string]hero.Relationship `json:"allies,omitempty"`
	Notes        []string                     `json:"notes,omitempty"`
	IsEnding     bool                         `json:"isEnding,omitempty"`
}

// IsZero reports whether the delta carries no changes at all.
func (d *Delta) IsZero() bool {
	if d == nil {
		return true
	}
	return len(d.StatusAdjust) == 0 && len(d.Flags) == 0 &&
		len(d.Allies) == 0 && len(d.Notes) == 0 && !d.IsEnding
}

// Effect converts the delta into an applicable hero effect.
func (d *Delta) Effect() *hero.Effect {
	if d == nil {
		return nil
	}
	return &hero.Effect{
		StatusAdjust: d.StatusAdjust,
		Flags:        d.Flags,
		Allies:       d.Allies,
		Notes:        d.Notes,
		IsEnding:     d.IsEnding,
	}
}

// Beat is one exchange in the freeform mode: the player's action and
// the narration it produced.
type Beat struct {
	ID           string    `json:"id"`
	PlayerAction string    `json:"playerAction"`
	Narrative    string    `json:"narrative"`
	NPCReplies   []Reply   `json:"npcReplies,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Delta        *Delta    `json:"delta,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ConversationTurn is one line of dialogue recorded alongside play,
// either the player's or an NPC's.
type ConversationTurn struct {
	ID        string    `json:"id"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// AppendBeat appends a beat to a history slice, evicting from the
// front past MaxBeats.
func AppendBeat(beats []Beat, beat Beat) []Beat {
	beats = append(beats, beat)
	if len(beats) > MaxBeats {
		beats = beats[len(beats)-MaxBeats:]
	}
	return beats
}

// Window returns the trailing n beats for narrator context.
func Window(beats []Beat, n int) []Beat {
	if len(beats) <= n {
		return beats
	}
	return beats[len(beats)-n:]
}
