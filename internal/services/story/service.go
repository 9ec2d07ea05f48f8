// Package story runs the freeform narration mode: the player types
// actions, a remote narrator answers with beats, and the engine folds
// each beat's consequences back into the hero.
package story

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/emberfall/ascent/internal/clients/narrator"
	"github.com/emberfall/ascent/internal/domain/campaign"
	"github.com/emberfall/ascent/internal/domain/gamelog"
	"github.com/emberfall/ascent/internal/domain/hero"
	storybeat "github.com/emberfall/ascent/internal/domain/story"
	"github.com/emberfall/ascent/internal/errors"
	"github.com/emberfall/ascent/internal/repositories/snapshot"
	"github.com/emberfall/ascent/internal/uuid"
)

// OfflineNotice is surfaced whenever a beat had to be produced locally.
const OfflineNotice = "Narrator offline. Continuing with local narration."

// terminalFlags end the run regardless of what later beats say
var terminalFlags = []string{"heart_cleansed", "heart_shattered"}

// Service drives the freeform narration session
type Service interface {
	// StartCharacter begins a fresh freeform run
	StartCharacter(ctx context.Context, h *hero.State) error

	// Restore resumes a saved run, reporting whether one existed
	Restore(ctx context.Context, heroID string) (bool, error)

	// SubmitAction sends the player action to the narrator and folds
	// the resulting beat into play state. It never fails: when the
	// narrator cannot deliver, a deterministic local beat is used.
	// Returns nil only when the action is a no-op (empty text, no
	// hero, or a stale response discarded after a reset).
	SubmitAction(ctx context.Context, action string) *storybeat.Beat

	// Read accessors for the presentation layer
	Hero() *hero.State
	Beats() []storybeat.Beat
	Notice() string
	LogEntries() []gamelog.Entry
	IsComplete() bool

	// Reset abandons the run and clears the stored snapshot
	Reset(ctx context.Context) error
}

type service struct {
	mu sync.Mutex

	campaign      *campaign.Campaign
	client        narrator.Client
	uuidGenerator uuid.Generator
	repository    snapshot.Repository
	rnd           *rand.Rand

	hero       *hero.State
	beats      []storybeat.Beat
	gameLog    *gamelog.Log
	notice     string
	generation int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Campaign      *campaign.Campaign  // Required
	Repository    snapshot.Repository // Required
	Client        narrator.Client     // Optional: nil means always narrate locally
	UUIDGenerator uuid.Generator      // Optional, defaults to Google UUIDs
	RandSource    rand.Source         // Optional, for deterministic fallback NPC picks
}

// NewService creates a new narrative beat reconciler
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Campaign == nil {
		return nil, errors.InvalidArgument("campaign is required")
	}
	if cfg.Repository == nil {
		return nil, errors.InvalidArgument("repository is required")
	}
	if err := cfg.Campaign.Validate(); err != nil {
		return nil, err
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	source := cfg.RandSource
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &service{
		campaign:      cfg.Campaign,
		client:        cfg.Client,
		uuidGenerator: uuidGenerator,
		repository:    cfg.Repository,
		rnd:           rand.New(source),
		gameLog:       gamelog.New(),
	}, nil
}

func (s *service) StartCharacter(ctx context.Context, h *hero.State) error {
	if h == nil {
		return errors.InvalidArgument("hero is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hero = h.Clone()
	s.beats = nil
	s.gameLog = gamelog.New()
	s.notice = ""
	s.generation++

	s.appendLog(gamelog.TypeSystem,
		fmt.Sprintf("Welcome to %s, %s. The story is yours to steer.", s.campaign.Title, h.Name), "")
	s.persist(ctx)
	return nil
}

func (s *service) Restore(ctx context.Context, heroID string) (bool, error) {
	snap, err := s.repository.Load(ctx, heroID)
	if err != nil {
		return false, err
	}
	if snap == nil || snap.Hero == nil {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hero = snap.Hero
	s.beats = snap.Beats
	s.gameLog = gamelog.Restore(snap.Log)
	s.notice = ""
	s.generation++
	return true, nil
}

func (s *service) SubmitAction(ctx context.Context, action string) *storybeat.Beat {
	action = strings.TrimSpace(action)

	s.mu.Lock()
	if s.hero == nil || action == "" {
		s.mu.Unlock()
		return nil
	}

	// The action lands in the log before any network round trip
	s.appendLog(gamelog.TypeAction, action, "")

	generation := s.generation
	heroCopy := s.hero.Clone()
	window := storybeat.Window(s.beats, storybeat.NarratorWindow)
	s.mu.Unlock()

	beat, fallback := s.requestBeat(ctx, action, heroCopy, window)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session moved on while the request was in flight
	if s.generation != generation || s.hero == nil {
		return nil
	}

	s.beats = storybeat.AppendBeat(s.beats, *beat)

	s.appendLog(gamelog.TypeNarration, beat.Narrative, "")
	for _, reply := range beat.NPCReplies {
		s.appendLog(gamelog.TypeNarration, reply.Text, s.npcName(reply.NPCID))
	}

	if beat.Delta != nil {
		s.hero = hero.Apply(s.hero, beat.Delta.Effect())
		for _, note := range beat.Delta.Notes {
			s.appendLog(gamelog.TypeEffect, note, "")
		}
	}

	if fallback {
		s.notice = OfflineNotice
		s.appendLog(gamelog.TypeSystem, OfflineNotice, "")
	} else {
		s.notice = ""
	}

	s.persist(ctx)
	return beat
}

// requestBeat asks the narrator, degrading to the local generator on
// any failure. The second return reports whether the fallback fired.
func (s *service) requestBeat(ctx context.Context, action string, h *hero.State, window []storybeat.Beat) (*storybeat.Beat, bool) {
	if s.client == nil {
		return s.fallbackBeat(action, window), true
	}

	beat, err := s.client.Advance(ctx, &narrator.AdvanceInput{
		Action: action,
		Hero:   h,
		Beats:  window,
	})
	if err != nil {
		log.Printf("Narrator unavailable, using local narration: %v", err)
		return s.fallbackBeat(action, window), true
	}
	return beat, false
}

// fallbackBeat synthesizes a deterministic beat: the player's action
// echoed into the current act's situation, one anchor NPC line, no
// delta.
func (s *service) fallbackBeat(action string, window []storybeat.Beat) *storybeat.Beat {
	act := s.inferAct(window)

	narrative := fmt.Sprintf(
		"You %s. %s You sense time slipping as the Heart pulses above Emberfall.",
		action, act.Situation)

	return &storybeat.Beat{
		ID:           s.uuidGenerator.New(),
		PlayerAction: action,
		Narrative:    narrative,
		NPCReplies:   []storybeat.Reply{s.anchorReply()},
		Tags:         []string{act.ID},
		CreatedAt:    time.Now().UTC(),
	}
}

// inferAct finds the running act: the latest beat tag naming an act,
// falling back to a beat-count heuristic
func (s *service) inferAct(window []storybeat.Beat) *campaign.Act {
	if len(window) > 0 {
		last := window[len(window)-1]
		for _, tag := range last.Tags {
			if act := s.campaign.ActByID(tag); act != nil {
				return act
			}
		}
	}

	index := 0
	switch {
	case len(window) >= 4:
		index = 2
	case len(window) >= 2:
		index = 1
	}
	if index >= len(s.campaign.Acts) {
		index = len(s.campaign.Acts) - 1
	}
	return &s.campaign.Acts[index]
}

func (s *service) anchorReply() storybeat.Reply {
	if len(s.campaign.Characters) == 0 {
		return storybeat.Reply{
			NPCID: "narrator",
			Text:  "The people of Emberfall wait for you to steady the Heart. Keep moving.",
		}
	}
	pick := s.campaign.Characters[s.rnd.Intn(len(s.campaign.Characters))]
	return storybeat.Reply{NPCID: pick.ID, Text: pick.Voice}
}

func (s *service) npcName(npcID string) string {
	if npc := s.campaign.CharacterByID(npcID); npc != nil {
		return npc.Name
	}
	return npcID
}

func (s *service) Hero() *hero.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero.Clone()
}

func (s *service) Beats() []storybeat.Beat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storybeat.Beat, len(s.beats))
	copy(out, s.beats)
	return out
}

func (s *service) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

func (s *service) LogEntries() []gamelog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameLog.Entries()
}

// IsComplete is derived, never stored: an ending beat or a terminal
// hero flag closes the run
func (s *service) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hero == nil {
		return false
	}
	for _, flag := range terminalFlags {
		if s.hero.HasFlag(flag) {
			return true
		}
	}
	for _, beat := range s.beats {
		if beat.Delta != nil && beat.Delta.IsEnding {
			return true
		}
	}
	return false
}

func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	heroID := ""
	if s.hero != nil {
		heroID = s.hero.ID
	}
	s.hero = nil
	s.beats = nil
	s.gameLog = gamelog.New()
	s.notice = ""
	s.generation++
	s.mu.Unlock()

	if heroID == "" {
		return nil
	}
	return s.repository.Clear(ctx, heroID)
}

func (s *service) appendLog(entryType gamelog.EntryType, label, detail string) {
	s.gameLog.Append(gamelog.Entry{
		ID:        s.uuidGenerator.New(),
		Type:      entryType,
		Label:     label,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	})
}

// persist is best effort; a failed save never rolls back play state
func (s *service) persist(ctx context.Context) {
	if s.hero == nil {
		return
	}
	snap := &snapshot.Snapshot{
		ID:    s.hero.ID,
		Hero:  s.hero,
		Beats: s.beats,
		Log:   s.gameLog.Entries(),
	}
	if err := s.repository.Save(ctx, snap); err != nil {
		log.Printf("Failed to save snapshot for hero %s: %v", s.hero.ID, err)
	}
}
