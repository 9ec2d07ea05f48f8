// Package scene runs the structured story mode: a hero moving through
// the campaign's branching scene graph one choice at a time.
package scene

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/emberfall/ascent/internal/dice"
	"github.com/emberfall/ascent/internal/domain/campaign"
	"github.com/emberfall/ascent/internal/domain/gamelog"
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/rules"
	"github.com/emberfall/ascent/internal/domain/story"
	"github.com/emberfall/ascent/internal/errors"
	"github.com/emberfall/ascent/internal/repositories/snapshot"
	"github.com/emberfall/ascent/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockscene -source=service.go

// ChoiceView is one rendered choice: hidden choices are omitted,
// gated ones are surfaced disabled.
type ChoiceView struct {
	Choice   *campaign.Choice
	Disabled bool
}

// ChoiceResult reports what a chosen option resolved to. Check is nil
// for auto-success choices.
type ChoiceResult struct {
	Outcome  *campaign.Outcome
	Check    *dice.CheckResult
	Complete bool
}

// Service drives one hero through the scene graph
type Service interface {
	// StartCharacter begins a fresh run at the campaign's intro scene
	StartCharacter(ctx context.Context, h *hero.State) error

	// Restore resumes a saved run, reporting whether one existed
	Restore(ctx context.Context, heroID string) (bool, error)

	// ChooseOption resolves a choice in the current scene. Unknown,
	// hidden, or gated choice ids are a silent no-op (nil, nil).
	ChooseOption(ctx context.Context, choiceID string) (*ChoiceResult, error)

	// RollFlavor rolls a cosmetic dice formula and logs it
	RollFlavor(ctx context.Context, formula string) (*dice.FormulaResult, error)

	// RecordPlayerLine and RecordNPCLine capture manual dialogue turns
	RecordPlayerLine(text string)
	RecordNPCLine(npcID, text string)

	// Read accessors for the presentation layer
	Hero() *hero.State
	Campaign() *campaign.Campaign
	CurrentScene() *campaign.Scene
	VisibleChoices() []ChoiceView
	LastRoll() *dice.CheckResult
	Conversations() []story.ConversationTurn
	LogEntries() []gamelog.Entry
	IsComplete() bool

	// Reset abandons the run and clears the stored snapshot
	Reset(ctx context.Context) error
}

type service struct {
	mu sync.Mutex

	campaign      *campaign.Campaign
	roller        dice.Roller
	uuidGenerator uuid.Generator
	repository    snapshot.Repository

	hero           *hero.State
	currentSceneID string
	lastSceneID    string
	visitedScenes  map[string]int
	gameLog        *gamelog.Log
	lastRoll       *dice.CheckResult
	conversations  []story.ConversationTurn
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Campaign      *campaign.Campaign  // Required
	Repository    snapshot.Repository // Required
	Roller        dice.Roller         // Optional, defaults to a random roller
	UUIDGenerator uuid.Generator      // Optional, defaults to Google UUIDs
}

// NewService creates a new scene interpreter
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

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		campaign:      cfg.Campaign,
		roller:        roller,
		uuidGenerator: uuidGenerator,
		repository:    cfg.Repository,
		visitedScenes: make(map[string]int),
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
	s.currentSceneID = ""
	s.lastSceneID = ""
	s.visitedScenes = make(map[string]int)
	s.gameLog = gamelog.New()
	s.lastRoll = nil
	s.conversations = nil

	class, _ := rules.ClassByID(h.ClassID)
	race, _ := rules.RaceByID(h.RaceID)
	className, raceName := h.ClassID, h.RaceID
	if class != nil {
		className = class.Name
	}
	if race != nil {
		raceName = race.Name
	}
	s.appendLog(gamelog.TypeSystem,
		fmt.Sprintf("Welcome to %s, %s the %s %s.", s.campaign.Title, h.Name, raceName, className), "")

	s.enterScene(s.campaign.IntroSceneID)
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
	s.currentSceneID = snap.CurrentSceneID
	s.lastSceneID = snap.LastSceneID
	s.visitedScenes = snap.VisitedScenes
	if s.visitedScenes == nil {
		s.visitedScenes = make(map[string]int)
	}
	s.gameLog = gamelog.Restore(snap.Log)
	s.conversations = snap.Conversations
	s.lastRoll = nil
	return true, nil
}

func (s *service) ChooseOption(ctx context.Context, choiceID string) (*ChoiceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hero == nil || s.currentSceneID == "" {
		return nil, nil
	}
	scene := s.campaign.Scene(s.currentSceneID)
	if scene == nil {
		return nil, nil
	}
	choice := scene.Choice(choiceID)
	if choice == nil || !s.selectable(choice) {
		return nil, nil
	}

	s.appendLog(gamelog.TypeChoice, choice.Label, choice.Description)

	var outcome *campaign.Outcome
	var check *dice.CheckResult

	switch {
	case choice.AutoSuccess != nil:
		outcome = choice.AutoSuccess
	case choice.SkillCheck != nil:
		var err error
		outcome, check, err = s.resolveCheck(choice.SkillCheck)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	s.applyOutcome(outcome)
	s.persist(ctx)

	return &ChoiceResult{
		Outcome:  outcome,
		Check:    check,
		Complete: s.currentSceneID == "",
	}, nil
}

// resolveCheck rolls the d20 for a gated choice and picks the branch
func (s *service) resolveCheck(sc *campaign.SkillCheck) (*campaign.Outcome, *dice.CheckResult, error) {
	proficient := false
	skillLabel := ""
	if sc.Skill != "" {
		proficient = s.hero.Skills[sc.Skill]
		skillLabel = rules.SkillLabel(sc.Skill)
	}

	// A cleansed Heart steadies the mind: wisdom checks get +1
	misc := 0
	if sc.Ability == rules.AbilityWisdom && s.hero.HasFlag("heart_cleansed") {
		misc = 1
	}

	result, err := dice.ResolveCheck(s.roller, &dice.CheckOptions{
		Ability:          rules.AbilityLabels[sc.Ability],
		Skill:            skillLabel,
		AbilityMod:       s.hero.AbilityScores.Modifier(sc.Ability),
		ProficiencyBonus: s.hero.ProficiencyBonus,
		Proficient:       proficient,
		MiscBonus:        misc,
		DC:               sc.DC,
		Advantage:        sc.AdvantageIfFlag != "" && s.hero.HasFlag(sc.AdvantageIfFlag),
		Disadvantage:     sc.DisadvantageIfFlag != "" && s.hero.HasFlag(sc.DisadvantageIfFlag),
	})
	if err != nil {
		return nil, nil, err
	}

	s.lastRoll = result
	s.appendLog(gamelog.TypeRoll, result.Summary(), "")

	if result.Success {
		return &sc.Success, result, nil
	}
	return &sc.Failure, result, nil
}

// applyOutcome logs the narrative, folds the effect into the hero, and
// moves the scene pointer
func (s *service) applyOutcome(outcome *campaign.Outcome) {
	if outcome.Narrative != "" {
		s.appendLog(gamelog.TypeNarration, outcome.Narrative, "")
	}
	s.applyEffect(outcome.Effects)

	if outcome.NextSceneID == "" {
		s.currentSceneID = ""
		s.appendLog(gamelog.TypeSystem, "The campaign is complete.", "")
		return
	}
	s.enterScene(outcome.NextSceneID)
}

// enterScene moves to a scene, logging its narrative. The onEnter
// effect fires on each entry except an immediate re-entry, tracked by
// the last-scene marker rather than a visited set.
func (s *service) enterScene(sceneID string) {
	scene := s.campaign.Scene(sceneID)
	if scene == nil {
		// Content error: leave the pointer dangling so choices no-op
		s.currentSceneID = sceneID
		return
	}

	s.currentSceneID = sceneID
	s.visitedScenes[sceneID]++

	if scene.Narrative != "" {
		s.appendLog(gamelog.TypeNarration, scene.Narrative, scene.Title)
	}

	if s.lastSceneID != sceneID {
		s.applyEffect(scene.OnEnter)
	}
	s.lastSceneID = sceneID
}

// applyEffect runs the applicator and logs each note line
func (s *service) applyEffect(effect *hero.Effect) {
	if effect == nil {
		return
	}
	s.hero = hero.Apply(s.hero, effect)
	for _, note := range effect.Notes {
		s.appendLog(gamelog.TypeEffect, note, "")
	}
}

func (s *service) RollFlavor(ctx context.Context, formula string) (*dice.FormulaResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := dice.RollFormula(s.roller, formula)
	if err != nil {
		return nil, err
	}
	s.appendLog(gamelog.TypeSystem,
		fmt.Sprintf("Dice tray: %s = %d", result.Formula, result.Total), "")
	return result, nil
}

func (s *service) RecordPlayerLine(text string) {
	s.recordConversation("player", text)
}

func (s *service) RecordNPCLine(npcID, text string) {
	if npcID == "" {
		npcID = "narrator"
	}
	s.recordConversation(npcID, text)
}

func (s *service) recordConversation(speaker, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = append(s.conversations, story.ConversationTurn{
		ID:        s.uuidGenerator.New(),
		Speaker:   speaker,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *service) Hero() *hero.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero.Clone()
}

func (s *service) Campaign() *campaign.Campaign {
	return s.campaign
}

func (s *service) CurrentScene() *campaign.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.campaign.Scene(s.currentSceneID)
}

// VisibleChoices filters the current scene's options: hidden choices
// are dropped, gated ones come back disabled
func (s *service) VisibleChoices() []ChoiceView {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene := s.campaign.Scene(s.currentSceneID)
	if scene == nil || s.hero == nil {
		return nil
	}

	views := make([]ChoiceView, 0, len(scene.Options))
	for i := range scene.Options {
		choice := &scene.Options[i]
		if choice.HideIfFlag != "" && s.hero.HasFlag(choice.HideIfFlag) {
			continue
		}
		views = append(views, ChoiceView{
			Choice:   choice,
			Disabled: choice.RequiresFlag != "" && !s.hero.HasFlag(choice.RequiresFlag),
		})
	}
	return views
}

// selectable re-checks visibility on the engine side so a stale UI
// cannot pick a hidden or gated choice
func (s *service) selectable(choice *campaign.Choice) bool {
	if choice.HideIfFlag != "" && s.hero.HasFlag(choice.HideIfFlag) {
		return false
	}
	if choice.RequiresFlag != "" && !s.hero.HasFlag(choice.RequiresFlag) {
		return false
	}
	return true
}

func (s *service) LastRoll() *dice.CheckResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRoll
}

func (s *service) Conversations() []story.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]story.ConversationTurn, len(s.conversations))
	copy(out, s.conversations)
	return out
}

func (s *service) LogEntries() []gamelog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameLog.Entries()
}

func (s *service) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero != nil && s.currentSceneID == ""
}

func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	heroID := ""
	if s.hero != nil {
		heroID = s.hero.ID
	}
	s.hero = nil
	s.currentSceneID = ""
	s.lastSceneID = ""
	s.visitedScenes = make(map[string]int)
	s.gameLog = gamelog.New()
	s.lastRoll = nil
	s.conversations = nil
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
		ID:             s.hero.ID,
		Hero:           s.hero,
		CurrentSceneID: s.currentSceneID,
		LastSceneID:    s.lastSceneID,
		VisitedScenes:  s.visitedScenes,
		Conversations:  s.conversations,
		Log:            s.gameLog.Entries(),
	}
	if err := s.repository.Save(ctx, snap); err != nil {
		log.Printf("Failed to save snapshot for hero %s: %v", s.hero.ID, err)
	}
}
