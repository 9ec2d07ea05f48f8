package campaign

import (
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/rules"
)

// Outcome is the result of resolving a choice: narration, an optional
// effect on the hero, and the next scene. An empty NextSceneID ends
// the campaign.
type Outcome struct {
	ID          string       `json:"id"`
	NextSceneID string       `json:"nextSceneId,omitempty"`
	Narrative   string       `json:"narrative"`
	Effects     *hero.Effect `json:"effects,omitempty"`
}

// SkillCheck defines the dice resolution attached to a choice.
// Skill is optional; when absent the check is a raw ability check and
// proficiency never applies.
type SkillCheck struct {
	Ability            rules.Ability `json:"ability"`
	Skill              rules.Skill   `json:"skill,omitempty"`
	DC                 int           `json:"dc"`
	AdvantageIfFlag    string        `json:"advantageIfFlag,omitempty"`
	DisadvantageIfFlag string        `json:"disadvantageIfFlag,omitempty"`
	Success            Outcome       `json:"success"`
	Failure            Outcome       `json:"failure"`
}

// Choice is one selectable option within a scene. Exactly one of
// AutoSuccess and SkillCheck must be set.
type Choice struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	// RequiresFlag disables (but still shows) the choice until the flag is true
	RequiresFlag string `json:"requiresFlag,omitempty"`
	// HideIfFlag omits the choice entirely while the flag is true
	HideIfFlag  string      `json:"hideIfFlag,omitempty"`
	AutoSuccess *Outcome    `json:"autoSuccess,omitempty"`
	SkillCheck  *SkillCheck `json:"skillCheck,omitempty"`
}

// Scene is one node of the branching story graph
type Scene struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Narrative string   `json:"narrative"`
	Options   []Choice `json:"options"`
	// OnEnter is applied once each time the scene is entered anew
	OnEnter         *hero.Effect `json:"onEnter,omitempty"`
	FallbackSceneID string       `json:"fallbackSceneId,omitempty"`
}

// Act describes one arc of the freeform story mode
type Act struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Situation     string   `json:"situation"`
	Objectives    []string `json:"objectives"`
	Complications []string `json:"complications,omitempty"`
	Escalation    string   `json:"escalation,omitempty"`
}

// Character is a campaign NPC
type Character struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Motivation string   `json:"motivation"`
	Voice      string   `json:"voice"`
	Secrets    []string `json:"secrets,omitempty"`
	Resources  []string `json:"resources,omitempty"`
}

// LoreEntry is a piece of setting background fed to the narrator
type LoreEntry struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// Campaign is the load-time-fixed content document. The engine never
// mutates it. The scene graph drives the structured mode; acts,
// characters and lore drive the freeform narration mode.
type Campaign struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Synopsis     string      `json:"synopsis"`
	Tone         string      `json:"tone"`
	Guidance     []string    `json:"guidance,omitempty"`
	Themes       []string    `json:"themes,omitempty"`
	Acts         []Act       `json:"acts"`
	Characters   []Character `json:"characters"`
	Lore         []LoreEntry `json:"lore"`
	IntroSceneID string      `json:"introSceneId,omitempty"`
	Scenes       []Scene     `json:"scenes,omitempty"`
}

// Scene looks up a scene by id, returning nil when absent
func (c *Campaign) Scene(id string) *Scene {
	if id == "" {
		return nil
	}
	for i := range c.Scenes {
		if c.Scenes[i].ID == id {
			return &c.Scenes[i]
		}
	}
	return nil
}

// ActByID looks up an act by id, returning nil when absent
func (c *Campaign) ActByID(id string) *Act {
	for i := range c.Acts {
		if c.Acts[i].ID == id {
			return &c.Acts[i]
		}
	}
	return nil
}

// CharacterByID looks up an NPC by id, returning nil when absent
func (c *Campaign) CharacterByID(id string) *Character {
	for i := range c.Characters {
		if c.Characters[i].ID == id {
			return &c.Characters[i]
		}
	}
	return nil
}

// Choice looks up a choice by id on a scene, returning nil when absent
func (s *Scene) Choice(id string) *Choice {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}
