package hero

import (
	"github.com/emberfall/ascent/internal/domain/rules"
)

// Relationship is the hero's standing with a named NPC
type Relationship string

const (
	RelationshipAlly    Relationship = "ally"
	RelationshipRival   Relationship = "rival"
	RelationshipNeutral Relationship = "neutral"
)

// AbilityScores holds the six race-adjusted ability scores.
// Immutable after character creation.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability
func (a AbilityScores) Get(ability rules.Ability) int {
	switch ability {
	case rules.AbilityStrength:
		return a.Strength
	case rules.AbilityDexterity:
		return a.Dexterity
	case rules.AbilityConstitution:
		return a.Constitution
	case rules.AbilityIntelligence:
		return a.Intelligence
	case rules.AbilityWisdom:
		return a.Wisdom
	case rules.AbilityCharisma:
		return a.Charisma
	}
	return 10
}

// Modifier returns the derived modifier for an ability
func (a AbilityScores) Modifier(ability rules.Ability) int {
	return rules.AbilityModifier(a.Get(ability))
}

// Resources are the hero's spendable pools
type Resources struct {
	HitPoints     int `json:"hitPoints"`
	TempHitPoints int `json:"tempHitPoints"`
	Inspiration   int `json:"inspiration"`
}

// State is the single mutable aggregate for the player's character.
// It is created once by the builder and only ever transformed through
// Apply; no other code path mutates it.
type State struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	RaceID       string `json:"raceId"`
	ClassID      string `json:"classId"`
	BackgroundID string `json:"backgroundId"`

	AbilityScores    AbilityScores          `json:"abilityScores"`
	ProficiencyBonus int                    `json:"proficiencyBonus"`
	SavingThrows     map[rules.Ability]bool `json:"savingThrows"`
	Skills           map[rules.Skill]bool   `json:"skills"`

	ArmorClass int       `json:"armorClass"`
	Speed      int       `json:"speed"`
	Resources  Resources `json:"resources"`

	Equipment         []string `json:"equipment"`
	Features          []string `json:"features"`
	Traits            []string `json:"traits"`
	Languages         []string `json:"languages"`
	ToolProficiencies []string `json:"toolProficiencies"`

	SpellcastingAbility rules.Ability `json:"spellcastingAbility,omitempty"`
	SpellSlots          map[int]int   `json:"spellSlots,omitempty"`

	Notes  []string                `json:"notes"`
	Status map[string]int          `json:"status"`
	Flags  map[string]bool         `json:"flags"`
	Allies map[string]Relationship `json:"allies"`
}

// HasFlag reports whether a story flag is set; absence means false
func (s *State) HasFlag(flag string) bool {
	return s.Flags[flag]
}

// StatusValue returns a named counter, defaulting to 0 when absent
func (s *State) StatusValue(key string) int {
	return s.Status[key]
}

// AllyStanding returns the standing with an NPC, defaulting to neutral
func (s *State) AllyStanding(npcID string) Relationship {
	if standing, ok := s.Allies[npcID]; ok {
		return standing
	}
	return RelationshipNeutral
}

// SkillModifier returns the full check modifier for a skill, including
// the proficiency bonus when the hero is proficient.
func (s *State) SkillModifier(skill rules.Skill) int {
	mod := s.AbilityScores.Modifier(rules.SkillAbility(skill))
	if s.Skills[skill] {
		mod += s.ProficiencyBonus
	}
	return mod
}

// Clone returns a deep copy of the hero state. Every mutable container
// gets a fresh identity so callers can never alias the original.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	clone := *s
	clone.SavingThrows = copyMap(s.SavingThrows)
	clone.Skills = copyMap(s.Skills)
	clone.Equipment = copySlice(s.Equipment)
	clone.Features = copySlice(s.Features)
	clone.Traits = copySlice(s.Traits)
	clone.Languages = copySlice(s.Languages)
	clone.ToolProficiencies = copySlice(s.ToolProficiencies)
	clone.SpellSlots = copyMap(s.SpellSlots)
	clone.Notes = copySlice(s.Notes)
	clone.Status = copyMap(s.Status)
	clone.Flags = copyMap(s.Flags)
	clone.Allies = copyMap(s.Allies)
	return &clone
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
