package testutils

import (
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/rules"
)

// CreateTestHero creates a fully formed level 1 fighter for tests.
// Ability scores follow the standard array with strength primary.
func CreateTestHero(id, name string) *hero.State {
	return &hero.State{
		ID:           id,
		Name:         name,
		Level:        1,
		RaceID:       "human",
		ClassID:      "fighter",
		BackgroundID: "soldier",
		AbilityScores: hero.AbilityScores{
			Strength:     16,
			Dexterity:    14,
			Constitution: 15,
			Intelligence: 11,
			Wisdom:       13,
			Charisma:     9,
		},
		ProficiencyBonus: 2,
		SavingThrows: map[rules.Ability]bool{
			rules.AbilityStrength:     true,
			rules.AbilityConstitution: true,
		},
		Skills: map[rules.Skill]bool{
			rules.SkillAthletics:    true,
			rules.SkillIntimidation: true,
		},
		ArmorClass: 12,
		Speed:      30,
		Resources: hero.Resources{
			HitPoints: 12,
		},
		Equipment: []string{"Longsword", "Shield"},
		Features:  []string{"Second Wind"},
		Status:    map[string]int{"stress": 0, "wounds": 0, "influence": 0, "corruption": 0},
		Flags:     map[string]bool{},
		Allies:    map[string]hero.Relationship{},
	}
}
