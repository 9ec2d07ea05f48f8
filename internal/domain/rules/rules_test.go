package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/ascent/internal/dice"
	"github.com/emberfall/ascent/internal/domain/rules"
)

func TestAbilityModifier(t *testing.T) {
	cases := map[int]int{
		1:  -5,
		7:  -2,
		8:  -1,
		9:  -1,
		10: 0,
		11: 0,
		12: 1,
		15: 2,
		16: 3,
		20: 5,
	}
	for score, want := range cases {
		assert.Equal(t, want, rules.AbilityModifier(score), "score %d", score)
	}
}

func TestSkillFromLabel(t *testing.T) {
	skill, ok := rules.SkillFromLabel("Sleight of Hand")
	require.True(t, ok)
	assert.Equal(t, rules.SkillSleightOfHand, skill)

	skill, ok = rules.SkillFromLabel("perception")
	require.True(t, ok)
	assert.Equal(t, rules.SkillPerception, skill)

	_, ok = rules.SkillFromLabel("Vehicles (land)")
	assert.False(t, ok, "non-skill proficiency labels are dropped")
}

func TestSkillAbility(t *testing.T) {
	assert.Equal(t, rules.AbilityStrength, rules.SkillAbility(rules.SkillAthletics))
	assert.Equal(t, rules.AbilityCharisma, rules.SkillAbility(rules.SkillIntimidation))
	assert.Equal(t, rules.AbilityWisdom, rules.SkillAbility(rules.Skill("unknown")))
}

func TestReferenceTablesComplete(t *testing.T) {
	assert.Len(t, rules.Abilities, 6)
	assert.Len(t, rules.Skills, 18)
	assert.Len(t, rules.StandardAbilityArray, 6)

	for _, class := range rules.Classes {
		assert.NotZero(t, class.HitDie, "class %s", class.ID)
		assert.Len(t, class.SavingThrows, 2, "class %s", class.ID)
		if class.SkillChoices > 0 {
			assert.GreaterOrEqual(t, len(class.SkillOptions), class.SkillChoices, "class %s", class.ID)
		}
	}

	for _, race := range rules.Races {
		assert.NotZero(t, race.Speed, "race %s", race.ID)
	}

	for _, background := range rules.Backgrounds {
		assert.NotEmpty(t, background.SkillProficiencies, "background %s", background.ID)
		assert.NotEmpty(t, background.Feature, "background %s", background.ID)
	}
}

func TestLookups(t *testing.T) {
	class, ok := rules.ClassByID("fighter")
	require.True(t, ok)
	assert.Equal(t, 10, class.HitDie)
	assert.False(t, class.HasSpellcasting())

	wizard, ok := rules.ClassByID("wizard")
	require.True(t, ok)
	assert.True(t, wizard.HasSpellcasting())
	assert.Equal(t, rules.AbilityIntelligence, wizard.SpellcastingAbility)

	race, ok := rules.RaceByID("human")
	require.True(t, ok)
	assert.Equal(t, 1, race.BonusFor(rules.AbilityWisdom))

	dwarf, ok := rules.RaceByID("dwarf")
	require.True(t, ok)
	assert.Equal(t, 0, dwarf.BonusFor(rules.AbilityCharisma), "missing bonus defaults to 0")

	_, ok = rules.BackgroundByID("pirate")
	assert.False(t, ok)
}

func TestRollAbilityPool(t *testing.T) {
	roller := dice.NewMockRoller()
	rolls := make([]int, 0, 24)
	for i := 0; i < 6; i++ {
		rolls = append(rolls, 6, 5, 4, 1)
	}
	roller.SetRolls(rolls)

	pool, err := rules.RollAbilityPool(roller)
	require.NoError(t, err)

	require.Len(t, pool, 6)
	for _, score := range pool {
		assert.Equal(t, 15, score, "4d6 drop lowest of 6,5,4,1")
	}
}
