package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/ascent/internal/dice"
)

func TestResolveCheck_FlatRoll(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		Ability:          "strength",
		AbilityMod:       3,
		ProficiencyBonus: 2,
		Proficient:       true,
		DC:               15,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Primary)
	assert.Nil(t, result.Secondary)
	assert.Equal(t, 10, result.Kept)
	assert.Equal(t, 15, result.Total)
	assert.True(t, result.Success, "total 15 vs DC 15 should succeed")
}

func TestResolveCheck_SuccessBoundary(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		AbilityMod:       3,
		ProficiencyBonus: 2,
		Proficient:       true,
		DC:               16,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, result.Total)
	assert.False(t, result.Success, "total 15 vs DC 16 should fail")
}

func TestResolveCheck_NotProficientSkipsProficiencyBonus(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		AbilityMod:       3,
		ProficiencyBonus: 2,
		Proficient:       false,
		DC:               14,
	})
	require.NoError(t, err)

	assert.Equal(t, 13, result.Total)
	assert.Equal(t, 2, result.ProfBonus, "bonus is still reported for display")
}

func TestResolveCheck_Advantage(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{4, 17})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		DC:        10,
		Advantage: true,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Secondary)
	assert.Equal(t, 4, result.Primary)
	assert.Equal(t, 17, *result.Secondary)
	assert.Equal(t, 17, result.Kept)
}

func TestResolveCheck_Disadvantage(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{14, 3})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		DC:           10,
		Disadvantage: true,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Secondary)
	assert.Equal(t, 3, result.Kept)
}

func TestResolveCheck_AdvantageAndDisadvantageCancel(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{7, 19})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		DC:           10,
		Advantage:    true,
		Disadvantage: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Kept, "both flags keep the primary die")
	require.NotNil(t, result.Secondary, "the secondary die is still drawn")
	assert.Equal(t, 19, *result.Secondary)
}

func TestResolveCheck_TotalClamped(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		AbilityMod: 50,
		DC:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, dice.CheckTotalMax, result.Total)

	roller.SetRolls([]int{1})
	result, err = dice.ResolveCheck(roller, &dice.CheckOptions{
		AbilityMod: -50,
		DC:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, dice.CheckTotalMin, result.Total)
}

func TestResolveCheck_RandomD20Bounds(t *testing.T) {
	roller := dice.NewRandomRoller()
	faces := make(map[int]int)

	for i := 0; i < 10000; i++ {
		result, err := dice.ResolveCheck(roller, &dice.CheckOptions{DC: 10})
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.Kept, 1)
		require.LessOrEqual(t, result.Kept, 20)
		faces[result.Kept]++
	}

	for face := 1; face <= 20; face++ {
		assert.Greater(t, faces[face], 0, "face %d never rolled in 10000 trials", face)
	}
}

func TestCheckResultSummary(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10})

	result, err := dice.ResolveCheck(roller, &dice.CheckOptions{
		AbilityMod:       3,
		ProficiencyBonus: 2,
		Proficient:       true,
		MiscBonus:        1,
		DC:               14,
	})
	require.NoError(t, err)

	assert.Equal(t, "d20 = 10 • Ability +3 • Proficiency +2 • Misc +1 • Total 16 vs DC 14", result.Summary())
}
