package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/ascent/internal/dice"
)

func TestRollFormula(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{4, 2})

	result, err := dice.RollFormula(roller, "2d6+1")
	require.NoError(t, err)

	assert.Equal(t, 7, result.Total)
	assert.Equal(t, []int{4, 2}, result.Rolls)
	assert.Equal(t, 1, result.Modifier)
	assert.Equal(t, "2d6+1", result.Formula)
}

func TestRollFormula_DefaultCount(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{15})

	result, err := dice.RollFormula(roller, "d20")
	require.NoError(t, err)

	assert.Equal(t, 15, result.Total)
	assert.Equal(t, "1d20", result.Formula)
}

func TestRollFormula_NegativeModifier(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{6})

	result, err := dice.RollFormula(roller, "1d8-2")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "1d8-2", result.Formula)
}

func TestRollFormula_IgnoresWhitespaceAndCase(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{3, 5})

	result, err := dice.RollFormula(roller, " 2 D6 + 3 ")
	require.NoError(t, err)

	assert.Equal(t, 11, result.Total)
}

func TestRollFormula_MalformedDegradesToFlatNumber(t *testing.T) {
	roller := dice.NewMockRoller()

	result, err := dice.RollFormula(roller, "7")
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Empty(t, result.Rolls)

	result, err = dice.RollFormula(roller, "nonsense")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Rolls)
	assert.Equal(t, "nonsense", result.Formula)

	result, err = dice.RollFormula(roller, "")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, "0", result.Formula)
}
