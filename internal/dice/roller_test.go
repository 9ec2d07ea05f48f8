package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/ascent/internal/dice"
)

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	result, err := roller.Roll(4, 6, 2)
	require.NoError(t, err)

	assert.Len(t, result.Rolls, 4)
	sum := 0
	for _, roll := range result.Rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
		sum += roll
	}
	assert.Equal(t, sum+2, result.Total)
	assert.Equal(t, 2, result.Bonus)
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestMockRoller_ExhaustedRolls(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{5})

	_, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)

	_, err = roller.Roll(1, 20, 0)
	assert.Error(t, err, "second roll has no predetermined value")
}

func TestMockRoller_RejectsOutOfRangeRoll(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetNextRoll(7)

	_, err := roller.Roll(1, 6, 0)
	assert.Error(t, err)
}
