package rules

import (
	"github.com/emberfall/ascent/internal/dice"
)

// RollAbilityPool rolls a pool of six ability scores, each 4d6 with the
// lowest die dropped. The standard array is the non-random alternative.
func RollAbilityPool(roller dice.Roller) ([]int, error) {
	pool := make([]int, 0, len(Abilities))
	for range Abilities {
		result, err := roller.Roll(4, 6, 0)
		if err != nil {
			return nil, err
		}
		pool = append(pool, result.Total-result.Lowest)
	}
	return pool, nil
}
