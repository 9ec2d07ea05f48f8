package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	highest, lowest, total := 0, 0, 0

	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		if i == 0 {
			lowest = roll
			highest = roll
		}

		if lowest > roll {
			lowest = roll
		}

		if highest < roll {
			highest = roll
		}

		rolls[i] = roll
	}

	return &RollResult{
		Total:   total + bonus,
		Rolls:   rolls,
		Bonus:   bonus,
		Count:   count,
		Sides:   sides,
		Highest: highest,
		Lowest:  lowest,
	}, nil
}
