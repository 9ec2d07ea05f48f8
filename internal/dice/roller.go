package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice.
// This allows us to inject different implementations for testing.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total   int   `json:"total"`
	Rolls   []int `json:"rolls"`
	Bonus   int   `json:"bonus"`
	Count   int   `json:"count"`
	Sides   int   `json:"sides"`
	Highest int   `json:"highest"`
	Lowest  int   `json:"lowest"`
}
