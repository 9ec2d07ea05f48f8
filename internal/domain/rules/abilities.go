package rules

// Ability is one of the six base character attributes
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists every ability in canonical order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityLabels maps abilities to display names
var AbilityLabels = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// StandardAbilityArray is the fixed pool of base scores a player
// assigns across the six abilities.
var StandardAbilityArray = []int{15, 14, 13, 12, 10, 8}

// AbilityModifier derives the modifier for an ability score.
// Uses floor division so odd scores below 10 round down, matching the
// tabletop table (7 -> -2, not -1).
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// IsAbility reports whether the string names a known ability
func IsAbility(value string) bool {
	_, ok := AbilityLabels[Ability(value)]
	return ok
}
