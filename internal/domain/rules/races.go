package rules

// RaceDefinition describes one playable race
type RaceDefinition struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	AbilityBonuses map[Ability]int `json:"abilityBonuses"`
	Speed          int             `json:"speed"`
	Size           string          `json:"size"`
	Traits         []string        `json:"traits"`
	Languages      []string        `json:"languages"`
	Proficiencies  []string        `json:"proficiencies,omitempty"`
}

// BonusFor returns the racial bonus for an ability, defaulting to 0
func (r *RaceDefinition) BonusFor(ability Ability) int {
	return r.AbilityBonuses[ability]
}

// Races lists every playable race
var Races = []RaceDefinition{
	{
		ID:   "human",
		Name: "Human",
		AbilityBonuses: map[Ability]int{
			AbilityStrength:     1,
			AbilityDexterity:    1,
			AbilityConstitution: 1,
			AbilityIntelligence: 1,
			AbilityWisdom:       1,
			AbilityCharisma:     1,
		},
		Speed:     30,
		Size:      "Medium",
		Traits:    []string{"Versatile", "Determined"},
		Languages: []string{"Common", "Choice of one extra language"},
	},
	{
		ID:             "elf",
		Name:           "High Elf",
		AbilityBonuses: map[Ability]int{AbilityDexterity: 2, AbilityIntelligence: 1},
		Speed:          30,
		Size:           "Medium",
		Traits:         []string{"Darkvision", "Keen Senses", "Fey Ancestry", "Trance", "Cantrip"},
		Languages:      []string{"Common", "Elvish"},
		Proficiencies:  []string{"Perception"},
	},
	{
		ID:             "dwarf",
		Name:           "Hill Dwarf",
		AbilityBonuses: map[Ability]int{AbilityConstitution: 2, AbilityWisdom: 1},
		Speed:          25,
		Size:           "Medium",
		Traits:         []string{"Darkvision", "Dwarven Resilience", "Dwarven Combat Training", "Stonecunning"},
		Languages:      []string{"Common", "Dwarvish"},
	},
	{
		ID:             "halfling",
		Name:           "Lightfoot Halfling",
		AbilityBonuses: map[Ability]int{AbilityDexterity: 2, AbilityCharisma: 1},
		Speed:          25,
		Size:           "Small",
		Traits:         []string{"Lucky", "Brave", "Halfling Nimbleness", "Naturally Stealthy"},
		Languages:      []string{"Common", "Halfling"},
	},
}

// RaceByID looks up a race definition
func RaceByID(id string) (*RaceDefinition, bool) {
	for i := range Races {
		if Races[i].ID == id {
			return &Races[i], true
		}
	}
	return nil, false
}
