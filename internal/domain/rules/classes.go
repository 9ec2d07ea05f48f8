package rules

// ClassDefinition describes one playable class at level 1
type ClassDefinition struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	HitDie              int       `json:"hitDie"`
	PrimaryAbilities    []Ability `json:"primaryAbilities"`
	SavingThrows        []Ability `json:"savingThrows"`
	ArmorProficiencies  []string  `json:"armorProficiencies"`
	WeaponProficiencies []string  `json:"weaponProficiencies"`
	ToolProficiencies   []string  `json:"toolProficiencies"`
	SkillOptions        []Skill   `json:"skillOptions"`
	SkillChoices        int       `json:"skillChoices"`
	StartingEquipment   []string  `json:"startingEquipment"`
	Features            []string  `json:"features"`
	SpellcastingAbility Ability   `json:"spellcastingAbility,omitempty"`
}

// HasSpellcasting reports whether the class casts spells
func (c *ClassDefinition) HasSpellcasting() bool {
	return c.SpellcastingAbility != ""
}

// HasSkillOption reports whether the skill may be chosen for this class
func (c *ClassDefinition) HasSkillOption(skill Skill) bool {
	for _, option := range c.SkillOptions {
		if option == skill {
			return true
		}
	}
	return false
}

// Classes lists every playable class
var Classes = []ClassDefinition{
	{
		ID:                  "fighter",
		Name:                "Fighter",
		HitDie:              10,
		PrimaryAbilities:    []Ability{AbilityStrength, AbilityConstitution},
		SavingThrows:        []Ability{AbilityStrength, AbilityConstitution},
		ArmorProficiencies:  []string{"All armour", "Shields"},
		WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
		ToolProficiencies:   []string{},
		SkillOptions: []Skill{
			SkillAcrobatics, SkillAnimalHandling, SkillAthletics, SkillHistory,
			SkillInsight, SkillPerception, SkillSurvival,
		},
		SkillChoices: 2,
		StartingEquipment: []string{
			"Chain mail or leather armour, longbow, and 20 arrows",
			"Martial weapon and shield or two martial weapons",
			"Light crossbow and 20 bolts or two handaxes",
			"Dungeoneer's pack or Explorer's pack",
		},
		Features: []string{"Fighting Style", "Second Wind"},
	},
	{
		ID:                  "rogue",
		Name:                "Rogue",
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityDexterity},
		SavingThrows:        []Ability{AbilityDexterity, AbilityIntelligence},
		ArmorProficiencies:  []string{"Light armour"},
		WeaponProficiencies: []string{"Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords"},
		ToolProficiencies:   []string{"Thieves' tools"},
		SkillOptions: []Skill{
			SkillAcrobatics, SkillAthletics, SkillDeception, SkillInsight,
			SkillIntimidation, SkillInvestigation, SkillPerception,
			SkillPerformance, SkillPersuasion, SkillSleightOfHand, SkillStealth,
		},
		SkillChoices: 4,
		StartingEquipment: []string{
			"Rapier or shortsword",
			"Shortbow and 20 arrows or shortsword",
			"Burglar's pack, Dungeoneer's pack, or Explorer's pack",
			"Leather armour, two daggers, and thieves' tools",
		},
		Features: []string{"Expertise", "Sneak Attack", "Thieves' Cant"},
	},
	{
		ID:                  "wizard",
		Name:                "Wizard",
		HitDie:              6,
		PrimaryAbilities:    []Ability{AbilityIntelligence},
		SavingThrows:        []Ability{AbilityIntelligence, AbilityWisdom},
		ArmorProficiencies:  []string{},
		WeaponProficiencies: []string{"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows"},
		ToolProficiencies:   []string{},
		SkillOptions: []Skill{
			SkillArcana, SkillHistory, SkillInsight, SkillInvestigation,
			SkillMedicine, SkillReligion,
		},
		SkillChoices: 2,
		StartingEquipment: []string{
			"Quarterstaff or dagger",
			"Component pouch or arcane focus",
			"Scholar's pack or Explorer's pack",
			"Spellbook",
		},
		Features:            []string{"Spellcasting", "Arcane Recovery"},
		SpellcastingAbility: AbilityIntelligence,
	},
	{
		ID:                  "cleric",
		Name:                "Cleric",
		HitDie:              8,
		PrimaryAbilities:    []Ability{AbilityWisdom},
		SavingThrows:        []Ability{AbilityWisdom, AbilityCharisma},
		ArmorProficiencies:  []string{"Light armour", "Medium armour", "Shields"},
		WeaponProficiencies: []string{"Simple weapons"},
		ToolProficiencies:   []string{},
		SkillOptions: []Skill{
			SkillHistory, SkillInsight, SkillMedicine, SkillPersuasion, SkillReligion,
		},
		SkillChoices: 2,
		StartingEquipment: []string{
			"Mace or warhammer (if proficient)",
			"Scale mail, leather armour, or chain mail (if proficient)",
			"Light crossbow and 20 bolts or simple weapon",
			"Priest's pack or Explorer's pack",
			"Shield and holy symbol",
		},
		Features:            []string{"Spellcasting", "Divine Domain"},
		SpellcastingAbility: AbilityWisdom,
	},
}

// ClassByID looks up a class definition
func ClassByID(id string) (*ClassDefinition, bool) {
	for i := range Classes {
		if Classes[i].ID == id {
			return &Classes[i], true
		}
	}
	return nil, false
}
