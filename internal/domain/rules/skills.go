package rules

import "strings"

// Skill is a named competency tied to one ability
type Skill string

const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animalHandling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleightOfHand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// SkillDefinition ties a skill to its display label and governing ability
type SkillDefinition struct {
	ID      Skill
	Label   string
	Ability Ability
}

// Skills lists every skill in canonical order
var Skills = []SkillDefinition{
	{ID: SkillAcrobatics, Label: "Acrobatics", Ability: AbilityDexterity},
	{ID: SkillAnimalHandling, Label: "Animal Handling", Ability: AbilityWisdom},
	{ID: SkillArcana, Label: "Arcana", Ability: AbilityIntelligence},
	{ID: SkillAthletics, Label: "Athletics", Ability: AbilityStrength},
	{ID: SkillDeception, Label: "Deception", Ability: AbilityCharisma},
	{ID: SkillHistory, Label: "History", Ability: AbilityIntelligence},
	{ID: SkillInsight, Label: "Insight", Ability: AbilityWisdom},
	{ID: SkillIntimidation, Label: "Intimidation", Ability: AbilityCharisma},
	{ID: SkillInvestigation, Label: "Investigation", Ability: AbilityIntelligence},
	{ID: SkillMedicine, Label: "Medicine", Ability: AbilityWisdom},
	{ID: SkillNature, Label: "Nature", Ability: AbilityIntelligence},
	{ID: SkillPerception, Label: "Perception", Ability: AbilityWisdom},
	{ID: SkillPerformance, Label: "Performance", Ability: AbilityCharisma},
	{ID: SkillPersuasion, Label: "Persuasion", Ability: AbilityCharisma},
	{ID: SkillReligion, Label: "Religion", Ability: AbilityIntelligence},
	{ID: SkillSleightOfHand, Label: "Sleight of Hand", Ability: AbilityDexterity},
	{ID: SkillStealth, Label: "Stealth", Ability: AbilityDexterity},
	{ID: SkillSurvival, Label: "Survival", Ability: AbilityWisdom},
}

// SkillAbility returns the ability governing a skill, defaulting to
// wisdom for unknown skills.
func SkillAbility(skill Skill) Ability {
	for _, entry := range Skills {
		if entry.ID == skill {
			return entry.Ability
		}
	}
	return AbilityWisdom
}

// SkillLabel returns the display label for a skill
func SkillLabel(skill Skill) string {
	for _, entry := range Skills {
		if entry.ID == skill {
			return entry.Label
		}
	}
	return string(skill)
}

// SkillFromLabel resolves a freeform proficiency label ("Sleight of
// Hand", "perception") to a skill by comparing letters only. Labels
// that do not name a skill return false.
func SkillFromLabel(label string) (Skill, bool) {
	normalized := normalizeLabel(label)
	for _, entry := range Skills {
		if normalizeLabel(entry.Label) == normalized {
			return entry.ID, true
		}
	}
	return "", false
}

// IsSkill reports whether the string names a known skill
func IsSkill(value string) bool {
	for _, entry := range Skills {
		if entry.ID == Skill(value) {
			return true
		}
	}
	return false
}

func normalizeLabel(label string) string {
	var b strings.Builder
	for _, r := range label {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
