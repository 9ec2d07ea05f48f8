// Package builder assembles a playable hero from creation choices.
package builder

import (
	"context"
	"strings"

	"github.com/emberfall/ascent/internal/dice"
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/rules"
	"github.com/emberfall/ascent/internal/errors"
	"github.com/emberfall/ascent/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockbuilder -source=service.go

// Service defines the hero builder interface
type Service interface {
	// RollAbilityPool rolls six 4d6-drop-lowest scores for assignment
	RollAbilityPool(ctx context.Context) ([]int, error)

	// ValidateBuild validates creation choices without building
	ValidateBuild(ctx context.Context, input *BuildInput) error

	// BuildHero derives a complete level 1 hero from creation choices
	BuildHero(ctx context.Context, input *BuildInput) (*BuildOutput, error)
}

// BuildInput contains every creation choice
type BuildInput struct {
	Name           string
	RaceID         string
	ClassID        string
	BackgroundID   string
	BaseScores     map[rules.Ability]int // Pre-racial-bonus scores for all six abilities
	SelectedSkills []rules.Skill         // Class skill picks; background skills come free
}

// BuildOutput contains the assembled hero
type BuildOutput struct {
	Hero *hero.State
}

type service struct {
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller    // Optional, defaults to a random roller
	UUIDGenerator uuid.Generator // Optional, defaults to Google UUIDs
}

// NewService creates a new builder service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		roller:        roller,
		uuidGenerator: uuidGenerator,
	}
}

func (s *service) RollAbilityPool(ctx context.Context) ([]int, error) {
	return rules.RollAbilityPool(s.roller)
}

func (s *service) ValidateBuild(ctx context.Context, input *BuildInput) error {
	if input == nil {
		return errors.InvalidArgument("build input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return errors.InvalidArgument("hero name is required")
	}

	if _, ok := rules.RaceByID(input.RaceID); !ok {
		return errors.InvalidArgumentf("unknown race '%s'", input.RaceID)
	}
	class, ok := rules.ClassByID(input.ClassID)
	if !ok {
		return errors.InvalidArgumentf("unknown class '%s'", input.ClassID)
	}
	background, ok := rules.BackgroundByID(input.BackgroundID)
	if !ok {
		return errors.InvalidArgumentf("unknown background '%s'", input.BackgroundID)
	}

	for _, ability := range rules.Abilities {
		score, present := input.BaseScores[ability]
		if !present {
			return errors.InvalidArgumentf("missing score for %s", ability)
		}
		if score < 3 || score > 18 {
			return errors.InvalidArgumentf("score %d for %s is out of range", score, ability)
		}
	}

	if len(input.SelectedSkills) != class.SkillChoices {
		return errors.InvalidArgumentf("%s requires %d skill choices, got %d",
			class.Name, class.SkillChoices, len(input.SelectedSkills))
	}

	chosen := make(map[rules.Skill]bool, len(input.SelectedSkills))
	for _, skill := range input.SelectedSkills {
		if !class.HasSkillOption(skill) {
			return errors.InvalidArgumentf("skill '%s' is not a %s option", skill, class.Name)
		}
		if chosen[skill] {
			return errors.InvalidArgumentf("skill '%s' selected twice", skill)
		}
		chosen[skill] = true
	}
	for _, skill := range background.SkillProficiencies {
		if chosen[skill] {
			return errors.InvalidArgumentf("skill '%s' already granted by the %s background", skill, background.Name)
		}
	}

	return nil
}

// uniqueStrings keeps the first occurrence of each item in order
func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// BuildHero derives the full sheet: racial bonuses fold into the base
// scores, then hit points, armour class, and proficiencies follow from
// the class and background.
func (s *service) BuildHero(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if err := s.ValidateBuild(ctx, input); err != nil {
		return nil, err
	}

	race, _ := rules.RaceByID(input.RaceID)
	class, _ := rules.ClassByID(input.ClassID)
	background, _ := rules.BackgroundByID(input.BackgroundID)

	scores := hero.AbilityScores{
		Strength:     input.BaseScores[rules.AbilityStrength] + race.BonusFor(rules.AbilityStrength),
		Dexterity:    input.BaseScores[rules.AbilityDexterity] + race.BonusFor(rules.AbilityDexterity),
		Constitution: input.BaseScores[rules.AbilityConstitution] + race.BonusFor(rules.AbilityConstitution),
		Intelligence: input.BaseScores[rules.AbilityIntelligence] + race.BonusFor(rules.AbilityIntelligence),
		Wisdom:       input.BaseScores[rules.AbilityWisdom] + race.BonusFor(rules.AbilityWisdom),
		Charisma:     input.BaseScores[rules.AbilityCharisma] + race.BonusFor(rules.AbilityCharisma),
	}

	hitPoints := max(class.HitDie+scores.Modifier(rules.AbilityConstitution), 1)

	savingThrows := make(map[rules.Ability]bool, len(class.SavingThrows))
	for _, ability := range class.SavingThrows {
		savingThrows[ability] = true
	}

	skills := make(map[rules.Skill]bool)
	for _, skill := range background.SkillProficiencies {
		skills[skill] = true
	}
	for _, skill := range input.SelectedSkills {
		skills[skill] = true
	}
	for _, label := range race.Proficiencies {
		if skill, ok := rules.SkillFromLabel(label); ok {
			skills[skill] = true
		}
	}

	equipment := uniqueStrings(append(append([]string{}, class.StartingEquipment...), background.Equipment...))

	features := append([]string{}, class.Features...)
	if background.Feature != "" {
		features = append(features, background.Feature)
	}

	toolProfs := append([]string{}, class.ToolProficiencies...)
	toolProfs = append(toolProfs, background.ToolProficiencies...)

	languages := append([]string{}, race.Languages...)
	languages = append(languages, background.Languages...)

	state := &hero.State{
		ID:               s.uuidGenerator.New(),
		Name:             strings.TrimSpace(input.Name),
		Level:            1,
		RaceID:           race.ID,
		ClassID:          class.ID,
		BackgroundID:     background.ID,
		AbilityScores:    scores,
		ProficiencyBonus: 2,
		SavingThrows:     savingThrows,
		Skills:           skills,
		ArmorClass:       10 + scores.Modifier(rules.AbilityDexterity),
		Speed:            race.Speed,
		Resources: hero.Resources{
			HitPoints: hitPoints,
		},
		Equipment:         equipment,
		Features:          features,
		Traits:            append([]string{}, race.Traits...),
		Languages:         languages,
		ToolProficiencies: toolProfs,
		Notes:             []string{},
		Status: map[string]int{
			"stress": 0, "wounds": 0, "influence": 0, "corruption": 0,
		},
		Flags:  map[string]bool{},
		Allies: map[string]hero.Relationship{},
	}

	if class.HasSpellcasting() {
		state.SpellcastingAbility = class.SpellcastingAbility
		state.SpellSlots = map[int]int{1: 2}
	}

	return &BuildOutput{Hero: state}, nil
}
