package dice

import (
	"fmt"
	"strings"
)

// Check totals are clamped to this range. The ruleset uses the wider
// [-5, 40] band so heavily penalized rolls can still go negative.
const (
	CheckTotalMin = -5
	CheckTotalMax = 40
)

// CheckOptions describes a single d20 check to resolve.
// Ability and Skill are display labels only; the modifiers are supplied
// pre-computed so the resolver stays independent of the ruleset tables.
type CheckOptions struct {
	Ability          string
	Skill            string
	AbilityMod       int
	ProficiencyBonus int
	Proficient       bool
	MiscBonus        int
	DC               int
	Advantage        bool
	Disadvantage     bool
}

// CheckResult retains every component of a resolved check so callers
// can format a roll summary and tests can assert on each part.
type CheckResult struct {
	Primary      int    `json:"primary"`
	Secondary    *int   `json:"secondary,omitempty"`
	Kept         int    `json:"kept"`
	Total        int    `json:"total"`
	DC           int    `json:"dc"`
	Success      bool   `json:"success"`
	Advantage    bool   `json:"advantage"`
	Disadvantage bool   `json:"disadvantage"`
	Ability      string `json:"ability,omitempty"`
	Skill        string `json:"skill,omitempty"`
	AbilityMod   int    `json:"abilityMod"`
	ProfBonus    int    `json:"proficiencyBonus"`
	Proficient   bool   `json:"proficient"`
	MiscBonus    int    `json:"miscBonus"`
}

// ResolveCheck rolls a d20 check against a difficulty class.
// Advantage rolls a second die and keeps the higher, disadvantage keeps
// the lower. When both flags are set they fall through to the primary
// die alone; the ruleset treats them as cancelling.
func ResolveCheck(roller Roller, opts *CheckOptions) (*CheckResult, error) {
	primaryRoll, err := roller.Roll(1, 20, 0)
	if err != nil {
		return nil, err
	}
	primary := primaryRoll.Rolls[0]

	var secondary *int
	if opts.Advantage || opts.Disadvantage {
		secondaryRoll, rollErr := roller.Roll(1, 20, 0)
		if rollErr != nil {
			return nil, rollErr
		}
		secondary = &secondaryRoll.Rolls[0]
	}

	kept := primary
	switch {
	case opts.Advantage && opts.Disadvantage:
		// cancel out, keep primary
	case opts.Advantage && secondary != nil:
		kept = max(primary, *secondary)
	case opts.Disadvantage && secondary != nil:
		kept = min(primary, *secondary)
	}

	profBonus := 0
	if opts.Proficient {
		profBonus = opts.ProficiencyBonus
	}

	total := clampTotal(kept + opts.AbilityMod + profBonus + opts.MiscBonus)

	return &CheckResult{
		Primary:      primary,
		Secondary:    secondary,
		Kept:         kept,
		Total:        total,
		DC:           opts.DC,
		Success:      total >= opts.DC,
		Advantage:    opts.Advantage,
		Disadvantage: opts.Disadvantage,
		Ability:      opts.Ability,
		Skill:        opts.Skill,
		AbilityMod:   opts.AbilityMod,
		ProfBonus:    opts.ProficiencyBonus,
		Proficient:   opts.Proficient,
		MiscBonus:    opts.MiscBonus,
	}, nil
}

// Summary formats the roll breakdown for the game log, e.g.
// "d20 = 10 • Ability +3 • Proficiency +2 • Total 15 vs DC 14"
func (r *CheckResult) Summary() string {
	parts := []string{
		fmt.Sprintf("d20 = %d", r.Kept),
		fmt.Sprintf("Ability %+d", r.AbilityMod),
	}

	if r.Proficient {
		parts = append(parts, fmt.Sprintf("Proficiency +%d", r.ProfBonus))
	}

	if r.MiscBonus != 0 {
		parts = append(parts, fmt.Sprintf("Misc %+d", r.MiscBonus))
	}

	parts = append(parts, fmt.Sprintf("Total %d vs DC %d", r.Total, r.DC))
	return strings.Join(parts, " • ")
}

func clampTotal(total int) int {
	if total < CheckTotalMin {
		return CheckTotalMin
	}
	if total > CheckTotalMax {
		return CheckTotalMax
	}
	return total
}
