package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var formulaPattern = regexp.MustCompile(`(\d*)d(\d+)([+-]\d+)?`)

// FormulaResult holds the outcome of rolling a dice formula such as
// "2d6+1". Malformed formulas degrade to a flat number with no rolls.
type FormulaResult struct {
	Total    int    `json:"total"`
	Rolls    []int  `json:"rolls"`
	Sides    int    `json:"sides"`
	Modifier int    `json:"modifier"`
	Formula  string `json:"formula"`
}

// RollFormula parses and rolls a "{count}d{sides}{±modifier}" formula.
// Count defaults to 1 and the modifier to 0. Anything that does not
// match the pattern is treated as a flat number rather than an error.
func RollFormula(roller Roller, formula string) (*FormulaResult, error) {
	cleaned := strings.ToLower(strings.Join(strings.Fields(formula), ""))

	match := formulaPattern.FindStringSubmatch(cleaned)
	if match == nil {
		flat := parseLeadingInt(cleaned)
		display := cleaned
		if display == "" {
			display = "0"
		}
		return &FormulaResult{
			Total:    flat,
			Rolls:    []int{},
			Modifier: flat,
			Formula:  display,
		}, nil
	}

	count := 1
	if match[1] != "" {
		count, _ = strconv.Atoi(match[1])
	}
	if count < 1 {
		count = 1
	}

	sides, _ := strconv.Atoi(match[2])

	modifier := 0
	if match[3] != "" {
		modifier, _ = strconv.Atoi(match[3])
	}

	result, err := roller.Roll(count, sides, modifier)
	if err != nil {
		return nil, err
	}

	display := fmt.Sprintf("%dd%d", count, sides)
	if modifier != 0 {
		display = fmt.Sprintf("%s%+d", display, modifier)
	}

	return &FormulaResult{
		Total:    result.Total,
		Rolls:    result.Rolls,
		Sides:    sides,
		Modifier: modifier,
		Formula:  display,
	}, nil
}

// parseLeadingInt reads the integer prefix of s, returning 0 when there
// is none.
func parseLeadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return value
}
