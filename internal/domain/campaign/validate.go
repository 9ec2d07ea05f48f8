package campaign

import (
	"encoding/json"

	"github.com/emberfall/ascent/internal/errors"
)

// Validate checks the campaign document for authoring errors. Dangling
// scene references surface here at load time rather than as dead ends
// during play.
func (c *Campaign) Validate() error {
	if c.ID == "" {
		return errors.ContentInvalid("campaign id is required")
	}
	if len(c.Acts) == 0 {
		return errors.ContentInvalid("campaign must define at least one act")
	}
	if len(c.Characters) == 0 {
		return errors.ContentInvalid("campaign must define at least one character")
	}

	if len(c.Scenes) == 0 {
		// Freeform-only campaign; nothing else to check.
		return nil
	}

	if c.IntroSceneID == "" {
		return errors.ContentInvalid("campaign with scenes must name an intro scene")
	}
	if c.Scene(c.IntroSceneID) == nil {
		return errors.ContentInvalidf("intro scene %q not found", c.IntroSceneID)
	}

	seen := make(map[string]bool, len(c.Scenes))
	for i := range c.Scenes {
		scene := &c.Scenes[i]
		if scene.ID == "" {
			return errors.ContentInvalid("scene with empty id")
		}
		if seen[scene.ID] {
			return errors.ContentInvalidf("duplicate scene id %q", scene.ID)
		}
		seen[scene.ID] = true
	}

	for i := range c.Scenes {
		scene := &c.Scenes[i]
		if scene.FallbackSceneID != "" && c.Scene(scene.FallbackSceneID) == nil {
			return errors.ContentInvalidf("scene %q fallback references unknown scene %q", scene.ID, scene.FallbackSceneID)
		}

		choiceIDs := make(map[string]bool, len(scene.Options))
		for j := range scene.Options {
			choice := &scene.Options[j]
			if choice.ID == "" {
				return errors.ContentInvalidf("scene %q has a choice with empty id", scene.ID)
			}
			if choiceIDs[choice.ID] {
				return errors.ContentInvalidf("scene %q has duplicate choice id %q", scene.ID, choice.ID)
			}
			choiceIDs[choice.ID] = true

			if err := c.validateChoice(scene, choice); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Campaign) validateChoice(scene *Scene, choice *Choice) error {
	hasAuto := choice.AutoSuccess != nil
	hasCheck := choice.SkillCheck != nil
	if hasAuto == hasCheck {
		return errors.ContentInvalidf("scene %q choice %q must have exactly one of autoSuccess or skillCheck", scene.ID, choice.ID)
	}

	if hasAuto {
		return c.validateOutcome(scene, choice, choice.AutoSuccess)
	}

	check := choice.SkillCheck
	if check.Ability == "" {
		return errors.ContentInvalidf("scene %q choice %q skill check has no ability", scene.ID, choice.ID)
	}
	if check.DC <= 0 {
		return errors.ContentInvalidf("scene %q choice %q skill check has no DC", scene.ID, choice.ID)
	}
	if err := c.validateOutcome(scene, choice, &check.Success); err != nil {
		return err
	}
	return c.validateOutcome(scene, choice, &check.Failure)
}

func (c *Campaign) validateOutcome(scene *Scene, choice *Choice, outcome *Outcome) error {
	if outcome.NextSceneID != "" && c.Scene(outcome.NextSceneID) == nil {
		return errors.ContentInvalidf("scene %q choice %q references unknown scene %q", scene.ID, choice.ID, outcome.NextSceneID)
	}
	return nil
}

// Load parses and validates a campaign document from JSON. A malformed
// document fails fast before play begins.
func Load(data []byte) (*Campaign, error) {
	var c Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse campaign document")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
