package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfall/ascent/internal/domain/hero"
)

func testHero() *hero.State {
	return &hero.State{
		ID:    "hero-1",
		Name:  "Kestrel",
		Level: 1,
		Resources: hero.Resources{
			HitPoints:     11,
			TempHitPoints: 0,
			Inspiration:   1,
		},
		Equipment: []string{"Rapier", "Thieves' tools"},
		Features:  []string{"Expertise"},
		Notes:     []string{},
		Status:    map[string]int{"stress": 0, "wounds": 0, "influence": 0, "corruption": 0},
		Flags:     map[string]bool{},
		Allies:    map[string]hero.Relationship{},
	}
}

func intPtr(v int) *int { return &v }

func TestApply_NilEffectReturnsInput(t *testing.T) {
	state := testHero()
	assert.Same(t, state, hero.Apply(state, nil))
}

func TestApply_NeverMutatesInput(t *testing.T) {
	state := testHero()
	state.Status["stress"] = 2
	state.Allies["marek"] = hero.RelationshipRival

	updated := hero.Apply(state, &hero.Effect{
		AddItems:     []string{"Harmonic lance"},
		RemoveItems:  []string{"Rapier"},
		Flags:        map[string]bool{"lift_sabotaged": true},
		StatusAdjust: map[string]int{"stress": 3},
		Allies:       map[string]hero.Relationship{"marek": hero.RelationshipAlly},
		Notes:        []string{"The lance hums in your grip."},
		Resources:    &hero.ResourceOverwrite{HitPoints: intPtr(5)},
	})

	// input untouched
	assert.Equal(t, []string{"Rapier", "Thieves' tools"}, state.Equipment)
	assert.Equal(t, 2, state.Status["stress"])
	assert.False(t, state.Flags["lift_sabotaged"])
	assert.Equal(t, hero.RelationshipRival, state.Allies["marek"])
	assert.Empty(t, state.Notes)
	assert.Equal(t, 11, state.Resources.HitPoints)

	// result carries the changes
	assert.Equal(t, []string{"Thieves' tools", "Harmonic lance"}, updated.Equipment)
	assert.Equal(t, 5, updated.Status["stress"])
	assert.True(t, updated.Flags["lift_sabotaged"])
	assert.Equal(t, hero.RelationshipAlly, updated.Allies["marek"])
	assert.Equal(t, []string{"The lance hums in your grip."}, updated.Notes)
	assert.Equal(t, 5, updated.Resources.HitPoints)
}

func TestApply_ContainersHaveFreshIdentity(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{Notes: []string{"note"}})
	require.NotSame(t, state, updated)

	updated.Status["stress"] = 7
	updated.Flags["tampered"] = true
	updated.Allies["tamsin"] = hero.RelationshipAlly
	updated.Equipment = append(updated.Equipment, "Arc dampener")

	assert.Equal(t, 0, state.Status["stress"])
	assert.False(t, state.Flags["tampered"])
	assert.NotContains(t, state.Allies, "tamsin")
	assert.Len(t, state.Equipment, 2)
}

func TestApply_AddItemsAreSetSemantics(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{AddItems: []string{"Rapier", "Lantern"}})
	assert.Equal(t, []string{"Rapier", "Thieves' tools", "Lantern"}, updated.Equipment)
}

func TestApply_RemoveItemsDropsAllMatches(t *testing.T) {
	state := testHero()
	state.Equipment = []string{"Torch", "Rapier", "Torch"}

	updated := hero.Apply(state, &hero.Effect{RemoveItems: []string{"Torch"}})
	assert.Equal(t, []string{"Rapier"}, updated.Equipment)
}

func TestApply_StatusAdjustIsAdditiveThenClamped(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{StatusAdjust: map[string]int{"stress": 2}})
	updated = hero.Apply(updated, &hero.Effect{StatusAdjust: map[string]int{"stress": 2}})
	assert.Equal(t, 4, updated.Status["stress"])

	updated = hero.Apply(updated, &hero.Effect{StatusAdjust: map[string]int{"stress": 100}})
	assert.Equal(t, 8, updated.Status["stress"], "stress caps at 8")

	updated = hero.Apply(updated, &hero.Effect{StatusAdjust: map[string]int{"stress": -100}})
	assert.Equal(t, 0, updated.Status["stress"], "stress floors at 0")
}

func TestApply_InfluenceAndCorruptionCapAtSix(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{
		StatusAdjust: map[string]int{"influence": 10, "corruption": 10, "resolve": 10},
	})

	assert.Equal(t, 6, updated.Status["influence"])
	assert.Equal(t, 6, updated.Status["corruption"])
	assert.Equal(t, 8, updated.Status["resolve"], "unknown counters use the default range")
}

func TestApply_ResourcesOverwriteNotAdd(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{
		Resources: &hero.ResourceOverwrite{HitPoints: intPtr(5)},
	})
	assert.Equal(t, 5, updated.Resources.HitPoints)

	updated = hero.Apply(updated, &hero.Effect{
		Resources: &hero.ResourceOverwrite{HitPoints: intPtr(5)},
	})
	assert.Equal(t, 5, updated.Resources.HitPoints, "overwrite is idempotent, never additive")

	updated = hero.Apply(updated, &hero.Effect{
		Resources: &hero.ResourceOverwrite{HitPoints: intPtr(-3), Inspiration: intPtr(2)},
	})
	assert.Equal(t, 0, updated.Resources.HitPoints, "negative overwrites floor at 0")
	assert.Equal(t, 2, updated.Resources.Inspiration)
	assert.Equal(t, 0, updated.Resources.TempHitPoints, "absent fields stay put")
}

func TestApply_FlagsOverwrite(t *testing.T) {
	state := testHero()
	state.Flags["gate_open"] = true

	updated := hero.Apply(state, &hero.Effect{Flags: map[string]bool{"gate_open": false}})
	assert.False(t, updated.Flags["gate_open"])
}

func TestApply_AddFeatures(t *testing.T) {
	state := testHero()

	updated := hero.Apply(state, &hero.Effect{AddFeatures: []string{"Warden's Mark"}})
	assert.Equal(t, []string{"Expertise", "Warden's Mark"}, updated.Features)
}

func TestClampStatus(t *testing.T) {
	assert.Equal(t, 0, hero.ClampStatus("stress", -4))
	assert.Equal(t, 8, hero.ClampStatus("stress", 9))
	assert.Equal(t, 6, hero.ClampStatus("influence", 9))
	assert.Equal(t, 6, hero.ClampStatus("corruption", 7))
	assert.Equal(t, 3, hero.ClampStatus("anything", 3))
}

func TestState_Accessors(t *testing.T) {
	state := testHero()
	state.Flags["seen_vision"] = true
	state.Allies["seraphine"] = hero.RelationshipAlly

	assert.True(t, state.HasFlag("seen_vision"))
	assert.False(t, state.HasFlag("unset"))
	assert.Equal(t, 0, state.StatusValue("unknown"))
	assert.Equal(t, hero.RelationshipAlly, state.AllyStanding("seraphine"))
	assert.Equal(t, hero.RelationshipNeutral, state.AllyStanding("stranger"))
}
