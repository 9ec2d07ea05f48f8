package hero

// Status counters are clamped to metric-specific ranges immediately
// after every adjustment. Influence and corruption run on a tighter
// band than the other counters.
const (
	statusCapDefault   = 8
	statusCapInfluence = 6
)

// DefaultStatusKeys are the counters every new hero starts with at 0.
// The campaign content is free to introduce additional counters; those
// use the default range.
var DefaultStatusKeys = []string{"stress", "wounds", "influence", "corruption"}

// ClampStatus bounds a counter value to its metric-specific range
func ClampStatus(key string, value int) int {
	limit := statusCapDefault
	if key == "influence" || key == "corruption" {
		limit = statusCapInfluence
	}
	if value < 0 {
		return 0
	}
	if value > limit {
		return limit
	}
	return value
}

// ResourceOverwrite replaces resource pools outright. Each present
// field overwrites the current value, floored at 0. These are not
// additive; status counters are the additive mechanism.
type ResourceOverwrite struct {
	HitPoints     *int `json:"hitPoints,omitempty"`
	TempHitPoints *int `json:"tempHitPoints,omitempty"`
	Inspiration   *int `json:"inspiration,omitempty"`
}

// Effect is the declarative description of state changes applied to
// the hero by a scene outcome or a story beat delta. All fields are
// optional; absent fields leave the hero untouched.
type Effect struct {
	AddItems     []string                `json:"addItems,omitempty"`
	RemoveItems  []string                `json:"removeItems,omitempty"`
	Flags        map[string]bool         `json:"flags,omitempty"`
	StatusAdjust map[string]int          `json:"statusAdjust,omitempty"`
	Allies       map[string]Relationship `json:"allies,omitempty"`
	AddFeatures  []string                `json:"addFeatures,omitempty"`
	Notes        []string                `json:"notes,omitempty"`
	Resources    *ResourceOverwrite      `json:"resources,omitempty"`
	IsEnding     bool                    `json:"isEnding,omitempty"`
}

// Apply merges an effect into the hero state and returns the result.
// It never mutates its input: every mutable container is copied before
// any field is touched. A nil effect returns the hero unchanged.
//
// Sub-deltas are applied in a fixed order: item adds, item removes,
// flags, status adjustments, allies, features, notes, resources. The
// fields are independent of each other, so the order only matters for
// documentation.
func Apply(state *State, effect *Effect) *State {
	if state == nil || effect == nil {
		return state
	}

	updated := state.Clone()

	for _, item := range effect.AddItems {
		if !contains(updated.Equipment, item) {
			updated.Equipment = append(updated.Equipment, item)
		}
	}

	if len(effect.RemoveItems) > 0 {
		kept := updated.Equipment[:0]
		for _, item := range updated.Equipment {
			if !contains(effect.RemoveItems, item) {
				kept = append(kept, item)
			}
		}
		updated.Equipment = kept
	}

	if len(effect.Flags) > 0 {
		if updated.Flags == nil {
			updated.Flags = make(map[string]bool, len(effect.Flags))
		}
		for flag, value := range effect.Flags {
			updated.Flags[flag] = value
		}
	}

	if len(effect.StatusAdjust) > 0 {
		if updated.Status == nil {
			updated.Status = make(map[string]int, len(effect.StatusAdjust))
		}
		for key, delta := range effect.StatusAdjust {
			updated.Status[key] = ClampStatus(key, updated.Status[key]+delta)
		}
	}

	if len(effect.Allies) > 0 {
		if updated.Allies == nil {
			updated.Allies = make(map[string]Relationship, len(effect.Allies))
		}
		for npc, standing := range effect.Allies {
			updated.Allies[npc] = standing
		}
	}

	updated.Features = append(updated.Features, effect.AddFeatures...)
	updated.Notes = append(updated.Notes, effect.Notes...)

	if effect.Resources != nil {
		if effect.Resources.HitPoints != nil {
			updated.Resources.HitPoints = floorZero(*effect.Resources.HitPoints)
		}
		if effect.Resources.TempHitPoints != nil {
			updated.Resources.TempHitPoints = floorZero(*effect.Resources.TempHitPoints)
		}
		if effect.Resources.Inspiration != nil {
			updated.Resources.Inspiration = floorZero(*effect.Resources.Inspiration)
		}
	}

	return updated
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func floorZero(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
