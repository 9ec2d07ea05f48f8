package campaign

import (
	"github.com/emberfall/ascent/internal/domain/hero"
	"github.com/emberfall/ascent/internal/domain/rules"
)

// Emberfall is the bundled campaign document. A remote document can
// replace it at load time; the engine treats both as read-only input.
var Emberfall = &Campaign{
	ID:    "emberfall-ascent",
	Title: "Emberfall Ascent",
	Synopsis: "Emberfall is a cliff city pinned beneath a hovering astral spire. " +
		"The Heart of Embers is destabilising and threatens to shatter the city in " +
		"a wave of astral fire unless a lone hero intervenes.",
	Tone: "Hopeful dark fantasy with tactile stakes and cinematic pacing.",
	Guidance: []string{
		"Let the player attempt any action. The narrator should interpret intent, roll forward consequences, and keep momentum.",
		"Always ground replies in the key characters and the city's imminent danger. Remind the player of the collapsing spire when needed.",
		"Keep scenes punchy: describe the immediate beat, what changes, and what options feel dramatically potent next.",
	},
	Themes: []string{
		"Sacrifice vs. salvation",
		"Mortal ingenuity in the face of astral power",
		"Alliances built in chaos",
	},
	Acts: []Act{
		{
			ID:    "act1",
			Title: "Ashfen Sparks",
			Situation: "Fires rip across the Ashfen Plaza as refugees stream from the terraces. " +
				"Sentinel forces hold lines while cultists try to rush the elevators.",
			Objectives: []string{
				"Stabilise the plaza and earn Marek Thorne's begrudging trust.",
				"Gather intel from Seraphine or salvage tech from Tamsin for the climb.",
				"Choose whether to prioritise the citizens or the ascent.",
			},
			Complications: []string{
				"Civilians caught between barricades.",
				"Cultist saboteurs targeting lifts.",
				"Limited time before the spire sheds more debris.",
			},
			Escalation: "When the hero commits to the ascent, the plaza quakes as the Heart surges, " +
				"forcing a dramatic exit toward the spire.",
		},
		{
			ID:    "act2",
			Title: "Spire Ascent",
			Situation: "Inside the spire, flickering rituals, broken maintenance shafts, and " +
				"arc-sentry patrols form a gauntlet toward the Containment Annex.",
			Objectives: []string{
				"Navigate vertical lifts, maintenance tunnels, or astral currents.",
				"Locate and free Nerrix Tal who understands the Heart's systems.",
				"Decide whether to strike bargains with Lirael's lingering essence.",
			},
			Complications: []string{
				"Electrical storms, unstable platforms, and arc sentries.",
				"Marek's forces taking heavy casualties below, pressuring the hero.",
				"Tempting shortcuts that risk corruption.",
			},
			Escalation: "As the hero nears the Heart, astral pressure fractures rooms and opens " +
				"glimpses into Lirael's fractured memory.",
		},
		{
			ID:    "act3",
			Title: "Heart of Embers",
			Situation: "At the core, the Heart pulses dangerously. Lirael, half-bound guardian, " +
				"tests the hero's resolve while cultist remnants try to seize control.",
			Objectives: []string{
				"Stabilise or cleanse the Heart by aligning harmonic conduits.",
				"Decide the fate of Lirael and Emberfall's future power source.",
				"Deliver a final choice that ripples through the city (cleanse, bargain, shatter, or redirect).",
			},
			Complications: []string{
				"Corruption bleeding into the hero's veins.",
				"Nerrix's failsafes misfiring.",
				"Time pressure as the spire begins to fall.",
			},
			Escalation: "Every action shakes Emberfall. Describe citizens reacting in real time " +
				"and allies lending distant aid.",
		},
	},
	Characters: []Character{
		{
			ID:         "seraphine",
			Name:       "Seraphine Voss",
			Role:       "Lantern seer who reads future threads from ember lanterns.",
			Motivation: "Prevent the Heart's corruption from consuming the city.",
			Voice: "Soft, prophetic, often referencing sparks and threads while nudging the " +
				"hero toward compassionate choices.",
			Secrets: []string{
				"Knows Lirael retains some agency.",
				"Foresees a version where the hero becomes the next warden.",
			},
			Resources: []string{"Visions of imminent threats", "Ritual focus flames"},
		},
		{
			ID:         "tamsin",
			Name:       "Tamsin Quickwick",
			Role:       "Goblin artificer managing improvised gadgets.",
			Motivation: "Keep her inventions (and Emberfall) from exploding.",
			Voice:      "Chaotic, witty, full of technical jargon and improvised metaphors.",
			Secrets:    []string{"Built a forbidden harmonic lance hidden in the maintenance shafts."},
			Resources:  []string{"Grappling rigs", "Arc dampeners", "Explosive charges"},
		},
		{
			ID:         "marek",
			Name:       "Captain Marek Thorne",
			Role:       "Sentinel commander coordinating evacuations.",
			Motivation: "Save as many citizens as possible while maintaining order.",
			Voice:      "Blunt, duty-bound, tempered with reluctant respect when earned.",
			Secrets:    []string{"Fears Emberfall will scapegoat him if the plan fails."},
			Resources:  []string{"Sentinel squads", "Barricade schematics"},
		},
		{
			ID:         "nerrix",
			Name:       "Nerrix Tal",
			Role:       "Tinkerer trapped in the spire's Containment Annex.",
			Motivation: "Escape and ensure the Heart does not fall into cult control.",
			Voice:      "Nervy, brilliant, peppered with technomantic slang.",
			Secrets:    []string{"Knows the shutdown sequence requires a personal sacrifice."},
			Resources:  []string{"Harmonic keycodes", "Containment overrides"},
		},
		{
			ID:         "lirael",
			Name:       "Lirael the Warden",
			Role:       "Astral guardian bound to the Heart.",
			Motivation: "Guard Emberfall yet long for release from duty.",
			Voice:      "Echoing, solemn, poetic, challenging the hero's convictions.",
			Secrets: []string{
				"Can merge with a mortal champion.",
				"Believes the Heart might seed other cities if controlled.",
			},
			Resources: []string{"Astral barriers", "Memory echoes shared with the hero"},
		},
	},
	Lore: []LoreEntry{
		{
			ID:    "heart",
			Title: "Heart of Embers",
			Details: []string{
				"An astral core lifted above Emberfall to power wards and lifts.",
				"Stabilised by hymns and harmonic circuits maintained by Nerrix's guild.",
				"Now destabilised after cult interference; needs resynchronisation or a clean severance.",
			},
		},
		{
			ID:    "emberfall",
			Title: "City of Emberfall",
			Details: []string{
				"Built into cliff terraces with luminous canals channeling Heart energy.",
				"Ashfen Plaza acts as the social and strategic heart of evac efforts.",
				"Citizens rely on Sentinels and the hero's success to survive.",
			},
		},
		{
			ID:    "cult",
			Title: "Ember Reclamation Cult",
			Details: []string{
				"Believes the Heart should collapse to purge Emberfall's elites.",
				"Sows chaos in the plaza and inside the spire.",
				"Some cultists try to bargain with Lirael for power.",
			},
		},
	},
	IntroSceneID: "plaza",
	Scenes:       emberfallScenes,
}

var emberfallScenes = []Scene{
	{
		ID:    "plaza",
		Title: "Ashfen Plaza",
		Narrative: "Astral embers rain onto the plaza as Sentinels wrestle a barricade into " +
			"place. Above you the spire groans, and the Heart's pulse rattles loose tiles " +
			"underfoot. Refugees stream toward the lower terraces.",
		OnEnter: &hero.Effect{
			StatusAdjust: map[string]int{"stress": 1},
			Notes:        []string{"The Heart's pulse is quickening. Time is not on your side."},
		},
		Options: []Choice{
			{
				ID:          "help-sentinels",
				Label:       "Shore up the barricades",
				Description: "Throw your weight behind Marek's line.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityStrength,
					Skill:   rules.SkillAthletics,
					DC:      12,
					Success: Outcome{
						ID:          "help-sentinels-success",
						NextSceneID: "lift-gate",
						Narrative: "The barricade holds. Marek gives you a curt nod that, from him, " +
							"counts as a commendation.",
						Effects: &hero.Effect{
							Flags:  map[string]bool{"marek_respect": true},
							Allies: map[string]hero.Relationship{"marek": hero.RelationshipAlly},
						},
					},
					Failure: Outcome{
						ID:          "help-sentinels-failure",
						NextSceneID: "lift-gate",
						Narrative: "A support beam slips and clips your shoulder before the Sentinels " +
							"catch it. The line holds, barely.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"wounds": 1},
						},
					},
				},
			},
			{
				ID:          "read-lanterns",
				Label:       "Study the ember lanterns",
				Description: "Seraphine's lanterns are flaring in sequence. There is meaning in it.",
				SkillCheck: &SkillCheck{
					Ability:         rules.AbilityWisdom,
					Skill:           rules.SkillInsight,
					DC:              13,
					AdvantageIfFlag: "seraphine_blessing",
					Success: Outcome{
						ID:          "read-lanterns-success",
						NextSceneID: "lantern-row",
						Narrative: "The flares resolve into a pattern: a warning, and an invitation. " +
							"Seraphine is already watching you when you look up.",
						Effects: &hero.Effect{
							Flags:  map[string]bool{"seen_threads": true},
							Allies: map[string]hero.Relationship{"seraphine": hero.RelationshipAlly},
						},
					},
					Failure: Outcome{
						ID:          "read-lanterns-failure",
						NextSceneID: "lift-gate",
						Narrative: "The patterns swim and refuse to settle. The longer you stare, the " +
							"louder the Heart's pulse grows in your ears.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"stress": 1},
						},
					},
				},
			},
			{
				ID:          "slip-past",
				Label:       "Slip through the crowd",
				Description: "Skip the heroics and make straight for the lift gate.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityDexterity,
					Skill:   rules.SkillStealth,
					DC:      14,
					Success: Outcome{
						ID:          "slip-past-success",
						NextSceneID: "lift-gate",
						Narrative:   "You thread the panic unseen and reach the gate ahead of the crush.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"unseen_approach": true},
						},
					},
					Failure: Outcome{
						ID:          "slip-past-failure",
						NextSceneID: "lift-gate",
						Narrative: "A fleeing porter slams into you and the crowd closes around the " +
							"collision. You arrive at the gate bruised and conspicuous.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"wounds": 1},
						},
					},
				},
			},
		},
	},
	{
		ID:    "lantern-row",
		Title: "Lantern Row",
		Narrative: "Seraphine Voss stands amid a constellation of hanging lanterns, each flame " +
			"bent toward the spire. 'You saw the threads,' she says. 'Few do.'",
		Options: []Choice{
			{
				ID:          "accept-blessing",
				Label:       "Accept her blessing",
				Description: "Let the seer mark you for the climb.",
				AutoSuccess: &Outcome{
					ID:          "accept-blessing-done",
					NextSceneID: "lift-gate",
					Narrative: "Seraphine presses a warm ember into your palm. It sinks beneath the " +
						"skin without pain, and the world feels fractionally steadier.",
					Effects: &hero.Effect{
						AddItems:     []string{"Ember lantern"},
						Flags:        map[string]bool{"seraphine_blessing": true},
						StatusAdjust: map[string]int{"influence": 1},
						Notes:        []string{"Seraphine's blessing steadies your sight."},
					},
				},
			},
			{
				ID:          "press-for-secrets",
				Label:       "Press her about the Warden",
				Description: "She knows more about Lirael than she admits.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityCharisma,
					Skill:   rules.SkillPersuasion,
					DC:      13,
					Success: Outcome{
						ID:          "press-for-secrets-success",
						NextSceneID: "lift-gate",
						Narrative: "'Lirael lives,' Seraphine admits at last. 'Bound, divided, but " +
							"aware. Remember that when you reach the core.'",
						Effects: &hero.Effect{
							Flags: map[string]bool{"knows_lirael_lives": true},
						},
					},
					Failure: Outcome{
						ID:          "press-for-secrets-failure",
						NextSceneID: "lift-gate",
						Narrative: "Seraphine's expression shutters. 'Ask the Heart yourself, if you " +
							"must pry.' The lanterns dim as you leave.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"influence": -1},
						},
					},
				},
			},
		},
	},
	{
		ID:    "lift-gate",
		Title: "The Lift Gate",
		Narrative: "The great elevators hang dead in their shafts, cables singing with strain. " +
			"A scorched control board sparks beside the gate, and somewhere above, metal shears loose.",
		OnEnter: &hero.Effect{
			StatusAdjust: map[string]int{"stress": 1},
		},
		Options: []Choice{
			{
				ID:          "repair-lift",
				Label:       "Repair the control board",
				Description: "The sabotage looks rushed. It might be reversible.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityIntelligence,
					Skill:   rules.SkillInvestigation,
					DC:      13,
					Success: Outcome{
						ID:          "repair-lift-success",
						NextSceneID: "spire-shaft",
						Narrative: "You trace the cultists' splice and undo it. The lift shudders " +
							"upward, carrying you into the spire's hum.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"lift_repaired": true},
						},
					},
					Failure: Outcome{
						ID:          "repair-lift-failure",
						NextSceneID: "maintenance-shaft",
						Narrative: "The board dies for good under your hands. The only way up now is " +
							"the maintenance shaft, and its darkness is not empty.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"wounds": 1},
						},
					},
				},
			},
			{
				ID:           "commandeer-lift",
				Label:        "Commandeer Marek's supply lift",
				Description:  "Sentinel cargo lifts still run on an independent line. Marek could wave you through.",
				RequiresFlag: "marek_respect",
				AutoSuccess: &Outcome{
					ID:          "commandeer-lift-done",
					NextSceneID: "spire-shaft",
					Narrative: "Marek barks an order and the cargo lift opens for you. 'Don't make " +
						"me regret this,' he says, and you believe him.",
				},
			},
			{
				ID:          "climb-chains",
				Label:       "Climb the counterweight chains",
				Description: "A brutal climb, straight up the shaft.",
				SkillCheck: &SkillCheck{
					Ability:            rules.AbilityStrength,
					Skill:              rules.SkillAthletics,
					DC:                 15,
					DisadvantageIfFlag: "wounded_arm",
					Success: Outcome{
						ID:          "climb-chains-success",
						NextSceneID: "spire-shaft",
						Narrative:   "Link by link you haul yourself into the spire, arms burning but whole.",
					},
					Failure: Outcome{
						ID:          "climb-chains-failure",
						NextSceneID: "maintenance-shaft",
						Narrative: "A chain jumps its pulley and wrenches your arm. You drop onto a " +
							"maintenance gantry, cradling it.",
						Effects: &hero.Effect{
							Flags:        map[string]bool{"wounded_arm": true},
							StatusAdjust: map[string]int{"wounds": 1},
						},
					},
				},
			},
			{
				ID:          "seek-seer",
				Label:       "Seek out the lantern seer",
				Description: "You feel eyes on you from Lantern Row.",
				HideIfFlag:  "seraphine_blessing",
				AutoSuccess: &Outcome{
					ID:          "seek-seer-done",
					NextSceneID: "lantern-row",
					Narrative:   "You follow the bent lantern flames to Seraphine's corner of the plaza.",
				},
			},
		},
	},
	{
		ID:    "maintenance-shaft",
		Title: "Maintenance Shaft",
		Narrative: "Tamsin Quickwick is halfway inside a wall of cabling, swearing cheerfully. " +
			"'Oh good, a volunteer! Hold this. Don't let it spark. Probably don't let it spark.'",
		OnEnter: &hero.Effect{
			Notes: []string{"Tamsin's workshop smells of ozone and burnt sugar."},
		},
		Options: []Choice{
			{
				ID:          "borrow-lance",
				Label:       "Ask about the hidden lance",
				Description: "The harmonic lance she pretends she never built.",
				AutoSuccess: &Outcome{
					ID:          "borrow-lance-done",
					NextSceneID: "spire-shaft",
					Narrative: "Tamsin groans. 'Fine. FINE. It's behind the coolant tanks. If you melt, " +
						"I'm not explaining it to Marek.' The lance thrums when you lift it.",
					Effects: &hero.Effect{
						AddItems: []string{"Harmonic lance"},
						Flags:    map[string]bool{"has_lance": true},
						Allies:   map[string]hero.Relationship{"tamsin": hero.RelationshipAlly},
					},
				},
			},
			{
				ID:          "tinker-dampeners",
				Label:       "Help rig the arc dampeners",
				Description: "Her dampeners could blunt the sentries above.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityIntelligence,
					Skill:   rules.SkillArcana,
					DC:      12,
					Success: Outcome{
						ID:          "tinker-dampeners-success",
						NextSceneID: "spire-shaft",
						Narrative: "Together you tune the dampeners until the shaft's static dies to a " +
							"whisper. The way up is quieter now.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"arc_dampeners": true},
						},
					},
					Failure: Outcome{
						ID:          "tinker-dampeners-failure",
						NextSceneID: "spire-shaft",
						Narrative: "The dampener discharges in a white crack. Tamsin waves the smoke " +
							"away. 'That one's on both of us.'",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"stress": 1},
						},
					},
				},
			},
		},
	},
	{
		ID:    "spire-shaft",
		Title: "The Spire Interior",
		Narrative: "Inside, the spire is a vertical cathedral of humming conduits. Arc sentries " +
			"drift between broken ritual circles, and behind a containment pane a figure hammers " +
			"on the glass: Nerrix Tal.",
		OnEnter: &hero.Effect{
			StatusAdjust: map[string]int{"corruption": 1},
			Notes:        []string{"Astral pressure prickles along your veins; the Heart is close."},
		},
		Options: []Choice{
			{
				ID:          "free-nerrix",
				Label:       "Break the containment seals",
				Description: "Pick through the annex lock while the sentries cycle.",
				SkillCheck: &SkillCheck{
					Ability:         rules.AbilityDexterity,
					Skill:           rules.SkillSleightOfHand,
					DC:              13,
					AdvantageIfFlag: "arc_dampeners",
					Success: Outcome{
						ID:          "free-nerrix-success",
						NextSceneID: "annex",
						Narrative: "The seals surrender one by one. Nerrix tumbles out babbling thanks " +
							"and shutdown sequences in the same breath.",
						Effects: &hero.Effect{
							Flags:  map[string]bool{"nerrix_freed": true},
							Allies: map[string]hero.Relationship{"nerrix": hero.RelationshipAlly},
						},
					},
					Failure: Outcome{
						ID:          "free-nerrix-failure",
						NextSceneID: "annex",
						Narrative: "The lock spits sparks and the sentries swing your way. You reach " +
							"the annex at a dead run, alarms singing behind you.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"stress": 1},
						},
					},
				},
			},
			{
				ID:          "bargain-lirael",
				Label:       "Answer the voice in the conduits",
				Description: "Something old is speaking through the spire's hum.",
				SkillCheck: &SkillCheck{
					Ability:         rules.AbilityCharisma,
					Skill:           rules.SkillPersuasion,
					DC:              15,
					AdvantageIfFlag: "knows_lirael_lives",
					Success: Outcome{
						ID:          "bargain-lirael-success",
						NextSceneID: "annex",
						Narrative: "'You speak to me as a person,' the voice echoes. 'That has not " +
							"happened in a century.' The conduits bend light to clear your path.",
						Effects: &hero.Effect{
							Flags:        map[string]bool{"lirael_bargain": true},
							StatusAdjust: map[string]int{"influence": 2},
						},
					},
					Failure: Outcome{
						ID:          "bargain-lirael-failure",
						NextSceneID: "annex",
						Narrative: "The voice withdraws, and something colder floods the space it " +
							"leaves. Your veins itch with borrowed fire.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"corruption": 2},
						},
					},
				},
			},
		},
	},
	{
		ID:    "annex",
		Title: "Containment Annex",
		Narrative: "The annex overlooks the Heart itself: a sun caged in harmonic rings, each " +
			"ring slipping further out of phase. Consoles offer three terrible levers.",
		Options: []Choice{
			{
				ID:           "cleanse-heart",
				Label:        "Align the conduits and cleanse the Heart",
				Description:  "Nerrix's sequence could purge the corruption, if your will holds.",
				RequiresFlag: "nerrix_freed",
				SkillCheck: &SkillCheck{
					Ability:         rules.AbilityWisdom,
					DC:              14,
					AdvantageIfFlag: "seraphine_blessing",
					Success: Outcome{
						ID:        "cleanse-heart-success",
						Narrative: "Ring by ring the Heart steadies, its fire turning from white to gold. Below, Emberfall's canals blaze with clean light. The city will live.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"heart_cleansed": true},
							Notes: []string{"The Heart of Embers burns clean. Emberfall stands."},
						},
					},
					Failure: Outcome{
						ID:          "cleanse-heart-failure",
						NextSceneID: "heart-core",
						Narrative: "The sequence stutters against your doubt and the rings spin wild. " +
							"There is only one place left to finish this: inside the cage itself.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"corruption": 2},
						},
					},
				},
			},
			{
				ID:          "sever-heart",
				Label:       "Sever the Heart from the city",
				Description: "Cut it loose and let it burn out above the clouds.",
				SkillCheck: &SkillCheck{
					Ability:            rules.AbilityStrength,
					DC:                 15,
					DisadvantageIfFlag: "wounded_arm",
					Success: Outcome{
						ID: "sever-heart-success",
						Narrative: "The final coupling shears away and the Heart tears free of its " +
							"moorings, dwindling into the sky like a dying star. Emberfall goes dark, " +
							"and quiet, and safe.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"heart_shattered": true},
							Notes: []string{"The spire stands empty. The city below must learn to live unlit."},
						},
					},
					Failure: Outcome{
						ID:          "sever-heart-failure",
						NextSceneID: "heart-core",
						Narrative: "The coupling bites back, hurling you across the annex. The Heart " +
							"drags you toward its core as the rings collapse inward.",
						Effects: &hero.Effect{
							StatusAdjust: map[string]int{"wounds": 2},
						},
					},
				},
			},
			{
				ID:          "enter-core",
				Label:       "Walk into the cage",
				Description: "Face the Warden where she is bound.",
				AutoSuccess: &Outcome{
					ID:          "enter-core-done",
					NextSceneID: "heart-core",
					Narrative: "You step between the rings. Heat that should flay you parts instead " +
						"like a curtain, and Lirael is waiting on the other side.",
					Effects: &hero.Effect{
						StatusAdjust: map[string]int{"corruption": 1},
					},
				},
			},
		},
	},
	{
		ID:    "heart-core",
		Title: "The Heart of Embers",
		Narrative: "Within the cage, Lirael the Warden hangs half-merged with the Heart's fire. " +
			"'Choose,' she says, 'for both of us. I am too divided to do it alone.'",
		OnEnter: &hero.Effect{
			Notes: []string{"Lirael's memories brush yours: a century of holding the fire alone."},
		},
		Options: []Choice{
			{
				ID:          "share-burden",
				Label:       "Take her hand and share the wardenship",
				Description: "Two wills might hold what one cannot.",
				AutoSuccess: &Outcome{
					ID: "share-burden-done",
					Narrative: "Fire threads your joined hands and settles, divided and bearable. " +
						"Emberfall wakes to a steady dawn, and somewhere in the light, two wardens " +
						"keep watch.",
					Effects: &hero.Effect{
						Flags: map[string]bool{"heart_cleansed": true, "warden_merged": true},
						Notes: []string{"You and Lirael hold the Heart together now."},
					},
				},
			},
			{
				ID:          "release-warden",
				Label:       "Release Lirael and ground the fire yourself",
				Description: "Someone must carry it down. It does not have to be her.",
				SkillCheck: &SkillCheck{
					Ability: rules.AbilityConstitution,
					DC:      12,
					Success: Outcome{
						ID: "release-warden-success",
						Narrative: "Lirael dissolves into sparks with something like a sigh. You carry " +
							"the banked Heart down through the spire, step by burning step, and set it " +
							"in the city's deepest cistern where it can cool for a generation.",
						Effects: &hero.Effect{
							Flags: map[string]bool{"heart_cleansed": true, "lirael_freed": true},
						},
					},
					Failure: Outcome{
						ID: "release-warden-failure",
						Narrative: "The fire is heavier than any promise. It slips your grip on the " +
							"final stair and dies against the bedrock, taking the spire's light with " +
							"it. Emberfall survives, scarred and dim.",
						Effects: &hero.Effect{
							Flags:        map[string]bool{"heart_shattered": true},
							StatusAdjust: map[string]int{"wounds": 2},
						},
					},
				},
			},
		},
	},
}
