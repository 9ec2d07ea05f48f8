package rules

// BackgroundDefinition describes one character background
type BackgroundDefinition struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	SkillProficiencies       []Skill  `json:"skillProficiencies"`
	ToolProficiencies        []string `json:"toolProficiencies"`
	Languages                []string `json:"languages"`
	Equipment                []string `json:"equipment"`
	Feature                  string   `json:"feature"`
	SuggestedCharacteristics []string `json:"suggestedCharacteristics"`
}

// Backgrounds lists every background
var Backgrounds = []BackgroundDefinition{
	{
		ID:                 "acolyte",
		Name:               "Acolyte",
		SkillProficiencies: []Skill{SkillInsight, SkillReligion},
		ToolProficiencies:  []string{},
		Languages:          []string{"Choice of two"},
		Equipment: []string{
			"Holy symbol", "Prayer book", "5 sticks of incense", "Vestments",
			"Common clothes", "15 gp",
		},
		Feature: "Shelter of the Faithful",
		SuggestedCharacteristics: []string{
			"Ideals rooted in faith",
			"Bonds tied to temples or mentors",
			"Flaws that test devotion",
		},
	},
	{
		ID:                 "soldier",
		Name:               "Soldier",
		SkillProficiencies: []Skill{SkillAthletics, SkillIntimidation},
		ToolProficiencies:  []string{"Gaming set (one of your choice)", "Vehicles (land)"},
		Languages:          []string{},
		Equipment: []string{
			"Insignia of rank", "Trophy from a fallen enemy",
			"Set of bone dice or deck of cards", "Common clothes", "10 gp",
		},
		Feature: "Military Rank",
		SuggestedCharacteristics: []string{
			"Disciplined loyalty",
			"Camaraderie among comrades",
			"Haunted by the memories of war",
		},
	},
	{
		ID:                 "sage",
		Name:               "Sage",
		SkillProficiencies: []Skill{SkillArcana, SkillHistory},
		ToolProficiencies:  []string{},
		Languages:          []string{"Choice of two"},
		Equipment: []string{
			"Bottle of ink", "Quill", "Small knife", "Letter from a dead colleague",
			"Common clothes", "10 gp",
		},
		Feature: "Researcher",
		SuggestedCharacteristics: []string{
			"Curiosity about the world",
			"Dedicated to uncovering lost knowledge",
			"Distracted by esoteric questions",
		},
	},
	{
		ID:                 "outlander",
		Name:               "Outlander",
		SkillProficiencies: []Skill{SkillAthletics, SkillSurvival},
		ToolProficiencies:  []string{"Musical instrument (one of your choice)"},
		Languages:          []string{"Choice of one"},
		Equipment: []string{
			"Staff", "Hunting trap", "Trophy from a killed animal",
			"Traveller's clothes", "10 gp",
		},
		Feature: "Wanderer",
		SuggestedCharacteristics: []string{
			"Prefers the wilds to crowded streets",
			"Protective of the natural world",
			"Slow to trust civilisation",
		},
	},
}

// BackgroundByID looks up a background definition
func BackgroundByID(id string) (*BackgroundDefinition, bool) {
	for i := range Backgrounds {
		if Backgrounds[i].ID == id {
			return &Backgrounds[i], true
		}
	}
	return nil, false
}
