package schema

// EntryView is the display projection of a stored entry: skills grouped by
// category, UI field names for rounds/plan/checklist, and the live score
// surfaced as readinessScore. The canonical entry rides along so the view
// can be re-derived (normalizing twice changes nothing).
type EntryView struct {
	Entry *AnalysisEntry `json:"entry"`

	Categories map[string][]string  `json:"categories"`
	Checklist  []ViewChecklistRound `json:"checklist"`
	Plan       []ViewPlanDay        `json:"plan"`
	Questions  []string             `json:"questions"`

	ReadinessScore     int `json:"readinessScore"`
	BaseReadinessScore int `json:"baseReadinessScore"`

	RoundMapping []ViewRound `json:"roundMapping"`
}

// ViewRound is the UI round shape: numbered, with a single description.
type ViewRound struct {
	RoundNumber  int    `json:"roundNumber"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	WhyItMatters string `json:"whyItMatters"`
}

// ViewChecklistRound is the UI checklist shape.
type ViewChecklistRound struct {
	Round string   `json:"round"`
	Items []string `json:"items"`
}

// ViewPlanDay is the UI plan shape.
type ViewPlanDay struct {
	Day   string   `json:"day"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// NormalizeForView derives the display projection from a canonical entry.
// Returns nil for nil or identity-less input.
func NormalizeForView(entry *AnalysisEntry) *EntryView {
	if entry == nil || entry.ID == "" {
		return nil
	}

	checklist := make([]ViewChecklistRound, 0, len(entry.Checklist))
	for _, c := range entry.Checklist {
		items := c.Items
		if items == nil {
			items = []string{}
		}
		checklist = append(checklist, ViewChecklistRound{Round: c.RoundTitle, Items: items})
	}

	plan := make([]ViewPlanDay, 0, len(entry.Plan7Days))
	for _, p := range entry.Plan7Days {
		tasks := p.Tasks
		if tasks == nil {
			tasks = []string{}
		}
		plan = append(plan, ViewPlanDay{Day: p.Day, Title: p.Focus, Items: tasks})
	}

	roundMapping := make([]ViewRound, 0, len(entry.RoundMapping))
	for i, r := range entry.RoundMapping {
		description := ""
		if len(r.FocusAreas) > 0 {
			description = r.FocusAreas[0]
		}
		roundMapping = append(roundMapping, ViewRound{
			RoundNumber:  i + 1,
			Title:        r.RoundTitle,
			Description:  description,
			WhyItMatters: r.WhyItMatters,
		})
	}

	questions := entry.Questions
	if questions == nil {
		questions = []string{}
	}

	return &EntryView{
		Entry:              entry,
		Categories:         entry.ExtractedSkills.Categories(),
		Checklist:          checklist,
		Plan:               plan,
		Questions:          questions,
		ReadinessScore:     entry.FinalScore,
		BaseReadinessScore: entry.BaseScore,
		RoundMapping:       roundMapping,
	}
}

// SkillToggle pairs a category with one of its skills, in display order.
// This is the iteration order for confidence toggles.
type SkillToggle struct {
	Category string `json:"category"`
	Skill    string `json:"skill"`
}

// SkillToggles flattens the grouped skills into (category, skill) pairs.
func (v *EntryView) SkillToggles() []SkillToggle {
	toggles := make([]SkillToggle, 0)
	for _, category := range categoryDisplayOrder() {
		for _, skill := range v.Categories[category] {
			toggles = append(toggles, SkillToggle{Category: category, Skill: skill})
		}
	}
	return toggles
}
