package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/placement-readiness/internal/analysis"
)

// rawSkillSet accepts both the canonical keyed shape and the legacy
// extractor shape ({"categories": {...}}).
type rawSkillSet struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`

	// Legacy extractor shape.
	Categories       map[string][]string `json:"categories"`
	IsGeneralFresher bool                `json:"isGeneralFresher"`
}

// rawRound accepts canonical (roundTitle/focusAreas) and legacy
// (title/description) round shapes.
type rawRound struct {
	RoundNumber  int      `json:"roundNumber"`
	RoundTitle   string   `json:"roundTitle"`
	Title        string   `json:"title"`
	FocusAreas   []string `json:"focusAreas"`
	Description  string   `json:"description"`
	WhyItMatters string   `json:"whyItMatters"`
}

// rawChecklistRound accepts canonical (roundTitle) and legacy (round).
type rawChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Round      string   `json:"round"`
	Items      []string `json:"items"`
}

// rawPlanDay accepts canonical (focus/tasks) and legacy (title/items).
type rawPlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
	Items []string `json:"items"`
}

// rawEntry is the union of the canonical entry and every documented legacy
// shape. Unknown aliases beyond these are not accepted.
type rawEntry struct {
	ID              string              `json:"id"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
	Company         string              `json:"company"`
	Role            string              `json:"role"`
	JDText          *string             `json:"jdText"`
	ExtractedSkills *rawSkillSet        `json:"extractedSkills"`
	RoundMapping    []rawRound          `json:"roundMapping"`
	Checklist       []rawChecklistRound `json:"checklist"`
	Plan7Days       []rawPlanDay        `json:"plan7Days"`
	Plan            []rawPlanDay        `json:"plan"`
	Questions       []string            `json:"questions"`

	BaseScore          *int              `json:"baseScore"`
	FinalScore         *int              `json:"finalScore"`
	ReadinessScore     *int              `json:"readinessScore"`     // legacy
	BaseReadinessScore *int              `json:"baseReadinessScore"` // legacy
	SkillConfidenceMap map[string]string `json:"skillConfidenceMap"`

	CompanyIntel json.RawMessage `json:"companyIntel"`
}

// DecodeEntry decodes one stored record, canonical or legacy, into the
// canonical shape. It fails only on malformed JSON or a record missing its
// identity; every other absent field defaults rather than erroring.
func DecodeEntry(data []byte) (*AnalysisEntry, error) {
	var raw rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("entry has no id")
	}
	if raw.JDText == nil {
		return nil, fmt.Errorf("entry %s has no jdText", raw.ID)
	}

	entry := &AnalysisEntry{
		ID:        raw.ID,
		CreatedAt: parseTime(raw.CreatedAt),
		Company:   raw.Company,
		Role:      raw.Role,
		JDText:    *raw.JDText,

		ExtractedSkills: decodeSkillSet(raw.ExtractedSkills),
		RoundMapping:    decodeRounds(raw.RoundMapping),
		Checklist:       decodeChecklist(raw.Checklist),
		Plan7Days:       decodePlan(raw),
		Questions:       raw.Questions,
	}
	if entry.Questions == nil {
		entry.Questions = []string{}
	}

	entry.UpdatedAt = parseTime(raw.UpdatedAt)
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = entry.CreatedAt
	}

	entry.BaseScore = firstScore(raw.BaseScore, raw.BaseReadinessScore)
	entry.FinalScore = firstScore(raw.FinalScore, raw.ReadinessScore, raw.BaseScore, raw.BaseReadinessScore)

	entry.SkillConfidenceMap = raw.SkillConfidenceMap
	if entry.SkillConfidenceMap == nil {
		entry.SkillConfidenceMap = map[string]string{}
	}

	if len(raw.CompanyIntel) > 0 && string(raw.CompanyIntel) != "null" {
		// Tolerate a malformed intel blob; absence just hides the panel.
		_ = json.Unmarshal(raw.CompanyIntel, &entry.CompanyIntel)
	}

	return entry, nil
}

func decodeSkillSet(raw *rawSkillSet) SkillSet {
	if raw == nil {
		return NormalizeExtractedSkills(nil)
	}

	if raw.Categories != nil {
		// Legacy extractor shape: route through the same normalizer the
		// builder uses.
		return NormalizeExtractedSkills(&analysis.Extracted{
			Categories:       raw.Categories,
			IsGeneralFresher: raw.IsGeneralFresher,
		})
	}

	out := SkillSet{
		CoreCS:    copyskills(raw.CoreCS),
		Languages: copyskills(raw.Languages),
		Web:       copyskills(raw.Web),
		Data:      copyskills(raw.Data),
		Cloud:     copyskills(raw.Cloud),
		Testing:   copyskills(raw.Testing),
		Other:     copyskills(raw.Other),
	}
	return out
}

func decodeRounds(raws []rawRound) []Round {
	out := make([]Round, 0, len(raws))
	for _, r := range raws {
		title := r.RoundTitle
		if title == "" {
			title = r.Title
		}
		if title == "" {
			title = fmt.Sprintf("Round %d", r.RoundNumber)
		}
		focus := r.FocusAreas
		if focus == nil {
			if r.Description != "" {
				focus = []string{r.Description}
			} else {
				focus = []string{}
			}
		}
		out = append(out, Round{RoundTitle: title, FocusAreas: focus, WhyItMatters: r.WhyItMatters})
	}
	return out
}

func decodeChecklist(raws []rawChecklistRound) []ChecklistRound {
	out := make([]ChecklistRound, 0, len(raws))
	for _, c := range raws {
		title := c.RoundTitle
		if title == "" {
			title = c.Round
		}
		items := c.Items
		if items == nil {
			items = []string{}
		}
		out = append(out, ChecklistRound{RoundTitle: title, Items: items})
	}
	return out
}

func decodePlan(raw rawEntry) []PlanDay {
	days := raw.Plan7Days
	if days == nil {
		days = raw.Plan
	}
	out := make([]PlanDay, 0, len(days))
	for _, p := range days {
		focus := p.Focus
		if focus == "" {
			focus = p.Title
		}
		tasks := p.Tasks
		if tasks == nil {
			tasks = p.Items
		}
		if tasks == nil {
			tasks = []string{}
		}
		out = append(out, PlanDay{Day: p.Day, Focus: focus, Tasks: tasks})
	}
	return out
}

func firstScore(candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
