// Package schema defines the canonical persisted analysis entry and the
// normalization between generator output, legacy stored shapes, and the
// display projection.
package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/intel"
	"github.com/jonathan/placement-readiness/internal/rounds"
	"github.com/jonathan/placement-readiness/internal/taxonomy"
)

// SkillSet is the canonical categorized skill shape. Every key is always
// present; "other" is the only bucket ever filled with the general-fresher
// fallback.
type SkillSet struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// Round is the canonical persisted round shape.
type Round struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistRound is the canonical persisted checklist shape.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is the canonical persisted plan shape.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// AnalysisEntry is the canonical persisted unit. Everything except
// SkillConfidenceMap, FinalScore, and UpdatedAt is immutable after creation.
type AnalysisEntry struct {
	ID                 string              `json:"id"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	Company            string              `json:"company"`
	Role               string              `json:"role"`
	JDText             string              `json:"jdText"`
	ExtractedSkills    SkillSet            `json:"extractedSkills"`
	RoundMapping       []Round             `json:"roundMapping"`
	Checklist          []ChecklistRound    `json:"checklist"`
	Plan7Days          []PlanDay           `json:"plan7Days"`
	Questions          []string            `json:"questions"`
	BaseScore          int                 `json:"baseScore"`
	SkillConfidenceMap map[string]string   `json:"skillConfidenceMap"`
	FinalScore         int                 `json:"finalScore"`
	CompanyIntel       *intel.CompanyIntel `json:"companyIntel"`
}

// BuildParams carries raw analysis outputs into BuildEntry. ID and
// CreatedAt are assigned when zero.
type BuildParams struct {
	ID           string
	CreatedAt    time.Time
	Company      string
	Role         string
	JDText       string
	Extracted    *analysis.Extracted
	RoundMapping []rounds.Round
	Checklist    []analysis.ChecklistRound
	Plan         []analysis.PlanDay
	Questions    []string
	BaseScore    int
	CompanyIntel *intel.CompanyIntel
}

// BuildEntry constructs a canonical AnalysisEntry from raw analysis
// outputs. Each sub-structure is normalized independently; absent pieces
// become empty sequences, never errors. FinalScore starts equal to
// BaseScore with an empty confidence map.
func BuildEntry(p BuildParams) *AnalysisEntry {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	questions := p.Questions
	if questions == nil {
		questions = []string{}
	}
	if len(questions) > 10 {
		questions = questions[:10]
	}

	return &AnalysisEntry{
		ID:                 id,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		Company:            p.Company,
		Role:               p.Role,
		JDText:             p.JDText,
		ExtractedSkills:    NormalizeExtractedSkills(p.Extracted),
		RoundMapping:       NormalizeRoundMapping(p.RoundMapping),
		Checklist:          NormalizeChecklist(p.Checklist),
		Plan7Days:          NormalizePlan7Days(p.Plan),
		Questions:          questions,
		BaseScore:          p.BaseScore,
		SkillConfidenceMap: map[string]string{},
		FinalScore:         p.BaseScore,
		CompanyIntel:       p.CompanyIntel,
	}
}

// NormalizeExtractedSkills converts extractor output into the canonical
// SkillSet. When nothing was detected (or input is nil) the "other" bucket
// gets the default fresher skills.
func NormalizeExtractedSkills(extracted *analysis.Extracted) SkillSet {
	out := emptySkillSet()
	if extracted == nil || extracted.Categories == nil {
		out.Other = append([]string{}, taxonomy.DefaultOtherSkills...)
		return out
	}

	out.CoreCS = copyskills(extracted.Categories[taxonomy.CategoryCoreCS])
	out.Languages = copyskills(extracted.Categories[taxonomy.CategoryLanguages])
	out.Web = copyskills(extracted.Categories[taxonomy.CategoryWeb])
	out.Data = copyskills(extracted.Categories[taxonomy.CategoryData])
	out.Cloud = copyskills(extracted.Categories[taxonomy.CategoryCloud])
	out.Testing = copyskills(extracted.Categories[taxonomy.CategoryTesting])

	if extracted.IsGeneralFresher || out.allEmpty() {
		out.Other = append([]string{}, taxonomy.DefaultOtherSkills...)
	}
	return out
}

// NormalizeRoundMapping converts generator rounds to the canonical shape.
// The description becomes the single focus area.
func NormalizeRoundMapping(rs []rounds.Round) []Round {
	out := make([]Round, 0, len(rs))
	for _, r := range rs {
		focus := []string{}
		if r.Description != "" {
			focus = []string{r.Description}
		}
		out = append(out, Round{
			RoundTitle:   r.Title,
			FocusAreas:   focus,
			WhyItMatters: r.WhyItMatters,
		})
	}
	return out
}

// NormalizeChecklist converts generator checklist rounds to the canonical
// shape.
func NormalizeChecklist(cs []analysis.ChecklistRound) []ChecklistRound {
	out := make([]ChecklistRound, 0, len(cs))
	for _, c := range cs {
		items := c.Items
		if items == nil {
			items = []string{}
		}
		out = append(out, ChecklistRound{RoundTitle: c.Round, Items: items})
	}
	return out
}

// NormalizePlan7Days converts generator plan days to the canonical shape.
func NormalizePlan7Days(ps []analysis.PlanDay) []PlanDay {
	out := make([]PlanDay, 0, len(ps))
	for _, p := range ps {
		tasks := p.Items
		if tasks == nil {
			tasks = []string{}
		}
		out = append(out, PlanDay{Day: p.Day, Focus: p.Title, Tasks: tasks})
	}
	return out
}

// Categories expands the SkillSet into display grouping: real categories in
// taxonomy order, plus "Other" when that bucket is non-empty. Empty
// categories are omitted.
func (s SkillSet) Categories() map[string][]string {
	categories := make(map[string][]string)
	for key, skills := range map[string][]string{
		taxonomy.CategoryCoreCS:    s.CoreCS,
		taxonomy.CategoryLanguages: s.Languages,
		taxonomy.CategoryWeb:       s.Web,
		taxonomy.CategoryData:      s.Data,
		taxonomy.CategoryCloud:     s.Cloud,
		taxonomy.CategoryTesting:   s.Testing,
	} {
		if len(skills) > 0 {
			categories[key] = skills
		}
	}
	if len(s.Other) > 0 {
		categories[taxonomy.CategoryOther] = s.Other
	}
	return categories
}

// AllSkills flattens the SkillSet (including the other bucket) in category
// order. Used as the domain of the confidence map.
func (s SkillSet) AllSkills() []string {
	all := make([]string, 0)
	for _, skills := range [][]string{s.CoreCS, s.Languages, s.Web, s.Data, s.Cloud, s.Testing, s.Other} {
		all = append(all, skills...)
	}
	return all
}

func (s SkillSet) allEmpty() bool {
	return len(s.CoreCS) == 0 && len(s.Languages) == 0 && len(s.Web) == 0 &&
		len(s.Data) == 0 && len(s.Cloud) == 0 && len(s.Testing) == 0 && len(s.Other) == 0
}

func emptySkillSet() SkillSet {
	return SkillSet{
		CoreCS:    []string{},
		Languages: []string{},
		Web:       []string{},
		Data:      []string{},
		Cloud:     []string{},
		Testing:   []string{},
		Other:     []string{},
	}
}

func copyskills(skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}
	return append([]string{}, skills...)
}

// SetConfidence toggles one skill's confidence state and recomputes the
// live score in full. Unknown states are ignored.
func (e *AnalysisEntry) SetConfidence(skill, state string) {
	if state != analysis.ConfidenceKnow && state != analysis.ConfidencePractice {
		return
	}
	if e.SkillConfidenceMap == nil {
		e.SkillConfidenceMap = map[string]string{}
	}
	e.SkillConfidenceMap[skill] = state
	e.FinalScore = e.Rescore()
}

// Rescore re-derives the live score from the base score and confidence map.
func (e *AnalysisEntry) Rescore() int {
	return analysis.ComputeLiveScore(e.BaseScore, e.ExtractedSkills.AllSkills(), e.SkillConfidenceMap)
}
