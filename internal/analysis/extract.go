// Package analysis implements the deterministic JD analysis pipeline:
// skill extraction, preparation artifacts, and readiness scoring.
package analysis

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/taxonomy"
)

// CategoryGeneral is the synthetic category emitted when nothing in the
// taxonomy matched the JD.
const CategoryGeneral = "General"

// Extracted holds categorized skills detected in a JD.
type Extracted struct {
	Categories       map[string][]string `json:"categories"`
	AllSkills        []string            `json:"allSkills"`
	IsGeneralFresher bool                `json:"isGeneralFresher"`
}

// ExtractSkills scans JD text against the taxonomy. A keyword counts as
// found when the lower-cased text contains the lower-cased keyword as a
// substring; matching is deliberately not word-boundary-aware so persisted
// results stay stable ("Go" matches inside "Google").
func ExtractSkills(jdText string) *Extracted {
	text := strings.ToLower(jdText)

	categories := make(map[string][]string)
	allSkills := make([]string, 0)
	seen := make(map[string]bool)

	for _, category := range taxonomy.CategoryOrder {
		var found []string
		for _, kw := range taxonomy.SkillCategories[category] {
			if strings.Contains(text, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			categories[category] = found
			for _, s := range found {
				if !seen[s] {
					seen[s] = true
					allSkills = append(allSkills, s)
				}
			}
		}
	}

	isGeneralFresher := len(categories) == 0
	if isGeneralFresher {
		categories[CategoryGeneral] = []string{taxonomy.GeneralFresherLabel}
		allSkills = append(allSkills, taxonomy.GeneralFresherLabel)
	}

	return &Extracted{
		Categories:       categories,
		AllSkills:        allSkills,
		IsGeneralFresher: isGeneralFresher,
	}
}

// category returns the detected skills for a category (nil when absent).
func (e *Extracted) category(name string) []string {
	if e == nil || e.Categories == nil {
		return nil
	}
	return e.Categories[name]
}

// hasAny reports whether any skill was detected for the category.
func (e *Extracted) hasAny(name string) bool {
	return len(e.category(name)) > 0
}

// hasSkillContaining reports whether any detected skill in the category
// contains one of the given lower-case fragments.
func (e *Extracted) hasSkillContaining(category string, fragments ...string) bool {
	for _, s := range e.category(category) {
		lower := strings.ToLower(s)
		for _, frag := range fragments {
			if strings.Contains(lower, frag) {
				return true
			}
		}
	}
	return false
}
