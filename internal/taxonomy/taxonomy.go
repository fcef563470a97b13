// Package taxonomy defines the fixed skill vocabulary recognized by the
// analysis engine. Extraction only ever matches against these tables;
// changing them changes the meaning of every persisted analysis.
package taxonomy

// Category display names. Order matters: it is the grouping order used
// everywhere skills are presented.
const (
	CategoryCoreCS    = "Core CS"
	CategoryLanguages = "Languages"
	CategoryWeb       = "Web"
	CategoryData      = "Data"
	CategoryCloud     = "Cloud/DevOps"
	CategoryTesting   = "Testing"
	CategoryOther     = "Other"
)

// GeneralFresherLabel is the placeholder skill emitted when a JD matches
// nothing in the vocabulary.
const GeneralFresherLabel = "General fresher stack"

// CategoryOrder lists the real (non-synthetic) categories in display order.
var CategoryOrder = []string{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
}

// SkillCategories maps each category to its keyword list. Matching is
// case-insensitive substring containment over JD text; labels keep the
// casing written here.
var SkillCategories = map[string][]string{
	CategoryCoreCS:    {"DSA", "OOP", "DBMS", "OS", "Networks"},
	// The bare letter "C" is deliberately absent: substring matching would
	// flag it in almost any text ("React" contains "c").
	CategoryLanguages: {"Java", "Python", "JavaScript", "TypeScript", "C++", "C#", "Go"},
	CategoryWeb:       {"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"},
	CategoryData:      {"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"},
	CategoryCloud:     {"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"},
	CategoryTesting:   {"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"},
}

// DefaultOtherSkills is the fallback set stored under the "other" bucket for
// general-fresher entries.
var DefaultOtherSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// Keywords returns the keyword list for a category, nil if unknown.
func Keywords(category string) []string {
	return SkillCategories[category]
}
