package analysis

import "github.com/jonathan/placement-readiness/internal/taxonomy"

// PlanDay is one block of the 7-day preparation plan. Five blocks span the
// week; two of them merge a pair of days.
type PlanDay struct {
	Day   string   `json:"day"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// GeneratePlan builds the 7-day plan adapted to detected skills. Blocks 2
// and 4 carry conditional items, filtered before assembly so order holds.
func GeneratePlan(extracted *Extracted) []PlanDay {
	hasReact := extracted.hasSkillContaining(taxonomy.CategoryWeb, "react")
	hasDSA := extracted.hasAny(taxonomy.CategoryCoreCS)
	hasData := extracted.hasAny(taxonomy.CategoryData)

	day1to2 := []string{
		"Revise core CS: OOP, DBMS, OS, Networks (from JD)",
		"Brush up basics: arrays, strings, hash maps",
		"List all skills from JD and rate yourself 1–5",
	}
	day3to4 := conditional(
		item("DSA: 5–8 problems (arrays, strings, two pointers)"),
		item("Practice on a timer; explain approach aloud"),
		when(hasDSA, "Revise trees/graphs if in JD"),
	)
	day5 := []string{
		"Map 2 projects to JD requirements",
		"Prepare 2-min project pitch with tech stack",
		"Align resume bullets with JD keywords",
	}
	day6 := conditional(
		item("Mock: 2 behavioral + 2 technical questions"),
		when(hasReact, "Prepare: state management, hooks, performance"),
		when(hasData, "Prepare: indexing, queries, normalization"),
		item("Record yourself and review"),
	)
	day7 := []string{
		"Revision: weak areas from self-rating",
		"Re-read JD and company page",
		"Prepare questions for interviewer",
	}

	return []PlanDay{
		{Day: "Day 1–2", Title: "Basics + core CS", Items: day1to2},
		{Day: "Day 3–4", Title: "DSA + coding practice", Items: day3to4},
		{Day: "Day 5", Title: "Project + resume alignment", Items: day5},
		{Day: "Day 6", Title: "Mock interview questions", Items: day6},
		{Day: "Day 7", Title: "Revision + weak areas", Items: day7},
	}
}
