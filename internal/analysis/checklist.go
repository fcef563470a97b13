package analysis

import "github.com/jonathan/placement-readiness/internal/taxonomy"

// ChecklistRound is one interview round with its preparation items.
type ChecklistRound struct {
	Round string   `json:"round"`
	Items []string `json:"items"`
}

const (
	maxItemsShortRound = 6
	maxItemsLongRound  = 8
)

// GenerateChecklist builds the round-wise preparation checklist. Rounds 2
// and 3 carry conditional items gated on detected skills; truncation to the
// per-round cap happens only after the conditional filter so item order is
// preserved.
func GenerateChecklist(extracted *Extracted) []ChecklistRound {
	hasDSA := extracted.hasSkillContaining(taxonomy.CategoryCoreCS, "dsa")
	hasWeb := extracted.hasAny(taxonomy.CategoryWeb)
	hasData := extracted.hasAny(taxonomy.CategoryData)
	hasCloud := extracted.hasAny(taxonomy.CategoryCloud)
	hasTesting := extracted.hasAny(taxonomy.CategoryTesting)

	round1 := truncate([]string{
		"Revise quantitative aptitude (percentages, ratios, time-speed)",
		"Practice logical reasoning and puzzles",
		"Brush up basics: arrays, strings, loops",
		"Review time complexity (Big O)",
		"Prepare short self-introduction (1 min)",
		"List 2–3 strengths and weaknesses",
	}, maxItemsShortRound)

	round2 := truncate(conditional(
		item("Revise arrays, strings, hash maps, two pointers"),
		item("Practice 5–10 medium DSA problems"),
		item("Review OOP concepts (encapsulation, inheritance, polymorphism)"),
		when(hasDSA, "Revise trees/graphs if applicable"),
		item("Practice explaining approach before coding"),
		item("Time yourself on 2 problems (30 min each)"),
		item("Revise OS: processes, threads, scheduling"),
		item("Revise DBMS: normalization, indexes, transactions"),
	), maxItemsLongRound)

	round3 := truncate(conditional(
		item("Prepare 2 projects with clear problem–solution–impact"),
		item("Align project tech stack with JD (mention same tools)"),
		item("Prepare STAR stories for teamwork and deadlines"),
		when(hasWeb, "Prepare frontend deep-dive (state, hooks, performance)"),
		when(hasData, "Prepare DB design and query optimization examples"),
		when(hasCloud, "Prepare deployment/CI or cloud concepts you used"),
		when(hasTesting, "Prepare testing approach and tools you used"),
		item("Practice “Tell me about yourself” with project highlights"),
	), maxItemsLongRound)

	round4 := truncate([]string{
		"Prepare “Why this company?” and “Why this role?”",
		"Prepare 3–5 thoughtful questions for the interviewer",
		"Practice salary expectations (research range)",
		"Prepare situation-based: conflict, failure, learning",
		"Dress appropriately and test setup (camera, mic)",
		"Review company values and recent news",
	}, maxItemsShortRound)

	return []ChecklistRound{
		{Round: "Round 1: Aptitude / Basics", Items: round1},
		{Round: "Round 2: DSA + Core CS", Items: round2},
		{Round: "Round 3: Tech interview (projects + stack)", Items: round3},
		{Round: "Round 4: Managerial / HR", Items: round4},
	}
}

// conditionalItem pairs an item with its gate.
type conditionalItem struct {
	text    string
	include bool
}

func item(text string) conditionalItem {
	return conditionalItem{text: text, include: true}
}

func when(pred bool, text string) conditionalItem {
	return conditionalItem{text: text, include: pred}
}

// conditional keeps included items in their original order.
func conditional(items ...conditionalItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.include {
			out = append(out, it.text)
		}
	}
	return out
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
