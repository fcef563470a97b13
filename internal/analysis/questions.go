package analysis

import "github.com/jonathan/placement-readiness/internal/taxonomy"

// questionCount is the fixed length of every generated question list.
const questionCount = 10

// genericQuestions pads the list when skill-driven questions run short.
var genericQuestions = []string{
	"Tell me about a challenging bug you fixed and how you approached it.",
	"How do you stay updated with new technologies?",
	"Describe a project where you had to learn something new quickly.",
	"How do you handle disagreements in a team?",
	"Where do you see yourself in 2–3 years?",
	"Why do you want to join this company?",
	"Describe a time you met a tight deadline.",
	"What is your greatest strength and weakness?",
}

// GenerateQuestions returns exactly 10 likely interview questions.
// Skill-driven questions come first in a fixed predicate order, then the
// generic pool fills the remainder (skipping questions already present),
// cycling through the pool if it runs out before reaching 10.
func GenerateQuestions(extracted *Extracted) []string {
	questions := make([]string, 0, questionCount)

	if extracted.hasSkillContaining(taxonomy.CategoryCoreCS, "dsa", "data structure", "algorithm") {
		questions = append(questions,
			"How would you optimize search in sorted data? When to use binary search?",
			"Explain time complexity of your approach. Can you improve it?")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryCoreCS, "oop") {
		questions = append(questions,
			"Explain OOP principles. Difference between abstraction and encapsulation?")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryData, "sql") {
		questions = append(questions,
			"Explain indexing and when it helps. What are clustered vs non-clustered indexes?")
	}
	if extracted.hasAny(taxonomy.CategoryData) {
		questions = append(questions,
			"How would you design a schema for [X]? Discuss normalization.")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryWeb, "react") {
		questions = append(questions,
			"Explain state management options in React (useState, context, Redux).",
			"What are React hooks? When would you use useMemo or useCallback?")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryWeb, "node", "express") {
		questions = append(questions,
			"Explain REST vs GraphQL. How would you design an API for [X]?")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryLanguages, "python") {
		questions = append(questions,
			"Explain Python data structures. List vs tuple, dict, sets. Time complexity?")
	}
	if extracted.hasSkillContaining(taxonomy.CategoryLanguages, "java") {
		questions = append(questions,
			"Explain JVM, garbage collection, or equals vs == in Java.")
	}
	if extracted.hasAny(taxonomy.CategoryCloud) {
		questions = append(questions,
			"Describe a deployment pipeline. How would you ensure zero-downtime deployment?")
	}
	if extracted.hasAny(taxonomy.CategoryTesting) {
		questions = append(questions,
			"How do you approach testing? Unit vs integration. Tools you have used.")
	}

	// Pad from the generic pool, skipping anything already asked.
	for gi := 0; len(questions) < questionCount && gi < len(genericQuestions); gi++ {
		q := genericQuestions[gi]
		if !containsString(questions, q) {
			questions = append(questions, q)
		}
	}
	// Pool exhausted: cycle by index so the list always reaches 10.
	for len(questions) < questionCount {
		questions = append(questions, genericQuestions[len(questions)%len(genericQuestions)])
	}

	return questions[:questionCount]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
