// Package rounds maps detected skills and company size to an expected
// interview-round sequence. Templates are fixed content; the only logic is
// the selection rule, which must stay stable so stored entries keep their
// meaning.
package rounds

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/intel"
	"github.com/jonathan/placement-readiness/internal/taxonomy"
)

// Round is one expected interview round with its rationale.
type Round struct {
	RoundNumber  int    `json:"roundNumber"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	WhyItMatters string `json:"whyItMatters"`
}

// GenerateRoundMapping selects a round template from the decision table,
// evaluated top to bottom, first match wins:
//
//  1. enterprise with a DSA signal  -> 4-round enterprise + DSA
//  2. enterprise                    -> 4-round generic enterprise
//  3. startup/mid with React/Node   -> 3-round practical
//  4. startup/mid                   -> 3-round generic startup
//  5. anything else                 -> 3-round fallback
func GenerateRoundMapping(extracted *analysis.Extracted, sizeCategory string) []Round {
	size := sizeCategory
	if size == "" {
		size = intel.SizeStartup
	}

	hasDSA := hasSkillMatching(extracted, taxonomy.CategoryCoreCS, "dsa", "algorithm", "data structure")
	hasReactNode := hasSkillMatching(extracted, taxonomy.CategoryWeb, "react", "node", "express")

	if size == intel.SizeEnterprise && hasDSA {
		return []Round{
			{1, "Online Test (DSA + Aptitude)", "Coding and aptitude on a platform; time-bound.", "Filters for baseline problem-solving and logical ability before face-to-face rounds."},
			{2, "Technical (DSA + Core CS)", "Data structures, algorithms, and core CS concepts.", "Validates fundamentals that scale to system design and code quality."},
			{3, "Tech + Projects", "Deep dive into projects, design, and trade-offs.", "Shows how you apply knowledge in real systems and handle ambiguity."},
			{4, "HR", "Behavioural fit, expectations, and culture.", "Ensures alignment with company values and long-term fit."},
		}
	}

	if size == intel.SizeEnterprise {
		return []Round{
			{1, "Aptitude / Screening", "Quantitative and logical reasoning.", "Initial filter for analytical readiness."},
			{2, "Technical", "Core CS and role-specific topics.", "Assesses technical depth and clarity of thought."},
			{3, "Projects & Discussion", "Projects, design, and problem-solving.", "Evaluates practical application and communication."},
			{4, "HR", "Fit and expectations.", "Confirms mutual fit and expectations."},
		}
	}

	if (size == intel.SizeStartup || size == intel.SizeMid) && hasReactNode {
		return []Round{
			{1, "Practical coding", "Hands-on coding or take-home; stack-aligned.", "Startups need to see you ship; this round shows execution."},
			{2, "System discussion", "Architecture, trade-offs, and past work.", "Reveals how you think about systems and priorities."},
			{3, "Culture fit", "Values, teamwork, and motivation.", "Small teams depend on alignment and communication."},
		}
	}

	if size == intel.SizeStartup || size == intel.SizeMid {
		return []Round{
			{1, "Screening / Coding", "Short coding or problem-solving.", "Quick check of problem-solving and coding clarity."},
			{2, "Technical deep-dive", "Core skills and projects.", "Validates depth in areas that matter for the role."},
			{3, "Culture fit", "Motivation and teamwork.", "Ensures you and the team can work well together."},
		}
	}

	return []Round{
		{1, "Technical screening", "Coding or conceptual.", "Baseline technical assessment."},
		{2, "Technical + Projects", "Skills and experience.", "Depth and relevance of experience."},
		{3, "HR / Fit", "Expectations and values.", "Mutual fit and clarity."},
	}
}

func hasSkillMatching(extracted *analysis.Extracted, category string, fragments ...string) bool {
	if extracted == nil {
		return false
	}
	skills := extracted.Categories[category]
	for _, s := range skills {
		lower := strings.ToLower(s)
		for _, frag := range fragments {
			if strings.Contains(lower, frag) {
				return true
			}
		}
	}
	return false
}
