package analysis

import (
	"strings"

	"github.com/jonathan/placement-readiness/internal/taxonomy"
)

// Confidence states for a skill. Untoggled skills count as practice.
const (
	ConfidenceKnow     = "know"
	ConfidencePractice = "practice"
)

const (
	scoreFloor = 35
	// A detected category is worth 5 points, capped at 6 categories.
	perCategoryPoints = 5
	maxCategories     = 6
	metadataPoints    = 10
	longJDThreshold   = 800
	// Each confidence toggle moves the live score by 2 points.
	confidenceDelta = 2
)

// ComputeBaseScore derives the readiness score fixed at analysis time:
// 35 + 5 per qualifying category (max 30) + 10 each for company, role, and
// a JD longer than 800 characters, clamped to [0,100]. The synthetic
// general-fresher category never qualifies.
func ComputeBaseScore(extracted *Extracted, company, role, jdText string) int {
	score := scoreFloor

	numCategories := 0
	for name, skills := range extracted.Categories {
		if name == CategoryGeneral {
			continue
		}
		if len(skills) > 0 && skills[0] == taxonomy.GeneralFresherLabel {
			continue
		}
		numCategories++
	}
	if numCategories > maxCategories {
		numCategories = maxCategories
	}
	score += numCategories * perCategoryPoints

	if strings.TrimSpace(company) != "" {
		score += metadataPoints
	}
	if strings.TrimSpace(role) != "" {
		score += metadataPoints
	}
	if len(jdText) > longJDThreshold {
		score += metadataPoints
	}

	return clampScore(score)
}

// ComputeLiveScore re-derives the live score from the base score and the
// per-skill confidence map: +2 per "know", -2 per implicit or explicit
// "practice", clamped to [0,100]. Always a full recomputation over the
// flattened skill list, never an incremental adjustment, so a corrupted
// partial state recovers on the next call.
func ComputeLiveScore(baseScore int, skills []string, confidence map[string]string) int {
	score := baseScore
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if seen[skill] {
			continue
		}
		seen[skill] = true
		if confidence[skill] == ConfidenceKnow {
			score += confidenceDelta
		} else {
			score -= confidenceDelta
		}
	}
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
