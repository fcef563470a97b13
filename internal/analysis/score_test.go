package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBaseScore_TypicalJD(t *testing.T) {
	jd := "We need React, Node.js, SQL and AWS experience. OOP and DSA a plus."
	extracted := ExtractSkills(jd)

	// 35 + 4 categories x 5 + company + role, JD under 800 chars.
	got := ComputeBaseScore(extracted, "Acme Startup", "SDE", jd)
	assert.Equal(t, 75, got)
}

func TestComputeBaseScore_CategoryCap(t *testing.T) {
	jd := "DSA Java React SQL AWS Selenium" // all six real categories
	extracted := ExtractSkills(jd)

	got := ComputeBaseScore(extracted, "", "", jd)
	assert.Equal(t, 35+6*5, got)
}

func TestComputeBaseScore_GeneralFresherNeverQualifies(t *testing.T) {
	extracted := ExtractSkills("fresh graduates welcome")

	assert.Equal(t, 35, ComputeBaseScore(extracted, "", "", "fresh graduates welcome"))
	assert.Equal(t, 55, ComputeBaseScore(extracted, "Acme", "SDE", ""))
}

func TestComputeBaseScore_LongJDBonus(t *testing.T) {
	jd := strings.Repeat("We use React every day. ", 40) // > 800 chars
	extracted := ExtractSkills(jd)

	got := ComputeBaseScore(extracted, "", "", jd)
	assert.Equal(t, 35+5+10, got)
}

func TestComputeBaseScore_WhitespaceMetadataDoesNotCount(t *testing.T) {
	extracted := ExtractSkills("React")

	assert.Equal(t, 40, ComputeBaseScore(extracted, "   ", "\t", "React"))
}

func TestComputeLiveScore_TogglesAreSymmetric(t *testing.T) {
	skills := []string{"React", "SQL", "AWS"}

	// No confidence recorded: every skill counts as practice.
	assert.Equal(t, 75-6, ComputeLiveScore(75, skills, nil))

	all := map[string]string{"React": ConfidenceKnow, "SQL": ConfidenceKnow, "AWS": ConfidenceKnow}
	assert.Equal(t, 75+6, ComputeLiveScore(75, skills, all))

	mixed := map[string]string{"React": ConfidenceKnow}
	assert.Equal(t, 75+2-4, ComputeLiveScore(75, skills, mixed))
}

func TestComputeLiveScore_DuplicateSkillsCountOnce(t *testing.T) {
	skills := []string{"React", "React", "React"}

	got := ComputeLiveScore(50, skills, map[string]string{"React": ConfidenceKnow})
	assert.Equal(t, 52, got)
}

func TestComputeLiveScore_UnknownStateCountsAsPractice(t *testing.T) {
	got := ComputeLiveScore(50, []string{"React"}, map[string]string{"React": "mid"})
	assert.Equal(t, 48, got)
}

func TestComputeLiveScore_Clamped(t *testing.T) {
	many := make([]string, 60)
	conf := make(map[string]string, 60)
	for i := range many {
		many[i] = fmt.Sprintf("Skill %d", i)
		conf[many[i]] = ConfidenceKnow
	}

	assert.Equal(t, 100, ComputeLiveScore(95, many, conf))

	for k := range conf {
		conf[k] = ConfidencePractice
	}
	assert.Equal(t, 0, ComputeLiveScore(5, many, conf))
}
