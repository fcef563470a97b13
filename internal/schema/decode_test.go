package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntry_CanonicalRoundTrip(t *testing.T) {
	original := BuildEntry(BuildParams{
		ID:        "entry-1",
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Company:   "Acme",
		Role:      "SDE",
		JDText:    "React and SQL",
		Extracted: analysis.ExtractSkills("React and SQL"),
		Questions: []string{"q1", "q2"},
		BaseScore: 70,
	})
	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := DecodeEntry(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeEntry_LegacyAliases(t *testing.T) {
	legacy := `{
		"id": "legacy-1",
		"createdAt": "2024-11-02T08:30:00Z",
		"company": "Acme",
		"jdText": "React role",
		"extractedSkills": {"categories": {"Web": ["React"]}},
		"roundMapping": [{"title": "Screening", "description": "Short coding.", "whyItMatters": "Filter."}],
		"checklist": [{"round": "Round 1", "items": ["a", "b"]}],
		"plan": [{"day": "Day 1", "title": "Basics", "items": ["x"]}],
		"questions": ["q1"],
		"baseReadinessScore": 55,
		"readinessScore": 57
	}`

	entry, err := DecodeEntry([]byte(legacy))
	require.NoError(t, err)

	assert.Equal(t, "legacy-1", entry.ID)
	assert.Equal(t, time.Date(2024, 11, 2, 8, 30, 0, 0, time.UTC), entry.CreatedAt)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
	assert.Equal(t, []string{"React"}, entry.ExtractedSkills.Web)
	assert.Equal(t, []Round{{RoundTitle: "Screening", FocusAreas: []string{"Short coding."}, WhyItMatters: "Filter."}}, entry.RoundMapping)
	assert.Equal(t, []ChecklistRound{{RoundTitle: "Round 1", Items: []string{"a", "b"}}}, entry.Checklist)
	assert.Equal(t, []PlanDay{{Day: "Day 1", Focus: "Basics", Tasks: []string{"x"}}}, entry.Plan7Days)
	assert.Equal(t, 55, entry.BaseScore)
	assert.Equal(t, 57, entry.FinalScore)
	assert.Equal(t, map[string]string{}, entry.SkillConfidenceMap)
}

func TestDecodeEntry_LegacyFresherCategories(t *testing.T) {
	legacy := `{
		"id": "legacy-2",
		"jdText": "",
		"extractedSkills": {"categories": {"General": ["General fresher stack"]}, "isGeneralFresher": true}
	}`

	entry, err := DecodeEntry([]byte(legacy))
	require.NoError(t, err)

	assert.Empty(t, entry.ExtractedSkills.CoreCS)
	assert.Equal(t, taxonomy.DefaultOtherSkills, entry.ExtractedSkills.Other)
}

func TestDecodeEntry_ScorePrecedence(t *testing.T) {
	// Canonical scores win over legacy aliases when both are present.
	data := `{"id": "x", "jdText": "jd", "baseScore": 40, "baseReadinessScore": 99, "finalScore": 44, "readinessScore": 99}`

	entry, err := DecodeEntry([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 40, entry.BaseScore)
	assert.Equal(t, 44, entry.FinalScore)

	// A record with only a base score uses it for both.
	data = `{"id": "y", "jdText": "jd", "baseScore": 40}`
	entry, err = DecodeEntry([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 40, entry.BaseScore)
	assert.Equal(t, 40, entry.FinalScore)
}

func TestDecodeEntry_MissingFieldsDefault(t *testing.T) {
	entry, err := DecodeEntry([]byte(`{"id": "bare", "jdText": ""}`))
	require.NoError(t, err)

	assert.Equal(t, "bare", entry.ID)
	assert.Equal(t, "", entry.JDText)
	assert.Equal(t, taxonomy.DefaultOtherSkills, entry.ExtractedSkills.Other)
	assert.Equal(t, []string{}, entry.Questions)
	assert.Equal(t, 0, entry.BaseScore)
	assert.Nil(t, entry.CompanyIntel)
}

func TestDecodeEntry_Errors(t *testing.T) {
	cases := map[string]string{
		"malformed json": `{"id": `,
		"missing id":     `{"jdText": "x"}`,
		"empty id":       `{"id": "", "jdText": "x"}`,
		"missing jdText": `{"id": "x"}`,
		"numeric jdText": `{"id": "x", "jdText": 7}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEntry([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeEntry_ToleratesMalformedIntel(t *testing.T) {
	entry, err := DecodeEntry([]byte(`{"id": "x", "jdText": "jd", "companyIntel": "not an object"}`))
	require.NoError(t, err)
	assert.Nil(t, entry.CompanyIntel)
}
