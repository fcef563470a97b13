package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChecklist_AlwaysFourRounds(t *testing.T) {
	got := GenerateChecklist(ExtractSkills(""))

	require.Len(t, got, 4)
	assert.Equal(t, "Round 1: Aptitude / Basics", got[0].Round)
	assert.Equal(t, "Round 2: DSA + Core CS", got[1].Round)
	assert.Equal(t, "Round 3: Tech interview (projects + stack)", got[2].Round)
	assert.Equal(t, "Round 4: Managerial / HR", got[3].Round)

	assert.Len(t, got[0].Items, 6)
	assert.Len(t, got[3].Items, 6)
}

func TestGenerateChecklist_ConditionalItemsOmittedForFresher(t *testing.T) {
	got := GenerateChecklist(ExtractSkills("entry level opening"))

	assert.NotContains(t, got[1].Items, "Revise trees/graphs if applicable")
	for _, item := range got[2].Items {
		assert.NotContains(t, item, "frontend deep-dive")
		assert.NotContains(t, item, "DB design")
	}
}

func TestGenerateChecklist_Round2TruncatedAfterDSAGate(t *testing.T) {
	got := GenerateChecklist(ExtractSkills("strong DSA fundamentals required"))

	// With the DSA item included, round 2 has 8 candidates and keeps all 8.
	require.Len(t, got[1].Items, 8)
	assert.Contains(t, got[1].Items, "Revise trees/graphs if applicable")
	// Truncation happens after filtering, so order of the survivors holds.
	assert.Equal(t, "Revise arrays, strings, hash maps, two pointers", got[1].Items[0])
	assert.Equal(t, "Revise DBMS: normalization, indexes, transactions", got[1].Items[7])
}

func TestGenerateChecklist_Round3CapsAtEight(t *testing.T) {
	// Web, Data, Cloud and Testing all detected: 8 candidate items survive.
	got := GenerateChecklist(ExtractSkills("React SQL AWS Selenium"))

	require.Len(t, got[2].Items, 8)
	assert.Contains(t, got[2].Items, "Prepare frontend deep-dive (state, hooks, performance)")
	assert.Contains(t, got[2].Items, "Prepare testing approach and tools you used")
}

func TestGenerateChecklist_NoRoundExceedsCap(t *testing.T) {
	got := GenerateChecklist(ExtractSkills("DSA OOP DBMS React Node.js SQL AWS Docker Selenium Cypress"))

	for _, round := range got {
		assert.LessOrEqual(t, len(round.Items), 8)
		assert.NotEmpty(t, round.Items)
	}
}
