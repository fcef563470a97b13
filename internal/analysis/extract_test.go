package analysis

import (
	"testing"

	"github.com/jonathan/placement-readiness/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_CategorizesByTaxonomy(t *testing.T) {
	jd := "We need React, Node.js, SQL and AWS experience. OOP and DSA a plus."

	got := ExtractSkills(jd)

	assert.False(t, got.IsGeneralFresher)
	assert.Equal(t, []string{"DSA", "OOP"}, got.Categories[taxonomy.CategoryCoreCS])
	assert.Equal(t, []string{"React", "Node.js"}, got.Categories[taxonomy.CategoryWeb])
	assert.Equal(t, []string{"SQL"}, got.Categories[taxonomy.CategoryData])
	assert.Equal(t, []string{"AWS"}, got.Categories[taxonomy.CategoryCloud])
	assert.NotContains(t, got.Categories, taxonomy.CategoryLanguages)
	assert.NotContains(t, got.Categories, taxonomy.CategoryTesting)
	assert.NotContains(t, got.Categories, CategoryGeneral)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	got := ExtractSkills("looking for PYTHON and react developers")

	assert.Equal(t, []string{"Python"}, got.Categories[taxonomy.CategoryLanguages])
	assert.Equal(t, []string{"React"}, got.Categories[taxonomy.CategoryWeb])
}

func TestExtractSkills_SubstringMatchIsNotWordBoundaryAware(t *testing.T) {
	// "Go" matches inside "Google" and "Java" inside "JavaScript".
	got := ExtractSkills("Join Google and write JavaScript")

	assert.Contains(t, got.Categories[taxonomy.CategoryLanguages], "Go")
	assert.Contains(t, got.Categories[taxonomy.CategoryLanguages], "Java")
	assert.Contains(t, got.Categories[taxonomy.CategoryLanguages], "JavaScript")
}

func TestExtractSkills_AllSkillsFlattenedInCategoryOrder(t *testing.T) {
	got := ExtractSkills("SQL first in text, but DSA and React come earlier in display order")

	assert.Equal(t, []string{"DSA", "React", "SQL"}, got.AllSkills)
}

func TestExtractSkills_GeneralFresherFallback(t *testing.T) {
	for _, jd := range []string{"", "We welcome enthusiastic graduates."} {
		got := ExtractSkills(jd)

		require.True(t, got.IsGeneralFresher)
		assert.Equal(t, map[string][]string{
			CategoryGeneral: {taxonomy.GeneralFresherLabel},
		}, got.Categories)
		assert.Equal(t, []string{taxonomy.GeneralFresherLabel}, got.AllSkills)
	}
}

func TestExtractSkills_Deterministic(t *testing.T) {
	jd := "React, Node.js, Express, SQL, MongoDB, AWS, Docker, DSA, OOP, Java, Python"

	first := ExtractSkills(jd)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ExtractSkills(jd))
	}
}
