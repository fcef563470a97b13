package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompanySize_KnownEnterprise(t *testing.T) {
	for _, name := range []string{"Google", "  AMAZON  ", "Tech Mahindra", "Goldman Sachs"} {
		got := GetCompanySize(name)
		assert.Equal(t, SizeEnterprise, got.SizeCategory, name)
		assert.Equal(t, "Enterprise (2000+)", got.SizeLabel)
		assert.Equal(t, 5000, got.MaxEmployees)
	}
}

func TestGetCompanySize_BidirectionalSubstring(t *testing.T) {
	// Known name inside the given name.
	assert.Equal(t, SizeEnterprise, GetCompanySize("Google India Pvt Ltd").SizeCategory)
	// Given name inside a known name.
	assert.Equal(t, SizeEnterprise, GetCompanySize("goldman").SizeCategory)
}

func TestGetCompanySize_DefaultsToStartup(t *testing.T) {
	for _, name := range []string{"", "   ", "Acme Robotics"} {
		got := GetCompanySize(name)
		assert.Equal(t, SizeStartup, got.SizeCategory)
		assert.Equal(t, "Startup (<200)", got.SizeLabel)
		assert.Equal(t, 200, got.MaxEmployees)
	}
}

func TestGetIndustry_FirstMatchingGroupWins(t *testing.T) {
	// "fintech" (group 1) beats "cloud" (group 5) regardless of position.
	got := GetIndustry("CloudPay", "a fintech company built on cloud infrastructure")
	assert.Equal(t, "Financial Services", got)
}

func TestGetIndustry_MatchesCompanyNameToo(t *testing.T) {
	assert.Equal(t, "Healthcare", GetIndustry("MediTrack Pharma", "backend role"))
}

func TestGetIndustry_Default(t *testing.T) {
	assert.Equal(t, "Technology Services", GetIndustry("Acme", "generic backend role"))
}

func TestGetTypicalHiringFocus_PerTier(t *testing.T) {
	assert.Contains(t, GetTypicalHiringFocus(SizeEnterprise), "Structured DSA")
	assert.Contains(t, GetTypicalHiringFocus(SizeMid), "Balance of problem-solving")
	assert.Contains(t, GetTypicalHiringFocus(SizeStartup), "Practical problem-solving")
	// Unknown tiers fall back to the startup blurb.
	assert.Equal(t, GetTypicalHiringFocus(SizeStartup), GetTypicalHiringFocus("unknown"))
}

func TestGetCompanyIntel(t *testing.T) {
	assert.Nil(t, GetCompanyIntel("", "some jd"))
	assert.Nil(t, GetCompanyIntel("   ", "some jd"))

	got := GetCompanyIntel("  Infosys  ", "banking domain project")
	require.NotNil(t, got)
	assert.Equal(t, "Infosys", got.CompanyName)
	assert.Equal(t, "Financial Services", got.Industry)
	assert.Equal(t, SizeEnterprise, got.SizeCategory)
	assert.NotEmpty(t, got.TypicalHiringFocus)
}
