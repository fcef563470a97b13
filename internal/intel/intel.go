// Package intel classifies companies into a size tier and industry using
// static heuristic tables. Pure functions of (name, JD text); no lookups
// beyond the tables below.
package intel

import "strings"

// Size categories. The mid tier is representable for callers that branch on
// it, but the name heuristic only ever yields startup or enterprise.
const (
	SizeStartup    = "startup"
	SizeMid        = "mid"
	SizeEnterprise = "enterprise"
)

// enterpriseNames is the known large-company list. A normalized company
// name substring-matching any entry (in either direction) classifies as
// enterprise; everything else defaults to startup.
var enterpriseNames = []string{
	"amazon", "google", "microsoft", "meta", "apple", "infosys", "tcs", "wipro",
	"accenture", "capgemini", "cognizant", "hcl", "tech mahindra", "oracle",
	"ibm", "salesforce", "adobe", "sap", "dell", "cisco", "intel", "vmware",
	"goldman sachs", "morgan stanley", "jp morgan", "barclays", "ubs",
}

// industryGroup pairs trigger keywords with an industry label. Groups are
// checked in order; the first hit wins.
type industryGroup struct {
	keywords []string
	industry string
}

var industryGroups = []industryGroup{
	{[]string{"fintech", "banking", "payment", "finance", "trading"}, "Financial Services"},
	{[]string{"healthcare", "medical", "pharma", "clinical"}, "Healthcare"},
	{[]string{"ecommerce", "retail", "marketplace"}, "E‑commerce & Retail"},
	{[]string{"edtech", "education", "learning"}, "Education Technology"},
	{[]string{"saas", "cloud", "enterprise software"}, "Software & SaaS"},
	{[]string{"product", "consumer", "mobile app"}, "Product & Consumer Tech"},
}

// defaultIndustry is returned when no keyword group matches.
const defaultIndustry = "Technology Services"

// CompanySize describes the inferred size tier.
type CompanySize struct {
	SizeCategory string `json:"sizeCategory"`
	SizeLabel    string `json:"sizeLabel"`
	MaxEmployees int    `json:"maxEmployees"`
}

// CompanyIntel is the display-ready company summary. Nil when no company
// name was given; callers treat absence as "nothing to show".
type CompanyIntel struct {
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	SizeCategory       string `json:"sizeCategory"`
	SizeLabel          string `json:"sizeLabel"`
	TypicalHiringFocus string `json:"typicalHiringFocus"`
}

func normalizeCompany(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// GetCompanySize classifies a company name into a size tier. Known names
// map to enterprise; unknown or empty names default to startup.
func GetCompanySize(companyName string) CompanySize {
	startup := CompanySize{SizeCategory: SizeStartup, SizeLabel: "Startup (<200)", MaxEmployees: 200}

	n := normalizeCompany(companyName)
	if n == "" {
		return startup
	}
	for _, known := range enterpriseNames {
		if strings.Contains(n, known) || strings.Contains(known, n) {
			return CompanySize{SizeCategory: SizeEnterprise, SizeLabel: "Enterprise (2000+)", MaxEmployees: 5000}
		}
	}
	return startup
}

// GetIndustry infers an industry label from the company name and JD text,
// defaulting to "Technology Services".
func GetIndustry(companyName, jdText string) string {
	text := strings.ToLower(companyName + " " + jdText)
	for _, group := range industryGroups {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.industry
			}
		}
	}
	return defaultIndustry
}

// GetTypicalHiringFocus returns the hiring-focus blurb for a size tier.
func GetTypicalHiringFocus(sizeCategory string) string {
	switch sizeCategory {
	case SizeEnterprise:
		return "Structured DSA and core CS fundamentals; standardized online tests and technical rounds; emphasis on scalability and system design."
	case SizeMid:
		return "Balance of problem-solving and stack depth; practical coding and system discussion; culture fit and ownership."
	default:
		return "Practical problem-solving and stack depth; hands-on coding and system discussion; culture fit and adaptability."
	}
}

// GetCompanyIntel builds the full intel summary, or nil when the company
// name is empty.
func GetCompanyIntel(companyName, jdText string) *CompanyIntel {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}
	size := GetCompanySize(name)
	return &CompanyIntel{
		CompanyName:        name,
		Industry:           GetIndustry(name, jdText),
		SizeCategory:       size.SizeCategory,
		SizeLabel:          size.SizeLabel,
		TypicalHiringFocus: GetTypicalHiringFocus(size.SizeCategory),
	}
}
