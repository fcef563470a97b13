package analysis

// Result bundles everything a single analysis run produces. All fields are
// pure functions of the inputs; running twice on the same inputs yields
// identical results.
type Result struct {
	Extracted *Extracted       `json:"extractedSkills"`
	Checklist []ChecklistRound `json:"checklist"`
	Plan      []PlanDay        `json:"plan"`
	Questions []string         `json:"questions"`
	BaseScore int              `json:"readinessScore"`
}

// Run executes the full analysis pipeline over a pasted JD.
func Run(company, role, jdText string) *Result {
	extracted := ExtractSkills(jdText)
	return &Result{
		Extracted: extracted,
		Checklist: GenerateChecklist(extracted),
		Plan:      GeneratePlan(extracted),
		Questions: GenerateQuestions(extracted),
		BaseScore: ComputeBaseScore(extracted, company, role, jdText),
	}
}
