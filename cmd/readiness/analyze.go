package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/placement-readiness/internal/analysis"
	"github.com/jonathan/placement-readiness/internal/intel"
	"github.com/jonathan/placement-readiness/internal/jdtext"
	"github.com/jonathan/placement-readiness/internal/rounds"
	"github.com/jonathan/placement-readiness/internal/schema"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and save the result",
	Long:  "Run the analysis pipeline over a JD (file or stdin), persist the entry, and print the readiness summary.",
	RunE:  runAnalyze,
}

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeJSON    bool
	analyzeDryRun  bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name (optional)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Role title (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd", "j", "-", "Path to JD text file, or '-' for stdin")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full entry as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "Analyze without saving to history")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	jdRaw, err := readJD(analyzeJDFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	jd := jdtext.Clean(jdRaw)
	result := analysis.Run(analyzeCompany, analyzeRole, jd)
	size := intel.GetCompanySize(analyzeCompany)
	roundMapping := rounds.GenerateRoundMapping(result.Extracted, size.SizeCategory)

	entry := schema.BuildEntry(schema.BuildParams{
		Company:      analyzeCompany,
		Role:         analyzeRole,
		JDText:       jd,
		Extracted:    result.Extracted,
		RoundMapping: roundMapping,
		Checklist:    result.Checklist,
		Plan:         result.Plan,
		Questions:    result.Questions,
		BaseScore:    result.BaseScore,
		CompanyIntel: intel.GetCompanyIntel(analyzeCompany, jd),
	})

	if !analyzeDryRun {
		app, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer app.close()

		if _, err := app.store.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
	}

	if analyzeJSON {
		return printJSON(schema.NormalizeForView(entry))
	}

	printSummary(entry)
	return nil
}

func readJD(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read JD from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read JD file: %w", err)
	}
	return string(data), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printSummary(entry *schema.AnalysisEntry) {
	view := schema.NormalizeForView(entry)

	fmt.Printf("Entry %s\n", entry.ID)
	if entry.Company != "" || entry.Role != "" {
		fmt.Printf("%s — %s\n", entry.Company, entry.Role)
	}
	fmt.Printf("Readiness score: %d/100\n\n", view.ReadinessScore)

	fmt.Println("Key skills:")
	for _, toggle := range view.SkillToggles() {
		fmt.Printf("  [%s] %s\n", toggle.Category, toggle.Skill)
	}

	fmt.Println("\nExpected rounds:")
	for _, round := range view.RoundMapping {
		fmt.Printf("  %d. %s — %s\n", round.RoundNumber, round.Title, round.Description)
	}

	if entry.CompanyIntel != nil {
		fmt.Printf("\nCompany: %s (%s, %s)\n",
			entry.CompanyIntel.CompanyName, entry.CompanyIntel.Industry, entry.CompanyIntel.SizeLabel)
	}

	fmt.Println("\nLikely questions:")
	for i, q := range view.Questions {
		fmt.Printf("  %2d. %s\n", i+1, q)
	}

	fmt.Println("\n7-day plan:")
	for _, day := range view.Plan {
		fmt.Printf("  %s: %s\n", day.Day, day.Title)
		for _, item := range day.Items {
			fmt.Printf("    - %s\n", item)
		}
	}

	fmt.Println("\nChecklist:")
	for _, round := range view.Checklist {
		fmt.Printf("  %s\n", round.Round)
		for _, item := range round.Items {
			fmt.Printf("    - %s\n", item)
		}
	}
}
